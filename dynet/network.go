// File: network.go
// Role: Network aggregate, constructors and selector resolution.
// Determinism:
//   - No map iteration order leaks out of this file.
// AI-HINT (file):
//   - The static graph only grows: edges appear on their first spell and are never removed.
//   - Graph() is read-only by convention; mutate activity through Network methods.

package dynet

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/dynamic/core"
	"github.com/katalvlaran/dynamic/spell"
	"github.com/katalvlaran/dynamic/tea"
)

// Network is a dynamic network: a static graph of every vertex and edge that
// is ever active, plus the spells describing when they are active and the
// time-varying attributes attached to them.
//
// A Network is not safe for concurrent mutation; see the package docs.
type Network struct {
	graph       *core.Graph
	observation spell.Spell

	vertexSpells map[int][]spell.Spell
	edgeSpells   map[EdgeKey][]spell.Spell

	vertexAttrs *tea.Store[int]
	edgeAttrs   *tea.Store[EdgeKey]

	logger *slog.Logger
}

// New creates a Network with vertices 1..n, no spells, and the observation
// period [start, end].
//
// Errors:
//   - spell.ErrInvalidInterval: start > end.
//
// Complexity: O(n).
func New(n int, start, end spell.Time, opts ...Option) (*Network, error) {
	observation, err := spell.New(start, end)
	if err != nil {
		return nil, fmt.Errorf("dynet: observation period: %w", err)
	}
	cfg := defaultConfig()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	gopts := []core.GraphOption{core.WithDirected(cfg.directed)}
	if cfg.loops {
		gopts = append(gopts, core.WithLoops())
	}

	return newNetwork(core.NewGraph(n, gopts...), observation, cfg.logger), nil
}

func newNetwork(g *core.Graph, observation spell.Spell, logger *slog.Logger) *Network {
	return &Network{
		graph:        g,
		observation:  observation,
		vertexSpells: make(map[int][]spell.Spell),
		edgeSpells:   make(map[EdgeKey][]spell.Spell),
		vertexAttrs:  tea.NewStore[int](),
		edgeAttrs:    tea.NewStore[EdgeKey](),
		logger:       logger,
	}
}

// AsDynamic wraps a static graph: every vertex and edge of g becomes active
// over [onset, terminus), static vertex attributes are copied, and the
// observation period is [onset, terminus]. g itself is not retained.
//
// Only WithLogger is meaningful in opts; directedness and loops follow g.
//
// Errors:
//   - spell.ErrInvalidInterval: onset > terminus.
//
// Complexity: O(n + E).
func AsDynamic(g *core.Graph, onset, terminus spell.Time, opts ...Option) (*Network, error) {
	s, err := spell.New(onset, terminus)
	if err != nil {
		return nil, fmt.Errorf("dynet: as dynamic: %w", err)
	}
	cfg := defaultConfig()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	nw := newNetwork(g.CloneEmpty(), s, cfg.logger)
	var v int
	for _, v = range g.Vertices() {
		nw.vertexSpells[v] = []spell.Spell{s}
	}
	var e core.Edge
	for _, e = range g.Edges() {
		if err = nw.AddSpell(Edge(e.From, e.To), s); err != nil {
			return nil, err
		}
	}

	return nw, nil
}

// Graph returns the static graph of every vertex and edge ever active.
// Treat it as read-only.
func (nw *Network) Graph() *core.Graph { return nw.graph }

// Observation returns the observation period.
func (nw *Network) Observation() spell.Spell { return nw.observation }

// Directed reports whether edges are one-way.
func (nw *Network) Directed() bool { return nw.graph.Directed() }

// VertexCount returns the size of the maximum vertex set.
func (nw *Network) VertexCount() int { return nw.graph.VertexCount() }

// EdgeCount returns the size of the maximum edge set.
func (nw *Network) EdgeCount() int { return nw.graph.EdgeCount() }

// SetStaticAttr stores a time-invariant attribute on vertex v.
// Static attributes travel with the vertex into extracted snapshots.
func (nw *Network) SetStaticAttr(v int, name string, value any) error {
	return nw.graph.SetVertexAttr(v, name, value)
}

// EdgeKeyOf returns the normalised store key for the edge (i, j):
// (min, max) for undirected networks, (i, j) for directed ones.
func (nw *Network) EdgeKeyOf(i, j int) EdgeKey {
	if !nw.graph.Directed() && j < i {
		return EdgeKey{From: j, To: i}
	}

	return EdgeKey{From: i, To: j}
}

// resolve validates sel and normalises its edge key.
func (nw *Network) resolve(sel Selector) (Selector, error) {
	switch sel.kind {
	case selectVertex:
		if !nw.graph.HasVertex(sel.vertex) {
			return Selector{}, fmt.Errorf("dynet: %w: %d", core.ErrVertexNotFound, sel.vertex)
		}
	case selectEdge:
		if !nw.graph.HasVertex(sel.edge.From) {
			return Selector{}, fmt.Errorf("dynet: %w: %d", core.ErrVertexNotFound, sel.edge.From)
		}
		if !nw.graph.HasVertex(sel.edge.To) {
			return Selector{}, fmt.Errorf("dynet: %w: %d", core.ErrVertexNotFound, sel.edge.To)
		}
		sel.edge = nw.EdgeKeyOf(sel.edge.From, sel.edge.To)
	default:
		return Selector{}, ErrMissingSelector
	}

	return sel, nil
}

// spellsOf returns the live list of a resolved selector. Callers must not
// retain or mutate it.
func (nw *Network) spellsOf(sel Selector) []spell.Spell {
	if sel.kind == selectVertex {
		return nw.vertexSpells[sel.vertex]
	}

	return nw.edgeSpells[sel.edge]
}

// setSpells replaces the list of a resolved selector; empty lists are dropped.
func (nw *Network) setSpells(sel Selector, list []spell.Spell) {
	if sel.kind == selectVertex {
		if len(list) == 0 {
			delete(nw.vertexSpells, sel.vertex)
			return
		}
		nw.vertexSpells[sel.vertex] = list
		return
	}
	if len(list) == 0 {
		delete(nw.edgeSpells, sel.edge)
		return
	}
	nw.edgeSpells[sel.edge] = list
}
