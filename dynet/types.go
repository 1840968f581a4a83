// File: types.go
// Role: Sentinel errors, selectors, edge keys, rules and options.
// AI-HINT (file):
//   - The zero Selector and the zero Rule are invalid on purpose.
//   - EdgeKey is only normalised by a Network; Edge(3, 1) stays (3, 1) until resolved.

package dynet

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
)

// Sentinel errors for dynet operations.
var (
	// ErrInvalidRule indicates an interval rule other than RuleAny or RuleAll.
	ErrInvalidRule = errors.New("dynet: invalid rule")

	// ErrMissingSelector indicates an operation invoked with neither a vertex nor an edge.
	ErrMissingSelector = errors.New("dynet: missing vertex or edge selector")
)

// EdgeKey identifies an edge in the activity and attribute stores.
type EdgeKey struct {
	From int
	To   int
}

// String renders the key as "(from, to)".
func (k EdgeKey) String() string {
	return "(" + strconv.Itoa(k.From) + ", " + strconv.Itoa(k.To) + ")"
}

type selectorKind uint8

const (
	selectNone selectorKind = iota
	selectVertex
	selectEdge
)

// Selector addresses exactly one vertex or one edge of a Network.
// Build it with Vertex or Edge; the zero Selector selects nothing.
type Selector struct {
	kind   selectorKind
	vertex int
	edge   EdgeKey
}

// Vertex selects vertex v.
func Vertex(v int) Selector {
	return Selector{kind: selectVertex, vertex: v}
}

// Edge selects the edge between i and j.
func Edge(i, j int) Selector {
	return Selector{kind: selectEdge, edge: EdgeKey{From: i, To: j}}
}

// IsVertex reports whether s selects a vertex.
func (s Selector) IsVertex() bool { return s.kind == selectVertex }

// IsEdge reports whether s selects an edge.
func (s Selector) IsEdge() bool { return s.kind == selectEdge }

// String renders the selector for logs.
func (s Selector) String() string {
	switch s.kind {
	case selectVertex:
		return "vertex " + strconv.Itoa(s.vertex)
	case selectEdge:
		return "edge " + s.edge.String()
	default:
		return "<none>"
	}
}

// Rule selects the semantics of interval activity queries.
type Rule uint8

const (
	// RuleAny: active if any spell overlaps the query interval.
	RuleAny Rule = iota + 1
	// RuleAll: active if a single spell contains the whole query interval.
	RuleAll
)

// String returns "any", "all" or "invalid".
func (r Rule) String() string {
	switch r {
	case RuleAny:
		return "any"
	case RuleAll:
		return "all"
	default:
		return "invalid"
	}
}

// ParseRule maps "any" / "all" to a Rule.
func ParseRule(s string) (Rule, error) {
	switch s {
	case "any":
		return RuleAny, nil
	case "all":
		return RuleAll, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRule, s)
	}
}

func (r Rule) validate() error {
	if r != RuleAny && r != RuleAll {
		return fmt.Errorf("%w: %d", ErrInvalidRule, uint8(r))
	}

	return nil
}

// Option configures a Network before creation.
type Option func(c *config)

type config struct {
	directed bool
	loops    bool
	logger   *slog.Logger
}

func defaultConfig() config {
	return config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithDirected makes edges one-way: Edge(i, j) and Edge(j, i) are distinct.
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithLoops permits self-loop edges.
func WithLoops() Option {
	return func(c *config) { c.loops = true }
}

// WithLogger routes debug records of mutations to logger.
// A nil logger keeps the default (discarding) one.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
