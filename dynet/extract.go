// File: extract.go
// Role: Static snapshot extraction (point, interval, slice sequence, collapse).
// Determinism:
//   - Snapshot vertex k is the k-th active vertex in ascending original id.
// Concurrency:
//   - Extraction only reads the Network; SliceContext runs extractions in parallel.
// AI-HINT (file):
//   - Extraction does NOT enforce "edge active ⇒ endpoints active": edges with an
//     inactive endpoint are silently dropped. Call Reconcile first to repair spells.
//   - Collapse keeps original ids; point/interval extraction re-indexes.

package dynet

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dynamic/core"
	"github.com/katalvlaran/dynamic/spell"
)

// Snapshot is a static view of a Network extracted at a point or over an interval.
type Snapshot struct {
	// Graph holds the active vertices renumbered 1..k and the active edges between them.
	Graph *core.Graph

	// Origin maps snapshot ids back to network ids: Origin[k-1] is the
	// original id of snapshot vertex k.
	Origin []int
}

// OriginalID returns the network id of snapshot vertex v.
func (s *Snapshot) OriginalID(v int) (int, bool) {
	if v < 1 || v > len(s.Origin) {
		return 0, false
	}

	return s.Origin[v-1], true
}

// ExtractAt returns the snapshot of nw at time t.
//
// Implementation:
//   - Stage 1: Collect vertices active at t, ascending.
//   - Stage 2: Build a graph over them, renumbered densely, with static attributes.
//   - Stage 3: Add every edge active at t whose endpoints were both kept.
//
// Complexity: O(n + E + total spells).
func ExtractAt(nw *Network, t spell.Time) (*Snapshot, error) {
	return extract(context.Background(), nw, "point", func(list []spell.Spell) bool {
		return activeAt(list, t)
	})
}

// ExtractOver returns the snapshot of nw over [onset, terminus] under rule.
//
// Errors:
//   - ErrInvalidRule, spell.ErrInvalidInterval.
func ExtractOver(nw *Network, onset, terminus spell.Time, rule Rule) (*Snapshot, error) {
	q, err := queryInterval(onset, terminus, rule)
	if err != nil {
		return nil, err
	}

	return extract(context.Background(), nw, "interval", func(list []spell.Spell) bool {
		return activeOver(list, q, rule)
	})
}

func extract(ctx context.Context, nw *Network, mode string, active func([]spell.Spell) bool) (*Snapshot, error) {
	start := time.Now()

	keep := nw.collectVertices(active)
	g, err := nw.graph.VertexSubgraph(keep)
	if err != nil {
		return nil, fmt.Errorf("dynet: extract: %w", err)
	}
	index := make(map[int]int, len(keep))
	for k, v := range keep {
		index[v] = k + 1
	}

	var (
		key  EdgeKey
		list []spell.Spell
		i, j int
		hasI bool
		hasJ bool
	)
	for key, list = range nw.edgeSpells {
		if !active(list) {
			continue
		}
		i, hasI = index[key.From]
		j, hasJ = index[key.To]
		if !hasI || !hasJ {
			continue
		}
		if err = g.AddEdge(i, j); err != nil {
			return nil, fmt.Errorf("dynet: extract edge %v: %w", key, err)
		}
	}
	measureExtraction(ctx, mode, time.Since(start))

	return &Snapshot{Graph: g, Origin: keep}, nil
}

// Slice returns one ExtractAt snapshot per entry of times, in order.
// The calls are independent; no state is shared between them.
func Slice(nw *Network, times []spell.Time) ([]*Snapshot, error) {
	out := make([]*Snapshot, len(times))
	var err error
	for k, t := range times {
		if out[k], err = ExtractAt(nw, t); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// SliceContext is Slice computed by up to workers goroutines (workers ≤ 0:
// unbounded). The result order matches times. nw must not be mutated while
// SliceContext runs.
//
// Errors:
//   - ctx.Err() when ctx is cancelled before every snapshot is built.
func SliceContext(ctx context.Context, nw *Network, times []spell.Time, workers int) (snaps []*Snapshot, err error) {
	ctx, span := tracer.Start(ctx, "dynet.SliceContext", trace.WithAttributes(
		attribute.Int("dynet.times", len(times)),
		attribute.Int("dynet.workers", workers),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	out := make([]*Snapshot, len(times))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for k, t := range times {
		k, t := k, t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			snap, err := extract(gctx, nw, "point", func(list []spell.Spell) bool {
				return activeAt(list, t)
			})
			if err != nil {
				return err
			}
			out[k] = snap
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Collapse returns the union of all activity: every vertex of the maximum
// set (original ids, static attributes kept) and every edge with at least one
// recorded spell, regardless of time.
func Collapse(nw *Network) (*core.Graph, error) {
	start := time.Now()

	g := nw.graph.CloneEmpty()
	var key EdgeKey
	for _, key = range nw.sortedEdgeKeys() {
		if err := g.AddEdge(key.From, key.To); err != nil {
			return nil, fmt.Errorf("dynet: collapse edge %v: %w", key, err)
		}
	}
	measureExtraction(context.Background(), "collapse", time.Since(start))

	return g, nil
}
