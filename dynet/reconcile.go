// File: reconcile.go
// Role: Reconciliation of edge activity with endpoint activity.
// AI-HINT (file):
//   - Reconcile treats a vertex without spells as active over the observation
//     period; if both endpoints have no spells the edge is left untouched.
//   - Zero-duration intersections are dropped.

package dynet

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/dynamic/spell"
)

// ReconcileStats reports what Reconcile changed.
type ReconcileStats struct {
	// Edges is the number of edges whose spells were recomputed.
	Edges int
	// Before and After count edge spells of those edges.
	Before int
	After  int
	// Emptied counts edges left without spells (they stay in the static graph).
	Emptied int
}

// Reconcile enforces "edge active ⇒ both endpoints active".
//
// Implementation:
//   - For every edge with spells, take the endpoint spell lists Vi and Vj.
//   - Both empty: skip (endpoints are treated as always active).
//   - An empty side is replaced by the observation period.
//   - Every triple (edge spell, Vi spell, Vj spell) contributes its intersection
//     [max onsets, min termini) when that has positive duration.
//   - The edge's list becomes all contributions, sorted.
//
// Complexity: O(|Vi|·|Vj|·|Ve|) per edge.
func (nw *Network) Reconcile() ReconcileStats {
	var stats ReconcileStats
	observation := []spell.Spell{nw.observation}

	var (
		key        EdgeKey
		es, vs, ws spell.Spell
	)
	for _, key = range nw.sortedEdgeKeys() {
		edgeList := nw.edgeSpells[key]
		vi, vj := nw.vertexSpells[key.From], nw.vertexSpells[key.To]
		if len(vi) == 0 && len(vj) == 0 {
			continue
		}
		if len(vi) == 0 {
			vi = observation
		}
		if len(vj) == 0 {
			vj = observation
		}

		out := make([]spell.Spell, 0, len(edgeList))
		for _, es = range edgeList {
			for _, vs = range vi {
				for _, ws = range vj {
					if s, ok := spell.Intersect(es, vs, ws); ok {
						out = append(out, s)
					}
				}
			}
		}

		stats.Edges++
		stats.Before += len(edgeList)
		stats.After += len(out)
		if len(out) == 0 {
			stats.Emptied++
		}
		nw.setSpells(Edge(key.From, key.To), spell.Sort(out))
	}

	if stats.Emptied > 0 {
		reconcileEmptied.Add(context.Background(), int64(stats.Emptied))
	}
	nw.logger.Debug("Edge activity reconciled",
		slog.Int("edges", stats.Edges),
		slog.Int("spells-before", stats.Before),
		slog.Int("spells-after", stats.After),
		slog.Int("edges-emptied", stats.Emptied),
	)

	return stats
}
