// File: methods_adjacent.go
// Role: Neighborhood API and vertex-preserving copies (CloneEmpty, VertexSubgraph).
// Determinism:
//   - NeighborIDs() returns ids ascending.
//   - VertexSubgraph() numbers kept vertices by their position in keep.
// Concurrency:
//   - Read lock on the source graph; results are fresh instances.
// AI-HINT (file):
//   - Directed graphs: NeighborIDs are out-neighbours only.
//   - Copies duplicate attribute maps; the source and the copy never alias.

package core

import (
	"fmt"
	"sort"
)

// NeighborIDs returns the ids adjacent to v, ascending.
//
// Neighborhood policy:
//   - Directed: out-neighbours (edges v→u).
//   - Undirected: every incident vertex; a self-loop lists v once.
//
// Errors:
//   - ErrVertexNotFound: v outside 1..n.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	out := make([]int, 0, len(g.adjacency[v-1]))
	var u int
	for u = range g.adjacency[v-1] {
		out = append(out, u)
	}
	sort.Ints(out)

	return out, nil
}

// CloneEmpty returns a new Graph with identical configuration, vertices and
// static attributes, but no edges.
//
// Complexity: O(n + total attributes).
func (g *Graph) CloneEmpty() *Graph {
	// AI-HINT: No edges are copied; vertices + flags + attributes copied.
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(len(g.adjacency), g.options()...)
	for i, attrs := range g.attrs {
		clone.attrs[i] = copyAttrs(attrs)
	}

	return clone
}

// VertexSubgraph returns a new edgeless Graph holding only the vertices in
// keep, renumbered densely: keep[k] becomes vertex k+1. Static attributes
// move with their vertex. Configuration flags are preserved.
//
// Inputs:
//   - keep: distinct vertex ids of g, in the order that defines the new numbering.
//
// Errors:
//   - ErrVertexNotFound: an id in keep is outside 1..n.
//
// Complexity: O(len(keep) + copied attributes).
//
// AI-Hints:
//   - Pass keep ascending to obtain an order-preserving re-index.
func (g *Graph) VertexSubgraph(keep []int) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph(len(keep), g.options()...)
	for k, v := range keep {
		if !g.hasVertex(v) {
			return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
		}
		out.attrs[k] = copyAttrs(g.attrs[v-1])
	}

	return out, nil
}
