// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc.
// Concurrency:
//   - Mutations under write lock, queries under read lock.
// AI-HINT (file):
//   - Undirected graphs mirror adjacency, so HasEdge works both ways and Edges() reports From ≤ To.
//   - A second AddEdge on the same pair returns ErrEdgeExists; check HasEdge first for "ensure" semantics.

package core

import (
	"fmt"
	"sort"
)

// AddEdge creates the edge from→to.
//
// Steps:
//  1. Validate endpoints (ErrVertexNotFound) and loops (ErrLoopNotAllowed).
//  2. Lock, reject duplicates (ErrEdgeExists).
//  3. Link adjacency[from][to]; mirror adjacency[to][from] when undirected.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertex(from) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if !g.hasVertex(to) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}
	if _, ok := g.adjacency[from-1][to]; ok {
		return fmt.Errorf("%w: (%d, %d)", ErrEdgeExists, from, to)
	}

	g.adjacency[from-1][to] = struct{}{}
	if !g.directed {
		g.adjacency[to-1][from] = struct{}{}
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether the edge from→to exists.
// For undirected graphs the order of endpoints is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(from) || !g.hasVertex(to) {
		return false
	}
	_, ok := g.adjacency[from-1][to]

	return ok
}

// Edges returns all edges sorted by (From, To) asc.
// Undirected edges appear once, oriented From ≤ To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	// AI-HINT: Deterministic ordering; rely on it for golden tests.
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	var to int
	for i, bucket := range g.adjacency {
		from := i + 1
		for to = range bucket {
			if !g.directed && to < from {
				continue
			}
			out = append(out, Edge{From: from, To: to})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
