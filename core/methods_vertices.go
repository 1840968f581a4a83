// File: methods_vertices.go
// Role: Vertex lifecycle, queries and the static attribute store.
//
// Determinism:
//   - Vertices() returns ids ascending.
//
// Concurrency:
//   - All state protected by g.mu.
//
// AI-Hints (file):
//   - Vertices are never removed; ids stay dense (1..n).
//   - VertexAttrs returns a copy; mutate through SetVertexAttr only.
package core

import "fmt"

// AddVertex appends a new vertex and returns its id (n+1).
//
// Implementation:
//   - Stage 1: Acquire write lock.
//   - Stage 2: Append empty attribute and adjacency buckets.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.attrs = append(g.attrs, make(map[string]any))
	g.adjacency = append(g.adjacency, make(map[int]struct{}))

	return len(g.adjacency)
}

// HasVertex reports whether v is a vertex id of the graph (1 ≤ v ≤ n).
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertex(v)
}

// VertexCount returns n.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Vertices returns all vertex ids ascending (1..n).
//
// Complexity:
//   - Time O(n), Space O(n).
//
// AI-Hints:
//   - Prefer VertexCount() when only the size is needed.
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, len(g.adjacency))
	for i := range ids {
		ids[i] = i + 1
	}

	return ids
}

// SetVertexAttr stores a static (time-invariant) attribute on vertex v,
// replacing any previous value under the same name.
//
// Errors:
//   - ErrVertexNotFound: v outside 1..n.
//
// Complexity: O(1).
func (g *Graph) SetVertexAttr(v int, name string, value any) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertex(v) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	g.attrs[v-1][name] = value

	return nil
}

// VertexAttr returns the static attribute name of vertex v.
// ok is false when v does not exist or carries no such attribute.
func (g *Graph) VertexAttr(v int, name string) (any, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(v) {
		return nil, false
	}
	value, ok := g.attrs[v-1][name]

	return value, ok
}

// VertexAttrs returns a copy of all static attributes of vertex v.
//
// Errors:
//   - ErrVertexNotFound: v outside 1..n.
//
// Complexity: O(a) where a is the number of attributes on v.
func (g *Graph) VertexAttrs(v int) (map[string]any, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	return copyAttrs(g.attrs[v-1]), nil
}

// copyAttrs returns a shallow copy of an attribute map.
func copyAttrs(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	var (
		k string
		v any
	)
	for k, v = range src {
		out[k] = v
	}

	return out
}
