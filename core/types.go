// Package core defines the static Graph used as the backing container of
// dynamic networks and as the result type of snapshot extraction.
//
// Vertices are dense integers 1..n. Each vertex carries a static attribute
// map (name → value). Edges are simple: at most one edge per ordered pair in
// directed graphs, per unordered pair in undirected graphs.
//
// All methods use a single sync.RWMutex internally, so a Graph can be read
// and mutated from several goroutines.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound  - vertex id outside 1..n.
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
//	ErrEdgeExists      - edge already present between the endpoints.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex id outside 1..n.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeExists indicates a second edge between the same endpoints.
	ErrEdgeExists = errors.New("core: edge already exists")
)

// Edge is a connection between two vertices.
//
// For undirected graphs Edges() reports every edge once with From ≤ To.
type Edge struct {
	// From is the source vertex id.
	From int

	// To is the destination vertex id.
	To int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the graph
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a static in-memory graph over vertices 1..n.
//
// attrs[v-1] holds the static attributes of vertex v; adjacency[v-1] holds
// the out-neighbours of v (mirrored for undirected graphs).
type Graph struct {
	mu sync.RWMutex // guards everything below

	// Configuration flags
	directed   bool // edge orientation
	allowLoops bool // allow self-loops

	// Storage
	attrs     []map[string]any
	adjacency []map[int]struct{}
	edgeCount int
}

// NewGraph creates a graph with vertices 1..n and no edges.
// By default the graph is undirected without loops. A negative n is treated as zero.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		attrs:     make([]map[string]any, n),
		adjacency: make([]map[int]struct{}, n),
	}
	for i := 0; i < n; i++ {
		g.attrs[i] = make(map[string]any)
		g.adjacency[i] = make(map[int]struct{})
	}
	// Apply options
	var opt GraphOption
	for _, opt = range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// options rebuilds the option list reproducing g's configuration.
// Caller holds g.mu.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}

// hasVertex reports whether v is in 1..n. Caller holds g.mu.
func (g *Graph) hasVertex(v int) bool {
	return v >= 1 && v <= len(g.adjacency)
}
