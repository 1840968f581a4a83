// Package core provides the static, thread-safe in-memory Graph that backs
// a dynamic network and carries extracted snapshots.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Dense integer vertices 1..n (AddVertex appends n+1; vertices are never removed)
//   - Directed vs. undirected edges (WithDirected)
//   - Self-loops on request (WithLoops)
//   - Simple edges: a second edge between the same endpoints → ErrEdgeExists
//   - A static per-vertex attribute store (SetVertexAttr / VertexAttrs)
//   - Constant-time edge membership via per-vertex adjacency sets
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    • Directed graphs store only “from→to”.
//	    • Undirected graphs mirror edges in adjacency[to][from].
//
//	– WithLoops()
//	    Permits self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertices
//	AddVertex() int                        // O(1)
//	HasVertex(v int) bool                  // O(1)
//	VertexCount() int                      // O(1)
//	Vertices() []int                       // O(n), ascending
//
//	// Edges
//	AddEdge(from, to int) error            // O(1)
//	HasEdge(from, to int) bool             // O(1)
//	Edges() []Edge                         // O(E log E), sorted (From, To)
//	EdgeCount() int                        // O(1)
//	NeighborIDs(v int) ([]int, error)      // O(d log d), ascending
//
//	// Static attributes
//	SetVertexAttr(v int, name string, value any) error
//	VertexAttr(v int, name string) (any, bool)
//	VertexAttrs(v int) (map[string]any, error)   // copy
//
//	// Copies
//	CloneEmpty() *Graph                    // vertices + attributes, no edges
//	VertexSubgraph(keep []int) (*Graph, error) // keep[k] → k+1, no edges
//
// Errors:
//
//	ErrVertexNotFound – vertex id outside 1..n
//	ErrLoopNotAllowed – self-loop when loops disabled
//	ErrEdgeExists     – parallel edge
//
// All errors are wrapped with the offending ids; match them with errors.Is.
package core
