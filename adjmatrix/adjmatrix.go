// Package adjmatrix - vertex lifecycle and enumeration for the
// adjacency-matrix representation. Edge lifecycle and queries live in
// edges.go.
package adjmatrix

import (
	"github.com/katalvlaran/graphrep/graph"
)

// Graph is the adjacency-matrix representation.
//
// The zero value is not usable; construct with New. All access goes
// through the methods below: internal storage is never exposed directly,
// and accessor slices are copies.
type Graph struct {
	ids   []string       // vertex IDs in insertion order; position = matrix index
	index map[string]int // vertex ID → row/col index
	mat   [][]int        // square 0/1 adjacency matrix, size len(ids)
}

// Graph satisfies the shared capability surface.
var _ graph.Graph = (*Graph)(nil)

// New creates an empty adjacency-matrix graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{index: make(map[string]int)}
}

// AddVertex appends id to the vertex list if absent (idempotent): a zero
// column is appended to every existing row and a new all-zero row is
// appended, keeping the matrix square.
// Complexity: O(V).
func (g *Graph) AddVertex(id string) {
	if _, exists := g.index[id]; exists {
		return
	}

	g.index[id] = len(g.ids)
	g.ids = append(g.ids, id)

	for i := range g.mat {
		g.mat[i] = append(g.mat[i], 0)
	}
	g.mat = append(g.mat, make([]int, len(g.ids)))
}

// HasVertex reports whether id is present.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]

	return ok
}

// RemoveVertex deletes id, its matrix row and its matrix column in one
// atomic update, then realigns the indices of the vertices that followed
// it. No-op if id is absent.
// Complexity: O(V²).
func (g *Graph) RemoveVertex(id string) {
	k, ok := g.index[id]
	if !ok {
		return
	}

	// Drop the list entry, row k and column k together so dimensions
	// never disagree with the vertex count.
	g.ids = append(g.ids[:k], g.ids[k+1:]...)
	g.mat = append(g.mat[:k], g.mat[k+1:]...)
	for i := range g.mat {
		g.mat[i] = append(g.mat[i][:k], g.mat[i][k+1:]...)
	}

	delete(g.index, id)
	for i := k; i < len(g.ids); i++ {
		g.index[g.ids[i]] = i
	}
}

// Vertices returns the vertex IDs in insertion order (= index order).
// The slice is a copy; mutating it does not touch the graph.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// VertexCount returns the number of vertices (= matrix dimension).
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.ids)
}

// EdgeCount returns the number of set matrix cells; each undirected edge
// contributes both mirrored cells.
// Complexity: O(V²).
func (g *Graph) EdgeCount() int {
	count := 0
	for i := range g.mat {
		for j := range g.mat[i] {
			count += g.mat[i][j]
		}
	}

	return count
}

// Matrix returns a deep copy of the 0/1 adjacency matrix, rows and
// columns in vertex index order.
// Complexity: O(V²).
func (g *Graph) Matrix() [][]int {
	out := make([][]int, len(g.mat))
	for i := range g.mat {
		out[i] = make([]int, len(g.mat[i]))
		copy(out[i], g.mat[i])
	}

	return out
}
