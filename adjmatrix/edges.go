// Package adjmatrix - edge lifecycle and queries over the matrix cells.
package adjmatrix

import (
	"github.com/katalvlaran/graphrep/dfs"
	"github.com/katalvlaran/graphrep/graph"
)

// AddEdge sets the cell src→dest to 1, auto-creating missing endpoints.
// Without WithDirected(true) the mirror cell dest→src is set as well.
// Setting a cell already at 1 is a silent no-op.
// Complexity: O(V) (vertex auto-creation), O(1) after index lookup.
func (g *Graph) AddEdge(src, dest string, opts ...graph.EdgeOption) {
	spec := graph.ResolveEdgeSpec(opts...)

	// Edges auto-register their endpoints.
	g.AddVertex(src)
	g.AddVertex(dest)

	i, j := g.index[src], g.index[dest]
	g.mat[i][j] = 1
	if !spec.Directed {
		g.mat[j][i] = 1
	}
}

// RemoveEdge clears the cell src→dest; without WithDirected(true) the
// mirror cell dest→src is cleared as well. Unknown endpoints or an
// already-clear cell are a silent no-op.
// Complexity: O(1).
func (g *Graph) RemoveEdge(src, dest string, opts ...graph.EdgeOption) {
	spec := graph.ResolveEdgeSpec(opts...)

	i, iOK := g.index[src]
	j, jOK := g.index[dest]
	if !iOK || !jOK {
		return
	}

	g.mat[i][j] = 0
	if !spec.Directed {
		g.mat[j][i] = 0
	}
}

// HasEdge reports whether the cell src→dest is set; false if either
// vertex is unknown.
// Complexity: O(1).
func (g *Graph) HasEdge(src, dest string) bool {
	i, iOK := g.index[src]
	j, jOK := g.index[dest]
	if !iOK || !jOK {
		return false
	}

	return g.mat[i][j] == 1
}

// Degree returns the undirected degree of id: the sum of its matrix row.
// Mirrored storage makes the row sum the total degree. Unknown id ⇒ 0.
// Complexity: O(V).
func (g *Graph) Degree(id string) int {
	i, ok := g.index[id]
	if !ok {
		return 0
	}

	degree := 0
	for _, cell := range g.mat[i] {
		degree += cell
	}

	return degree
}

// DegreeInOut returns the directed degree of id: in = column sum,
// out = row sum. Unknown id ⇒ (0, 0).
// Complexity: O(V).
func (g *Graph) DegreeInOut(id string) (in, out int) {
	i, ok := g.index[id]
	if !ok {
		return 0, 0
	}

	for j := range g.ids {
		in += g.mat[j][i]
		out += g.mat[i][j]
	}

	return in, out
}

// Neighbors lists the vertices whose cell in id's row is set, in vertex
// index order (= insertion order). Unknown id ⇒ nil.
// Complexity: O(V).
func (g *Graph) Neighbors(id string) []string {
	i, ok := g.index[id]
	if !ok {
		return nil
	}

	out := make([]string, 0)
	for j, cell := range g.mat[i] {
		if cell == 1 {
			out = append(out, g.ids[j])
		}
	}

	return out
}

// HasPath reports depth-first reachability from src to dest.
// Complexity: O(V+E) amortized.
func (g *Graph) HasPath(src, dest string) bool {
	return dfs.Reachable(g, src, dest)
}
