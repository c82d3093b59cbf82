// Package edgelist - edge lifecycle and queries over the pair sequence.
package edgelist

import (
	"github.com/katalvlaran/graphrep/dfs"
	"github.com/katalvlaran/graphrep/graph"
)

// hasPair reports whether the exact pair src→dest is stored.
// Complexity: O(E).
func (g *Graph) hasPair(src, dest string) bool {
	for _, e := range g.edges {
		if e.Src == src && e.Dest == dest {
			return true
		}
	}

	return false
}

// dropPair removes the exact pair src→dest if stored, keeping order.
// Complexity: O(E).
func (g *Graph) dropPair(src, dest string) {
	for i, e := range g.edges {
		if e.Src == src && e.Dest == dest {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)

			return
		}
	}
}

// AddEdge appends src→dest, auto-creating missing endpoints. Without
// WithDirected(true) the mirror dest→src is appended as well. Pairs
// already present are left alone (silent no-op).
// Complexity: O(E).
func (g *Graph) AddEdge(src, dest string, opts ...graph.EdgeOption) {
	spec := graph.ResolveEdgeSpec(opts...)

	// Edges auto-register their endpoints.
	g.AddVertex(src)
	g.AddVertex(dest)

	if !g.hasPair(src, dest) {
		g.edges = append(g.edges, Edge{Src: src, Dest: dest})
	}
	if !spec.Directed && !g.hasPair(dest, src) {
		g.edges = append(g.edges, Edge{Src: dest, Dest: src})
	}
}

// RemoveEdge deletes src→dest if present; without WithDirected(true) the
// mirror dest→src is deleted as well. Absent pairs are a silent no-op.
// Complexity: O(E).
func (g *Graph) RemoveEdge(src, dest string, opts ...graph.EdgeOption) {
	spec := graph.ResolveEdgeSpec(opts...)

	g.dropPair(src, dest)
	if !spec.Directed {
		g.dropPair(dest, src)
	}
}

// HasEdge reports whether the exact pair src→dest is stored. Pairs only
// ever reference registered vertices, so an unknown endpoint answers false.
// Complexity: O(E).
func (g *Graph) HasEdge(src, dest string) bool {
	return g.hasPair(src, dest)
}

// Degree returns the undirected degree of id: the count of pairs leaving
// id. Mirrored storage makes the out-count the total degree.
// Unknown id ⇒ 0.
// Complexity: O(E).
func (g *Graph) Degree(id string) int {
	if !g.HasVertex(id) {
		return 0
	}

	degree := 0
	for _, e := range g.edges {
		if e.Src == id {
			degree++
		}
	}

	return degree
}

// DegreeInOut returns the directed degree of id: in = pairs arriving at
// id, out = pairs leaving id. Unknown id ⇒ (0, 0).
// Complexity: O(E).
func (g *Graph) DegreeInOut(id string) (in, out int) {
	if !g.HasVertex(id) {
		return 0, 0
	}

	for _, e := range g.edges {
		if e.Dest == id {
			in++
		}
		if e.Src == id {
			out++
		}
	}

	return in, out
}

// Neighbors lists the destination of every pair leaving id, in edge
// insertion order. Unknown id ⇒ nil.
// Complexity: O(E).
func (g *Graph) Neighbors(id string) []string {
	if !g.HasVertex(id) {
		return nil
	}

	out := make([]string, 0)
	for _, e := range g.edges {
		if e.Src == id {
			out = append(out, e.Dest)
		}
	}

	return out
}

// HasPath reports depth-first reachability from src to dest.
// Complexity: O(V+E) amortized.
func (g *Graph) HasPath(src, dest string) bool {
	return dfs.Reachable(g, src, dest)
}
