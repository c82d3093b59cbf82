// Package edgelist - vertex lifecycle and enumeration for the edge-list
// representation. Edge lifecycle and queries live in edges.go.
package edgelist

import (
	"sort"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/graphrep/graph"
)

// Edge is one stored directed pair. An undirected edge occupies two
// mirrored Edge values in the sequence.
type Edge struct {
	// Src is the source vertex ID.
	Src string

	// Dest is the destination vertex ID.
	Dest string
}

// Graph is the edge-list representation.
//
// The zero value is not usable; construct with New. All access goes
// through the methods below: internal storage is never exposed directly,
// and accessor slices are copies.
type Graph struct {
	vertices *hashset.Set // vertex IDs, unordered, unique
	edges    []Edge       // directed pairs, first-insertion order, unique
}

// Graph satisfies the shared capability surface.
var _ graph.Graph = (*Graph)(nil)

// New creates an empty edge-list graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{vertices: hashset.New()}
}

// AddVertex inserts id into the vertex set if absent (idempotent).
// Complexity: O(1).
func (g *Graph) AddVertex(id string) {
	g.vertices.Add(id)
}

// HasVertex reports whether id is present.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	return g.vertices.Contains(id)
}

// RemoveVertex deletes id and filters out every pair touching it.
// No-op if id is absent.
// Complexity: O(E).
func (g *Graph) RemoveVertex(id string) {
	if !g.vertices.Contains(id) {
		return
	}
	g.vertices.Remove(id)

	// Compact the pair sequence in place, preserving insertion order.
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.Src != id && e.Dest != id {
			kept = append(kept, e)
		}
	}
	g.edges = kept
}

// Vertices returns the vertex IDs sorted lexicographically ascending.
// The slice is a copy; mutating it does not touch the graph.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	values := g.vertices.Values()
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.(string))
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return g.vertices.Size()
}

// EdgeCount returns the number of stored directed pairs; each undirected
// edge contributes both mirrored halves.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Edges returns a copy of the pair sequence in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
