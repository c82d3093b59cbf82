// Package render - text dumps of graph structure, degrees, edges, matrix.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/graphrep/adjmatrix"
	"github.com/katalvlaran/graphrep/edgelist"
	"github.com/katalvlaran/graphrep/graph"
)

const emptyGraph = "empty graph"

// sortedVertices returns g's vertices in lexicographic order, whatever
// the representation's native enumeration order is.
func sortedVertices(g graph.Graph) []string {
	ids := g.Vertices()
	sort.Strings(ids)

	return ids
}

// Structure writes one "vertex -> neighbors" line per vertex, vertices in
// lexicographic order, neighbors in the representation's native order.
func Structure(w io.Writer, g graph.Graph) {
	fmt.Fprintln(w, "=== Graph Structure ===")
	ids := sortedVertices(g)
	if len(ids) == 0 {
		fmt.Fprintln(w, emptyGraph)

		return
	}

	for _, id := range ids {
		nbs := g.Neighbors(id)
		if len(nbs) == 0 {
			fmt.Fprintf(w, "%s -> (no neighbors)\n", id)
			continue
		}
		fmt.Fprintf(w, "%s -> %s\n", id, strings.Join(nbs, ", "))
	}
}

// Degrees writes the undirected degree of every vertex, vertices in
// lexicographic order.
func Degrees(w io.Writer, g graph.Graph) {
	fmt.Fprintln(w, "=== Vertex Degrees ===")
	ids := sortedVertices(g)
	if len(ids) == 0 {
		fmt.Fprintln(w, emptyGraph)

		return
	}

	for _, id := range ids {
		fmt.Fprintf(w, "vertex %q: degree = %d\n", id, g.Degree(id))
	}
}

// DegreesInOut writes the directed in/out degree of every vertex,
// vertices in lexicographic order.
func DegreesInOut(w io.Writer, g graph.Graph) {
	fmt.Fprintln(w, "=== Vertex Degrees ===")
	ids := sortedVertices(g)
	if len(ids) == 0 {
		fmt.Fprintln(w, emptyGraph)

		return
	}

	for _, id := range ids {
		in, out := g.DegreeInOut(id)
		fmt.Fprintf(w, "vertex %q: in = %d, out = %d\n", id, in, out)
	}
}

// EdgeList writes the stored pair sequence of an edge-list graph, one
// numbered "src -> dest" line per pair, in insertion order.
func EdgeList(w io.Writer, g *edgelist.Graph) {
	fmt.Fprintln(w, "=== Edge List ===")
	edges := g.Edges()
	if len(edges) == 0 {
		fmt.Fprintln(w, "no edges")

		return
	}

	fmt.Fprintf(w, "total edges: %d\n", len(edges))
	for i, e := range edges {
		fmt.Fprintf(w, "%d. %s -> %s\n", i+1, e.Src, e.Dest)
	}
}

// Matrix writes the 0/1 grid of an adjacency-matrix graph with row and
// column headers, both in vertex index order (= insertion order).
func Matrix(w io.Writer, g *adjmatrix.Graph) {
	fmt.Fprintln(w, "=== Adjacency Matrix ===")
	ids := g.Vertices()
	if len(ids) == 0 {
		fmt.Fprintln(w, emptyGraph)

		return
	}

	mat := g.Matrix()

	// Column header.
	fmt.Fprint(w, "    ")
	for _, id := range ids {
		fmt.Fprintf(w, "%3s", id)
	}
	fmt.Fprintln(w)

	for i, id := range ids {
		fmt.Fprintf(w, "%3s ", id)
		for j := range ids {
			fmt.Fprintf(w, "%3d", mat[i][j])
		}
		fmt.Fprintln(w)
	}
}
