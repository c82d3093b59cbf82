package adjmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphrep/adjmatrix"
	"github.com/katalvlaran/graphrep/graph"
)

// buildSample creates the shared undirected scenario:
// A–B, A–C, B–D, C–D, D–E, E–F plus isolated vertex G.
func buildSample() *adjmatrix.Graph {
	g := adjmatrix.New()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "D")
	g.AddEdge("C", "D")
	g.AddEdge("D", "E")
	g.AddEdge("E", "F")
	g.AddVertex("G")

	return g
}

// requireSquare asserts the matrix invariant: dimensions equal the
// vertex count on every axis.
func requireSquare(t *testing.T, g *adjmatrix.Graph) {
	t.Helper()
	n := g.VertexCount()
	mat := g.Matrix()
	require.Len(t, mat, n)
	for i := range mat {
		require.Len(t, mat[i], n)
	}
}

func TestGraph_Empty(t *testing.T) {
	g := adjmatrix.New()
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Vertices())
	assert.Empty(t, g.Matrix())
}

func TestGraph_AddVertex_GrowsSquareMatrix(t *testing.T) {
	g := adjmatrix.New()
	for _, id := range []string{"A", "B", "C"} {
		g.AddVertex(id)
		requireSquare(t, g)
	}

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

func TestGraph_AddVertex_Idempotent(t *testing.T) {
	g := adjmatrix.New()
	g.AddVertex("A")
	g.AddVertex("A")

	assert.Equal(t, 1, g.VertexCount())
	requireSquare(t, g)
}

func TestGraph_UnknownVertex_QuietDefaults(t *testing.T) {
	g := buildSample()

	assert.False(t, g.HasVertex("Z"))
	assert.Zero(t, g.Degree("Z"))
	in, out := g.DegreeInOut("Z")
	assert.Zero(t, in)
	assert.Zero(t, out)
	assert.Empty(t, g.Neighbors("Z"))
	assert.False(t, g.HasEdge("Z", "A"))
	assert.False(t, g.HasEdge("A", "Z"))
	assert.False(t, g.HasPath("Z", "A"))
	assert.False(t, g.HasPath("A", "Z"))
}

func TestGraph_AddEdge_UndirectedSymmetry(t *testing.T) {
	g := adjmatrix.New()
	g.AddEdge("A", "B")

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))

	mat := g.Matrix()
	assert.Equal(t, mat[0][1], mat[1][0])

	g.RemoveEdge("A", "B")
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
}

func TestGraph_AddEdge_DirectedAsymmetry(t *testing.T) {
	g := adjmatrix.New()
	g.AddEdge("A", "B", graph.WithDirected(true))

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_AddEdge_DuplicateIsNoOp(t *testing.T) {
	g := adjmatrix.New()
	g.AddEdge("A", "B")
	g.AddEdge("A", "B")

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 2, g.VertexCount())
}

func TestGraph_RemoveEdge_DirectedKeepsMirror(t *testing.T) {
	g := adjmatrix.New()
	g.AddEdge("A", "B")
	g.RemoveEdge("A", "B", graph.WithDirected(true))

	assert.False(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
}

func TestGraph_RemoveEdge_AbsentIsNoOp(t *testing.T) {
	g := buildSample()
	before := g.EdgeCount()

	g.RemoveEdge("A", "F")
	g.RemoveEdge("Y", "Z")
	assert.Equal(t, before, g.EdgeCount())
}

func TestGraph_RemoveVertex_ShrinksAndRealigns(t *testing.T) {
	g := adjmatrix.New()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("A", "C")

	// Remove the middle vertex: row 1 and column 1 disappear together
	// and the A–C edge must survive the index shift.
	g.RemoveVertex("B")
	requireSquare(t, g)

	assert.Equal(t, []string{"A", "C"}, g.Vertices())
	assert.True(t, g.HasEdge("A", "C"))
	assert.True(t, g.HasEdge("C", "A"))
	assert.Equal(t, 1, g.Degree("A"))
}

func TestGraph_RemoveVertex_CascadesEdges(t *testing.T) {
	g := buildSample()
	g.RemoveVertex("D")
	requireSquare(t, g)

	assert.False(t, g.HasVertex("D"))
	for _, other := range g.Vertices() {
		assert.False(t, g.HasEdge("D", other))
		assert.False(t, g.HasEdge(other, "D"))
		assert.NotContains(t, g.Neighbors(other), "D")
	}
}

func TestGraph_RemoveVertex_AbsentIsNoOp(t *testing.T) {
	g := buildSample()
	vertices, edges := g.VertexCount(), g.EdgeCount()

	g.RemoveVertex("Z")
	assert.Equal(t, vertices, g.VertexCount())
	assert.Equal(t, edges, g.EdgeCount())
}

func TestGraph_Degree_Undirected(t *testing.T) {
	g := buildSample()

	assert.Equal(t, 2, g.Degree("A"))
	assert.Equal(t, 3, g.Degree("D"))
	assert.Equal(t, 1, g.Degree("F"))
	assert.Zero(t, g.Degree("G"))
}

func TestGraph_Neighbors_IndexOrder(t *testing.T) {
	g := adjmatrix.New()
	g.AddVertex("B")
	g.AddVertex("C")
	g.AddEdge("A", "C")
	g.AddEdge("A", "B")

	// Insertion order is B, C, A, so A's row is scanned in that order
	// regardless of when the edges were added.
	assert.Equal(t, []string{"B", "C"}, g.Neighbors("A"))
}

func TestGraph_Matrix_DeepCopy(t *testing.T) {
	g := adjmatrix.New()
	g.AddEdge("A", "B")

	mat := g.Matrix()
	mat[0][1] = 0
	assert.True(t, g.HasEdge("A", "B"))
}

func TestGraph_Scenario_UndirectedTeardown(t *testing.T) {
	g := buildSample()

	assert.True(t, g.HasPath("A", "F"))
	assert.False(t, g.HasPath("G", "A"))

	g.RemoveEdge("D", "E")
	assert.False(t, g.HasPath("A", "F"))

	g.RemoveVertex("C")
	assert.False(t, g.HasEdge("A", "C"))
	assert.Equal(t, 1, g.Degree("A"))
}

func TestGraph_Scenario_DirectedCycle(t *testing.T) {
	g := adjmatrix.New()
	g.AddEdge("X", "Y", graph.WithDirected(true))
	g.AddEdge("Y", "Z", graph.WithDirected(true))
	g.AddEdge("Z", "X", graph.WithDirected(true))

	for _, id := range []string{"X", "Y", "Z"} {
		in, out := g.DegreeInOut(id)
		assert.Equal(t, 1, in, "in-degree of %s", id)
		assert.Equal(t, 1, out, "out-degree of %s", id)
	}

	assert.True(t, g.HasPath("X", "Z"))
	assert.True(t, g.HasPath("Z", "Y"))
}
