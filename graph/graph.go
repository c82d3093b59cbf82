// Package graph defines the representation-agnostic Graph interface and
// the per-call EdgeOption used by AddEdge/RemoveEdge.
package graph

// EdgeSpec carries the per-call flags resolved from EdgeOptions.
// The zero value describes an undirected edge (stored as a mirrored pair).
type EdgeSpec struct {
	// Directed marks the edge usable only from src to dest.
	Directed bool
}

// EdgeOption configures a single AddEdge or RemoveEdge call.
type EdgeOption func(*EdgeSpec)

// WithDirected sets the directedness of this one edge operation
// (true = one-way src→dest, false = mirrored pair; false is the default).
func WithDirected(directed bool) EdgeOption {
	return func(s *EdgeSpec) { s.Directed = directed }
}

// ResolveEdgeSpec folds opts over the zero EdgeSpec.
// Representations call this at the top of AddEdge/RemoveEdge.
// Complexity: O(len(opts)).
func ResolveEdgeSpec(opts ...EdgeOption) EdgeSpec {
	var spec EdgeSpec
	for _, opt := range opts {
		opt(&spec)
	}

	return spec
}

// Graph is the operation surface shared by every representation.
//
// All mutators follow the quiet-default contract: duplicate inserts and
// absent removals are silent no-ops, and no method signals failure.
// Degree/DegreeInOut, Neighbors, HasEdge and HasPath answer
// zero/empty/false for vertices that were never added.
type Graph interface {
	// AddVertex inserts id if absent (idempotent).
	AddVertex(id string)

	// RemoveVertex deletes id and every edge touching it; no-op if absent.
	RemoveVertex(id string)

	// HasVertex reports whether id is present.
	HasVertex(id string) bool

	// AddEdge connects src→dest, auto-creating missing endpoints.
	// Without WithDirected(true) the mirror dest→src is stored as well.
	// Re-adding an existing pair is a no-op.
	AddEdge(src, dest string, opts ...EdgeOption)

	// RemoveEdge disconnects src→dest if present; without
	// WithDirected(true) the mirror dest→src is removed as well.
	RemoveEdge(src, dest string, opts ...EdgeOption)

	// HasEdge reports whether the exact pair src→dest is stored.
	HasEdge(src, dest string) bool

	// Degree returns the undirected degree of id: the count of stored
	// pairs leaving id. Mirrored undirected storage makes this the total
	// degree. Unknown id ⇒ 0.
	Degree(id string) int

	// DegreeInOut returns the directed reading of id's degree:
	// in = pairs arriving at id, out = pairs leaving id.
	// Unknown id ⇒ (0, 0).
	DegreeInOut(id string) (in, out int)

	// Neighbors lists the destinations of every stored pair leaving id,
	// in the representation's native order (edgelist: edge insertion
	// order; adjmatrix: vertex index order). Unknown id ⇒ empty.
	Neighbors(id string) []string

	// HasPath reports depth-first reachability from src to dest.
	// False immediately if either vertex is unknown.
	HasPath(src, dest string) bool

	// Vertices returns a copy of the vertex identifiers in the
	// representation's enumeration order (edgelist: lexicographic;
	// adjmatrix: insertion order).
	Vertices() []string

	// VertexCount returns the number of vertices.
	VertexCount() int

	// EdgeCount returns the number of stored directed pairs; each
	// undirected edge contributes its two mirrored halves.
	EdgeCount() int
}
