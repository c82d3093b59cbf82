// Package render writes deterministic, human-readable text dumps of a
// graph to an io.Writer: structure (vertex → neighbors), degree tables,
// the raw edge sequence of an edge-list graph, and the 0/1 grid of an
// adjacency-matrix graph.
//
// Structure and degree views enumerate vertices in lexicographic order so
// output is reproducible regardless of representation; the edge and
// matrix views follow the representation's own storage order (edge
// insertion order, vertex index order). Rendering never mutates the
// graph and is purely presentational; callers that want other formats
// can build them from the same accessors.
package render
