// Package adjmatrix implements graph.Graph on top of an adjacency-matrix
// storage: an ordered vertex list plus a square 0/1 matrix.
//
// Storage model:
//
//   - vertices: identifiers in insertion order; position in the list is
//     the row/column index of the matrix, with an id→index map for O(1)
//     resolution alongside the reverse slice lookup.
//   - matrix: always |V|×|V|; matrix[i][j] = 1 iff the pair
//     vertices[i]→vertices[j] is stored. An undirected edge sets both
//     matrix[i][j] and matrix[j][i]; WithDirected(true) sets only the
//     forward cell.
//   - Removing a vertex at index k drops row k, column k and the list
//     entry in one atomic update, so dimensions always equal the vertex
//     count and indices stay aligned.
//
// Neighbor listing follows vertex index order (= insertion order), not
// edge insertion order; edge set/clear/test are O(1) after index lookup,
// degree is an O(V) row or column sum.
package adjmatrix
