// Package edgelist implements graph.Graph on top of an edge-list storage:
// an unordered vertex set plus an ordered sequence of (src,dest) pairs.
//
// Storage model:
//
//   - vertices: a hash set of identifiers; a vertex appears at most once.
//   - edges: pairs in first-insertion order; a pair appears at most once,
//     and every endpoint referenced by a pair is present in the vertex set
//     (AddEdge auto-registers its endpoints).
//   - An undirected edge is stored as the two mirrored pairs (src,dest)
//     and (dest,src); WithDirected(true) stores only the forward pair.
//
// Complexity is what the textbook promises for this representation:
// membership and degree scans are O(E), vertex insertion is O(1).
// Neighbor listing follows edge insertion order; Vertices() enumerates
// the set in lexicographic order for reproducible output.
package edgelist
