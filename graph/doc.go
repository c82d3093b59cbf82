// Package graph declares the capability surface shared by every graphrep
// representation, so callers and tests can stay representation-agnostic.
//
// What:
//
//   - Graph: the common interface: vertex/edge lifecycle, degree and
//     neighbor queries, membership tests, and depth-first reachability.
//   - EdgeOption / WithDirected: per-call directedness for AddEdge and
//     RemoveEdge. Directedness is a property of each call, never of the
//     graph; a graph may freely mix directed and mirrored pairs.
//
// Why:
//   - Swap edgelist and adjmatrix storages behind one variable
//   - Drive both representations through one script and compare answers
//   - Keep traversal (dfs) independent of how adjacency is stored
//
// Quiet defaults (binding contract, not an omission):
//
//   - Queries on a vertex never added answer zero / empty / false.
//   - Duplicate inserts are silent no-ops.
//   - Removing an absent vertex or edge is a silent no-op.
//
// Nothing on this surface returns an error; there is nothing to fail.
package graph
