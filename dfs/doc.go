// Package dfs implements iterative depth-first traversal over any
// graph.Graph, independent of how adjacency is stored.
//
// What:
//
//   - Reachable(g, src, dest): does any directed path lead from src to
//     dest? False immediately when either vertex is unknown.
//   - Walk(g, src, visit): call visit once per vertex reachable from src,
//     in depth-first discovery order.
//
// Both functions share one stack discipline: an explicit linked-list
// stack (no recursion, so depth is never a limit), neighbors pushed in
// the representation's native order, and visited filtering applied at
// pop time only. Pushing a vertex that is already on the stack is
// allowed and intentional: duplicates are skipped when popped, which
// keeps the traversal O(V+E) amortized without a pre-push membership
// check.
//
// Complexity:
//
//   - Time:   O(V + E) amortized; each edge pushes at most one stack entry.
//   - Memory: O(V + E) worst case for the stack plus O(V) for the visited set.
package dfs
