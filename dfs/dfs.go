// Package dfs - stack-based depth-first reachability and traversal.
package dfs

import (
	lls "github.com/emirpasic/gods/stacks/linkedliststack"

	"github.com/katalvlaran/graphrep/graph"
)

// Reachable reports whether any directed path leads from src to dest in g.
// It returns false immediately when either vertex is unknown; a vertex
// always reaches itself.
//
// The traversal pushes every neighbor of a newly visited vertex and
// filters revisits at pop time. Duplicate stack entries are expected and
// harmless; the visited check on pop keeps the total work O(V+E).
func Reachable(g graph.Graph, src, dest string) bool {
	if !g.HasVertex(src) || !g.HasVertex(dest) {
		return false
	}

	stack := lls.New()
	stack.Push(src)
	visited := make(map[string]bool, g.VertexCount())

	for !stack.Empty() {
		popped, _ := stack.Pop()
		node := popped.(string)

		if visited[node] {
			continue
		}
		visited[node] = true

		if node == dest {
			return true
		}

		for _, nb := range g.Neighbors(node) {
			if !visited[nb] {
				stack.Push(nb)
			}
		}
	}

	return false
}

// Walk calls visit exactly once for every vertex reachable from src, in
// depth-first discovery order (neighbors explored last-pushed first).
// No-op when src is unknown.
//
// Same stack discipline as Reachable: unvisited neighbors are pushed
// eagerly and deduplicated at pop time.
func Walk(g graph.Graph, src string, visit func(id string)) {
	if !g.HasVertex(src) {
		return
	}

	stack := lls.New()
	stack.Push(src)
	visited := make(map[string]bool, g.VertexCount())

	for !stack.Empty() {
		popped, _ := stack.Pop()
		node := popped.(string)

		if visited[node] {
			continue
		}
		visited[node] = true

		visit(node)

		for _, nb := range g.Neighbors(node) {
			if !visited[nb] {
				stack.Push(nb)
			}
		}
	}
}
