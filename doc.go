// Package graphrep is a small in-memory library for building and querying
// graphs through two classic textbook representations.
//
// 🚀 What is graphrep?
//
//	A pure-Go library exposing one capability surface over two storages:
//		• edgelist/  — vertex set + ordered sequence of (src,dest) pairs
//		• adjmatrix/ — ordered vertex list + square 0/1 adjacency matrix
//		• dfs/       — iterative depth-first reachability shared by both
//		• render/    — deterministic console dumps of structure & degrees
//
// ✨ Why choose graphrep?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Quiet by contract – unknown vertices answer zero/empty/false,
//     duplicate inserts and absent removals are silent no-ops
//   - Pure Go – no cgo, no network, no persistence
//   - Representation-agnostic – program against graph.Graph and swap
//     storages freely; results agree query-for-query
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four undirected edges,
//	stored either as eight mirrored pairs (edgelist) or as a symmetric
//	4×4 matrix (adjmatrix).
//
// Dive into the per-package docs and examples/ for runnable walkthroughs.
//
//	go get github.com/katalvlaran/graphrep
package graphrep
