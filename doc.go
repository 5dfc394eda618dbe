// Package algolab is an in-memory playground of classic algorithms and
// data structures — each one self-contained, documented, and ready to
// read alongside a textbook.
//
// 🚀 What is algolab?
//
//	A collection of independent teaching packages:
//		• Double-ended priority queue: min-max heap (the star of the show)
//		• Search & ordering: binary search, merge sort
//		• Trees: BST (unique keys) and a counted multiset variant
//		• Tables: open-addressed hash map with linear probing
//		• Sequences: singly linked list, array stack, ring-buffer queue
//		• Graphs: adjacency list + DFS/BFS traversals
//		• Parsing: recursive-descent arithmetic evaluator
//		• Combinatorics: permutations, combinations, subsets
//
// ✨ Why choose algolab?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest invariants – every structure documents and tests its ordering rules
//   - Pure Go – no cgo, no hidden machinery
//   - Independent – packages share nothing; read any one in isolation
//
// Every package is a standalone unit:
//
//	minmaxheap/ — double-ended priority queue with alternating min/max levels
//	search/     — binary search over sorted slices
//	mergesort/  — stable top-down merge sort
//	bst/        — binary search trees (unique & multiset)
//	hashmap/    — open-addressed hash table
//	list/       — singly linked list
//	stack/      — growable array stack
//	queue/      — circular-buffer FIFO
//	graph/      — adjacency list, DFS & BFS
//	exprcalc/   — recursive-descent expression evaluator
//	combin/     — recursive combinatorial enumerators
//
// Quick ASCII example (a min-max heap after six inserts):
//
//	        [3]        ← min level
//	       /   \
//	    [30]   [22]    ← max level
//	    /  \   /
//	  [10] [5][17]     ← min level
//
// Dive into each package's doc.go for the full story, complexity notes,
// and runnable examples.
//
//	go get github.com/katalvlaran/algolab/minmaxheap
package algolab
