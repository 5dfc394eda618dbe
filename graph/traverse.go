// Package graph implements the two traversals.
//
// Steps (shared skeleton):
//
//  1. Validate the start vertex (ErrVertexNotFound).
//  2. Seed the frontier — a stack for DFS, a queue for BFS.
//  3. Loop: take a vertex, skip if already visited (DFS may hold
//     duplicates on its stack), mark, append to Order, invoke OnVisit.
//  4. Offer unvisited neighbors to the frontier. DFS pushes them in
//     reverse insertion order so the leftmost neighbor pops first; BFS
//     records depth and parent the moment a neighbor is discovered.
//
// Time complexity: O(V + E)
// Memory usage:    O(V)
package graph

import "fmt"

// DFS performs an iterative depth-first search on g from start.
// Returns a Result (Order and Visited populated) or an error
// (ErrVertexNotFound, or an OnVisit error wrapped with its vertex).
// Complexity: O(V + E), Memory: O(V).
func DFS(g *Graph, start int, opts *Options) (*Result, error) {
	res := newResult()
	if !g.HasVertex(start) {
		return res, ErrVertexNotFound
	}

	stack := []int{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if res.Visited[v] {
			// A vertex can be stacked twice before its first visit.
			continue
		}
		res.Visited[v] = true
		res.Order = append(res.Order, v)
		if err := visit(opts, v); err != nil {
			return res, err
		}

		// Reverse push keeps visitation in neighbor insertion order.
		neighbors := g.adjacency[v]
		for i := len(neighbors) - 1; i >= 0; i-- {
			if !res.Visited[neighbors[i]] {
				stack = append(stack, neighbors[i])
			}
		}
	}

	return res, nil
}

// BFS performs a breadth-first search on g from start.
// Returns a Result with Order, Visited, Depth, and Parent populated, or an
// error (ErrVertexNotFound, or an OnVisit error wrapped with its vertex).
// Complexity: O(V + E), Memory: O(V).
func BFS(g *Graph, start int, opts *Options) (*Result, error) {
	res := newResult()
	if !g.HasVertex(start) {
		return res, ErrVertexNotFound
	}

	// BFS marks at enqueue time so a vertex enters the frontier once.
	res.Visited[start] = true
	res.Depth[start] = 0
	frontier := []int{start}
	for len(frontier) > 0 {
		v := frontier[0]
		frontier = frontier[1:]
		res.Order = append(res.Order, v)
		if err := visit(opts, v); err != nil {
			return res, err
		}

		for _, n := range g.adjacency[v] {
			if res.Visited[n] {
				continue
			}
			res.Visited[n] = true
			res.Depth[n] = res.Depth[v] + 1
			res.Parent[n] = v
			frontier = append(frontier, n)
		}
	}

	return res, nil
}

// newResult allocates a Result with all maps ready.
func newResult() *Result {
	return &Result{
		Order:   make([]int, 0),
		Depth:   make(map[int]int),
		Parent:  make(map[int]int),
		Visited: make(map[int]bool),
	}
}

// visit invokes the OnVisit hook, wrapping its error with the vertex.
func visit(opts *Options, v int) error {
	if opts == nil || opts.OnVisit == nil {
		return nil
	}
	if err := opts.OnVisit(v); err != nil {
		return fmt.Errorf("graph: OnVisit error at %d: %w", v, err)
	}

	return nil
}
