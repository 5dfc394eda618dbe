// Package graph defines the Graph container, traversal options, results,
// and sentinel errors.
package graph

import "errors"

// ErrVertexNotFound is returned when a traversal's start vertex is absent.
var ErrVertexNotFound = errors.New("graph: start vertex not found")

// Options configures a traversal.
type Options struct {
	// OnVisit is called when a vertex is visited. Returning an error
	// aborts the traversal; the vertex is already in Result.Order.
	OnVisit func(v int) error
}

// Result holds the outcome of a traversal.
type Result struct {
	// Order is the sequence of visited vertices.
	Order []int
	// Depth maps vertex → distance (#edges) from start. BFS only.
	Depth map[int]int
	// Parent maps vertex → predecessor in the traversal tree. BFS only;
	// the start vertex has no entry.
	Parent map[int]int
	// Visited tracks reached vertices.
	Visited map[int]bool
}

// Graph is an undirected graph stored as an adjacency list over integer
// vertex IDs. The zero value is unusable; construct with New.
type Graph struct {
	adjacency map[int][]int
	// vertices preserves insertion order; map iteration order would make
	// anything enumerating the graph unstable.
	vertices []int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{adjacency: make(map[int][]int)}
}

// Len reports the number of vertices. Complexity: O(1).
func (g *Graph) Len() int {
	return len(g.vertices)
}

// HasVertex reports whether v exists. Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.adjacency[v]

	return ok
}

// AddVertex ensures v exists, with no neighbors yet. Complexity: O(1).
func (g *Graph) AddVertex(v int) {
	if _, ok := g.adjacency[v]; ok {
		return
	}
	g.adjacency[v] = nil
	g.vertices = append(g.vertices, v)
}

// AddEdge connects from and to in both directions, creating missing
// endpoints. Parallel edges are kept as the caller adds them.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to int) {
	g.AddVertex(from)
	g.AddVertex(to)
	g.adjacency[from] = append(g.adjacency[from], to)
	g.adjacency[to] = append(g.adjacency[to], from)
}

// Neighbors returns v's adjacency slice in insertion order. The slice is
// a copy; mutating it does not affect the graph. Complexity: O(deg v).
func (g *Graph) Neighbors(v int) []int {
	return append([]int(nil), g.adjacency[v]...)
}
