// Package graph implements an adjacency-list graph with depth-first and
// breadth-first traversals.
//
// What:
//
//   - Graph maps integer vertex IDs to neighbor slices; AddEdge inserts
//     both directions (the graph is undirected).
//   - DFS dives along each branch with an explicit stack, pushing
//     neighbors in reverse so visitation reads left-to-right in insertion
//     order.
//   - BFS expands level by level with a FIFO frontier, recording each
//     vertex's depth and parent at discovery time.
//
// Why:
//
//   - Adjacency lists keep neighbor lookups near O(1) and stay compact on
//     sparse graphs.
//   - DFS vs BFS is the canonical contrast between frontier disciplines:
//     same visited-set skeleton, different container, different order.
//
// Complexity (V = vertices, E = edges):
//
//   - DFS / BFS: O(V + E) time, O(V) memory.
//
// Errors:
//
//   - ErrVertexNotFound: the start vertex is absent from the graph.
//   - An OnVisit hook returning an error aborts the traversal; the vertex
//     that triggered it remains in Result.Order.
package graph
