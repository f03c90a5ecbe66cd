// Package mst computes Minimum Spanning Trees of undirected, weighted graphs
// given as integer-labelled edge lists: vertices are 0..n-1 and every Edge
// names its two endpoints and a weight.
//
// Algorithms Provided
//
//   - Kruskal(n, edges): sort all edges by weight (stable, so equal weights
//     keep input order), then merge components with dsu.DSU, skipping edges
//     whose endpoints are already connected.
//     Time: O(E log E + E·α(V)). Space: O(V + E).
//
//   - Prim(n, edges, root): grow one tree from root, keeping candidate edges
//     in a pq.Heap ordered by weight (lazy deletion of stale entries).
//     Time: O(E log E). Space: O(V + E).
//
//   - Compute(n, edges, opts...): dispatch by Options.Method.
//
// Errors
//
//   - ErrNoVertices:        n <= 0.
//   - ErrVertexOutOfRange:  an edge endpoint or the Prim root is outside [0, n).
//   - ErrDisconnected:      n > 1 and no spanning tree exists.
//   - ErrUnknownMethod:     Options.Method is neither MethodKruskal nor MethodPrim.
//
// Self-loops are ignored; parallel edges are allowed and the lighter one wins.
package mst
