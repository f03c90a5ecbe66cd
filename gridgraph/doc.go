// Package gridgraph treats a 2D grid of cells as a graph, enabling
// island analysis and minimal-cost bridges between islands.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - ConnectedComponents lists the islands (cells with value ≥ LandThreshold)
//     with a breadth-first flood fill on queue.Queue.
//   - LabelComponents assigns every cell its island id using dsu.DSU.
//   - ExpandIsland finds the fewest water cells to convert so that two islands
//     touch, with a 0-1 BFS on deque.Deque.
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Image analysis: blob counting on thresholded rasters.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8 neighbors).
//   - LabelComponents:     O(W×H×d×α(W×H)), Memory: O(W×H).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
