// Package pq provides Heap, an array-backed binary heap ordered by a strict
// priority predicate fixed at construction.
//
// The predicate less(a, b) must report whether a has strictly higher
// priority than b. NewMin (numeric ascending) is the default min-heap;
// NewMax flips the direction; New accepts any strict weak ordering, e.g.
// a struct ordered by distance for Dijkstra or by weight for Prim.
//
// Complexity:
//
//	– Push, Pop:  O(log n)
//	– Peek, Len:  O(1)
//	– NewFrom:    O(n) bottom-up heapify
//
// Tie handling: sift-up swaps only on strict violations, and sift-down
// prefers the left child when both children compare equal, so equal
// elements are never moved needlessly.
//
// Errors:
//
//	– ErrEmpty: Pop or Peek on an empty heap (wraps cpkit.ErrEmpty).
package pq
