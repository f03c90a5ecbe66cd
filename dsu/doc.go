// Package dsu provides a disjoint-set union (union-find) over integer
// elements 0..n, with union by size and path compression.
//
// What & Why
//
//	DSU answers "are a and b in the same group?" while groups are merged
//	online. Kruskal's MST, connected-component labelling and equivalence
//	closure are the usual callers.
//
// Conventions
//
//	New(n) allocates n+1 elements so that 1-based labels 1..n can be used
//	directly; element 0 is a spare. Components() starts at n (not n+1),
//	and drops by one on every successful Union.
//
// Complexity:
//
//	– Find, Union, Connected, Size: O(α(n)) amortized
//	– Groups:                       O(n)
//	– Memory:                       O(n)
//
// Find is iterative (root lookup, then a second pass re-pointing every node
// on the path at the root), so very deep trees cannot exhaust the stack.
// Indices outside [0, n] panic like any out-of-range slice access.
package dsu
