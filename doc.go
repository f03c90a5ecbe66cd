// Package cpkit is a small, dependency-light toolkit of classic data
// structures and numeric routines for solving isolated computational
// problems: contest tasks, interview katas, quick simulations.
//
// 🚀 What is inside?
//
//   - queue/     - amortized O(1) FIFO over a slice with a lazy head
//   - deque/     - double-ended buffer built from two stacks
//   - pq/        - binary heap parameterized by a strict ordering predicate
//   - bsearch/   - LowerBound / UpperBound over sorted slices
//   - dsu/       - disjoint-set union (union by size + path compression)
//   - fenwick/   - 1-indexed Fenwick tree: point update, prefix & range sums
//   - modmath/   - GCD, LCM, modular exponentiation (64-bit and math/big)
//   - arrayutil/ - 2D slice construction, safe Max / Min
//   - fastio/    - token reader and buffered writer for stdin/stdout
//   - driver/    - the "t test cases" loop around a solve function
//   - gridgraph/ - islands on a grid: components and minimal bridges
//   - mst/       - Kruskal and Prim over integer-labelled edge lists
//
// ✨ Guarantees
//
//   - Every structure is single-threaded: no locks, no goroutines, no I/O.
//     Serialize access externally if you share an instance.
//   - Failures are reported with sentinel errors that wrap ErrEmpty or
//     ErrInvalidArgument, so errors.Is works both per package and globally.
//   - Backing storage is private; only documented operations are exposed.
//
// Quick start:
//
//	h := pq.NewMin[int]()
//	for _, v := range []int{5, 1, 8, 1, 3} {
//		h.Push(v)
//	}
//	for !h.Empty() {
//		v, _ := h.Pop() // 1 1 3 5 8
//		fmt.Println(v)
//	}
//
//	go get github.com/katalvlaran/cpkit
package cpkit
