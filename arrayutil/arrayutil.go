// Package arrayutil holds slice helpers that keep showing up in solutions:
// rectangular 2D allocation and iterative Max / Min.
package arrayutil

import (
	"fmt"

	"github.com/katalvlaran/cpkit"
	"golang.org/x/exp/constraints"
)

// ErrEmpty is returned by Max and Min on an empty slice.
var ErrEmpty = fmt.Errorf("arrayutil: %w", cpkit.ErrEmpty)

// Make2D returns a rows×cols grid with every cell set to fill.
// The rows share a single backing array. Negative sizes are treated as 0.
func Make2D[T any](rows, cols int, fill T) [][]T {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	flat := make([]T, rows*cols)
	for i := range flat {
		flat[i] = fill
	}
	grid := make([][]T, rows)
	for r := range grid {
		grid[r] = flat[r*cols : (r+1)*cols : (r+1)*cols]
	}

	return grid
}

// Max returns the largest element of s.
func Max[T constraints.Ordered](s []T) (T, error) {
	return reduce(s, func(a, b T) bool { return a > b })
}

// Min returns the smallest element of s.
func Min[T constraints.Ordered](s []T) (T, error) {
	return reduce(s, func(a, b T) bool { return a < b })
}

// reduce keeps the element preferred by better; ties keep the earlier one.
func reduce[T any](s []T, better func(a, b T) bool) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	best := s[0]
	for _, v := range s[1:] {
		if better(v, best) {
			best = v
		}
	}
	return best, nil
}
