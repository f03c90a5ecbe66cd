package pq

import (
	"fmt"

	"github.com/katalvlaran/cpkit"
)

// ErrEmpty is returned by Pop and Peek when the heap holds no elements.
var ErrEmpty = fmt.Errorf("pq: %w", cpkit.ErrEmpty)

// Less reports whether a has strictly higher priority than b.
type Less[T any] func(a, b T) bool

// Heap is a complete binary tree encoded in a slice.
// For every i > 0, less(items[i], items[parent(i)]) is false.
type Heap[T any] struct {
	items []T
	less  Less[T]
}
