package pq

import "golang.org/x/exp/constraints"

// New returns an empty Heap ordered by less. A nil less panics.
func New[T any](less Less[T]) *Heap[T] {
	if less == nil {
		panic("pq: nil ordering predicate")
	}
	return &Heap[T]{less: less}
}

// NewMin returns an empty min-heap (numeric ascending).
func NewMin[T constraints.Ordered]() *Heap[T] {
	return New[T](func(a, b T) bool { return a < b })
}

// NewMax returns an empty max-heap.
func NewMax[T constraints.Ordered]() *Heap[T] {
	return New[T](func(a, b T) bool { return a > b })
}

// NewFrom returns a Heap holding a copy of items, heapified bottom-up.
// Complexity: O(n).
func NewFrom[T any](items []T, less Less[T]) *Heap[T] {
	h := New(less)
	h.items = make([]T, len(items))
	copy(h.items, items)
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h
}

// Push inserts v.
// Complexity: O(log n).
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the highest-priority element.
// Returns ErrEmpty if the heap is empty.
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	if len(h.items) == 0 {
		return zero, ErrEmpty
	}
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items[last] = zero
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return top, nil
}

// Peek returns the highest-priority element without removing it.
// Returns ErrEmpty if the heap is empty.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.items[0], nil
}

// Len returns the number of elements.
func (h *Heap[T]) Len() int { return len(h.items) }

// Empty reports whether the heap holds no elements.
func (h *Heap[T]) Empty() bool { return len(h.items) == 0 }

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(h.items[i], h.items[p]) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		best := i
		l, r := 2*i+1, 2*i+2
		if l < n && h.less(h.items[l], h.items[best]) {
			best = l
		}
		if r < n && h.less(h.items[r], h.items[best]) {
			best = r
		}
		if best == i {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
