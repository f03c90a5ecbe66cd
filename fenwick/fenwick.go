package fenwick

import "fmt"

// New returns a Tree of n zero values. Negative n is treated as 0.
func New[T Number](n int) *Tree[T] {
	if n < 0 {
		n = 0
	}
	return &Tree[T]{tree: make([]T, n+1)}
}

// FromSlice builds a Tree whose position i holds values[i-1].
// Complexity: O(n), each slot pushes its total to its parent once.
func FromSlice[T Number](values []T) *Tree[T] {
	t := New[T](len(values))
	copy(t.tree[1:], values)
	n := len(values)
	for i := 1; i <= n; i++ {
		if p := i + (i & -i); p <= n {
			t.tree[p] += t.tree[i]
		}
	}

	return t
}

// Len returns n.
func (t *Tree[T]) Len() int {
	return len(t.tree) - 1
}

// Add adds delta to position i (1 <= i <= n).
func (t *Tree[T]) Add(i int, delta T) error {
	n := t.Len()
	if i < 1 || i > n {
		return fmt.Errorf("%w: add at %d, size %d", ErrIndexOutOfRange, i, n)
	}
	for ; i <= n; i += i & -i {
		t.tree[i] += delta
	}

	return nil
}

// Query returns the sum of positions 1..i. It returns 0 for i <= 0.
func (t *Tree[T]) Query(i int) (T, error) {
	if i > t.Len() {
		return 0, fmt.Errorf("%w: query at %d, size %d", ErrIndexOutOfRange, i, t.Len())
	}
	return t.prefix(i), nil
}

// RangeQuery returns the sum of positions l..r inclusive.
// It requires l >= 1 and r <= n; an empty range (l > r) sums to 0.
func (t *Tree[T]) RangeQuery(l, r int) (T, error) {
	if l < 1 || r > t.Len() {
		return 0, fmt.Errorf("%w: range [%d, %d], size %d", ErrIndexOutOfRange, l, r, t.Len())
	}
	if l > r {
		return 0, nil
	}
	return t.prefix(r) - t.prefix(l-1), nil
}

func (t *Tree[T]) prefix(i int) T {
	var sum T
	for ; i > 0; i -= i & -i {
		sum += t.tree[i]
	}
	return sum
}
