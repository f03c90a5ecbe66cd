package queue

// New returns an empty Queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// NewWithCapacity returns an empty Queue whose backing slice is
// preallocated for c elements. Negative c is treated as 0.
func NewWithCapacity[T any](c int) *Queue[T] {
	if c < 0 {
		c = 0
	}
	return &Queue[T]{items: make([]T, 0, c)}
}

// Push appends x to the back of the queue.
// Complexity: O(1) amortized.
func (q *Queue[T]) Push(x T) {
	q.items = append(q.items, x)
}

// Pop removes and returns the front element.
// Returns ErrEmpty if the queue is empty.
//
// Once head has consumed at least half of the backing slice, the live tail
// is copied into a fresh slice and head resets to 0.
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if q.Empty() {
		return zero, ErrEmpty
	}
	x := q.items[q.head]
	q.items[q.head] = zero // release reference
	q.head++

	if q.head*2 >= len(q.items) {
		q.compact()
	}

	return x, nil
}

// Front returns the front element without removing it.
// Returns ErrEmpty if the queue is empty.
func (q *Queue[T]) Front() (T, error) {
	if q.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return q.items[q.head], nil
}

// Size returns the number of queued elements.
func (q *Queue[T]) Size() int {
	return len(q.items) - q.head
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.head == len(q.items)
}

// Clear removes all elements and drops the backing slice.
func (q *Queue[T]) Clear() {
	q.items = nil
	q.head = 0
}

// Values returns a front-to-back copy of the queued elements.
func (q *Queue[T]) Values() []T {
	out := make([]T, q.Size())
	copy(out, q.items[q.head:])
	return out
}

// compact re-slices the backing store from head onward.
func (q *Queue[T]) compact() {
	live := len(q.items) - q.head
	if live == 0 {
		q.items = q.items[:0]
		q.head = 0
		return
	}
	fresh := make([]T, live, live*2)
	copy(fresh, q.items[q.head:])
	q.items = fresh
	q.head = 0
}
