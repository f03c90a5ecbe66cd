package deque

// New returns an empty Deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// PushBack appends v at the logical back.
func (d *Deque[T]) PushBack(v T) {
	d.back = append(d.back, v)
}

// PushFront prepends v at the logical front.
func (d *Deque[T]) PushFront(v T) {
	d.front = append(d.front, v)
}

// PopFront removes and returns the logical front element.
// Returns ErrEmpty if the deque is empty.
func (d *Deque[T]) PopFront() (T, error) {
	var zero T
	if len(d.front) == 0 {
		if len(d.back) == 0 {
			return zero, ErrEmpty
		}
		d.front, d.back = refill(d.back)
	}
	last := len(d.front) - 1
	v := d.front[last]
	d.front[last] = zero
	d.front = d.front[:last]

	return v, nil
}

// PopBack removes and returns the logical back element.
// Returns ErrEmpty if the deque is empty.
func (d *Deque[T]) PopBack() (T, error) {
	var zero T
	if len(d.back) == 0 {
		if len(d.front) == 0 {
			return zero, ErrEmpty
		}
		d.back, d.front = refill(d.front)
	}
	last := len(d.back) - 1
	v := d.back[last]
	d.back[last] = zero
	d.back = d.back[:last]

	return v, nil
}

// Front returns the logical front element without removing it.
func (d *Deque[T]) Front() (T, error) {
	switch {
	case len(d.front) > 0:
		return d.front[len(d.front)-1], nil
	case len(d.back) > 0:
		return d.back[0], nil
	default:
		var zero T
		return zero, ErrEmpty
	}
}

// Back returns the logical back element without removing it.
func (d *Deque[T]) Back() (T, error) {
	switch {
	case len(d.back) > 0:
		return d.back[len(d.back)-1], nil
	case len(d.front) > 0:
		return d.front[0], nil
	default:
		var zero T
		return zero, ErrEmpty
	}
}

// Size returns the number of elements.
func (d *Deque[T]) Size() int {
	return len(d.front) + len(d.back)
}

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool {
	return len(d.front) == 0 && len(d.back) == 0
}

// Values returns a front-to-back copy of the elements.
func (d *Deque[T]) Values() []T {
	out := make([]T, 0, d.Size())
	for i := len(d.front) - 1; i >= 0; i-- {
		out = append(out, d.front[i])
	}
	return append(out, d.back...)
}

// refill splits the non-empty stack src, whose bottom src[0] is the end
// the caller wants to pop from. The bottom half (rounded up) is returned
// reversed as the new stack for the empty side, so src[0] ends up on top;
// the remaining elements are returned as the new src.
// Complexity: O(len(src)).
func refill[T any](src []T) (moved, rest []T) {
	m := (len(src) + 1) / 2
	moved = make([]T, m)
	for i := 0; i < m; i++ {
		moved[i] = src[m-1-i]
	}
	rest = make([]T, len(src)-m)
	copy(rest, src[m:])

	return moved, rest
}
