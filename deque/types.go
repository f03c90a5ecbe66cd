package deque

import (
	"fmt"

	"github.com/katalvlaran/cpkit"
)

// ErrEmpty is returned by pops and peeks on an empty deque.
var ErrEmpty = fmt.Errorf("deque: %w", cpkit.ErrEmpty)

// Deque is a double-ended sequence.
// The top of front (its last element) is the logical front;
// the top of back is the logical back.
type Deque[T any] struct {
	front []T
	back  []T
}
