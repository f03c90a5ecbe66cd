package queue

import (
	"fmt"

	"github.com/katalvlaran/cpkit"
)

// ErrEmpty is returned by Pop and Front when the queue holds no elements.
var ErrEmpty = fmt.Errorf("queue: %w", cpkit.ErrEmpty)

// Queue is a FIFO sequence over a growable slice.
//
// Invariants:
//   - Size() == len(items) - head
//   - items[:head] are logically removed (and zeroed)
//   - after compaction head == 0
type Queue[T any] struct {
	items []T
	head  int
}
