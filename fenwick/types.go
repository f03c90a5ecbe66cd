package fenwick

import (
	"fmt"

	"github.com/katalvlaran/cpkit"
	"golang.org/x/exp/constraints"
)

// ErrIndexOutOfRange indicates a position outside the tree.
var ErrIndexOutOfRange = fmt.Errorf("fenwick: index out of range: %w", cpkit.ErrInvalidArgument)

// Number is any value that can be summed.
type Number interface {
	constraints.Integer | constraints.Float
}

// Tree holds prefix sums of n values, all initially zero.
type Tree[T Number] struct {
	tree []T // len n+1, tree[0] unused
}
