package driver

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrTruncated indicates the input ended inside a test case.
	ErrTruncated = fmt.Errorf("driver: truncated input: %w", io.ErrUnexpectedEOF)

	// ErrBadCount indicates a negative test-case or element count.
	ErrBadCount = errors.New("driver: count must be non-negative")
)

// SolveFunc computes the answer of one test case from its n integers.
type SolveFunc func(n int, arr []int64) int64

// Sum is the template SolveFunc: the sum of the case's integers.
func Sum(n int, arr []int64) int64 {
	var sum int64
	for i := 0; i < n; i++ {
		sum += arr[i]
	}
	return sum
}
