package bsearch

import "golang.org/x/exp/constraints"

// LowerBound returns the smallest index i such that seq[i] >= target,
// or len(seq) if every element is smaller.
func LowerBound[T constraints.Ordered](seq []T, target T) int {
	lo, hi := 0, len(seq)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if seq[mid] >= target {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// UpperBound returns the smallest index i such that seq[i] > target,
// or len(seq) if no element is greater.
func UpperBound[T constraints.Ordered](seq []T, target T) int {
	lo, hi := 0, len(seq)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if seq[mid] > target {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// LowerBoundFunc is LowerBound for any element type ordered by less,
// which must be the ordering seq is sorted by.
func LowerBoundFunc[T any](seq []T, target T, less func(a, b T) bool) int {
	lo, hi := 0, len(seq)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if !less(seq[mid], target) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// EqualRange returns the half-open range [lo, hi) of elements equal to target.
func EqualRange[T constraints.Ordered](seq []T, target T) (lo, hi int) {
	return LowerBound(seq, target), UpperBound(seq, target)
}

// Count returns the number of elements equal to target.
func Count[T constraints.Ordered](seq []T, target T) int {
	lo, hi := EqualRange(seq, target)
	return hi - lo
}
