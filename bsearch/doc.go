// Package bsearch finds boundaries in sorted slices.
//
//   - LowerBound(s, x): first index i with s[i] >= x (len(s) if none).
//   - UpperBound(s, x): first index i with s[i] > x  (len(s) if none).
//
// Both run in O(log n), allocate nothing and require s to be sorted in
// non-decreasing order. On unsorted input the result is unspecified; it is
// not reported as an error.
package bsearch
