// Package fenwick implements a 1-indexed Fenwick (binary indexed) tree for
// prefix sums with point updates.
//
// Indexing:
//
//	Positions run from 1 to n. Slot 0 of the internal array is never
//	written or read: the walks i += i&-i and i -= i&-i stop before it.
//
// Complexity:
//
//	– Add, Query, RangeQuery: O(log n)
//	– FromSlice:              O(n)
//	– Memory:                 O(n)
//
// Errors:
//
//	– ErrIndexOutOfRange: Add outside [1, n], Query above n, or RangeQuery
//	  with l < 1 or r > n (wraps cpkit.ErrInvalidArgument).
package fenwick
