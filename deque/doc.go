// Package deque provides Deque, a double-ended buffer built from two stacks.
//
// The logical sequence is reverse(front) followed by back: PushFront and
// PopFront work on the top of the front stack, PushBack and PopBack on the
// top of the back stack. When one side runs dry the other is split in half
// and the half nearest the requested end is moved over, reversed.
//
// Complexity:
//
//   - PushFront/PushBack: O(1) amortized.
//   - PopFront/PopBack:   O(1) in the common case; O(k) when the requested
//     side is empty (k = size of the opposite side).
//   - Front/Back/Size:    O(1).
//
// Errors:
//
//   - ErrEmpty: any pop or peek on an empty deque (wraps cpkit.ErrEmpty).
package deque
