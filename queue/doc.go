// Package queue provides Queue, a FIFO with amortized O(1) Push and Pop.
//
// What & Why
//
//	Removing the first element of a Go slice with s = s[1:] never returns
//	the consumed prefix to the allocator, and copy-shifting is O(n). Queue
//	instead advances a head index and compacts the backing slice only once
//	the head has consumed at least half of it, spreading the O(n) copy over
//	the Pops that made it necessary.
//
// Complexity:
//
//	– Push:          O(1) amortized
//	– Pop:           O(1) amortized (compaction is O(n) but happens at most
//	                 once per n/2 Pops)
//	– Front/Size:    O(1)
//	– Memory:        O(n) live elements, at most 2n slots before compaction.
//
// Errors:
//
//	– ErrEmpty: Pop or Front on an empty queue (wraps cpkit.ErrEmpty).
//
// Queue is not safe for concurrent use.
package queue
