// Package driver runs the classic multi-test-case loop:
//
//	t
//	n_1
//	a_1 a_2 ... a_n1
//	...
//
// For each case it reads n and n integers, hands them to a SolveFunc and
// buffers the answer; all answers are flushed once at the end. An empty
// input prints nothing and is not an error.
//
// The core packages (queue, pq, dsu, ...) never parse or print; driver and
// fastio are the only places that touch bytes.
package driver
