// Package fastio reads whitespace-separated tokens and writes buffered
// lines, the two I/O chores around every batch-style solution.
//
// Reader treats every byte <= ' ' as a separator, so spaces, tabs, CR and
// LF are interchangeable. Int parses an optional '-' followed by decimal
// digits without allocating; BigInt and Next allocate the token.
//
// Writer buffers everything until Flush, so a program writes its output in
// one system call at the end.
//
// Errors:
//
//   - io.EOF: no token left.
//   - ErrBadToken: the token is not a (64-bit) decimal integer.
package fastio
