package fastio

import (
	"bufio"
	"fmt"
	"io"
)

// Writer buffers output lines until Flush.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter wraps w with a 64 KiB buffer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, defaultBufSize)}
}

// Println formats its operands like fmt.Println into the buffer.
func (w *Writer) Println(a ...any) error {
	_, err := fmt.Fprintln(w.bw, a...)
	return err
}

// Printf formats into the buffer like fmt.Printf.
func (w *Writer) Printf(format string, a ...any) error {
	_, err := fmt.Fprintf(w.bw, format, a...)
	return err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
