package driver

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/cpkit/fastio"
)

// Run reads test cases from in, solves each with solve and writes one
// answer per line to out. Output is flushed once, after the last case or
// on the first error (answers already computed are still written).
// ctx is checked between cases.
func Run(ctx context.Context, in io.Reader, out io.Writer, solve SolveFunc) (err error) {
	r := fastio.NewReader(in)
	w := fastio.NewWriter(out)
	defer func() {
		if ferr := w.Flush(); err == nil {
			err = ferr
		}
	}()

	t, err := r.Int()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("driver: reading case count: %w", err)
	}
	if t < 0 {
		return fmt.Errorf("%w: t=%d", ErrBadCount, t)
	}

	var arr []int64
	for tc := int64(1); tc <= t; tc++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		if arr, err = readCase(r); err != nil {
			return fmt.Errorf("case %d: %w", tc, err)
		}
		if err = w.Println(solve(len(arr), arr)); err != nil {
			return err
		}
	}

	return nil
}

// maxPrealloc bounds the capacity reserved from an unverified count.
const maxPrealloc = 1 << 16

// readCase reads n followed by n integers. The slice grows as elements
// arrive, so an oversized n ends in ErrTruncated rather than a huge
// allocation.
func readCase(r *fastio.Reader) ([]int64, error) {
	n, err := r.Int()
	if err != nil {
		return nil, eofAsTruncated(err)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadCount, n)
	}
	arr := make([]int64, 0, min(n, maxPrealloc))
	for i := int64(0); i < n; i++ {
		v, err := r.Int()
		if err != nil {
			return nil, eofAsTruncated(err)
		}
		arr = append(arr, v)
	}
	return arr, nil
}

func eofAsTruncated(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrTruncated
	}
	return err
}
