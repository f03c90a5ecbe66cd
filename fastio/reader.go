package fastio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
)

// ErrBadToken indicates a token that is not a decimal integer of the
// requested width.
var ErrBadToken = errors.New("fastio: malformed integer token")

const defaultBufSize = 1 << 16

// Reader splits an input stream into tokens.
type Reader struct {
	br *bufio.Reader
}

// NewReader wraps r with a 64 KiB buffer.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, defaultBufSize)}
}

// skip consumes separators and returns the first byte of the next token.
func (r *Reader) skip() (byte, error) {
	for {
		c, err := r.br.ReadByte()
		if err != nil {
			return 0, err
		}
		if c > ' ' {
			return c, nil
		}
	}
}

// Next returns the next token. It returns io.EOF when the input is exhausted.
func (r *Reader) Next() (string, error) {
	c, err := r.skip()
	if err != nil {
		return "", err
	}
	buf := []byte{c}
	for {
		c, err = r.br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if c <= ' ' {
			break
		}
		buf = append(buf, c)
	}
	return string(buf), nil
}

// Int parses the next token as a signed 64-bit decimal integer.
func (r *Reader) Int() (int64, error) {
	c, err := r.skip()
	if err != nil {
		return 0, err
	}
	neg := c == '-'
	if neg {
		if c, err = r.br.ReadByte(); err != nil || c <= ' ' {
			return 0, fmt.Errorf("%w: lone '-'", ErrBadToken)
		}
	}

	// Accumulate as a negative number so math.MinInt64 parses.
	var res int64
	for {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: unexpected byte %q", ErrBadToken, c)
		}
		d := int64(c - '0')
		if res < (math.MinInt64+d)/10 {
			return 0, fmt.Errorf("%w: overflows int64", ErrBadToken)
		}
		res = res*10 - d

		c, err = r.br.ReadByte()
		if err == io.EOF || (err == nil && c <= ' ') {
			break
		}
		if err != nil {
			return 0, err
		}
	}

	if neg {
		return res, nil
	}
	if res == math.MinInt64 {
		return 0, fmt.Errorf("%w: overflows int64", ErrBadToken)
	}
	return -res, nil
}

// BigInt parses the next token as an arbitrary-precision decimal integer.
func (r *Reader) BigInt() (*big.Int, error) {
	tok, err := r.Next()
	if err != nil {
		return nil, err
	}
	v, ok := new(big.Int).SetString(tok, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadToken, tok)
	}
	return v, nil
}
