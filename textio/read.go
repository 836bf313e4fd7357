// SPDX-License-Identifier: MIT
// Package: cobench/textio
//
// read.go - whitespace-separated integer reader.
//
// Contract:
//   - Exactly count tokens are consumed; trailing tokens are ignored.
//   - Short input ⇒ ErrInputFormat with got/want.
//   - Bad token ⇒ ErrInputFormat with the 0-based token position.
//   - I/O errors from r are returned wrapped, unchanged otherwise.
//
// Complexity: Time O(bytes read), Space O(count).

package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/cobench/grid"
)

// maxToken bounds a single token; longer input is not an integer anyway.
const maxToken = 64

// Read scans count integers from r.
func Read[E grid.Element](r io.Reader, count int) ([]E, error) {
	if count < 0 {
		return nil, fmt.Errorf("Read: count=%d: %w", count, ErrInputFormat)
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, maxToken), maxToken)
	sc.Split(bufio.ScanWords)

	out := make([]E, count)
	var (
		i   int
		v   int64
		err error
	)
	for i = 0; i < count; i++ {
		if !sc.Scan() {
			break
		}
		v, err = strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil || int64(E(v)) != v {
			return nil, fmt.Errorf("Read: token %d %q: %w", i, sc.Text(), ErrInputFormat)
		}
		out[i] = E(v)
	}
	if err = sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("Read: token %d: %w", i, ErrInputFormat)
		}

		return nil, fmt.Errorf("Read: %w", err)
	}
	if i < count {
		return nil, fmt.Errorf("Read: got %d values, want %d: %w", i, count, ErrInputFormat)
	}

	return out, nil
}

// ReadFile reads n² integers from the file at path.
func ReadFile[E grid.Element](path string, n int) ([]E, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	data, err := Read[E](f, n*n)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}

	return data, nil
}

// ReadDense reads an n×n matrix from path. Options are passed to grid.FromSlice.
func ReadDense[E grid.Element](path string, n int, opts ...grid.Option) (*grid.Dense[E], error) {
	data, err := ReadFile[E](path, n)
	if err != nil {
		return nil, err
	}
	m, err := grid.FromSlice(n, data, opts...)
	if err != nil {
		return nil, fmt.Errorf("ReadDense(%s): %w", path, err)
	}

	return m, nil
}
