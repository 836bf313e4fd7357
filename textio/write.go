// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/cobench/grid"
)

// Write emits each value of data followed by one space, buffered.
func Write[E grid.Element](w io.Writer, data []E) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	for _, v := range data {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, ' ')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("Write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// WriteFile creates or truncates path and writes data to it.
func WriteFile[E grid.Element](path string, data []E) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("WriteFile(%s): %w", path, cerr)
		}
	}()

	if err = Write(f, data); err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}

	return nil
}
