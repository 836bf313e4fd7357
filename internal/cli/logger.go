// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultLogLevel is used when --log-level is not given.
const DefaultLogLevel = "info"

// NewLogger returns a text logger writing to w at the named level
// (debug|info|warn|error, case-insensitive).
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("NewLogger: level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
