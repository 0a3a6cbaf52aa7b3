// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
)

// Warnf prints a one-line warning unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// NewLogger returns a text slog.Logger on dst. verbose enables debug records;
// quiet keeps errors only and wins over verbose.
func NewLogger(dst io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(dst, &slog.HandlerOptions{Level: level}))
}
