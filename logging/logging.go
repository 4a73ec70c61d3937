// Package logging builds the diagnostic logger. Diagnostics go to stderr and
// stay quiet unless debugging is enabled; export output never goes through
// it.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// DebugEnv enables debug diagnostics when set to a true value.
const DebugEnv = "EXPORTTOCSV_DEBUG"

// NewTerminalHandler returns a tint handler writing to w. Colors are used
// only when w is a terminal and NO_COLOR is unset.
func NewTerminalHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !IsTerminal(w),
	})
}

// New returns a logger writing to w at warn level, or debug level when
// debug is true.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(NewTerminalHandler(w, level))
}

// FromEnv returns the logger for stderr with debugging taken from DebugEnv.
func FromEnv(getenv func(string) string) *slog.Logger {
	debug, _ := strconv.ParseBool(getenv(DebugEnv))
	return New(os.Stderr, debug)
}

// IsTerminal reports whether w is a terminal that accepts color.
func IsTerminal(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
