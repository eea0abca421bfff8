// Package debug provides the debug logs of the bitops command.
package debug

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

var (
	enabled atomic.Bool
	logger  = log.New(os.Stderr, "bitops: ", log.Lmicroseconds)
)

// Toggle turns on/off debug mode
func Toggle(on bool) { enabled.Store(on) }

// Enabled reports whether debug mode is on.
func Enabled() bool { return enabled.Load() }

// SetOutput changes the destination of debug logs.
func SetOutput(w io.Writer) { logger.SetOutput(w) }

// Format a log line and writes it if debug is enabled
func Format(format string, args ...interface{}) {
	if enabled.Load() {
		logger.Printf(format, args...)
	}
}
