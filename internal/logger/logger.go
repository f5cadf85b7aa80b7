package logger

import (
	"io"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Output is where every log line is written. It defaults to color.Output,
// which wraps stdout so colors render on Windows consoles too.
// Tests replace it with a buffer.
var Output io.Writer = color.Output

// Info logs informational messages in green color.
// Green marks a step that finished normally.
var Info = printer(color.FgGreen)

// Warn logs warning messages in bright magenta color.
var Warn = printer(color.FgHiMagenta)

// Error logs error messages in red color.
var Error = printer(color.FgRed)

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It starts as a no-op so packages can log before Init runs (e.g. in tests).
var Debug = func(format string, a ...any) {}

// Init initializes the logger package, specifically enabling or disabling debug logging.
// When enabled, Debug will print messages in cyan color.
// When disabled, Debug will be a no-op function that silently ignores debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = printer(color.FgCyan)
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// printer returns a printf-style function writing in the given color to Output.
// Output is read on every call so swapping it takes effect immediately.
func printer(attr color.Attribute) func(format string, a ...any) {
	c := color.New(attr)
	return func(format string, a ...any) {
		_, _ = c.Fprintf(Output, format, a...)
	}
}
