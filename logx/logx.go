// Package logx implements the leveled logging facility: a single Log call
// taking a verbosity level and a formatted message. Level 1 is logged once
// per command, 2-5 once per operation, 6 and up once per iteration of an
// inner loop (cofactor/tautology recursion, containment sweeps). Coloring
// uses fatih/color for warnings/errors; structured dumps at verbosity >= 6
// use go-spew.
package logx

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

// Logger writes leveled, formatted messages to an underlying writer,
// filtering out anything above the configured verbosity.
type Logger struct {
	w         io.Writer
	verbosity int
}

// New returns a Logger bound to w with the given verbosity threshold
// (messages logged at a level greater than verbosity are dropped).
func New(w io.Writer, verbosity int) *Logger {
	return &Logger{w: w, verbosity: verbosity}
}

// Log writes one formatted message at the given level, if the logger's
// verbosity is high enough. Level-1 messages are colored cyan, higher
// levels are written plain; Warn and Error are level-1 shorthands that add
// a prefix and their own color.
func (l *Logger) Log(level int, format string, args ...interface{}) {
	if level > l.verbosity {
		return
	}
	msg := fmt.Sprintf(format, args...)
	switch {
	case level <= 1:
		fmt.Fprintln(l.w, color.CyanString(msg))
	default:
		fmt.Fprintln(l.w, msg)
	}
}

// Dump writes a go-spew structured rendering of v, gated behind verbosity
// 6 since it is expensive enough
// that it should never fire during normal per-operation logging.
func (l *Logger) Dump(level int, label string, v interface{}) {
	if level > l.verbosity || l.verbosity < 6 {
		return
	}
	fmt.Fprintf(l.w, "%s:\n%s", color.YellowString(label), spew.Sdump(v))
}

// Warn logs a level-1 message prefixed and colored as a warning.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.verbosity < 1 {
		return
	}
	fmt.Fprintln(l.w, color.YellowString("warning: "+fmt.Sprintf(format, args...)))
}

// Error logs a level-1 message prefixed and colored as an error.
func (l *Logger) Error(format string, args ...interface{}) {
	if l.verbosity < 1 {
		return
	}
	fmt.Fprintln(l.w, color.RedString("error: "+fmt.Sprintf(format, args...)))
}
