package cli

import (
	"fmt"
	"io"
)

// IO routes command output. Normal results go to out; warnings and errors
// go to errOut. Warnings flag degraded-but-successful runs (an empty source
// dump); they never change the exit code by themselves.
type IO struct {
	out    io.Writer
	errOut io.Writer
}

// NewIO creates a new IO instance.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Println writes to stdout.
func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// Out exposes the stdout writer for bulk output (table rendering).
func (o *IO) Out() io.Writer {
	return o.out
}

// Warnln writes a warning line to stderr.
func (o *IO) Warnln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, append([]any{"warning:"}, a...)...)
}

// ErrPrintln writes to stderr.
func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}
