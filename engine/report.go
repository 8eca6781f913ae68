package engine

import (
	"fmt"
	"io"
)

// A Reporter delivers user-facing messages. Splitting moves, errors and
// outcomes keeps a GUI free to route them differently; the console reporter
// just prints them all.
type Reporter interface {
	MoveMsg(format string, args ...any)
	ErrMsg(format string, args ...any)
	OutcomeMsg(format string, args ...any)
}

type consoleReporter struct {
	out io.Writer
}

// NewConsoleReporter returns a Reporter printing every message to out, one
// line each.
func NewConsoleReporter(out io.Writer) Reporter {
	return &consoleReporter{out: out}
}

func (r *consoleReporter) MoveMsg(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *consoleReporter) ErrMsg(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *consoleReporter) OutcomeMsg(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}
