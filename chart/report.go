package chart

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// Reporter writes tool-prefixed diagnostics to an error stream.
type Reporter struct {
	name string
	w    io.Writer
}

// NewReporter returns a Reporter that prefixes messages with name.
func NewReporter(name string, w io.Writer) *Reporter {
	if w == nil {
		w = io.Discard
	}
	return &Reporter{name: name, w: w}
}

// Error prints "name: msg!".
func (r *Reporter) Error(msg string) {
	_, _ = fmt.Fprintf(r.w, "%s: %s!\n", r.name, msg)
}

// Warn prints "name: msg". Warnings never change the exit status.
func (r *Reporter) Warn(msg string) {
	_, _ = fmt.Fprintf(r.w, "%s: %s\n", r.name, msg)
}

// Fail reports err and returns the exit status for it: 0 for a help
// request, 1 otherwise.
func (r *Reporter) Fail(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	r.Error(err.Error())
	return 1
}
