package chart

import (
	"errors"
	"fmt"
)

// ErrUsage marks errors caused by invalid invocation rather than I/O.
var ErrUsage = errors.New("usage error")

// UsageError is a user-facing message for an invalid invocation. Its text
// is printed verbatim after the tool name.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// Is reports whether target is ErrUsage.
func (e *UsageError) Is(target error) bool { return target == ErrUsage }

// Usagef formats a UsageError.
func Usagef(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}
