package window

import (
	"errors"
	"fmt"
)

// ErrUnknownWindow is returned by Parse for unsupported names.
var ErrUnknownWindow = errors.New("unknown window type")

var errMismatchedLength = errors.New("samples and coefficients must have same length")

func unknownWindow(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownWindow, name)
}
