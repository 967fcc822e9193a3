package randstr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOption is matched by every option validation failure.
	ErrInvalidOption = errors.New("invalid option")

	// ErrTooManyAttempts is returned when a call rejects more candidates than
	// Options.MaxAttempts allows.
	ErrTooManyAttempts = errors.New("too many rejected attempts")
)

// OptionError describes a rejected option. It matches ErrInvalidOption with errors.Is.
type OptionError struct {
	Option string // name of the offending option, e.g. "length"
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid option %q: %s", e.Option, e.Reason)
}

// Unwrap returns ErrInvalidOption.
func (e *OptionError) Unwrap() error {
	return ErrInvalidOption
}

func optionErrorf(option, format string, args ...any) error {
	return &OptionError{Option: option, Reason: fmt.Sprintf(format, args...)}
}
