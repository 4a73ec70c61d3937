package cli

import (
	"errors"
	"fmt"
)

// ErrHelp is returned by Resolve when help was requested. It is not a
// failure: the caller shows usage and exits successfully.
var ErrHelp = errors.New("help requested")

var (
	ErrMissingArgument    = errors.New("missing required argument")
	ErrUnexpectedArgument = errors.New("unexpected argument")
	ErrUnknownFlag        = errors.New("unknown flag")
	ErrValueNotProvided   = errors.New("value not provided")
	ErrUnexpectedValue    = errors.New("flag does not take a value")
	ErrNotANumber         = errors.New("value must be a number")
	ErrNotPositive        = errors.New("value must be greater than zero")
	ErrOutputDirNotFound  = errors.New("output directory not found")
)

// ArgumentError reports a command line problem found while resolving
// arguments. Arg is the offending flag or argument.
type ArgumentError struct {
	Arg string
	Err error
}

func (e *ArgumentError) Error() string {
	if errors.Is(e.Err, ErrValueNotProvided) {
		return fmt.Sprintf("value not provided for %s", e.Arg)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Arg)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
