package cmd

import (
	"context"
	"errors"

	"github.com/bjaus/textable"
)

const (
	ExitOK         = 0
	ExitSystem     = 1
	ExitUser       = 2
	ExitSource     = 3
	ExitStructural = 4
	ExitCanceled   = 130
)

// ExitCode maps a command error to a stable process exit code for automation.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case errors.Is(err, textable.ErrConfiguration), errors.Is(err, textable.ErrUnsupportedFormat):
		return ExitUser
	case errors.Is(err, textable.ErrSourceRead):
		return ExitSource
	case errors.Is(err, textable.ErrStructural):
		return ExitStructural
	default:
		return ExitSystem
	}
}
