package command

import (
	"errors"
	"fmt"
)

// Command failures map onto the OpenThread CLI error codes the operator
// tooling already understands.
var (
	ErrFailed         = errors.New("Failed")
	ErrParse          = errors.New("Parse")
	ErrInvalidArgs    = errors.New("InvalidArgs")
	ErrInvalidCommand = errors.New("InvalidCommand")
)

func errorCode(err error) int {
	switch {
	case errors.Is(err, ErrParse):
		return 6
	case errors.Is(err, ErrInvalidArgs):
		return 7
	case errors.Is(err, ErrInvalidCommand):
		return 35
	default:
		return 1
	}
}

func errorName(err error) string {
	switch {
	case errors.Is(err, ErrParse):
		return ErrParse.Error()
	case errors.Is(err, ErrInvalidArgs):
		return ErrInvalidArgs.Error()
	case errors.Is(err, ErrInvalidCommand):
		return ErrInvalidCommand.Error()
	default:
		return ErrFailed.Error()
	}
}

func statusLine(err error) string {
	if err == nil {
		return "Done\r\n"
	}
	return fmt.Sprintf("Error %d: %s\r\n", errorCode(err), errorName(err))
}
