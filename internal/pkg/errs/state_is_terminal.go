package errs

import (
	"errors"
	"fmt"
)

var ErrStateIsTerminal = errors.New("state is terminal")

// StateIsTerminalError reports an attempt to change an object that reached a final state.
type StateIsTerminalError struct {
	ParamName string
	State     string
	Cause     error
}

func NewStateIsTerminalError(paramName, state string) *StateIsTerminalError {
	return &StateIsTerminalError{
		ParamName: paramName,
		State:     state,
	}
}

func NewStateIsTerminalErrorWithCause(paramName, state string, cause error) *StateIsTerminalError {
	return &StateIsTerminalError{
		ParamName: paramName,
		State:     state,
		Cause:     cause,
	}
}

func (e *StateIsTerminalError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %s is %s", ErrStateIsTerminal, sanitize(e.ParamName), sanitize(e.State)),
		e.Cause,
	)
}

func (e *StateIsTerminalError) Unwrap() error {
	return ErrStateIsTerminal
}
