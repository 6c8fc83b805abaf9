package errs

import (
	"errors"
	"fmt"
)

var ErrTransitionIsInvalid = errors.New("transition is invalid")

// TransitionIsInvalidError reports a state change outside the allowed graph.
// From and To carry the attempted pair for diagnostics.
type TransitionIsInvalidError struct {
	ParamName string
	From      string
	To        string
	Cause     error
}

func NewTransitionIsInvalidError(paramName, from, to string) *TransitionIsInvalidError {
	return &TransitionIsInvalidError{
		ParamName: paramName,
		From:      from,
		To:        to,
	}
}

func NewTransitionIsInvalidErrorWithCause(paramName, from, to string, cause error) *TransitionIsInvalidError {
	return &TransitionIsInvalidError{
		ParamName: paramName,
		From:      from,
		To:        to,
		Cause:     cause,
	}
}

func (e *TransitionIsInvalidError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %s from %s to %s", ErrTransitionIsInvalid, sanitize(e.ParamName), sanitize(e.From), sanitize(e.To)),
		e.Cause,
	)
}

func (e *TransitionIsInvalidError) Unwrap() error {
	return ErrTransitionIsInvalid
}
