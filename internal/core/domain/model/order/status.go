package order

import (
	"fmt"
	"slices"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so an order
// only ever moves forward.
//
// State transitions:
//
//	CREATED ──> PROCESSING ──┬──> COMPLETED
//	                         │
//	                         └──> CANCELLED
//
// COMPLETED and CANCELLED are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status of every new order.
	Created

	// Processing indicates the order is being worked on.
	Processing

	// Completed indicates the order was fulfilled. Terminal.
	Completed

	// Cancelled indicates the order was abandoned while processing. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Created:    "CREATED",
		Processing: "PROCESSING",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

// getTransitions lists, for every non-terminal status, the statuses it may move to.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown statuses have no outgoing edges
	return map[Status][]Status{
		Created:    {Processing},
		Processing: {Completed, Cancelled},
	}
}

// Statuses returns all valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Created, Processing, Completed, Cancelled}
}

// ParseStatus maps a wire name such as "PROCESSING" to its Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the four lifecycle states.
func (s Status) Validate() error {
	if !slices.Contains(Statuses(), s) {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return getStatusStrings()[Unknown]
}

// IsTerminal reports whether no further change is allowed.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether to is directly reachable from s.
func (s Status) CanTransitionTo(to Status) bool {
	return slices.Contains(getTransitions()[s], to)
}

// TransitionTo returns to if the graph allows moving there from s.
// Any other request, including skipping PROCESSING or leaving a terminal
// status, fails with a TransitionIsInvalidError naming both ends.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(to) {
		return Unknown, errs.NewTransitionIsInvalidError("status", s.String(), to.String())
	}
	return to, nil
}

func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
