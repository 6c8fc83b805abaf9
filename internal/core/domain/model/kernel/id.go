package kernel

import (
	"fmt"
	"strconv"

	"orders/internal/pkg/errs"
)

// ErrIDIsNotConstructed is returned when validating the zero ID. Identifiers are
// handed out by the order store and start at 1.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be allocated by the order store or parsed via ParseID")

// ID identifies a stored order. Valid identifiers are positive; the zero value means
// "not assigned yet".
//
// Example usage:
//
//	id, err := kernel.ParseID("42")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(id) // 42
type ID int64

// NewID converts a raw integer into an ID, rejecting non-positive values.
func NewID(v int64) (ID, error) {
	id := ID(v)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseID parses the decimal representation used in URLs and logs.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not a number", s))
	}
	return NewID(v)
}

// Validate reports whether the ID has been assigned.
func (id ID) Validate() error {
	if id == 0 {
		return ErrIDIsNotConstructed
	}
	if id < 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", int64(id)))
	}
	return nil
}

// Int64 returns the raw value.
func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
