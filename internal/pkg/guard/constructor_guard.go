// Package guard provides ConstructorGuard, which lets value objects, commands and
// queries detect that they were built through their constructor rather than as a
// zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object is a zero
// value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in a struct and set only by that struct's constructor.
//
// Example usage:
//
//	var ErrEntryNotConstructed = errors.New("Entry must be created via NewEntry")
//
//	type Entry struct {
//	    productCode string
//	    guard       guard.ConstructorGuard
//	}
//
//	func NewEntry(productCode string) (Entry, error) {
//	    if productCode == "" {
//	        return Entry{}, errors.New("product code is required")
//	    }
//	    return Entry{productCode: productCode, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (e Entry) Validate() error {
//	    return e.guard.Validate(ErrEntryNotConstructed)
//	}
//
// The guard is a plain bool; it is immutable after construction and safe to copy and
// to read concurrently.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
