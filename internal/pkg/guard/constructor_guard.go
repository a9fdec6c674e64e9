// Package guard detects value objects and entities that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in domain types that must only be created through
// their NewXxx function. Its zero value reports "not constructed".
//
// Example:
//
//	type PrepTime struct {
//	    label string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPrepTime(label string) (PrepTime, error) {
//	    // validation...
//	    return PrepTime{label: label, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p PrepTime) Validate() error {
//	    return p.guard.Validate(ErrPrepTimeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
