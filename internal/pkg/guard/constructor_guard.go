// Package guard provides the constructor-guard pattern used by domain objects
// across the application. Embedding a ConstructorGuard in a struct makes it
// possible to detect zero-value instances that bypassed the designated
// constructor, so invariants established at construction time cannot be skipped.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value is "not constructed" and fails Validate.
//
// Example:
//
//	type Money struct {
//	    cents int64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewMoney(cents int64) (Money, error) {
//	    if cents < 0 {
//	        return Money{}, errors.New("cents cannot be negative")
//	    }
//	    return Money{cents: cents, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes Validate. Constructors embed
// the result into the object they build.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
