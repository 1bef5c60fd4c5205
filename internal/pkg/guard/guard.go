// Package guard provides ConstructorGuard, a marker embedded in value objects,
// aggregates and commands so that zero values built by struct literals fail
// validation instead of silently flowing through the domain.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was built by a constructor.
//
// Example:
//
//	type Room struct {
//	    number string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewRoom(number string) (Room, error) {
//	    if number == "" {
//	        return Room{}, errs.NewValueIsRequiredError("room")
//	    }
//	    return Room{number: number, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r Room) Validate() error {
//	    return r.guard.Validate(ErrRoomIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
