// Package guard holds the constructor guard shared by commands, queries and
// domain value objects.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. Embedding it in
// a command or value object lets Validate tell a constructed value apart from
// a zero value assembled by hand.
//
// Example usage:
//
//	var ErrTicketNotConstructed = errors.New("Ticket must be created via NewTicket")
//
//	type Ticket struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewTicket(code string) (Ticket, error) {
//	    if code == "" {
//	        return Ticket{}, errors.New("code is required")
//	    }
//	    return Ticket{code: code, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (t Ticket) Validate() error {
//	    return t.guard.Validate(ErrTicketNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guarded value was not built through its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
