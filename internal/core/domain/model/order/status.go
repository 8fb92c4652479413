package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the lifecycle state of a laundry order.
//
// State transitions available to staff:
//
//	Pending ──> PickedUp ──> Washing ──> Drying ──> Completed ──> Delivered
//
// Admins bypass the chain and may set any valid status.
// The string form of each status is the literal stored in laundry_orders.status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a customer creates an order.
	Pending

	// PickedUp means staff collected the bag (or it was dropped off).
	PickedUp

	// Washing means the bag is in a washer.
	Washing

	// Drying means the bag moved to a dryer.
	Drying

	// Completed means the laundry is clean and waiting for hand-over.
	Completed

	// Delivered is the final state; it has no successor.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		PickedUp:  "picked_up",
		Washing:   "washing",
		Drying:    "drying",
		Completed: "completed",
		Delivered: "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		PickedUp:  "picked_up",
		Washing:   "washing",
		Drying:    "drying",
		Completed: "completed",
		Delivered: "delivered",
	}
}

func getSuccessors() map[Status]Status {
	//nolint:exhaustive // Delivered and Unknown have no successor
	return map[Status]Status{
		Pending:   PickedUp,
		PickedUp:  Washing,
		Washing:   Drying,
		Drying:    Completed,
		Completed: Delivered,
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, PickedUp, Washing, Drying, Completed, Delivered}
}

// ParseStatus converts a stored or user supplied literal into a Status.
// Matching is exact and case-sensitive.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the six lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the storage literal, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Label returns the display name used on badges, e.g. "Picked Up".
func (s Status) Label() string {
	switch s {
	case Pending:
		return "Pending"
	case PickedUp:
		return "Picked Up"
	case Washing:
		return "Washing"
	case Drying:
		return "Drying"
	case Completed:
		return "Completed"
	case Delivered:
		return "Delivered"
	case Unknown:
	}
	return "Pending"
}

// ActionLabel is the caption of the staff button that moves an order into s.
func (s Status) ActionLabel() string {
	switch s {
	case PickedUp:
		return "Mark as Picked Up"
	case Washing:
		return "Start Washing"
	case Drying:
		return "Start Drying"
	case Completed:
		return "Mark as Completed"
	case Delivered:
		return "Mark as Delivered"
	case Unknown, Pending:
	}
	return ""
}

// HasNext reports whether the staff advance action is available.
func (s Status) HasNext() bool {
	_, ok := getSuccessors()[s]
	return ok
}

// Next returns the single successor of s in the staff chain.
//
// Returns:
//   - (successor, nil) for Pending through Completed
//   - (Unknown, error) for Delivered and invalid statuses
func (s Status) Next() (Status, error) {
	next, ok := getSuccessors()[s]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s has no next status", s.String()),
		)
	}
	return next, nil
}

// IsOngoing reports whether the order is physically being processed.
func (s Status) IsOngoing() bool {
	return s == PickedUp || s == Washing || s == Drying
}
