package booking

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status is the lifecycle state of a booking.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	Pending
	Confirmed
	InProgress
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Confirmed:  "confirmed",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Confirmed:  "confirmed",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func getAllowedTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no transitions
	return map[Status][]Status{
		Pending:    {Confirmed, Cancelled},
		Confirmed:  {InProgress, Cancelled},
		InProgress: {Completed},
	}
}

// ParseStatus converts a stored literal into a Status. Matching is exact.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"booking status is invalid",
		fmt.Errorf("%q is not a valid booking status", s),
	)
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"booking status is invalid",
			fmt.Errorf("%d is not a valid booking status", s),
		)
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether target is a legal next status.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target when the move from s is allowed.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return s, err
	}
	if !s.CanTransitionTo(target) {
		return s, errs.NewValueIsInvalidErrorWithCause(
			"booking status transition is invalid",
			fmt.Errorf("cannot move booking from %s to %s", s, target),
		)
	}
	return target, nil
}

// Confirm moves a pending booking to Confirmed.
func (s Status) Confirm() (Status, error) { return s.TransitionTo(Confirmed) }

// Start moves a confirmed booking to InProgress.
func (s Status) Start() (Status, error) { return s.TransitionTo(InProgress) }

// Complete moves an in-progress booking to Completed.
func (s Status) Complete() (Status, error) { return s.TransitionTo(Completed) }

// Cancel is allowed only before work starts.
func (s Status) Cancel() (Status, error) { return s.TransitionTo(Cancelled) }
