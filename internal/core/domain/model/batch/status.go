package batch

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status is the machine-load state of a batch.
type Status int

const (
	Unknown Status = iota
	Created
	Washing
	Drying
	Completed
)

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "created",
		Washing:   "washing",
		Drying:    "drying",
		Completed: "completed",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"batch status is invalid",
		fmt.Errorf("%q is not a valid batch status", s),
	)
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"batch status is invalid",
			fmt.Errorf("%d is not a valid batch status", s),
		)
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Next returns the following status; Completed has none.
func (s Status) Next() (Status, error) {
	switch s {
	case Created:
		return Washing, nil
	case Washing:
		return Drying, nil
	case Drying:
		return Completed, nil
	case Unknown, Completed:
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"batch status is invalid",
		fmt.Errorf("%s has no next status", s),
	)
}
