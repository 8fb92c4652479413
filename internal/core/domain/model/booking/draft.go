package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"laundry/internal/pkg/errs"
)

// Wizard steps in the order the customer walks through them.
const (
	StepContact  = 1
	StepSchedule = 2
	StepService  = 3
	StepConfirm  = 4
)

// MissingInformationTitle is the headline shown for every blocked step.
const MissingInformationTitle = "Missing Information"

var ErrStepIsInvalid = errors.New("wizard step must be between 1 and 4")

// MissingInformationError blocks the wizard on Step. It is a validation
// outcome, never a failure of the booking flow itself.
type MissingInformationError struct {
	Step        int
	Description string
	Cause       error
}

func newMissingInformationError(step int, description string, cause error) *MissingInformationError {
	return &MissingInformationError{Step: step, Description: description, Cause: cause}
}

func (e *MissingInformationError) Error() string {
	return fmt.Sprintf("%s (step %d): %s", MissingInformationTitle, e.Step, e.Description)
}

// Title is always MissingInformationTitle.
func (e *MissingInformationError) Title() string {
	return MissingInformationTitle
}

// Unwrap lets callers classify the error as a missing value.
func (e *MissingInformationError) Unwrap() []error {
	return []error{errs.ErrValueIsRequired, e.Cause}
}

// Draft is the in-progress wizard form. Empty fields mean "not filled yet".
type Draft struct {
	FullName            string
	Phone               string
	HostelName          string
	RoomNumber          string
	Date                time.Time
	Slot                TimeSlot
	LaundryType         LaundryType
	Items               Items
	SpecialInstructions string
}

// ValidateStep checks only the fields owned by step. A nil result means the
// wizard may move on.
func (d Draft) ValidateStep(step int) error {
	switch step {
	case StepContact:
		if err := d.validateContact(); err != nil {
			return newMissingInformationError(step, "Please fill in all required fields", err)
		}
	case StepSchedule:
		if d.Date.IsZero() || d.Slot.Validate() != nil {
			return newMissingInformationError(step, "Please select date and time slot",
				errors.Join(d.validateDate(), d.Slot.Validate()))
		}
	case StepService:
		if err := d.LaundryType.Validate(); err != nil {
			return newMissingInformationError(step, "Please select a laundry type", err)
		}
	case StepConfirm:
		if d.Items.Total() < 1 {
			return newMissingInformationError(step, "Please add at least one item",
				errs.NewValueIsRequiredError("items"))
		}
	default:
		return errs.NewValueIsOutOfRangeErrorWithCause("step", step, StepContact, StepConfirm, ErrStepIsInvalid)
	}
	return nil
}

// Validate runs every step in order and returns the first blocking one.
func (d Draft) Validate() error {
	for step := StepContact; step <= StepConfirm; step++ {
		if err := d.ValidateStep(step); err != nil {
			return err
		}
	}
	return nil
}

func (d Draft) validateContact() error {
	var errList []error
	for name, value := range map[string]string{
		"name":        d.FullName,
		"phone":       d.Phone,
		"hostel name": d.HostelName,
		"room number": d.RoomNumber,
	} {
		if strings.TrimSpace(value) == "" {
			errList = append(errList, errs.NewValueIsRequiredError(name))
		}
	}
	return errors.Join(errList...)
}

func (d Draft) validateDate() error {
	if d.Date.IsZero() {
		return errs.NewValueIsRequiredError("booking date")
	}
	return nil
}
