package commands

import (
	"errors"

	"laundry/internal/core/domain/model/booking"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrChangeBookingStatusCommandIsNotConstructed = errors.New(
		"ChangeBookingStatusCommand must be created via a ChangeBookingStatusCommand constructor",
	)
	ErrBookingIsNotOwned = errors.New("booking belongs to another user")
)

// ChangeBookingStatusCommand moves a booking along its lifecycle. Admins may
// apply any legal transition; customers may only cancel their own booking.
type ChangeBookingStatusCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	status    booking.Status
	owner     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeBookingStatusCommand is the admin form.
func NewChangeBookingStatusCommand(bookingID kernel.UUID, status string) (ChangeBookingStatusCommand, error) {
	s, err := booking.ParseStatus(status)
	if err = errors.Join(bookingID.Validate(), err); err != nil {
		return ChangeBookingStatusCommand{}, err
	}
	return ChangeBookingStatusCommand{bookingID: bookingID, status: s, guard: guard.NewConstructorGuard()}, nil
}

// NewCancelBookingCommand is the customer form: cancellation of a booking
// owned by userID.
func NewCancelBookingCommand(bookingID, userID kernel.UUID) (ChangeBookingStatusCommand, error) {
	if err := errors.Join(bookingID.Validate(), userID.Validate()); err != nil {
		return ChangeBookingStatusCommand{}, err
	}
	return ChangeBookingStatusCommand{
		bookingID: bookingID,
		status:    booking.Cancelled,
		owner:     &userID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeBookingStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeBookingStatusCommandIsNotConstructed)
}

func (c ChangeBookingStatusCommand) BookingID() kernel.UUID { return c.bookingID }
func (c ChangeBookingStatusCommand) Status() booking.Status { return c.status }

// Owner is set only for customer cancellations.
func (c ChangeBookingStatusCommand) Owner() *kernel.UUID { return c.owner }
