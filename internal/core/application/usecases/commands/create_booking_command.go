package commands

import (
	"errors"

	"laundry/internal/core/domain/model/booking"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// CreateBookingCommand submits a completed booking wizard.
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	draft  booking.Draft

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand runs every wizard step check. The first blocking
// step is returned as a *booking.MissingInformationError.
func NewCreateBookingCommand(userID kernel.UUID, draft booking.Draft) (CreateBookingCommand, error) {
	if err := errors.Join(userID.Validate(), draft.Validate()); err != nil {
		return CreateBookingCommand{}, err
	}
	return CreateBookingCommand{userID: userID, draft: draft, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

func (c CreateBookingCommand) UserID() kernel.UUID { return c.userID }
func (c CreateBookingCommand) Draft() booking.Draft { return c.draft }
