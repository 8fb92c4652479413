package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand is the staff action that moves a scanned order to
// its next status, optionally leaving feedback and a sticky note.
//
// Example:
//
//	cmd, err := NewAdvanceOrderStatusCommand("LND20250123A1B2C3", staffID, "one sock missing", "")
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd)
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	laundryID kernel.Token
	actor     kernel.UUID
	notes     order.Annotations

	guard guard.ConstructorGuard
}

func NewAdvanceOrderStatusCommand(
	laundryID string,
	actor kernel.UUID,
	feedback string,
	stickyNote string,
) (AdvanceOrderStatusCommand, error) {
	cmd := AdvanceOrderStatusCommand{
		notes: order.Annotations{Feedback: feedback, StickyNote: stickyNote},
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLaundryID(laundryID),
		cmd.setActor(actor),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

func (c AdvanceOrderStatusCommand) LaundryID() kernel.Token { return c.laundryID }
func (c AdvanceOrderStatusCommand) Actor() kernel.UUID { return c.actor }
func (c AdvanceOrderStatusCommand) Notes() order.Annotations { return c.notes }

func (c *AdvanceOrderStatusCommand) setLaundryID(raw string) error {
	laundryID, err := kernel.ParseToken(raw)
	if err != nil {
		return err
	}
	c.laundryID = laundryID
	return nil
}

func (c *AdvanceOrderStatusCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
