package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/booking"
)

type ChangeBookingStatusCommandHandler struct {
	uowFactory BookingUoWFactory
}

func NewChangeBookingStatusCommandHandler(uowFactory BookingUoWFactory) ChangeBookingStatusCommandHandler {
	return ChangeBookingStatusCommandHandler{uowFactory: uowFactory}
}

func (h *ChangeBookingStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeBookingStatusCommand,
) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BookingRepository()
	b, err := repo.Get(ctx, cmd.BookingID())
	if err != nil {
		return nil, err
	}

	if owner := cmd.Owner(); owner != nil && !b.IsOwnedBy(*owner) {
		return nil, ErrBookingIsNotOwned
	}

	if err = b.ChangeStatus(cmd.Status(), time.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return h.uowFactory.Create().BookingRepository().Get(ctx, b.ID())
}
