package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/booking"
	"laundry/internal/core/domain/model/kernel"
)

// CreateBookingCommandHandler stores a pending booking with its item rows and
// a freshly generated barcode token.
type CreateBookingCommandHandler struct {
	uowFactory BookingUoWFactory
}

func NewCreateBookingCommandHandler(uowFactory BookingUoWFactory) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{uowFactory: uowFactory}
}

func (h *CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	b, err := booking.NewBooking(kernel.NewUUID(), cmd.UserID(), kernel.NewBarcodeID(now), cmd.Draft(), now)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.BookingRepository().Add(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return h.uowFactory.Create().BookingRepository().Get(ctx, b.ID())
}
