package commands

import (
	"context"
)

// ExpireBookingsCommandHandler cancels stale pending bookings in one
// transaction and reports how many it cancelled.
type ExpireBookingsCommandHandler struct {
	uowFactory BookingUoWFactory
}

func NewExpireBookingsCommandHandler(uowFactory BookingUoWFactory) ExpireBookingsCommandHandler {
	return ExpireBookingsCommandHandler{uowFactory: uowFactory}
}

func (h *ExpireBookingsCommandHandler) Handle(ctx context.Context, cmd ExpireBookingsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BookingRepository()
	stale, err := repo.ListPendingBefore(ctx, cmd.Today())
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, b := range stale {
		if !b.IsExpired(cmd.Today()) {
			continue
		}
		if err = b.Cancel(cmd.Today()); err != nil {
			return 0, err
		}
		if err = repo.Update(ctx, b); err != nil {
			return 0, err
		}
		cancelled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cancelled, nil
}
