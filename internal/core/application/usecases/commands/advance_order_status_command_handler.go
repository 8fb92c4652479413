package commands

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/inflight"
)

// AdvanceOrderStatusCommandHandler applies the staff transition.
//
// The status write and its history row are committed in one transaction.
// After commit the order is read back and returned; the published event is
// best effort. A second advance for the same laundry id while one is still
// running fails fast with inflight.ErrRequestInFlight.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	inFlight   *inflight.Guard
	logger     *slog.Logger
}

func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		inFlight:   &inflight.Guard{},
		logger:     logger.With("component", "advance_order_status"),
	}
}

func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	release, err := h.inFlight.Acquire(cmd.LaundryID().String())
	if err != nil {
		return nil, err
	}
	defer release()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetByLaundryID(ctx, cmd.LaundryID())
	if err != nil {
		return nil, err
	}

	change, err := o.Advance(cmd.Actor(), cmd.Notes(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.StatusHistoryRepository().Append(ctx, change); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishStatusChanged(ctx, h.publisher, h.logger, o, change)

	return h.uowFactory.Create().OrderRepository().Get(ctx, o.ID())
}

func publishStatusChanged(
	ctx context.Context,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
	o *order.Order,
	change order.StatusChange,
) {
	if publisher == nil {
		return
	}
	if err := publisher.PublishStatusChanged(ctx, o, change); err != nil {
		logger.WarnContext(ctx, "Failed to publish status change",
			"laundry_id", o.LaundryID().String(),
			"new_status", change.Next().String(),
			"error", err)
	}
}
