package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// CreateOrderCommandHandler stores a new pending order with a generated
// laundry id.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the order and returns it as read back from the store.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewLaundryID(now),
		cmd.UserID(),
		cmd.WashType(),
		cmd.PickupType(),
		cmd.PickupAddress(),
		now,
	)
	if err != nil {
		return nil, err
	}
	o.SetSpecialInstructions(cmd.SpecialInstructions())
	o.SetEstimatedCost(cmd.EstimatedCost())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return h.uowFactory.Create().OrderRepository().Get(ctx, o.ID())
}
