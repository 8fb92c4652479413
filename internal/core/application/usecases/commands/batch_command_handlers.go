package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/batch"
	"laundry/internal/core/domain/model/kernel"
)

// BatchCommandHandler serves the three batch operations over one unit of
// work factory.
//
// Example:
//
//	h := NewBatchCommandHandler(uowFactory)
//	b, err := h.Create(ctx, createCmd)
//	b, err = h.Attach(ctx, attachCmd)
//	b, err = h.Advance(ctx, advanceCmd)
type BatchCommandHandler struct {
	uowFactory BatchUoWFactory
}

func NewBatchCommandHandler(uowFactory BatchUoWFactory) BatchCommandHandler {
	return BatchCommandHandler{uowFactory: uowFactory}
}

// Create stores a new batch with a generated batch number.
func (h *BatchCommandHandler) Create(ctx context.Context, cmd CreateBatchCommand) (*batch.Batch, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	b, err := batch.NewBatch(kernel.NewUUID(), kernel.NewBatchNumber(now), cmd.WashType(), cmd.CreatedBy(), now)
	if err != nil {
		return nil, err
	}

	err = h.inTx(ctx, func(uow BatchUoW) error {
		return uow.BatchRepository().Add(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	return h.uowFactory.Create().BatchRepository().Get(ctx, b.ID())
}

// Attach links every listed order to the batch. One failing order aborts the
// whole request.
func (h *BatchCommandHandler) Attach(ctx context.Context, cmd AttachOrdersCommand) (*batch.Batch, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	err := h.inTx(ctx, func(uow BatchUoW) error {
		b, err := uow.BatchRepository().Get(ctx, cmd.BatchID())
		if err != nil {
			return err
		}

		orderRepo := uow.OrderRepository()
		now := time.Now()
		for _, laundryID := range cmd.LaundryIDs() {
			o, getErr := orderRepo.GetByLaundryID(ctx, laundryID)
			if getErr != nil {
				return getErr
			}
			if err = b.Attach(o, now); err != nil {
				return err
			}
			if err = orderRepo.Update(ctx, o); err != nil {
				return err
			}
		}

		return uow.BatchRepository().Update(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	return h.uowFactory.Create().BatchRepository().Get(ctx, cmd.BatchID())
}

// Advance moves the batch to its next stage.
func (h *BatchCommandHandler) Advance(ctx context.Context, cmd AdvanceBatchCommand) (*batch.Batch, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	err := h.inTx(ctx, func(uow BatchUoW) error {
		b, err := uow.BatchRepository().Get(ctx, cmd.BatchID())
		if err != nil {
			return err
		}
		if err = b.Advance(time.Now()); err != nil {
			return err
		}
		return uow.BatchRepository().Update(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	return h.uowFactory.Create().BatchRepository().Get(ctx, cmd.BatchID())
}

func (h *BatchCommandHandler) inTx(ctx context.Context, fn func(uow BatchUoW) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
