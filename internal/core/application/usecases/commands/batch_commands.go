package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrCreateBatchCommandIsNotConstructed = errors.New(
		"CreateBatchCommand must be created via NewCreateBatchCommand constructor",
	)
	ErrAttachOrdersCommandIsNotConstructed = errors.New(
		"AttachOrdersCommand must be created via NewAttachOrdersCommand constructor",
	)
	ErrAdvanceBatchCommandIsNotConstructed = errors.New(
		"AdvanceBatchCommand must be created via NewAdvanceBatchCommand constructor",
	)
)

// CreateBatchCommand opens an empty batch for one wash programme.
type CreateBatchCommand struct {
	washType  order.WashType
	createdBy kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateBatchCommand(washType string, createdBy kernel.UUID) (CreateBatchCommand, error) {
	wt, err := order.ParseWashType(washType)
	if err = errors.Join(err, createdBy.Validate()); err != nil {
		return CreateBatchCommand{}, err
	}
	return CreateBatchCommand{washType: wt, createdBy: createdBy, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateBatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBatchCommandIsNotConstructed)
}

func (c CreateBatchCommand) WashType() order.WashType { return c.washType }
func (c CreateBatchCommand) CreatedBy() kernel.UUID { return c.createdBy }

// AttachOrdersCommand adds scanned orders to a batch.
type AttachOrdersCommand struct {
	batchID    kernel.UUID
	laundryIDs []kernel.Token

	guard guard.ConstructorGuard
}

func NewAttachOrdersCommand(batchID kernel.UUID, laundryIDs []string) (AttachOrdersCommand, error) {
	if err := batchID.Validate(); err != nil {
		return AttachOrdersCommand{}, err
	}
	if len(laundryIDs) == 0 {
		return AttachOrdersCommand{}, errs.NewValueIsRequiredError("laundry ids")
	}

	tokens := make([]kernel.Token, 0, len(laundryIDs))
	for _, raw := range laundryIDs {
		token, err := kernel.ParseToken(raw)
		if err != nil {
			return AttachOrdersCommand{}, err
		}
		tokens = append(tokens, token)
	}

	return AttachOrdersCommand{batchID: batchID, laundryIDs: tokens, guard: guard.NewConstructorGuard()}, nil
}

func (c AttachOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAttachOrdersCommandIsNotConstructed)
}

func (c AttachOrdersCommand) BatchID() kernel.UUID { return c.batchID }
func (c AttachOrdersCommand) LaundryIDs() []kernel.Token { return c.laundryIDs }

// AdvanceBatchCommand moves a batch to its next machine stage.
type AdvanceBatchCommand struct {
	batchID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAdvanceBatchCommand(batchID kernel.UUID) (AdvanceBatchCommand, error) {
	if err := batchID.Validate(); err != nil {
		return AdvanceBatchCommand{}, err
	}
	return AdvanceBatchCommand{batchID: batchID, guard: guard.NewConstructorGuard()}, nil
}

func (c AdvanceBatchCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceBatchCommandIsNotConstructed)
}

func (c AdvanceBatchCommand) BatchID() kernel.UUID { return c.batchID }
