package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/batch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedBatch(t *testing.T, status batch.Status) *batch.Batch {
	t.Helper()
	number, err := kernel.ParseToken("BAT20250123F00D")
	require.NoError(t, err)
	b, err := batch.RestoreBatch(batch.Snapshot{
		ID:        kernel.NewUUID(),
		Number:    number,
		WashType:  order.Normal,
		Status:    status,
		CreatedBy: kernel.NewUUID(),
		CreatedAt: time.Date(2025, 1, 23, 7, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return b
}

func TestBatchCommands(t *testing.T) {
	_, err := commands.NewCreateBatchCommand("steam", kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewAttachOrdersCommand(kernel.NewUUID(), nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cmd, err := commands.NewAttachOrdersCommand(kernel.NewUUID(), []string{" LND1 ", "LND2"})
	require.NoError(t, err)
	require.Len(t, cmd.LaundryIDs(), 2)
	assert.Equal(t, "LND1", cmd.LaundryIDs()[0].String())
}

func TestBatchCommandHandler_Create(t *testing.T) {
	ctx := t.Context()
	staff := kernel.NewUUID()
	cmd, err := commands.NewCreateBatchCommand("stain_warm", staff)
	require.NoError(t, err)

	repo := new(MockBatchRepository)
	uow := new(MockUoW)
	readUoW := new(MockUoW)
	stored := storedBatch(t, batch.Created)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(b *batch.Batch) bool {
			return b.Status() == batch.Created && b.WashType() == order.StainWarm && b.CreatedBy().IsEqual(staff)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	readUoW.On("BatchRepository").Return(repo).Once()
	repo.On("Get", ctx, mock.AnythingOfType("kernel.UUID")).Return(stored, nil).Once()

	h := commands.NewBatchCommandHandler(batchUoWFactory{factoryFor(uow, readUoW)})
	got, err := h.Create(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, stored, got)
	uow.AssertExpectations(t)
}

func TestBatchCommandHandler_Attach(t *testing.T) {
	t.Run("assigns every scanned order", func(t *testing.T) {
		ctx := t.Context()
		b := storedBatch(t, batch.Created)
		o := storedOrder(t, order.Washing)
		cmd, err := commands.NewAttachOrdersCommand(b.ID(), []string{o.LaundryID().String()})
		require.NoError(t, err)

		batches := new(MockBatchRepository)
		orders := new(MockOrderRepository)
		uow := new(MockUoW)
		readUoW := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("BatchRepository").Return(batches).Twice()
		uow.On("OrderRepository").Return(orders).Once()
		batches.On("Get", ctx, b.ID()).Return(b, nil).Twice()
		orders.On("GetByLaundryID", ctx, o.LaundryID()).Return(o, nil).Once()
		orders.On("Update", ctx, mock.MatchedBy(func(got *order.Order) bool {
			return got.BatchID() != nil && got.BatchID().IsEqual(b.ID())
		})).Return(nil).Once()
		batches.On("Update", ctx, mock.MatchedBy(func(got *batch.Batch) bool {
			return got.TotalOrders() == 1
		})).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		readUoW.On("BatchRepository").Return(batches).Once()

		h := commands.NewBatchCommandHandler(batchUoWFactory{factoryFor(uow, readUoW)})
		got, err := h.Attach(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, got.TotalOrders())
		orders.AssertExpectations(t)
		batches.AssertExpectations(t)
	})

	t.Run("closed batch rejects orders", func(t *testing.T) {
		ctx := t.Context()
		b := storedBatch(t, batch.Washing)
		o := storedOrder(t, order.Washing)
		cmd, _ := commands.NewAttachOrdersCommand(b.ID(), []string{o.LaundryID().String()})

		batches := new(MockBatchRepository)
		orders := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("BatchRepository").Return(batches).Once()
		uow.On("OrderRepository").Return(orders).Once()
		batches.On("Get", ctx, b.ID()).Return(b, nil).Once()
		orders.On("GetByLaundryID", ctx, o.LaundryID()).Return(o, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewBatchCommandHandler(batchUoWFactory{factoryFor(uow)})
		_, err := h.Attach(ctx, cmd)

		require.ErrorIs(t, err, batch.ErrBatchIsClosed)
		orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}

func TestBatchCommandHandler_Advance(t *testing.T) {
	ctx := t.Context()
	b := storedBatch(t, batch.Created)
	cmd, err := commands.NewAdvanceBatchCommand(b.ID())
	require.NoError(t, err)

	repo := new(MockBatchRepository)
	uow := new(MockUoW)
	readUoW := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BatchRepository").Return(repo).Twice()
	repo.On("Get", ctx, b.ID()).Return(b, nil).Twice()
	repo.On("Update", ctx, b).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	readUoW.On("BatchRepository").Return(repo).Once()

	h := commands.NewBatchCommandHandler(batchUoWFactory{factoryFor(uow, readUoW)})
	got, err := h.Advance(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, batch.Washing, got.Status())
	assert.NotNil(t, got.WashingStartedAt())
}
