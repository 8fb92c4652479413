package commands_test

import (
	"context"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/batch"
	"laundry/internal/core/domain/model/booking"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/profile"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return orderOrNil(args.Get(0)), args.Error(1)
}
func (m *MockOrderRepository) GetByLaundryID(ctx context.Context, laundryID kernel.Token) (*order.Order, error) {
	args := m.Called(ctx, laundryID)
	return orderOrNil(args.Get(0)), args.Error(1)
}

func orderOrNil(v any) *order.Order {
	if o, ok := v.(*order.Order); ok {
		return o
	}
	return nil
}

type MockStatusHistoryRepository struct{ mock.Mock }

func (m *MockStatusHistoryRepository) Append(ctx context.Context, change order.StatusChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}
func (m *MockStatusHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.StatusChange, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]order.StatusChange), args.Error(1)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*booking.Booking)
	return b, args.Error(1)
}
func (m *MockBookingRepository) ListPendingBefore(ctx context.Context, day time.Time) ([]*booking.Booking, error) {
	args := m.Called(ctx, day)
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

type MockBatchRepository struct{ mock.Mock }

func (m *MockBatchRepository) Add(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBatchRepository) Update(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*batch.Batch)
	return b, args.Error(1)
}

type MockProfileRepository struct{ mock.Mock }

func (m *MockProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProfileRepository) Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*profile.Profile)
	return p, args.Error(1)
}

type MockActivityRepository struct{ mock.Mock }

func (m *MockActivityRepository) Record(ctx context.Context, a profile.Activity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishStatusChanged(ctx context.Context, o *order.Order, change order.StatusChange) error {
	args := m.Called(ctx, o, change)
	return args.Error(0)
}

// MockUoW implements every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) StatusHistoryRepository() ports.StatusHistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusHistoryRepository)
}
func (m *MockUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}
func (m *MockUoW) ProfileRepository() ports.ProfileRepository {
	args := m.Called()
	return args.Get(0).(ports.ProfileRepository)
}
func (m *MockUoW) ActivityRepository() ports.ActivityRepository {
	args := m.Called()
	return args.Get(0).(ports.ActivityRepository)
}
func (m *MockUoW) BatchRepository() ports.BatchRepository {
	args := m.Called()
	return args.Get(0).(ports.BatchRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) create() *MockUoW {
	args := m.MethodCalled("Create")
	return args.Get(0).(*MockUoW)
}

type orderUoWFactory struct{ *MockUoWFactory }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.create() }

type bookingUoWFactory struct{ *MockUoWFactory }

func (f bookingUoWFactory) Create() commands.BookingUoW { return f.create() }

type batchUoWFactory struct{ *MockUoWFactory }

func (f batchUoWFactory) Create() commands.BatchUoW { return f.create() }

type profileUoWFactory struct{ *MockUoWFactory }

func (f profileUoWFactory) Create() commands.ProfileUoW { return f.create() }
