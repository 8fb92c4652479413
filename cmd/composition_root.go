package cmd

import (
	"context"
	"log/slog"

	httpin "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/core/application/session"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/profile"
	"laundry/internal/core/ports"
	"laundry/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, publisher ports.OrderEventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) bookingUoWFactory() commands.BookingUoWFactory {
	return FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() *commands.AdvanceOrderStatusCommandHandler {
	h := commands.NewAdvanceOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
	return &h
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() *commands.SetOrderStatusCommandHandler {
	h := commands.NewSetOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
	return &h
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() *commands.CreateBookingCommandHandler {
	h := commands.NewCreateBookingCommandHandler(c.bookingUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChangeBookingStatusCommandHandler() *commands.ChangeBookingStatusCommandHandler {
	h := commands.NewChangeBookingStatusCommandHandler(c.bookingUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateExpireBookingsCommandHandler() *commands.ExpireBookingsCommandHandler {
	h := commands.NewExpireBookingsCommandHandler(c.bookingUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateBatchCommandHandler() *commands.BatchCommandHandler {
	h := commands.NewBatchCommandHandler(FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	}))
	return &h
}

func (c *CompositionRoot) CreateProfileCommandHandler() *commands.ProfileCommandHandler {
	h := commands.NewProfileCommandHandler(FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	}))
	return &h
}

// CreateSessionManager wires the session observers: one log line and one
// user_activity row per sign-in and sign-out.
func (c *CompositionRoot) CreateSessionManager() *session.Manager {
	return session.NewManager(
		uowProfileReader{factory: &c.uowFactory},
		session.LoggingObserver(c.logger),
		session.ActivityObserver(uowActivityRecorder{factory: &c.uowFactory}, c.logger),
	)
}

func (c *CompositionRoot) CreateHTTPServer() (*httpin.Server, error) {
	auth, err := httpin.NewAuthenticator(c.cfg.AuthJWTSecret, c.cfg.AuthIssuer, c.cfg.AuthAudience)
	if err != nil {
		return nil, err
	}

	handlers := httpin.Handlers{
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		AdvanceOrderStatus:  c.CreateAdvanceOrderStatusCommandHandler(),
		SetOrderStatus:      c.CreateSetOrderStatusCommandHandler(),
		CreateBooking:       c.CreateCreateBookingCommandHandler(),
		ChangeBookingStatus: c.CreateChangeBookingStatusCommandHandler(),
		Batches:             c.CreateBatchCommandHandler(),
		Profiles:            c.CreateProfileCommandHandler(),

		LookupOrder:          queries.NewLookupOrderQueryHandler(c.gormDB),
		ListOrders:           queries.NewListOrdersQueryHandler(c.gormDB),
		ListCustomerOrders:   queries.NewListCustomerOrdersQueryHandler(c.gormDB),
		GetDashboardStats:    queries.NewGetDashboardStatsQueryHandler(c.gormDB),
		GetOrderHistory:      queries.NewGetOrderHistoryQueryHandler(c.gormDB),
		ListCustomerBookings: queries.NewListCustomerBookingsQueryHandler(c.gormDB),
		GetBookingTicket:     queries.NewGetBookingTicketQueryHandler(c.gormDB),
		GetProfile:           queries.NewGetProfileQueryHandler(c.gormDB),
	}

	return httpin.NewServer(handlers, c.CreateSessionManager(), auth, c.logger), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireBookingsCommandHandler(),
		queries.NewGetDashboardStatsQueryHandler(c.gormDB),
		c.cfg.BookingExpirySchedule,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW {
	return f()
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}

// uowProfileReader reads outside any transaction; every call gets its own
// unit of work so concurrent requests never share tracking state.
type uowProfileReader struct {
	factory *postgres.GormUnitOfWorkFactory
}

func (r uowProfileReader) Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error) {
	return r.factory.Create().ProfileRepository().Get(ctx, id)
}

type uowActivityRecorder struct {
	factory *postgres.GormUnitOfWorkFactory
}

func (r uowActivityRecorder) Record(ctx context.Context, activity profile.Activity) error {
	return r.factory.Create().ActivityRepository().Record(ctx, activity)
}
