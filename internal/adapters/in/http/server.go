// Package http exposes the laundry service over a JSON API.
//
// Every /api/v1 route requires a bearer token. Routes under /staff need the
// staff or admin role and routes under /admin need the admin role; the role
// is read from the caller's profile on every request.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"laundry/internal/core/application/session"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/profile"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder         *commands.CreateOrderCommandHandler
	AdvanceOrderStatus  *commands.AdvanceOrderStatusCommandHandler
	SetOrderStatus      *commands.SetOrderStatusCommandHandler
	CreateBooking       *commands.CreateBookingCommandHandler
	ChangeBookingStatus *commands.ChangeBookingStatusCommandHandler
	Batches             *commands.BatchCommandHandler
	Profiles            *commands.ProfileCommandHandler

	LookupOrder          queries.LookupOrderQueryHandler
	ListOrders           queries.ListOrdersQueryHandler
	ListCustomerOrders   queries.ListCustomerOrdersQueryHandler
	GetDashboardStats    queries.GetDashboardStatsQueryHandler
	GetOrderHistory      queries.GetOrderHistoryQueryHandler
	ListCustomerBookings queries.ListCustomerBookingsQueryHandler
	GetBookingTicket     queries.GetBookingTicketQueryHandler
	GetProfile           queries.GetProfileQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	sessions *session.Manager
	auth     *Authenticator
	logger   *slog.Logger
	clock    func() time.Time
}

func NewServer(handlers Handlers, sessions *session.Manager, auth *Authenticator, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		sessions: sessions,
		auth:     auth,
		logger:   logger.With("component", "http"),
		clock:    time.Now,
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", s.auth.Middleware())

	api.GET("/session", s.GetSession)
	api.DELETE("/session", s.DeleteSession)
	api.GET("/profile", s.GetProfile)
	api.PUT("/profile", s.UpdateProfile)

	api.POST("/bookings/steps/:step/validate", s.ValidateBookingStep)
	api.POST("/bookings", s.CreateBooking)
	api.GET("/bookings", s.ListBookings)
	api.GET("/bookings/:id", s.GetBooking)
	api.POST("/bookings/:id/cancel", s.CancelBooking)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListMyOrders)

	staff := api.Group("/staff", s.requireRole(profile.Role.CanOperate))
	staff.GET("/orders/:laundryId", s.LookupOrder)
	staff.POST("/orders/:laundryId/advance", s.AdvanceOrder)
	staff.POST("/batches", s.CreateBatch)
	staff.POST("/batches/:id/orders", s.AttachOrders)
	staff.POST("/batches/:id/advance", s.AdvanceBatch)

	admin := api.Group("/admin", s.requireRole(profile.Role.IsAdmin))
	admin.GET("/orders", s.ListOrders)
	admin.GET("/stats", s.GetStats)
	admin.PUT("/orders/:id/status", s.SetOrderStatus)
	admin.GET("/orders/:id/history", s.GetOrderHistory)
	admin.PUT("/bookings/:id/status", s.SetBookingStatus)
	admin.PUT("/profiles/:id/role", s.ChangeRole)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}
