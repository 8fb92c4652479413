package http

import (
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/admin/orders?search=&status=.
func (s *Server) ListOrders(c echo.Context) error {
	query, err := queries.NewListOrdersQuery(c.QueryParam("search"), c.QueryParam("status"))
	if err != nil {
		return badRequest(c, err)
	}

	views, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, newOrderListResponse(views))
}

// GetStats handles GET /api/v1/admin/stats.
func (s *Server) GetStats(c echo.Context) error {
	stats, err := s.handlers.GetDashboardStats.Handle(
		c.Request().Context(),
		queries.NewGetDashboardStatsQuery(s.clock()),
	)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

type StatusRequest struct {
	Status string `json:"status"`
}

// SetOrderStatus handles PUT /api/v1/admin/orders/:id/status.
func (s *Server) SetOrderStatus(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	var req StatusRequest
	if err = c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Invalid Request", "Invalid request body")
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, currentUser(c), req.Status)
	if err != nil {
		return badRequest(c, err)
	}

	updated, err := s.handlers.SetOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, newOrderResponse(orderViewOf(updated)))
}

// GetOrderHistory handles GET /api/v1/admin/orders/:id/history.
func (s *Server) GetOrderHistory(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return badRequest(c, err)
	}

	history, err := s.handlers.GetOrderHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, newHistoryResponse(history))
}

// SetBookingStatus handles PUT /api/v1/admin/bookings/:id/status.
func (s *Server) SetBookingStatus(c echo.Context) error {
	bookingID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	var req StatusRequest
	if err = c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Invalid Request", "Invalid request body")
	}

	cmd, err := commands.NewChangeBookingStatusCommand(bookingID, req.Status)
	if err != nil {
		return badRequest(c, err)
	}

	updated, err := s.handlers.ChangeBookingStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.failTransition(c, err)
	}

	return c.JSON(http.StatusOK, newBookingResponse(bookingViewOf(updated)))
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// ChangeRole handles PUT /api/v1/admin/profiles/:id/role.
func (s *Server) ChangeRole(c echo.Context) error {
	userID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	var req ChangeRoleRequest
	if err = c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Invalid Request", "Invalid request body")
	}

	cmd, err := commands.NewChangeRoleCommand(currentUser(c), userID, req.Role)
	if err != nil {
		return badRequest(c, err)
	}

	updated, err := s.handlers.Profiles.ChangeRole(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, newProfileResponse(profileViewOf(updated)))
}
