package http

import (
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type CreateOrderRequest struct {
	WashType            string  `json:"wash_type"`
	PickupType          string  `json:"pickup_type"`
	PickupAddress       string  `json:"pickup_address"`
	SpecialInstructions string  `json:"special_instructions"`
	EstimatedCost       *string `json:"estimated_cost"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Invalid Request", "Invalid request body")
	}

	var estimated *kernel.Money
	if req.EstimatedCost != nil {
		cost, err := kernel.MoneyFromString(*req.EstimatedCost)
		if err != nil {
			return badRequest(c, err)
		}
		estimated = &cost
	}

	cmd, err := commands.NewCreateOrderCommand(
		currentUser(c),
		req.WashType,
		req.PickupType,
		req.PickupAddress,
		req.SpecialInstructions,
		estimated,
	)
	if err != nil {
		return badRequest(c, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, newOrderResponse(orderViewOf(created)))
}

// ListMyOrders handles GET /api/v1/orders.
func (s *Server) ListMyOrders(c echo.Context) error {
	query, err := queries.NewListCustomerOrdersQuery(currentUser(c))
	if err != nil {
		return badRequest(c, err)
	}

	views, err := s.handlers.ListCustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, newOrderListResponse(views))
}
