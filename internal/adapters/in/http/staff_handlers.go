package http

import (
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// LookupOrder handles GET /api/v1/staff/orders/:laundryId, the scan result.
func (s *Server) LookupOrder(c echo.Context) error {
	query, err := queries.NewLookupOrderQuery(c.Param("laundryId"))
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Invalid Request", "Please enter a Laundry ID")
	}

	view, err := s.handlers.LookupOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, newOrderResponse(view))
}

type AdvanceOrderRequest struct {
	Feedback   string `json:"feedback"`
	StickyNote string `json:"sticky_note"`
}

// AdvanceOrder handles POST /api/v1/staff/orders/:laundryId/advance.
func (s *Server) AdvanceOrder(c echo.Context) error {
	var req AdvanceOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Invalid Request", "Invalid request body")
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(c.Param("laundryId"), currentUser(c), req.Feedback, req.StickyNote)
	if err != nil {
		return badRequest(c, err)
	}

	updated, err := s.handlers.AdvanceOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.failTransition(c, err)
	}

	return c.JSON(http.StatusOK, newOrderResponse(orderViewOf(updated)))
}

type CreateBatchRequest struct {
	WashType string `json:"wash_type"`
}

// CreateBatch handles POST /api/v1/staff/batches.
func (s *Server) CreateBatch(c echo.Context) error {
	var req CreateBatchRequest
	if err := c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Invalid Request", "Invalid request body")
	}

	cmd, err := commands.NewCreateBatchCommand(req.WashType, currentUser(c))
	if err != nil {
		return badRequest(c, err)
	}

	created, err := s.handlers.Batches.Create(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, newBatchResponse(created))
}

type AttachOrdersRequest struct {
	LaundryIDs []string `json:"laundry_ids"`
}

// AttachOrders handles POST /api/v1/staff/batches/:id/orders.
func (s *Server) AttachOrders(c echo.Context) error {
	batchID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	var req AttachOrdersRequest
	if err = c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Invalid Request", "Invalid request body")
	}

	cmd, err := commands.NewAttachOrdersCommand(batchID, req.LaundryIDs)
	if err != nil {
		return badRequest(c, err)
	}

	updated, err := s.handlers.Batches.Attach(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, newBatchResponse(updated))
}

// AdvanceBatch handles POST /api/v1/staff/batches/:id/advance.
func (s *Server) AdvanceBatch(c echo.Context) error {
	batchID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewAdvanceBatchCommand(batchID)
	if err != nil {
		return badRequest(c, err)
	}

	updated, err := s.handlers.Batches.Advance(c.Request().Context(), cmd)
	if err != nil {
		return s.failTransition(c, err)
	}

	return c.JSON(http.StatusOK, newBatchResponse(updated))
}
