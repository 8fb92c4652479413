package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/booking"
	"laundry/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// BookingDraftRequest is the wizard form. Unset or unknown choices are left
// empty so that step validation reports them as missing.
type BookingDraftRequest struct {
	FullName            string         `json:"full_name"`
	Phone               string         `json:"phone"`
	HostelName          string         `json:"hostel_name"`
	RoomNumber          string         `json:"room_number"`
	BookingDate         string         `json:"booking_date"`
	TimeSlot            string         `json:"time_slot"`
	LaundryType         string         `json:"laundry_type"`
	Items               map[string]int `json:"items"`
	SpecialInstructions string         `json:"special_instructions"`
}

func (r BookingDraftRequest) toDraft() (booking.Draft, error) {
	rows := make([]booking.Item, 0, len(r.Items))
	for name, quantity := range r.Items {
		clothing, err := booking.ParseClothingType(name)
		if err != nil {
			return booking.Draft{}, err
		}
		rows = append(rows, booking.Item{ClothingType: clothing, Quantity: quantity})
	}
	items, err := booking.NewItems(rows...)
	if err != nil {
		return booking.Draft{}, err
	}

	draft := booking.Draft{
		FullName:            r.FullName,
		Phone:               r.Phone,
		HostelName:          r.HostelName,
		RoomNumber:          r.RoomNumber,
		Items:               items,
		SpecialInstructions: strings.TrimSpace(r.SpecialInstructions),
	}
	if day, parseErr := time.Parse(dateLayout, r.BookingDate); parseErr == nil {
		draft.Date = day
	}
	if slot, parseErr := booking.ParseTimeSlot(r.TimeSlot); parseErr == nil {
		draft.Slot = slot
	}
	if laundryType, parseErr := booking.ParseLaundryType(r.LaundryType); parseErr == nil {
		draft.LaundryType = laundryType
	}
	return draft, nil
}

// ValidateBookingStep handles POST /api/v1/bookings/steps/:step/validate.
func (s *Server) ValidateBookingStep(c echo.Context) error {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Invalid Request", "Step must be a number")
	}

	var req BookingDraftRequest
	if err = c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Invalid Request", "Invalid request body")
	}

	draft, err := req.toDraft()
	if err != nil {
		return badRequest(c, err)
	}

	if err = draft.ValidateStep(step); err != nil {
		return badRequest(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"step": step, "valid": true})
}

// CreateBooking handles POST /api/v1/bookings.
func (s *Server) CreateBooking(c echo.Context) error {
	var req BookingDraftRequest
	if err := c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Invalid Request", "Invalid request body")
	}

	draft, err := req.toDraft()
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewCreateBookingCommand(currentUser(c), draft)
	if err != nil {
		return badRequest(c, err)
	}

	created, err := s.handlers.CreateBooking.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, newBookingResponse(bookingViewOf(created)))
}

// ListBookings handles GET /api/v1/bookings.
func (s *Server) ListBookings(c echo.Context) error {
	query, err := queries.NewListCustomerBookingsQuery(currentUser(c))
	if err != nil {
		return badRequest(c, err)
	}

	views, err := s.handlers.ListCustomerBookings.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	resp := make([]BookingResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, newBookingResponse(v))
	}
	return c.JSON(http.StatusOK, resp)
}

// GetBooking handles GET /api/v1/bookings/:id, the ticket screen. Staff and
// admins may open any ticket.
func (s *Server) GetBooking(c echo.Context) error {
	ctx := c.Request().Context()

	bookingID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeProblem(c, http.StatusNotFound, "No booking found", "The booking does not exist")
	}

	viewer := currentUser(c)
	role, err := s.sessions.Role(ctx, viewer)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetBookingTicketQuery(bookingID, viewer, role.CanOperate())
	if err != nil {
		return badRequest(c, err)
	}

	view, err := s.handlers.GetBookingTicket.Handle(ctx, query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, newBookingResponse(view))
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel.
func (s *Server) CancelBooking(c echo.Context) error {
	bookingID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewCancelBookingCommand(bookingID, currentUser(c))
	if err != nil {
		return badRequest(c, err)
	}

	updated, err := s.handlers.ChangeBookingStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.failTransition(c, err)
	}

	return c.JSON(http.StatusOK, newBookingResponse(bookingViewOf(updated)))
}
