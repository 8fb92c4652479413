package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"gorm.io/gorm"
)

// ErrBookingNotFound is the graceful "No booking found" outcome.
var ErrBookingNotFound = errors.New("no booking found")

var ErrGetBookingTicketQueryIsNotConstructed = errors.New(
	"GetBookingTicketQuery must be created via NewGetBookingTicketQuery constructor",
)

// GetBookingTicketQuery loads one booking for the ticket screen. A viewer
// without canViewAll only sees their own bookings; someone else's booking
// is reported as not found.
type GetBookingTicketQuery struct {
	bookingID  kernel.UUID
	viewerID   kernel.UUID
	canViewAll bool

	guard guard.ConstructorGuard
}

func NewGetBookingTicketQuery(bookingID, viewerID kernel.UUID, canViewAll bool) (GetBookingTicketQuery, error) {
	if err := errors.Join(bookingID.Validate(), viewerID.Validate()); err != nil {
		return GetBookingTicketQuery{}, err
	}
	return GetBookingTicketQuery{
		bookingID:  bookingID,
		viewerID:   viewerID,
		canViewAll: canViewAll,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetBookingTicketQuery) Validate() error {
	return q.guard.Validate(ErrGetBookingTicketQueryIsNotConstructed)
}

type GetBookingTicketQueryHandler struct {
	db *gorm.DB
}

func NewGetBookingTicketQueryHandler(db *gorm.DB) GetBookingTicketQueryHandler {
	return GetBookingTicketQueryHandler{db: db}
}

func (h GetBookingTicketQueryHandler) Handle(ctx context.Context, query GetBookingTicketQuery) (BookingView, error) {
	if err := query.Validate(); err != nil {
		return BookingView{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE id = ?
	`, query.bookingID.String()).Row()

	view, err := scanBookingView(row)
	if errors.Is(err, sql.ErrNoRows) {
		return BookingView{}, h.notFound(query)
	}
	if err != nil {
		return BookingView{}, err
	}

	if !query.canViewAll && !view.UserID.IsEqual(query.viewerID) {
		return BookingView{}, h.notFound(query)
	}

	views := []BookingView{view}
	if err = attachItems(ctx, h.db, views); err != nil {
		return BookingView{}, err
	}
	return views[0], nil
}

func (h GetBookingTicketQueryHandler) notFound(query GetBookingTicketQuery) error {
	return fmt.Errorf("%w: %w", ErrBookingNotFound, errs.NewObjectNotFoundError("booking id", query.bookingID))
}
