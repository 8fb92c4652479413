package queries

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListCustomerBookingsQueryIsNotConstructed = errors.New(
	"ListCustomerBookingsQuery must be created via NewListCustomerBookingsQuery constructor",
)

type ListCustomerBookingsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListCustomerBookingsQuery(userID kernel.UUID) (ListCustomerBookingsQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListCustomerBookingsQuery{}, err
	}
	return ListCustomerBookingsQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCustomerBookingsQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerBookingsQueryIsNotConstructed)
}

type ListCustomerBookingsQueryHandler struct {
	db *gorm.DB
}

func NewListCustomerBookingsQueryHandler(db *gorm.DB) ListCustomerBookingsQueryHandler {
	return ListCustomerBookingsQueryHandler{db: db}
}

func (h ListCustomerBookingsQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerBookingsQuery,
) ([]BookingView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.userID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]BookingView, 0)
	for rows.Next() {
		v, scanErr := scanBookingView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachItems(ctx, h.db, views); err != nil {
		return nil, err
	}
	return views, nil
}
