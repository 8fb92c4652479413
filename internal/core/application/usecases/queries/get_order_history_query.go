package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

type GetOrderHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(orderID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return GetOrderHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// StatusChangeView is one history row. PreviousStatus is nil for the
// initial entry.
type StatusChangeView struct {
	ID             kernel.UUID
	PreviousStatus *order.Status
	NewStatus      order.Status
	ChangedBy      kernel.UUID
	Notes          string
	CreatedAt      time.Time
}

type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns the order's history oldest first. An unknown order is
// reported as ErrOrderNotFound; a known order without history yields an
// empty slice.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]StatusChangeView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM laundry_orders WHERE id = ?`, query.orderID.String()).
		Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %w", ErrOrderNotFound, errs.NewObjectNotFoundError("order id", query.orderID))
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, previous_status, new_status, changed_by, notes, created_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY created_at ASC
	`, query.orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]StatusChangeView, 0)
	for rows.Next() {
		var (
			id, changedBy uuid.UUID
			previous      *string
			next          string
			view          StatusChangeView
		)
		if err = rows.Scan(&id, &previous, &next, &changedBy, &view.Notes, &view.CreatedAt); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.ChangedBy, err = kernel.UUIDFromBytes(changedBy[:]); err != nil {
			return nil, err
		}
		if view.NewStatus, err = order.ParseStatus(next); err != nil {
			return nil, err
		}
		if previous != nil {
			prev, parseErr := order.ParseStatus(*previous)
			if parseErr != nil {
				return nil, parseErr
			}
			view.PreviousStatus = &prev
		}

		history = append(history, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
