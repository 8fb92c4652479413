package queries

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads the order snapshot newest first and applies
// the filter in memory, keeping snapshot order.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := loadOrderViews(ctx, h.db, "")
	if err != nil {
		return nil, err
	}

	return services.FilterOrders(snapshot, query.Filter(), func(v OrderView) (string, order.Status) {
		return v.LaundryID, v.Status
	}), nil
}

// loadOrderViews reads orders newest first, optionally restricted to one
// owner when userID is not empty.
func loadOrderViews(ctx context.Context, db *gorm.DB, userID string) ([]OrderView, error) {
	sqlText := `SELECT ` + orderColumns + ` FROM laundry_orders`
	args := make([]any, 0, 1)
	if userID != "" {
		sqlText += ` WHERE user_id = ?`
		args = append(args, userID)
	}
	sqlText += ` ORDER BY created_at DESC`

	rows, err := db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		v, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
