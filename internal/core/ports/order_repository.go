// Package ports defines the persistence and messaging contracts the
// application layer depends on. Adapters under internal/adapters implement
// them.
package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. The laundry id must be unused.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order if the stored version still equals
	// aggregate.Version(), then bumps the stored version. A stale aggregate
	// yields errs.ErrVersionIsInvalid and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its internal id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByLaundryID resolves a scanned or typed laundry id. Matching is
	// exact and case-sensitive; no match yields errs.ErrObjectNotFound.
	GetByLaundryID(ctx context.Context, laundryID kernel.Token) (*order.Order, error)
}

// StatusHistoryRepository stores the append-only order_status_history rows.
type StatusHistoryRepository interface {
	Append(ctx context.Context, change order.StatusChange) error

	// ListByOrder returns the history of one order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.StatusChange, error)
}
