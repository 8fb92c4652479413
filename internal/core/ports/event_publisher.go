package ports

import (
	"context"

	"laundry/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed order status changes. Delivery is
// best effort: callers log a failure and carry on.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, aggregate *order.Order, change order.StatusChange) error
}
