// Package natsbus publishes committed order status changes to a NATS subject.
package natsbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/order"

	"github.com/nats-io/nats.go"
)

// StatusChangedSubject carries one message per committed status change.
const StatusChangedSubject = "laundry.orders.status_changed"

// StatusChangedEvent is the JSON payload on StatusChangedSubject.
// PreviousStatus is empty for a freshly created order.
type StatusChangedEvent struct {
	OrderID        string    `json:"order_id"`
	LaundryID      string    `json:"laundry_id"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	NewStatus      string    `json:"new_status"`
	ChangedBy      string    `json:"changed_by"`
	ChangedAt      time.Time `json:"changed_at"`
}

type connection interface {
	Publish(subject string, data []byte) error
}

type OrderEventPublisher struct {
	conn connection
}

func NewOrderEventPublisher(conn connection) *OrderEventPublisher {
	return &OrderEventPublisher{conn: conn}
}

// Connect dials the server. The returned connection must be drained on
// shutdown.
func Connect(url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url, nats.Name("laundry"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return conn, nil
}

func (p *OrderEventPublisher) PublishStatusChanged(
	ctx context.Context,
	aggregate *order.Order,
	change order.StatusChange,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	event := StatusChangedEvent{
		OrderID:   aggregate.ID().String(),
		LaundryID: aggregate.LaundryID().String(),
		NewStatus: change.Next().String(),
		ChangedBy: change.ChangedBy().String(),
		ChangedAt: change.CreatedAt().UTC(),
	}
	if change.Previous() != order.Unknown {
		event.PreviousStatus = change.Previous().String()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err = p.conn.Publish(StatusChangedSubject, data); err != nil {
		return fmt.Errorf("publish %s: %w", StatusChangedSubject, err)
	}
	return nil
}
