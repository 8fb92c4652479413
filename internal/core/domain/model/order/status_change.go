package order

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrStatusChangeIsNotConstructed = errors.New("StatusChange must be created via an Order transition or RestoreStatusChange")

// StatusChange is one append-only row of an order's status history.
// Orders produce it from Advance and Override; the persistence layer writes it
// in the same transaction as the status update.
type StatusChange struct {
	id        kernel.UUID
	orderID   kernel.UUID
	previous  Status
	next      Status
	changedBy kernel.UUID
	notes     string
	createdAt time.Time

	guard guard.ConstructorGuard
}

func newStatusChange(orderID kernel.UUID, previous, next Status, changedBy kernel.UUID, notes string, at time.Time) StatusChange {
	return StatusChange{
		id:        kernel.NewUUID(),
		orderID:   orderID,
		previous:  previous,
		next:      next,
		changedBy: changedBy,
		notes:     notes,
		createdAt: at,
		guard:     guard.NewConstructorGuard(),
	}
}

// RestoreStatusChange rebuilds a history row read from storage. A missing
// previous status is restored as Unknown.
func RestoreStatusChange(
	id, orderID kernel.UUID,
	previous, next Status,
	changedBy kernel.UUID,
	notes string,
	createdAt time.Time,
) (StatusChange, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), next.Validate(), changedBy.Validate()); err != nil {
		return StatusChange{}, err
	}
	return StatusChange{
		id:        id,
		orderID:   orderID,
		previous:  previous,
		next:      next,
		changedBy: changedBy,
		notes:     notes,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c StatusChange) Validate() error {
	return c.guard.Validate(ErrStatusChangeIsNotConstructed)
}

func (c StatusChange) ID() kernel.UUID { return c.id }
func (c StatusChange) OrderID() kernel.UUID { return c.orderID }
func (c StatusChange) Previous() Status { return c.previous }
func (c StatusChange) Next() Status { return c.next }
func (c StatusChange) ChangedBy() kernel.UUID { return c.changedBy }
func (c StatusChange) Notes() string { return c.notes }
func (c StatusChange) CreatedAt() time.Time { return c.createdAt }
