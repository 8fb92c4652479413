package batch

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

var (
	ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch constructor")
	ErrBatchIsClosed         = errors.New("batch no longer accepts orders")
	ErrWashTypeMismatch      = errors.New("order wash type does not match the batch")
)

// Batch is one machine load of orders washed with the same programme.
type Batch struct {
	id               kernel.UUID
	number           kernel.Token
	washType         order.WashType
	status           Status
	totalOrders      int
	createdBy        kernel.UUID
	washingStartedAt *time.Time
	dryingStartedAt  *time.Time
	completedAt      *time.Time
	createdAt        time.Time
	updatedAt        time.Time

	isConstructed bool
}

// NewBatch opens an empty batch for washType.
func NewBatch(id kernel.UUID, number kernel.Token, washType order.WashType, createdBy kernel.UUID, now time.Time) (*Batch, error) {
	if err := errors.Join(
		id.Validate(),
		number.Validate(),
		washType.Validate(),
		createdBy.Validate(),
	); err != nil {
		return nil, err
	}

	return &Batch{
		id:            id,
		number:        number,
		washType:      washType,
		status:        Created,
		createdBy:     createdBy,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// Snapshot carries every stored field of a batch.
type Snapshot struct {
	ID               kernel.UUID
	Number           kernel.Token
	WashType         order.WashType
	Status           Status
	TotalOrders      int
	CreatedBy        kernel.UUID
	WashingStartedAt *time.Time
	DryingStartedAt  *time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func RestoreBatch(s Snapshot) (*Batch, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.Number.Validate(),
		s.WashType.Validate(),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	if s.TotalOrders < 0 {
		return nil, errs.NewValueIsOutOfRangeError("total orders", s.TotalOrders, 0, "unbounded")
	}

	return &Batch{
		id:               s.ID,
		number:           s.Number,
		washType:         s.WashType,
		status:           s.Status,
		totalOrders:      s.TotalOrders,
		createdBy:        s.CreatedBy,
		washingStartedAt: s.WashingStartedAt,
		dryingStartedAt:  s.DryingStartedAt,
		completedAt:      s.CompletedAt,
		createdAt:        s.CreatedAt,
		updatedAt:        s.UpdatedAt,
		isConstructed:    true,
	}, nil
}

func (b *Batch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBatchIsNotConstructed
	}
	return nil
}

func (b *Batch) ID() kernel.UUID { return b.id }
func (b *Batch) Number() kernel.Token { return b.number }
func (b *Batch) WashType() order.WashType { return b.washType }
func (b *Batch) Status() Status { return b.status }
func (b *Batch) TotalOrders() int { return b.totalOrders }
func (b *Batch) CreatedBy() kernel.UUID { return b.createdBy }
func (b *Batch) WashingStartedAt() *time.Time { return b.washingStartedAt }
func (b *Batch) DryingStartedAt() *time.Time { return b.dryingStartedAt }
func (b *Batch) CompletedAt() *time.Time { return b.completedAt }
func (b *Batch) CreatedAt() time.Time { return b.createdAt }
func (b *Batch) UpdatedAt() time.Time { return b.updatedAt }

// Attach adds o to the batch. Only a batch still in Created accepts orders,
// and the order's wash type must match.
func (b *Batch) Attach(o *order.Order, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if b.status != Created {
		return fmt.Errorf("%w: batch %s is %s", ErrBatchIsClosed, b.number, b.status)
	}
	if o.WashType() != b.washType {
		return fmt.Errorf("%w: order %s is %s, batch is %s",
			ErrWashTypeMismatch, o.LaundryID(), o.WashType(), b.washType)
	}
	if o.BatchID() != nil && o.BatchID().IsEqual(b.id) {
		return nil
	}
	if err := o.AssignToBatch(b.id, now); err != nil {
		return err
	}
	b.totalOrders++
	b.updatedAt = now
	return nil
}

// Advance moves the batch forward and stamps the matching timestamp.
func (b *Batch) Advance(now time.Time) error {
	next, err := b.status.Next()
	if err != nil {
		return err
	}
	switch next {
	case Washing:
		b.washingStartedAt = &now
	case Drying:
		b.dryingStartedAt = &now
	case Completed:
		b.completedAt = &now
	case Unknown, Created:
	}
	b.status = next
	b.updatedAt = now
	return nil
}
