// Package orderrepo persists order aggregates and their status history.
// It maps between the domain model and the laundry_orders and
// order_status_history tables.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the laundry_orders row. Lifecycle timestamps are nullable and
// the version column backs the compare-and-set in Update.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	LaundryID           string     `gorm:"uniqueIndex;not null"`
	UserID              uuid.UUID  `gorm:"type:uuid;index;not null"`
	WashType            string     `gorm:"not null;default:normal"`
	PickupType          string     `gorm:"not null"`
	PickupAddress       string
	SpecialInstructions string
	Status              string `gorm:"index;not null"`
	PickupDate          *time.Time
	WashingStartedAt    *time.Time
	DryingStartedAt     *time.Time
	CompletedAt         *time.Time
	DeliveredAt         *time.Time
	Feedback            string
	StickyNote          string
	EstimatedCost       *decimal.Decimal `gorm:"type:numeric(10,2)"`
	ActualCost          *decimal.Decimal `gorm:"type:numeric(10,2)"`
	BatchID             *uuid.UUID       `gorm:"type:uuid;index"`
	CreatedAt           time.Time        `gorm:"index;autoCreateTime:false"`
	UpdatedAt           time.Time        `gorm:"autoUpdateTime:false"`
	Version             int              `gorm:"not null;default:0"`
}

func (OrderDTO) TableName() string {
	return "laundry_orders"
}

// StatusHistoryDTO is one append-only order_status_history row.
type StatusHistoryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index;not null"`
	PreviousStatus *string
	NewStatus      string    `gorm:"not null"`
	ChangedBy      uuid.UUID `gorm:"type:uuid;not null"`
	Notes          string
	CreatedAt      time.Time `gorm:"index;autoCreateTime:false"`
}

func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(o *order.Order) OrderDTO {
	tl := o.Timeline()

	var batchID *uuid.UUID
	if id := o.BatchID(); id != nil {
		raw := id.Bytes()
		batchID = &raw
	}

	return OrderDTO{
		ID:                  o.ID().Bytes(),
		LaundryID:           o.LaundryID().String(),
		UserID:              o.UserID().Bytes(),
		WashType:            o.WashType().String(),
		PickupType:          o.PickupType().String(),
		PickupAddress:       o.PickupAddress(),
		SpecialInstructions: o.SpecialInstructions(),
		Status:              o.Status().String(),
		PickupDate:          tl.PickupDate,
		WashingStartedAt:    tl.WashingStartedAt,
		DryingStartedAt:     tl.DryingStartedAt,
		CompletedAt:         tl.CompletedAt,
		DeliveredAt:         tl.DeliveredAt,
		Feedback:            o.Feedback(),
		StickyNote:          o.StickyNote(),
		EstimatedCost:       amountOf(o.EstimatedCost()),
		ActualCost:          amountOf(o.ActualCost()),
		BatchID:             batchID,
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
		Version:             o.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	laundryID, err := kernel.ParseToken(dto.LaundryID)
	if err != nil {
		return nil, err
	}
	washType, err := order.ParseWashType(dto.WashType)
	if err != nil {
		return nil, err
	}
	pickupType, err := order.ParsePickupType(dto.PickupType)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var batchID *kernel.UUID
	if dto.BatchID != nil {
		bID, batchErr := kernel.UUIDFromBytes((*dto.BatchID)[:])
		if batchErr != nil {
			return nil, batchErr
		}
		batchID = &bID
	}

	estimated, err := moneyOf(dto.EstimatedCost)
	if err != nil {
		return nil, err
	}
	actual, err := moneyOf(dto.ActualCost)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                  id,
		LaundryID:           laundryID,
		UserID:              userID,
		WashType:            washType,
		PickupType:          pickupType,
		PickupAddress:       dto.PickupAddress,
		SpecialInstructions: dto.SpecialInstructions,
		Status:              status,
		Timeline: order.Timeline{
			PickupDate:       dto.PickupDate,
			WashingStartedAt: dto.WashingStartedAt,
			DryingStartedAt:  dto.DryingStartedAt,
			CompletedAt:      dto.CompletedAt,
			DeliveredAt:      dto.DeliveredAt,
		},
		Feedback:      dto.Feedback,
		StickyNote:    dto.StickyNote,
		EstimatedCost: estimated,
		ActualCost:    actual,
		BatchID:       batchID,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
		Version:       dto.Version,
	})
}

func historyFromDomain(c order.StatusChange) StatusHistoryDTO {
	var previous *string
	if c.Previous() != order.Unknown {
		s := c.Previous().String()
		previous = &s
	}
	return StatusHistoryDTO{
		ID:             c.ID().Bytes(),
		OrderID:        c.OrderID().Bytes(),
		PreviousStatus: previous,
		NewStatus:      c.Next().String(),
		ChangedBy:      c.ChangedBy().Bytes(),
		Notes:          c.Notes(),
		CreatedAt:      c.CreatedAt(),
	}
}

func historyToDomain(dto StatusHistoryDTO) (order.StatusChange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.StatusChange{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.StatusChange{}, err
	}
	changedBy, err := kernel.UUIDFromBytes(dto.ChangedBy[:])
	if err != nil {
		return order.StatusChange{}, err
	}
	next, err := order.ParseStatus(dto.NewStatus)
	if err != nil {
		return order.StatusChange{}, err
	}
	previous := order.Unknown
	if dto.PreviousStatus != nil {
		if previous, err = order.ParseStatus(*dto.PreviousStatus); err != nil {
			return order.StatusChange{}, err
		}
	}
	return order.RestoreStatusChange(id, orderID, previous, next, changedBy, dto.Notes, dto.CreatedAt)
}

func amountOf(m *kernel.Money) *decimal.Decimal {
	if m == nil {
		return nil
	}
	amount := m.Amount()
	return &amount
}

func moneyOf(d *decimal.Decimal) (*kernel.Money, error) {
	if d == nil {
		return nil, nil //nolint:nilnil // absent cost
	}
	m, err := kernel.NewMoney(*d)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
