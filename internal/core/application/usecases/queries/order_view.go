package queries

import (
	"database/sql"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderView is the read model of one laundry_orders row.
type OrderView struct {
	ID                  kernel.UUID
	LaundryID           string
	UserID              kernel.UUID
	WashType            order.WashType
	PickupType          order.PickupType
	PickupAddress       string
	SpecialInstructions string
	Status              order.Status
	Timeline            order.Timeline
	Feedback            string
	StickyNote          string
	EstimatedCost       *kernel.Money
	ActualCost          *kernel.Money
	BatchID             *kernel.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NextStatus returns the status a staff advance would move the order to.
// ok is false for a delivered order.
func (v OrderView) NextStatus() (next order.Status, ok bool) {
	next, err := v.Status.Next()
	return next, err == nil
}

const orderColumns = `
	id,
	laundry_id,
	user_id,
	wash_type,
	pickup_type,
	pickup_address,
	special_instructions,
	status,
	pickup_date,
	washing_started_at,
	drying_started_at,
	completed_at,
	delivered_at,
	feedback,
	sticky_note,
	estimated_cost,
	actual_cost,
	batch_id,
	created_at,
	updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderView(rows rowScanner) (OrderView, error) {
	var (
		view                                  OrderView
		id, userID                            uuid.UUID
		batchID                               uuid.NullUUID
		washType, pickupType, status          string
		pickup, washing, drying, done, handed sql.NullTime
		estimated, actual                     decimal.NullDecimal
	)

	err := rows.Scan(
		&id,
		&view.LaundryID,
		&userID,
		&washType,
		&pickupType,
		&view.PickupAddress,
		&view.SpecialInstructions,
		&status,
		&pickup,
		&washing,
		&drying,
		&done,
		&handed,
		&view.Feedback,
		&view.StickyNote,
		&estimated,
		&actual,
		&batchID,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if view.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return OrderView{}, err
	}
	if view.WashType, err = order.ParseWashType(washType); err != nil {
		return OrderView{}, err
	}
	if view.PickupType, err = order.ParsePickupType(pickupType); err != nil {
		return OrderView{}, err
	}
	if view.Status, err = order.ParseStatus(status); err != nil {
		return OrderView{}, err
	}
	if batchID.Valid {
		bID, bErr := kernel.UUIDFromBytes(batchID.UUID[:])
		if bErr != nil {
			return OrderView{}, bErr
		}
		view.BatchID = &bID
	}
	if view.EstimatedCost, err = nullMoney(estimated); err != nil {
		return OrderView{}, err
	}
	if view.ActualCost, err = nullMoney(actual); err != nil {
		return OrderView{}, err
	}

	view.Timeline = order.Timeline{
		PickupDate:       nullTime(pickup),
		WashingStartedAt: nullTime(washing),
		DryingStartedAt:  nullTime(drying),
		CompletedAt:      nullTime(done),
		DeliveredAt:      nullTime(handed),
	}

	return view, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullMoney(d decimal.NullDecimal) (*kernel.Money, error) {
	if !d.Valid {
		return nil, nil //nolint:nilnil // absent cost
	}
	m, err := kernel.NewMoney(d.Decimal)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
