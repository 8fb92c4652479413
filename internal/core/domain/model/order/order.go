package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsDelivered is returned when an operation needs the order to still be in process.
	ErrOrderIsDelivered = errors.New("order is already delivered")
)

// Timeline holds the lifecycle timestamps of an order. A nil field means the
// matching transition never happened.
type Timeline struct {
	PickupDate       *time.Time
	WashingStartedAt *time.Time
	DryingStartedAt  *time.Time
	CompletedAt      *time.Time
	DeliveredAt      *time.Time
}

// stamp sets the field that belongs to status s and leaves the others untouched.
func (t Timeline) stamp(s Status, now time.Time) Timeline {
	switch s {
	case PickedUp:
		t.PickupDate = &now
	case Washing:
		t.WashingStartedAt = &now
	case Drying:
		t.DryingStartedAt = &now
	case Completed:
		t.CompletedAt = &now
	case Delivered:
		t.DeliveredAt = &now
	case Unknown, Pending:
	}
	return t
}

// Annotations are the operator notes staff may attach while advancing an order.
// Blank values leave the stored notes untouched.
type Annotations struct {
	Feedback   string
	StickyNote string
}

// Order is the aggregate root for one bag of laundry.
//
// Order follows these invariants:
//   - Must have a valid id, laundry id and owner, none of which change afterwards
//   - Wash type and pickup type are valid; a pickup order has a pickup address
//   - Costs, when present, are not negative
//   - Status moves only through Advance (staff) or Override (admin)
//   - version increases by one with every persisted write
type Order struct {
	id                  kernel.UUID
	laundryID           kernel.Token
	userID              kernel.UUID
	washType            WashType
	pickupType          PickupType
	pickupAddress       string
	specialInstructions string
	status              Status
	timeline            Timeline
	feedback            string
	stickyNote          string
	estimatedCost       *kernel.Money
	actualCost          *kernel.Money
	batchID             *kernel.UUID
	createdAt           time.Time
	updatedAt           time.Time
	version             int

	isConstructed bool
}

// NewOrder creates a pending order for a customer.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewLaundryID(now), customerID,
//	    order.Normal, order.SelfDrop, "", now)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	laundryID kernel.Token,
	userID kernel.UUID,
	washType WashType,
	pickupType PickupType,
	pickupAddress string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setLaundryID(laundryID),
		o.setUserID(userID),
		o.setWashType(washType),
		o.setPickup(pickupType, pickupAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot carries every stored field of an order. It is the exchange format
// between the aggregate and persistence.
type Snapshot struct {
	ID                  kernel.UUID
	LaundryID           kernel.Token
	UserID              kernel.UUID
	WashType            WashType
	PickupType          PickupType
	PickupAddress       string
	SpecialInstructions string
	Status              Status
	Timeline            Timeline
	Feedback            string
	StickyNote          string
	EstimatedCost       *kernel.Money
	ActualCost          *kernel.Money
	BatchID             *kernel.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Version             int
}

// RestoreOrder rebuilds an order read from storage, validating the stored values.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		specialInstructions: s.SpecialInstructions,
		timeline:            s.Timeline,
		feedback:            s.Feedback,
		stickyNote:          s.StickyNote,
		estimatedCost:       s.EstimatedCost,
		actualCost:          s.ActualCost,
		batchID:             s.BatchID,
		createdAt:           s.CreatedAt,
		updatedAt:           s.UpdatedAt,
		version:             s.Version,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setLaundryID(s.LaundryID),
		o.setUserID(s.UserID),
		o.setWashType(s.WashType),
		o.setPickup(s.PickupType, s.PickupAddress),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = s.Status

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their internal identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) LaundryID() kernel.Token { return o.laundryID }
func (o *Order) UserID() kernel.UUID { return o.userID }
func (o *Order) WashType() WashType { return o.washType }
func (o *Order) PickupType() PickupType { return o.pickupType }
func (o *Order) PickupAddress() string { return o.pickupAddress }
func (o *Order) SpecialInstructions() string { return o.specialInstructions }
func (o *Order) Status() Status { return o.status }
func (o *Order) Timeline() Timeline { return o.timeline }
func (o *Order) Feedback() string { return o.feedback }
func (o *Order) StickyNote() string { return o.stickyNote }
func (o *Order) EstimatedCost() *kernel.Money { return o.estimatedCost }
func (o *Order) ActualCost() *kernel.Money { return o.actualCost }
func (o *Order) BatchID() *kernel.UUID { return o.batchID }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }
func (o *Order) Version() int { return o.version }
func (o *Order) NextStatus() (Status, error) { return o.status.Next() }
func (o *Order) CanAdvance() bool { return o.status.HasNext() }
func (o *Order) IsCreatedOn(day time.Time) bool { return sameDay(o.createdAt, day) }

// Advance moves the order to the successor of its current status. This is the
// staff transition: it stamps the timestamp matching the new status and stores
// any non-blank annotations in the same write.
//
// Returns the StatusChange to append to the order history. On error the order
// is left unchanged.
//
// Example:
//
//	change, err := o.Advance(staffID, order.Annotations{Feedback: "two socks missing"}, now)
//	if err != nil {
//	    // Delivered orders have no successor
//	}
func (o *Order) Advance(actor kernel.UUID, notes Annotations, now time.Time) (StatusChange, error) {
	if err := actor.Validate(); err != nil {
		return StatusChange{}, err
	}

	next, err := o.status.Next()
	if err != nil {
		return StatusChange{}, err
	}

	previous := o.status
	o.status = next
	o.timeline = o.timeline.stamp(next, now)
	if feedback := strings.TrimSpace(notes.Feedback); feedback != "" {
		o.feedback = feedback
	}
	if stickyNote := strings.TrimSpace(notes.StickyNote); stickyNote != "" {
		o.stickyNote = stickyNote
	}
	o.updatedAt = now

	return newStatusChange(o.id, previous, next, actor, strings.TrimSpace(notes.Feedback), now), nil
}

// Override sets any valid status directly. This is the admin correction path:
// it touches neither lifecycle timestamps nor annotations.
func (o *Order) Override(actor kernel.UUID, target Status, now time.Time) (StatusChange, error) {
	if err := errors.Join(actor.Validate(), target.Validate()); err != nil {
		return StatusChange{}, err
	}

	previous := o.status
	o.status = target
	o.updatedAt = now

	return newStatusChange(o.id, previous, target, actor, "", now), nil
}

// AssignToBatch links the order to a wash batch. Delivered orders cannot be batched.
func (o *Order) AssignToBatch(batchID kernel.UUID, now time.Time) error {
	if err := batchID.Validate(); err != nil {
		return err
	}
	if o.status == Delivered {
		return ErrOrderIsDelivered
	}
	o.batchID = &batchID
	o.updatedAt = now
	return nil
}

// SetSpecialInstructions stores the customer's handling notes.
func (o *Order) SetSpecialInstructions(instructions string) {
	o.specialInstructions = strings.TrimSpace(instructions)
}

// SetEstimatedCost records the quoted price; nil clears it.
func (o *Order) SetEstimatedCost(cost *kernel.Money) {
	o.estimatedCost = cost
}

// SetActualCost records the final price; nil clears it.
func (o *Order) SetActualCost(cost *kernel.Money) {
	o.actualCost = cost
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLaundryID(laundryID kernel.Token) error {
	if err := laundryID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("laundry id", err)
	}
	o.laundryID = laundryID
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user id", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setWashType(washType WashType) error {
	if err := washType.Validate(); err != nil {
		return err
	}
	o.washType = washType
	return nil
}

func (o *Order) setPickup(pickupType PickupType, address string) error {
	if err := pickupType.Validate(); err != nil {
		return err
	}
	address = strings.TrimSpace(address)
	if pickupType == Pickup && address == "" {
		return errs.NewValueIsRequiredErrorWithCause(
			"pickup address",
			fmt.Errorf("%s orders need an address", pickupType),
		)
	}
	o.pickupType = pickupType
	o.pickupAddress = address
	return nil
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
