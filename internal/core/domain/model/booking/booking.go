package booking

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking constructor")

// Booking is a customer's reserved laundry slot and the ticket printed for it.
//
// Booking follows these invariants:
//   - id, owner and barcode token are set once at creation
//   - contact, date, slot and laundry type are always present
//   - the item total is at least one
//   - status changes follow the booking lifecycle only
type Booking struct {
	id                  kernel.UUID
	userID              kernel.UUID
	barcodeID           kernel.Token
	contact             kernel.Contact
	date                time.Time
	slot                TimeSlot
	laundryType         LaundryType
	items               Items
	specialInstructions string
	status              Status
	createdAt           time.Time
	updatedAt           time.Time

	isConstructed bool
}

// NewBooking turns a completed wizard draft into a pending booking.
//
// Example:
//
//	b, err := booking.NewBooking(kernel.NewUUID(), userID, kernel.NewBarcodeID(now), draft, now)
//	var missing *booking.MissingInformationError
//	if errors.As(err, &missing) {
//	    // show missing.Description for missing.Step
//	}
func NewBooking(id, userID kernel.UUID, barcodeID kernel.Token, draft Draft, now time.Time) (*Booking, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	contact, err := kernel.NewContact(draft.FullName, draft.Phone, draft.HostelName, draft.RoomNumber)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		contact:             contact,
		date:                truncateToDay(draft.Date),
		slot:                draft.Slot,
		laundryType:         draft.LaundryType,
		items:               draft.Items,
		specialInstructions: strings.TrimSpace(draft.SpecialInstructions),
		status:              Pending,
		createdAt:           now,
		updatedAt:           now,
		isConstructed:       true,
	}

	if err = errors.Join(
		b.setID(id),
		b.setUserID(userID),
		b.setBarcodeID(barcodeID),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Snapshot carries every stored field of a booking.
type Snapshot struct {
	ID                  kernel.UUID
	UserID              kernel.UUID
	BarcodeID           kernel.Token
	Contact             kernel.Contact
	Date                time.Time
	Slot                TimeSlot
	LaundryType         LaundryType
	Items               Items
	SpecialInstructions string
	Status              Status
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// RestoreBooking rebuilds a booking read from storage. Stored rows are not
// re-run through the wizard; only identity and enum fields are checked.
func RestoreBooking(s Snapshot) (*Booking, error) {
	b := &Booking{
		contact:             s.Contact,
		date:                s.Date,
		slot:                s.Slot,
		laundryType:         s.LaundryType,
		items:               s.Items,
		specialInstructions: s.SpecialInstructions,
		status:              s.Status,
		createdAt:           s.CreatedAt,
		updatedAt:           s.UpdatedAt,
		isConstructed:       true,
	}

	if err := errors.Join(
		b.setID(s.ID),
		b.setUserID(s.UserID),
		b.setBarcodeID(s.BarcodeID),
		s.LaundryType.Validate(),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return b, nil
}

func (b *Booking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingIsNotConstructed
	}
	return nil
}

func (b *Booking) ID() kernel.UUID { return b.id }
func (b *Booking) UserID() kernel.UUID { return b.userID }
func (b *Booking) BarcodeID() kernel.Token { return b.barcodeID }
func (b *Booking) Contact() kernel.Contact { return b.contact }
func (b *Booking) Date() time.Time { return b.date }
func (b *Booking) Slot() TimeSlot { return b.slot }
func (b *Booking) LaundryType() LaundryType { return b.laundryType }
func (b *Booking) Items() Items { return b.items }
func (b *Booking) TotalItems() int { return b.items.Total() }
func (b *Booking) SpecialInstructions() string { return b.specialInstructions }
func (b *Booking) Status() Status { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// IsOwnedBy reports whether userID created the booking.
func (b *Booking) IsOwnedBy(userID kernel.UUID) bool {
	return b.userID.IsEqual(userID)
}

// ChangeStatus applies an admin status change following the lifecycle.
func (b *Booking) ChangeStatus(target Status, now time.Time) error {
	next, err := b.status.TransitionTo(target)
	if err != nil {
		return err
	}
	b.status = next
	b.updatedAt = now
	return nil
}

// Cancel withdraws a booking that has not started yet.
func (b *Booking) Cancel(now time.Time) error {
	return b.ChangeStatus(Cancelled, now)
}

// IsExpired reports whether a still pending booking is for a day before today.
func (b *Booking) IsExpired(today time.Time) bool {
	return b.status == Pending && b.date.Before(truncateToDay(today))
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user id", err)
	}
	b.userID = userID
	return nil
}

func (b *Booking) setBarcodeID(barcodeID kernel.Token) error {
	if err := barcodeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("barcode id", err)
	}
	b.barcodeID = barcodeID
	return nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
