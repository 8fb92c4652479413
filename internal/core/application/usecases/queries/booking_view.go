package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/booking"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingView is the read model of a booking and its ticket.
type BookingView struct {
	ID                  kernel.UUID
	UserID              kernel.UUID
	BarcodeID           string
	ContactName         string
	Phone               string
	Hostel              string
	Room                string
	Date                time.Time
	TimeSlot            string
	LaundryType         booking.LaundryType
	TotalItems          int
	SpecialInstructions string
	Status              booking.Status
	Items               []BookingItemView
	CreatedAt           time.Time
}

type BookingItemView struct {
	ClothingType booking.ClothingType
	Quantity     int
}

const bookingColumns = `
	id,
	user_id,
	barcode_id,
	contact_name,
	phone,
	hostel,
	room,
	booking_date,
	time_slot,
	laundry_type,
	total_items,
	special_instructions,
	status,
	created_at`

func scanBookingView(rows rowScanner) (BookingView, error) {
	var (
		view                BookingView
		id, userID          uuid.UUID
		laundryType, status string
	)

	err := rows.Scan(
		&id,
		&userID,
		&view.BarcodeID,
		&view.ContactName,
		&view.Phone,
		&view.Hostel,
		&view.Room,
		&view.Date,
		&view.TimeSlot,
		&laundryType,
		&view.TotalItems,
		&view.SpecialInstructions,
		&status,
		&view.CreatedAt,
	)
	if err != nil {
		return BookingView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return BookingView{}, err
	}
	if view.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return BookingView{}, err
	}
	if view.LaundryType, err = booking.ParseLaundryType(laundryType); err != nil {
		return BookingView{}, err
	}
	if view.Status, err = booking.ParseStatus(status); err != nil {
		return BookingView{}, err
	}

	return view, nil
}

// attachItems loads booking_items for the given views in one round trip.
func attachItems(ctx context.Context, db *gorm.DB, views []BookingView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]string, 0, len(views))
	index := make(map[string]int, len(views))
	for i, v := range views {
		ids = append(ids, v.ID.String())
		index[v.ID.String()] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT booking_id, clothing_type, quantity
		FROM booking_items
		WHERE booking_id IN ?
		ORDER BY clothing_type
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bookingID uuid.UUID
			clothing  string
			item      BookingItemView
		)
		if err = rows.Scan(&bookingID, &clothing, &item.Quantity); err != nil {
			return err
		}
		if item.ClothingType, err = booking.ParseClothingType(clothing); err != nil {
			return err
		}
		i, ok := index[bookingID.String()]
		if !ok {
			continue
		}
		views[i].Items = append(views[i].Items, item)
	}

	return rows.Err()
}
