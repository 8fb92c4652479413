// Package bookingrepo persists bookings together with their item rows.
package bookingrepo

import (
	"time"

	"laundry/internal/core/domain/model/booking"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookingDTO is the bookings row. Contact details are a snapshot taken at
// submission time, independent of later profile edits.
type BookingDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID `gorm:"type:uuid;index;not null"`
	BarcodeID           string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	ContactName         string    `gorm:"type:varchar(255);not null"`
	Phone               string    `gorm:"type:varchar(32);not null"`
	Hostel              string    `gorm:"type:varchar(255);not null"`
	Room                string    `gorm:"type:varchar(32);not null"`
	BookingDate         time.Time `gorm:"type:date;index;not null"`
	TimeSlot            string    `gorm:"type:varchar(32);not null"`
	LaundryType         string    `gorm:"type:varchar(32);not null"`
	TotalItems          int       `gorm:"type:int;not null"`
	SpecialInstructions string
	Status              string           `gorm:"type:varchar(16);index;not null"`
	CreatedAt           time.Time        `gorm:"autoCreateTime:false"`
	UpdatedAt           time.Time        `gorm:"autoUpdateTime:false"`
	Items               []BookingItemDTO `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}

func (BookingDTO) TableName() string {
	return "bookings"
}

// BookingItemDTO is one booking_items row. Only positive quantities are stored.
type BookingItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ClothingType string    `gorm:"type:varchar(32);not null"`
	Quantity     int       `gorm:"type:int;not null"`
}

func (BookingItemDTO) TableName() string {
	return "booking_items"
}

func fromDomain(b *booking.Booking) BookingDTO {
	bookingID := b.ID().Bytes()
	rows := b.Items().Rows()
	items := make([]BookingItemDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, BookingItemDTO{
			ID:           uuid.New(),
			BookingID:    bookingID,
			ClothingType: row.ClothingType.String(),
			Quantity:     row.Quantity,
		})
	}

	contact := b.Contact()
	return BookingDTO{
		ID:                  bookingID,
		UserID:              b.UserID().Bytes(),
		BarcodeID:           b.BarcodeID().String(),
		ContactName:         contact.FullName(),
		Phone:               contact.Phone(),
		Hostel:              contact.HostelName(),
		Room:                contact.RoomNumber(),
		BookingDate:         b.Date(),
		TimeSlot:            b.Slot().String(),
		LaundryType:         b.LaundryType().String(),
		TotalItems:          b.TotalItems(),
		SpecialInstructions: b.SpecialInstructions(),
		Status:              b.Status().String(),
		CreatedAt:           b.CreatedAt(),
		UpdatedAt:           b.UpdatedAt(),
		Items:               items,
	}
}

func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	barcodeID, err := kernel.ParseToken(dto.BarcodeID)
	if err != nil {
		return nil, err
	}
	contact, err := kernel.NewContact(dto.ContactName, dto.Phone, dto.Hostel, dto.Room)
	if err != nil {
		return nil, err
	}
	slot, err := booking.ParseTimeSlot(dto.TimeSlot)
	if err != nil {
		return nil, err
	}
	laundryType, err := booking.ParseLaundryType(dto.LaundryType)
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	rows := make([]booking.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		clothingType, ctErr := booking.ParseClothingType(item.ClothingType)
		if ctErr != nil {
			return nil, ctErr
		}
		rows = append(rows, booking.Item{ClothingType: clothingType, Quantity: item.Quantity})
	}
	items, err := booking.NewItems(rows...)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(booking.Snapshot{
		ID:                  id,
		UserID:              userID,
		BarcodeID:           barcodeID,
		Contact:             contact,
		Date:                dto.BookingDate,
		Slot:                slot,
		LaundryType:         laundryType,
		Items:               items,
		SpecialInstructions: dto.SpecialInstructions,
		Status:              status,
		CreatedAt:           dto.CreatedAt,
		UpdatedAt:           dto.UpdatedAt,
	})
}
