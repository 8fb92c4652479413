package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/booking"
	"laundry/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for bookings and their
// item rows. Items are always written together with their booking.
type BookingRepository interface {
	Add(ctx context.Context, aggregate *booking.Booking) error
	Update(ctx context.Context, aggregate *booking.Booking) error
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// ListPendingBefore returns pending bookings whose date is before day.
	ListPendingBefore(ctx context.Context, day time.Time) ([]*booking.Booking, error)
}
