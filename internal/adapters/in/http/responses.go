package http

import (
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/batch"
	"laundry/internal/core/domain/model/booking"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/profile"

	"github.com/shopspring/decimal"
)

type OrderResponse struct {
	ID                  string           `json:"id"`
	LaundryID           string           `json:"laundry_id"`
	UserID              string           `json:"user_id"`
	WashType            string           `json:"wash_type"`
	PickupType          string           `json:"pickup_type"`
	PickupAddress       string           `json:"pickup_address,omitempty"`
	SpecialInstructions string           `json:"special_instructions,omitempty"`
	Status              string           `json:"status"`
	StatusLabel         string           `json:"status_label"`
	NextStatus          string           `json:"next_status,omitempty"`
	ActionLabel         string           `json:"action_label,omitempty"`
	CanAdvance          bool             `json:"can_advance"`
	PickupDate          *time.Time       `json:"pickup_date"`
	WashingStartedAt    *time.Time       `json:"washing_started_at"`
	DryingStartedAt     *time.Time       `json:"drying_started_at"`
	CompletedAt         *time.Time       `json:"completed_at"`
	DeliveredAt         *time.Time       `json:"delivered_at"`
	Feedback            string           `json:"feedback"`
	StickyNote          string           `json:"sticky_note"`
	EstimatedCost       *decimal.Decimal `json:"estimated_cost"`
	ActualCost          *decimal.Decimal `json:"actual_cost"`
	BatchID             *string          `json:"batch_id"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

func newOrderResponse(v queries.OrderView) OrderResponse {
	resp := OrderResponse{
		ID:                  v.ID.String(),
		LaundryID:           v.LaundryID,
		UserID:              v.UserID.String(),
		WashType:            v.WashType.String(),
		PickupType:          v.PickupType.String(),
		PickupAddress:       v.PickupAddress,
		SpecialInstructions: v.SpecialInstructions,
		Status:              v.Status.String(),
		StatusLabel:         v.Status.Label(),
		PickupDate:          v.Timeline.PickupDate,
		WashingStartedAt:    v.Timeline.WashingStartedAt,
		DryingStartedAt:     v.Timeline.DryingStartedAt,
		CompletedAt:         v.Timeline.CompletedAt,
		DeliveredAt:         v.Timeline.DeliveredAt,
		Feedback:            v.Feedback,
		StickyNote:          v.StickyNote,
		EstimatedCost:       amountOf(v.EstimatedCost),
		ActualCost:          amountOf(v.ActualCost),
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
	if next, ok := v.NextStatus(); ok {
		resp.NextStatus = next.String()
		resp.ActionLabel = next.ActionLabel()
		resp.CanAdvance = true
	}
	if v.BatchID != nil {
		id := v.BatchID.String()
		resp.BatchID = &id
	}
	return resp
}

// orderViewOf lets freshly written orders share the read model's response.
func orderViewOf(o *order.Order) queries.OrderView {
	return queries.OrderView{
		ID:                  o.ID(),
		LaundryID:           o.LaundryID().String(),
		UserID:              o.UserID(),
		WashType:            o.WashType(),
		PickupType:          o.PickupType(),
		PickupAddress:       o.PickupAddress(),
		SpecialInstructions: o.SpecialInstructions(),
		Status:              o.Status(),
		Timeline:            o.Timeline(),
		Feedback:            o.Feedback(),
		StickyNote:          o.StickyNote(),
		EstimatedCost:       o.EstimatedCost(),
		ActualCost:          o.ActualCost(),
		BatchID:             o.BatchID(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
	}
}

func newOrderListResponse(views []queries.OrderView) []OrderResponse {
	resp := make([]OrderResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, newOrderResponse(v))
	}
	return resp
}

func amountOf(m *kernel.Money) *decimal.Decimal {
	if m == nil {
		return nil
	}
	amount := m.Amount()
	return &amount
}

type StatusChangeResponse struct {
	ID             string    `json:"id"`
	PreviousStatus *string   `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	ChangedBy      string    `json:"changed_by"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}

func newHistoryResponse(history []queries.StatusChangeView) []StatusChangeResponse {
	resp := make([]StatusChangeResponse, 0, len(history))
	for _, h := range history {
		item := StatusChangeResponse{
			ID:        h.ID.String(),
			NewStatus: h.NewStatus.String(),
			ChangedBy: h.ChangedBy.String(),
			Notes:     h.Notes,
			CreatedAt: h.CreatedAt,
		}
		if h.PreviousStatus != nil {
			previous := h.PreviousStatus.String()
			item.PreviousStatus = &previous
		}
		resp = append(resp, item)
	}
	return resp
}

type BookingItemResponse struct {
	ClothingType string `json:"clothing_type"`
	Quantity     int    `json:"quantity"`
}

// BookingResponse doubles as the ticket payload; BarcodeID is what the
// ticket's barcode encodes.
type BookingResponse struct {
	ID                  string                `json:"id"`
	BarcodeID           string                `json:"barcode_id"`
	FullName            string                `json:"full_name"`
	Phone               string                `json:"phone"`
	HostelName          string                `json:"hostel_name"`
	RoomNumber          string                `json:"room_number"`
	BookingDate         string                `json:"booking_date"`
	TimeSlot            string                `json:"time_slot"`
	LaundryType         string                `json:"laundry_type"`
	TotalItems          int                   `json:"total_items"`
	Items               []BookingItemResponse `json:"items"`
	SpecialInstructions string                `json:"special_instructions,omitempty"`
	Status              string                `json:"status"`
	CreatedAt           time.Time             `json:"created_at"`
}

const dateLayout = "2006-01-02"

func newBookingResponse(v queries.BookingView) BookingResponse {
	items := make([]BookingItemResponse, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, BookingItemResponse{ClothingType: item.ClothingType.String(), Quantity: item.Quantity})
	}
	return BookingResponse{
		ID:                  v.ID.String(),
		BarcodeID:           v.BarcodeID,
		FullName:            v.ContactName,
		Phone:               v.Phone,
		HostelName:          v.Hostel,
		RoomNumber:          v.Room,
		BookingDate:         v.Date.Format(dateLayout),
		TimeSlot:            v.TimeSlot,
		LaundryType:         v.LaundryType.String(),
		TotalItems:          v.TotalItems,
		Items:               items,
		SpecialInstructions: v.SpecialInstructions,
		Status:              v.Status.String(),
		CreatedAt:           v.CreatedAt,
	}
}

func bookingViewOf(b *booking.Booking) queries.BookingView {
	rows := b.Items().Rows()
	items := make([]queries.BookingItemView, 0, len(rows))
	for _, row := range rows {
		items = append(items, queries.BookingItemView{ClothingType: row.ClothingType, Quantity: row.Quantity})
	}
	contact := b.Contact()
	return queries.BookingView{
		ID:                  b.ID(),
		UserID:              b.UserID(),
		BarcodeID:           b.BarcodeID().String(),
		ContactName:         contact.FullName(),
		Phone:               contact.Phone(),
		Hostel:              contact.HostelName(),
		Room:                contact.RoomNumber(),
		Date:                b.Date(),
		TimeSlot:            b.Slot().String(),
		LaundryType:         b.LaundryType(),
		TotalItems:          b.TotalItems(),
		SpecialInstructions: b.SpecialInstructions(),
		Status:              b.Status(),
		Items:               items,
		CreatedAt:           b.CreatedAt(),
	}
}

type BatchResponse struct {
	ID               string     `json:"id"`
	BatchNumber      string     `json:"batch_number"`
	WashType         string     `json:"wash_type"`
	Status           string     `json:"status"`
	TotalOrders      int        `json:"total_orders"`
	CreatedBy        string     `json:"created_by"`
	WashingStartedAt *time.Time `json:"washing_started_at"`
	DryingStartedAt  *time.Time `json:"drying_started_at"`
	CompletedAt      *time.Time `json:"completed_at"`
	CreatedAt        time.Time  `json:"created_at"`
}

func newBatchResponse(b *batch.Batch) BatchResponse {
	return BatchResponse{
		ID:               b.ID().String(),
		BatchNumber:      b.Number().String(),
		WashType:         b.WashType().String(),
		Status:           b.Status().String(),
		TotalOrders:      b.TotalOrders(),
		CreatedBy:        b.CreatedBy().String(),
		WashingStartedAt: b.WashingStartedAt(),
		DryingStartedAt:  b.DryingStartedAt(),
		CompletedAt:      b.CompletedAt(),
		CreatedAt:        b.CreatedAt(),
	}
}

type ProfileResponse struct {
	UserID       string `json:"user_id"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	HostelName   string `json:"hostel_name"`
	RoomNumber   string `json:"room_number"`
	Role         string `json:"role"`
	LandingRoute string `json:"landing_route"`
}

func newProfileResponse(v queries.ProfileView) ProfileResponse {
	return ProfileResponse{
		UserID:       v.UserID.String(),
		FullName:     v.FullName,
		Phone:        v.Phone,
		HostelName:   v.HostelName,
		RoomNumber:   v.RoomNumber,
		Role:         v.Role.String(),
		LandingRoute: v.Role.LandingRoute(),
	}
}

func profileViewOf(p *profile.Profile) queries.ProfileView {
	return queries.ProfileView{
		UserID:     p.ID(),
		FullName:   p.FullName(),
		Phone:      p.Phone(),
		HostelName: p.HostelName(),
		RoomNumber: p.RoomNumber(),
		Role:       p.Role(),
		Exists:     true,
	}
}
