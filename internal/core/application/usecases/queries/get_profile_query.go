package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/profile"
	"laundry/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

type GetProfileQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProfileQuery(userID kernel.UUID) (GetProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetProfileQuery{}, err
	}
	return GetProfileQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// ProfileView is the caller's profile. Exists is false when no row was
// stored yet; the role then defaults to customer.
type ProfileView struct {
	UserID     kernel.UUID
	FullName   string
	Phone      string
	HostelName string
	RoomNumber string
	Role       profile.Role
	Exists     bool
}

type GetProfileQueryHandler struct {
	db *gorm.DB
}

func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (ProfileView, error) {
	if err := query.Validate(); err != nil {
		return ProfileView{}, err
	}

	view := ProfileView{UserID: query.userID, Role: profile.Customer}

	var role string
	err := h.db.WithContext(ctx).Raw(`
		SELECT full_name, phone, hostel_name, room_number, role
		FROM profiles
		WHERE id = ?
	`, query.userID.String()).Row().Scan(&view.FullName, &view.Phone, &view.HostelName, &view.RoomNumber, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return view, nil
	}
	if err != nil {
		return ProfileView{}, err
	}

	view.Role = profile.RoleOrDefault(role)
	view.Exists = true
	return view, nil
}
