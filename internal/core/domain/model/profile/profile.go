package profile

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
)

var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")

// Profile is the application-side record of an authenticated user. Its id is
// the auth provider's subject.
type Profile struct {
	id         kernel.UUID
	fullName   string
	phone      string
	hostelName string
	roomNumber string
	role       Role
	createdAt  time.Time
	updatedAt  time.Time

	isConstructed bool
}

// NewProfile creates a customer profile for a first-time user.
func NewProfile(id kernel.UUID, now time.Time) (*Profile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Profile{
		id:            id,
		role:          Customer,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// Snapshot carries every stored field of a profile.
type Snapshot struct {
	ID         kernel.UUID
	FullName   string
	Phone      string
	HostelName string
	RoomNumber string
	Role       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RestoreProfile rebuilds a stored profile. An unknown stored role reads as
// Customer.
func RestoreProfile(s Snapshot) (*Profile, error) {
	if err := s.ID.Validate(); err != nil {
		return nil, err
	}
	return &Profile{
		id:            s.ID,
		fullName:      s.FullName,
		phone:         s.Phone,
		hostelName:    s.HostelName,
		roomNumber:    s.RoomNumber,
		role:          RoleOrDefault(s.Role),
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}, nil
}

func (p *Profile) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProfileIsNotConstructed
	}
	return nil
}

func (p *Profile) ID() kernel.UUID { return p.id }
func (p *Profile) FullName() string { return p.fullName }
func (p *Profile) Phone() string { return p.phone }
func (p *Profile) HostelName() string { return p.hostelName }
func (p *Profile) RoomNumber() string { return p.roomNumber }
func (p *Profile) Role() Role { return p.role }
func (p *Profile) CreatedAt() time.Time { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }

// UpdateDetails replaces the editable contact fields. Blank values clear a
// field; the booking wizard enforces completeness, not the profile.
func (p *Profile) UpdateDetails(fullName, phone, hostelName, roomNumber string, now time.Time) {
	p.fullName = strings.TrimSpace(fullName)
	p.phone = strings.TrimSpace(phone)
	p.hostelName = strings.TrimSpace(hostelName)
	p.roomNumber = strings.TrimSpace(roomNumber)
	p.updatedAt = now
}

// ChangeRole sets a new role. It returns the previous one.
func (p *Profile) ChangeRole(role Role, now time.Time) (Role, error) {
	if err := role.Validate(); err != nil {
		return p.role, err
	}
	previous := p.role
	p.role = role
	p.updatedAt = now
	return previous, nil
}
