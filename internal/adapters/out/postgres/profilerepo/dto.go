// Package profilerepo persists user profiles and the user_activity log.
package profilerepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/profile"

	"github.com/google/uuid"
)

// ProfileDTO is the profiles row. Its id is the authentication subject.
type ProfileDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName   string    `gorm:"type:varchar(255)"`
	Phone      string    `gorm:"type:varchar(32)"`
	HostelName string    `gorm:"type:varchar(255)"`
	RoomNumber string    `gorm:"type:varchar(32)"`
	Role       string    `gorm:"type:varchar(16);not null;default:customer"`
	CreatedAt  time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime:false"`
}

func (ProfileDTO) TableName() string {
	return "profiles"
}

// ActivityDTO is one user_activity row.
type ActivityDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null"`
	ActivityType string    `gorm:"type:varchar(32);not null"`
	Description  string
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
}

func (ActivityDTO) TableName() string {
	return "user_activity"
}

func fromDomain(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		ID:         p.ID().Bytes(),
		FullName:   p.FullName(),
		Phone:      p.Phone(),
		HostelName: p.HostelName(),
		RoomNumber: p.RoomNumber(),
		Role:       p.Role().String(),
		CreatedAt:  p.CreatedAt(),
		UpdatedAt:  p.UpdatedAt(),
	}
}

func toDomain(dto ProfileDTO) (*profile.Profile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return profile.RestoreProfile(profile.Snapshot{
		ID:         id,
		FullName:   dto.FullName,
		Phone:      dto.Phone,
		HostelName: dto.HostelName,
		RoomNumber: dto.RoomNumber,
		Role:       dto.Role,
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
	})
}

func activityFromDomain(a profile.Activity) ActivityDTO {
	return ActivityDTO{
		ID:           a.ID().Bytes(),
		UserID:       a.UserID().Bytes(),
		ActivityType: a.Type(),
		Description:  a.Description(),
		CreatedAt:    a.CreatedAt(),
	}
}
