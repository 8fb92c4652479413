// Package batchrepo persists wash batches.
package batchrepo

import (
	"time"

	"laundry/internal/core/domain/model/batch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type BatchDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	BatchNumber      string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	WashType         string    `gorm:"type:varchar(16);not null"`
	Status           string    `gorm:"type:varchar(16);not null"`
	TotalOrders      int       `gorm:"type:int;not null;default:0"`
	CreatedBy        uuid.UUID `gorm:"type:uuid"`
	WashingStartedAt *time.Time
	DryingStartedAt  *time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime:false"`
}

func (BatchDTO) TableName() string {
	return "batches"
}

func fromDomain(b *batch.Batch) BatchDTO {
	return BatchDTO{
		ID:               b.ID().Bytes(),
		BatchNumber:      b.Number().String(),
		WashType:         b.WashType().String(),
		Status:           b.Status().String(),
		TotalOrders:      b.TotalOrders(),
		CreatedBy:        b.CreatedBy().Bytes(),
		WashingStartedAt: b.WashingStartedAt(),
		DryingStartedAt:  b.DryingStartedAt(),
		CompletedAt:      b.CompletedAt(),
		CreatedAt:        b.CreatedAt(),
		UpdatedAt:        b.UpdatedAt(),
	}
}

func toDomain(dto BatchDTO) (*batch.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}
	number, err := kernel.ParseToken(dto.BatchNumber)
	if err != nil {
		return nil, err
	}
	washType, err := order.ParseWashType(dto.WashType)
	if err != nil {
		return nil, err
	}
	status, err := batch.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return batch.RestoreBatch(batch.Snapshot{
		ID:               id,
		Number:           number,
		WashType:         washType,
		Status:           status,
		TotalOrders:      dto.TotalOrders,
		CreatedBy:        createdBy,
		WashingStartedAt: dto.WashingStartedAt,
		DryingStartedAt:  dto.DryingStartedAt,
		CompletedAt:      dto.CompletedAt,
		CreatedAt:        dto.CreatedAt,
		UpdatedAt:        dto.UpdatedAt,
	})
}
