package orderrepo

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormStatusHistoryRepository appends and reads order_status_history rows.
// Rows are never updated or deleted.
type GormStatusHistoryRepository struct {
	db *gorm.DB
}

func NewGormStatusHistoryRepository(db *gorm.DB) *GormStatusHistoryRepository {
	return &GormStatusHistoryRepository{db: db}
}

func (r *GormStatusHistoryRepository) Append(ctx context.Context, change order.StatusChange) error {
	if err := change.Validate(); err != nil {
		return err
	}
	dto := historyFromDomain(change)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByOrder returns the history of one order, oldest first.
func (r *GormStatusHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.StatusChange, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StatusHistoryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	changes := make([]order.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		c, convErr := historyToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		changes = append(changes, c)
	}
	return changes, nil
}
