package queries

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery counts orders for the admin dashboard. "Today" is
// the calendar day of Now in Now's location.
type GetDashboardStatsQuery struct {
	now time.Time

	guard guard.ConstructorGuard
}

func NewGetDashboardStatsQuery(now time.Time) GetDashboardStatsQuery {
	return GetDashboardStatsQuery{now: now, guard: guard.NewConstructorGuard()}
}

func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

func (q GetDashboardStatsQuery) Now() time.Time { return q.now }

type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (services.DashboardStats, error) {
	if err := query.Validate(); err != nil {
		return services.DashboardStats{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, created_at
		FROM laundry_orders
	`).Rows()
	if err != nil {
		return services.DashboardStats{}, err
	}
	defer rows.Close()

	entries := make([]services.StatsEntry, 0)
	for rows.Next() {
		var raw string
		var entry services.StatsEntry
		if err = rows.Scan(&raw, &entry.CreatedAt); err != nil {
			return services.DashboardStats{}, err
		}
		if entry.Status, err = order.ParseStatus(raw); err != nil {
			return services.DashboardStats{}, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return services.DashboardStats{}, err
	}

	return services.ComputeStats(query.Now(), entries), nil
}
