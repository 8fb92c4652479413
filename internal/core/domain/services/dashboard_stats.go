package services

import (
	"time"

	"laundry/internal/core/domain/model/order"
)

// DashboardStats are the admin dashboard counters.
type DashboardStats struct {
	Today     int `json:"today"`
	Pending   int `json:"pending"`
	Ongoing   int `json:"ongoing"`
	Completed int `json:"completed"`
	Delivered int `json:"delivered"`
	Total     int `json:"total"`
}

// StatsEntry is the part of an order the counters look at.
type StatsEntry struct {
	Status    order.Status
	CreatedAt time.Time
}

// ComputeStats counts a snapshot. "Today" means created on the calendar day of
// now, in now's location. Ongoing covers picked up, washing and drying.
func ComputeStats(now time.Time, entries []StatsEntry) DashboardStats {
	stats := DashboardStats{Total: len(entries)}
	y, m, d := now.Date()
	for _, e := range entries {
		cy, cm, cd := e.CreatedAt.In(now.Location()).Date()
		if cy == y && cm == m && cd == d {
			stats.Today++
		}
		switch {
		case e.Status == order.Pending:
			stats.Pending++
		case e.Status.IsOngoing():
			stats.Ongoing++
		case e.Status == order.Completed:
			stats.Completed++
		case e.Status == order.Delivered:
			stats.Delivered++
		}
	}
	return stats
}
