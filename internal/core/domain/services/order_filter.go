package services

import (
	"strings"

	"laundry/internal/core/domain/model/order"
)

// AllStatuses is the status filter value that disables status matching.
const AllStatuses = "all"

// OrderFilter selects orders from an admin dashboard snapshot.
//
// An order matches when its laundry id contains the search term (case
// insensitive) AND its status equals the selected status, unless "all" is
// selected. Both predicates are independent, so applying them in either order
// or repeatedly yields the same result.
//
// Example:
//
//	f, err := services.NewOrderFilter("lnd2025", "washing")
//	if err != nil {
//	    // unknown status literal
//	}
//	visible := services.FilterOrders(views, f, func(v OrderView) (string, order.Status) {
//	    return v.LaundryID, v.Status
//	})
type OrderFilter struct {
	search    string
	status    order.Status
	anyStatus bool
}

// NewOrderFilter builds a filter. An empty status means "all".
func NewOrderFilter(search, status string) (OrderFilter, error) {
	f := OrderFilter{search: strings.ToLower(strings.TrimSpace(search))}
	if status == "" || status == AllStatuses {
		f.anyStatus = true
		return f, nil
	}

	s, err := order.ParseStatus(status)
	if err != nil {
		return OrderFilter{}, err
	}
	f.status = s
	return f, nil
}

// Search returns the normalised search term.
func (f OrderFilter) Search() string { return f.search }

// Status returns the filter literal, "all" when status matching is off.
func (f OrderFilter) Status() string {
	if f.anyStatus {
		return AllStatuses
	}
	return f.status.String()
}

// Matches applies both predicates to a single row.
func (f OrderFilter) Matches(laundryID string, status order.Status) bool {
	return f.matchesSearch(laundryID) && f.matchesStatus(status)
}

func (f OrderFilter) matchesSearch(laundryID string) bool {
	return f.search == "" || strings.Contains(strings.ToLower(laundryID), f.search)
}

func (f OrderFilter) matchesStatus(status order.Status) bool {
	return f.anyStatus || status == f.status
}

// FilterOrders returns the matching rows in snapshot order. key extracts the
// laundry id and status of a row.
func FilterOrders[T any](snapshot []T, f OrderFilter, key func(T) (string, order.Status)) []T {
	result := make([]T, 0, len(snapshot))
	for _, row := range snapshot {
		if f.Matches(key(row)) {
			result = append(result, row)
		}
	}
	return result
}
