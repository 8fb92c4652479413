package queries

import (
	"errors"

	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery is the admin order list with search and status filter.
//
// Example:
//
//	query, err := NewListOrdersQuery("a1b2", "washing")
//	if err != nil {
//	    return err // unknown status literal
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	filter services.OrderFilter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts "" or "all" as "any status".
func NewListOrdersQuery(search, status string) (ListOrdersQuery, error) {
	filter, err := services.NewOrderFilter(search, status)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() services.OrderFilter { return q.filter }
