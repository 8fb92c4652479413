package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrLookupOrderQueryIsNotConstructed = errors.New(
	"LookupOrderQuery must be created via NewLookupOrderQuery constructor",
)

// LookupOrderQuery resolves a scanned or typed laundry id for the staff scan
// surface.
//
// Example:
//
//	query, err := NewLookupOrderQuery("  LND20250123A1B2C3 ")
//	if err != nil {
//	    return err // blank input
//	}
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, ErrOrderNotFound) {
//	    // show "Order Not Found"
//	}
type LookupOrderQuery struct {
	laundryID kernel.Token

	guard guard.ConstructorGuard
}

// NewLookupOrderQuery trims the input and rejects blank ids.
func NewLookupOrderQuery(laundryID string) (LookupOrderQuery, error) {
	token, err := kernel.ParseToken(laundryID)
	if err != nil {
		return LookupOrderQuery{}, err
	}
	return LookupOrderQuery{laundryID: token, guard: guard.NewConstructorGuard()}, nil
}

func (q LookupOrderQuery) Validate() error {
	return q.guard.Validate(ErrLookupOrderQueryIsNotConstructed)
}

func (q LookupOrderQuery) LaundryID() kernel.Token { return q.laundryID }
