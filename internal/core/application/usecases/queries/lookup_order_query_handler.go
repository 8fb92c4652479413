package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"laundry/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// ErrOrderNotFound reports that no order carries the looked-up laundry id.
// It is a normal outcome of a scan, not a failure.
var ErrOrderNotFound = errors.New("order not found")

// LookupOrderQueryHandler reads one order by laundry id. Identical lookups
// running at the same time share a single database read.
type LookupOrderQueryHandler struct {
	db    *gorm.DB
	group *singleflight.Group
}

func NewLookupOrderQueryHandler(db *gorm.DB) LookupOrderQueryHandler {
	return LookupOrderQueryHandler{db: db, group: &singleflight.Group{}}
}

// Handle matches the laundry id exactly and case-sensitively. A miss yields an
// error matching both ErrOrderNotFound and errs.ErrObjectNotFound.
func (h LookupOrderQueryHandler) Handle(ctx context.Context, query LookupOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	key := query.LaundryID().String()
	v, err, _ := h.group.Do(key, func() (any, error) {
		return h.load(ctx, key)
	})
	if err != nil {
		return OrderView{}, err
	}
	return v.(OrderView), nil
}

func (h LookupOrderQueryHandler) load(ctx context.Context, laundryID string) (OrderView, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM laundry_orders
		WHERE laundry_id = ?
	`, laundryID).Row()
	if err := row.Err(); err != nil {
		return OrderView{}, err
	}

	view, err := scanOrderView(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderView{}, fmt.Errorf("%w: %w", ErrOrderNotFound, errs.NewObjectNotFoundError("laundry id", laundryID))
	}
	return view, err
}
