package booking

import (
	"laundry/internal/pkg/errs"
)

// Item is one booking_items row.
type Item struct {
	ClothingType ClothingType
	Quantity     int
}

// Items holds a non-negative quantity per clothing type. The zero value is an
// empty, ready to use tally.
type Items struct {
	quantities [clothingTypeCount]int
}

// NewItems builds a tally from stored rows. Repeated clothing types add up.
func NewItems(rows ...Item) (Items, error) {
	var items Items
	for _, row := range rows {
		if err := row.ClothingType.Validate(); err != nil {
			return Items{}, err
		}
		if row.Quantity < 0 {
			return Items{}, errs.NewValueIsOutOfRangeError("quantity", row.Quantity, 0, "unbounded")
		}
		items.quantities[row.ClothingType-1] += row.Quantity
	}
	return items, nil
}

// Quantity returns the count for c; unknown types count as zero.
func (i Items) Quantity(c ClothingType) int {
	if c.Validate() != nil {
		return 0
	}
	return i.quantities[c-1]
}

// Increment adds one garment of type c.
func (i *Items) Increment(c ClothingType) error {
	if err := c.Validate(); err != nil {
		return err
	}
	i.quantities[c-1]++
	return nil
}

// Decrement removes one garment of type c. A quantity already at zero stays
// at zero without error.
func (i *Items) Decrement(c ClothingType) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if i.quantities[c-1] > 0 {
		i.quantities[c-1]--
	}
	return nil
}

// Total is the sum of all quantities.
func (i Items) Total() int {
	total := 0
	for _, q := range i.quantities {
		total += q
	}
	return total
}

// Rows returns one Item per clothing type with a positive quantity, in
// display order.
func (i Items) Rows() []Item {
	rows := make([]Item, 0)
	for _, c := range ClothingTypes() {
		if q := i.quantities[c-1]; q > 0 {
			rows = append(rows, Item{ClothingType: c, Quantity: q})
		}
	}
	return rows
}
