package booking

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// TimeSlot is one of the six fixed two-hour pickup windows. Slots are a static
// list; there is no capacity accounting.
type TimeSlot int

const (
	UnknownTimeSlot TimeSlot = iota
	Slot0800
	Slot1000
	Slot1200
	Slot1400
	Slot1600
	Slot1800
)

var timeSlotLabels = map[TimeSlot]string{
	Slot0800: "08:00 AM - 10:00 AM",
	Slot1000: "10:00 AM - 12:00 PM",
	Slot1200: "12:00 PM - 02:00 PM",
	Slot1400: "02:00 PM - 04:00 PM",
	Slot1600: "04:00 PM - 06:00 PM",
	Slot1800: "06:00 PM - 08:00 PM",
}

// TimeSlots returns the selectable slots in chronological order.
func TimeSlots() []TimeSlot {
	return []TimeSlot{Slot0800, Slot1000, Slot1200, Slot1400, Slot1600, Slot1800}
}

// ParseTimeSlot accepts the display label, e.g. "08:00 AM - 10:00 AM".
// An empty label yields UnknownTimeSlot without error: the slot is simply not
// selected yet.
func ParseTimeSlot(label string) (TimeSlot, error) {
	if label == "" {
		return UnknownTimeSlot, nil
	}
	for slot, l := range timeSlotLabels {
		if l == label {
			return slot, nil
		}
	}
	return UnknownTimeSlot, errs.NewValueIsInvalidErrorWithCause(
		"time slot is invalid",
		fmt.Errorf("%q is not an offered time slot", label),
	)
}

func (t TimeSlot) Validate() error {
	if _, ok := timeSlotLabels[t]; !ok {
		return errs.NewValueIsRequiredError("time slot")
	}
	return nil
}

func (t TimeSlot) String() string {
	return timeSlotLabels[t]
}

// LaundryType is the service the customer picks in the third wizard step.
type LaundryType int

const (
	UnknownLaundryType LaundryType = iota
	QuickWash
	RegularWash
	DelicateCare
	DryCleaning
)

var laundryTypeStrings = map[LaundryType]string{
	QuickWash:    "quick_wash",
	RegularWash:  "regular_wash",
	DelicateCare: "delicate_care",
	DryCleaning:  "dry_cleaning",
}

// LaundryTypes returns every offered service.
func LaundryTypes() []LaundryType {
	return []LaundryType{QuickWash, RegularWash, DelicateCare, DryCleaning}
}

// ParseLaundryType works like ParseTimeSlot: empty means not selected.
func ParseLaundryType(s string) (LaundryType, error) {
	if s == "" {
		return UnknownLaundryType, nil
	}
	for lt, str := range laundryTypeStrings {
		if str == s {
			return lt, nil
		}
	}
	return UnknownLaundryType, errs.NewValueIsInvalidErrorWithCause(
		"laundry type is invalid",
		fmt.Errorf("%q is not an offered laundry type", s),
	)
}

func (l LaundryType) Validate() error {
	if _, ok := laundryTypeStrings[l]; !ok {
		return errs.NewValueIsRequiredError("laundry type")
	}
	return nil
}

func (l LaundryType) String() string {
	if str, ok := laundryTypeStrings[l]; ok {
		return str
	}
	return "unknown"
}

// ClothingType enumerates the garment categories a customer can count.
type ClothingType int

const (
	UnknownClothingType ClothingType = iota
	Shirts
	Trousers
	Jeans
	TShirts
	Dresses
	Skirts
	Jackets
	Underwear
	Socks
	Bedsheets
	Towels
	Others

	clothingTypeCount = int(Others)
)

var clothingTypeStrings = map[ClothingType]string{
	Shirts:    "shirts",
	Trousers:  "trousers",
	Jeans:     "jeans",
	TShirts:   "t_shirts",
	Dresses:   "dresses",
	Skirts:    "skirts",
	Jackets:   "jackets",
	Underwear: "underwear",
	Socks:     "socks",
	Bedsheets: "bedsheets",
	Towels:    "towels",
	Others:    "others",
}

// ClothingTypes returns all twelve categories in display order.
func ClothingTypes() []ClothingType {
	return []ClothingType{
		Shirts, Trousers, Jeans, TShirts, Dresses, Skirts,
		Jackets, Underwear, Socks, Bedsheets, Towels, Others,
	}
}

func ParseClothingType(s string) (ClothingType, error) {
	for ct, str := range clothingTypeStrings {
		if str == s {
			return ct, nil
		}
	}
	return UnknownClothingType, errs.NewValueIsInvalidErrorWithCause(
		"clothing type is invalid",
		fmt.Errorf("%q is not a valid clothing type", s),
	)
}

func (c ClothingType) Validate() error {
	if _, ok := clothingTypeStrings[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"clothing type is invalid",
			fmt.Errorf("%d is not a valid clothing type", c),
		)
	}
	return nil
}

func (c ClothingType) String() string {
	if str, ok := clothingTypeStrings[c]; ok {
		return str
	}
	return "unknown"
}
