package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// WashType selects the wash programme.
type WashType int

const (
	UnknownWashType WashType = iota
	Normal
	StainWarm
)

var washTypeStrings = map[WashType]string{
	Normal:    "normal",
	StainWarm: "stain_warm",
}

// ParseWashType converts the stored literal; an empty string means Normal,
// which is the column default.
func ParseWashType(s string) (WashType, error) {
	if s == "" {
		return Normal, nil
	}
	for w, str := range washTypeStrings {
		if str == s {
			return w, nil
		}
	}
	return UnknownWashType, errs.NewValueIsInvalidErrorWithCause(
		"wash type is invalid",
		fmt.Errorf("%q is not a valid wash type", s),
	)
}

func (w WashType) Validate() error {
	if _, ok := washTypeStrings[w]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("wash type is invalid", fmt.Errorf("%d is not a valid wash type", w))
	}
	return nil
}

func (w WashType) String() string {
	if str, ok := washTypeStrings[w]; ok {
		return str
	}
	return "unknown"
}

// PickupType tells whether the customer drops the bag off or staff collect it.
type PickupType int

const (
	UnknownPickupType PickupType = iota
	SelfDrop
	Pickup
)

var pickupTypeStrings = map[PickupType]string{
	SelfDrop: "self_drop",
	Pickup:   "pickup",
}

func ParsePickupType(s string) (PickupType, error) {
	for p, str := range pickupTypeStrings {
		if str == s {
			return p, nil
		}
	}
	return UnknownPickupType, errs.NewValueIsInvalidErrorWithCause(
		"pickup type is invalid",
		fmt.Errorf("%q is not a valid pickup type", s),
	)
}

func (p PickupType) Validate() error {
	if _, ok := pickupTypeStrings[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("pickup type is invalid", fmt.Errorf("%d is not a valid pickup type", p))
	}
	return nil
}

func (p PickupType) String() string {
	if str, ok := pickupTypeStrings[p]; ok {
		return str
	}
	return "unknown"
}
