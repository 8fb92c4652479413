// Package profile holds the per-user profile row and the role that decides
// which surface a user lands on after sign-in.
package profile

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Role gates the staff and admin surfaces.
type Role int

const (
	UnknownRole Role = iota
	Customer
	Staff
	Admin
)

// Landing routes per role.
const (
	AdminLandingRoute    = "/admin-dashboard"
	StaffLandingRoute    = "/staff-scan"
	CustomerLandingRoute = "/dashboard"
)

var roleStrings = map[Role]string{
	Customer: "customer",
	Staff:    "staff",
	Admin:    "admin",
}

// ParseRole converts the stored literal. Matching is exact.
func ParseRole(s string) (Role, error) {
	for r, str := range roleStrings {
		if str == s {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// RoleOrDefault parses s and falls back to Customer for anything unknown,
// including an empty value from a missing profile.
func RoleOrDefault(s string) Role {
	r, err := ParseRole(s)
	if err != nil {
		return Customer
	}
	return r
}

func (r Role) Validate() error {
	if _, ok := roleStrings[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := roleStrings[r]; ok {
		return str
	}
	return "unknown"
}

// CanOperate reports access to the staff scan surface.
func (r Role) CanOperate() bool {
	return r == Staff || r == Admin
}

// IsAdmin reports access to the admin surface.
func (r Role) IsAdmin() bool {
	return r == Admin
}

// LandingRoute maps a role to the route a user is sent to after sign-in.
func (r Role) LandingRoute() string {
	switch r {
	case Admin:
		return AdminLandingRoute
	case Staff:
		return StaffLandingRoute
	case UnknownRole, Customer:
	}
	return CustomerLandingRoute
}
