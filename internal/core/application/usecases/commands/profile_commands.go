package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/profile"
	"laundry/internal/pkg/guard"
)

var (
	ErrUpdateProfileCommandIsNotConstructed = errors.New(
		"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
	)
	ErrChangeRoleCommandIsNotConstructed = errors.New(
		"ChangeRoleCommand must be created via NewChangeRoleCommand constructor",
	)
)

// UpdateProfileCommand replaces the caller's own contact details.
type UpdateProfileCommand struct {
	userID     kernel.UUID
	fullName   string
	phone      string
	hostelName string
	roomNumber string

	guard guard.ConstructorGuard
}

func NewUpdateProfileCommand(userID kernel.UUID, fullName, phone, hostelName, roomNumber string) (UpdateProfileCommand, error) {
	if err := userID.Validate(); err != nil {
		return UpdateProfileCommand{}, err
	}
	return UpdateProfileCommand{
		userID:     userID,
		fullName:   fullName,
		phone:      phone,
		hostelName: hostelName,
		roomNumber: roomNumber,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) UserID() kernel.UUID { return c.userID }
func (c UpdateProfileCommand) FullName() string { return c.fullName }
func (c UpdateProfileCommand) Phone() string { return c.phone }
func (c UpdateProfileCommand) HostelName() string { return c.hostelName }
func (c UpdateProfileCommand) RoomNumber() string { return c.roomNumber }

// ChangeRoleCommand is the admin action that promotes or demotes a user.
type ChangeRoleCommand struct {
	actor  kernel.UUID
	userID kernel.UUID
	role   profile.Role

	guard guard.ConstructorGuard
}

func NewChangeRoleCommand(actor, userID kernel.UUID, role string) (ChangeRoleCommand, error) {
	r, err := profile.ParseRole(role)
	if err = errors.Join(actor.Validate(), userID.Validate(), err); err != nil {
		return ChangeRoleCommand{}, err
	}
	return ChangeRoleCommand{actor: actor, userID: userID, role: r, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeRoleCommandIsNotConstructed)
}

func (c ChangeRoleCommand) Actor() kernel.UUID { return c.actor }
func (c ChangeRoleCommand) UserID() kernel.UUID { return c.userID }
func (c ChangeRoleCommand) Role() profile.Role { return c.role }
