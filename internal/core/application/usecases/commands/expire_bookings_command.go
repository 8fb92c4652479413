package commands

import (
	"errors"
	"time"

	"laundry/internal/pkg/guard"
)

var ErrExpireBookingsCommandIsNotConstructed = errors.New(
	"ExpireBookingsCommand must be created via NewExpireBookingsCommand constructor",
)

// ExpireBookingsCommand cancels pending bookings dated before Today.
type ExpireBookingsCommand struct {
	today time.Time

	guard guard.ConstructorGuard
}

func NewExpireBookingsCommand(today time.Time) ExpireBookingsCommand {
	return ExpireBookingsCommand{today: today, guard: guard.NewConstructorGuard()}
}

func (c ExpireBookingsCommand) Validate() error {
	return c.guard.Validate(ErrExpireBookingsCommandIsNotConstructed)
}

func (c ExpireBookingsCommand) Today() time.Time { return c.today }
