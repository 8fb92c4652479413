package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to hand in a bag of laundry.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, "stain_warm", "pickup", "Ganga hostel, room 214", "", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID              kernel.UUID
	washType            order.WashType
	pickupType          order.PickupType
	pickupAddress       string
	specialInstructions string
	estimatedCost       *kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the raw request values. An empty wash type
// means normal.
func NewCreateOrderCommand(
	userID kernel.UUID,
	washType string,
	pickupType string,
	pickupAddress string,
	specialInstructions string,
	estimatedCost *kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		pickupAddress:       strings.TrimSpace(pickupAddress),
		specialInstructions: strings.TrimSpace(specialInstructions),
		estimatedCost:       estimatedCost,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setWashType(washType),
		cmd.setPickupType(pickupType),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) UserID() kernel.UUID { return c.userID }
func (c CreateOrderCommand) WashType() order.WashType { return c.washType }
func (c CreateOrderCommand) PickupType() order.PickupType { return c.pickupType }
func (c CreateOrderCommand) PickupAddress() string { return c.pickupAddress }
func (c CreateOrderCommand) SpecialInstructions() string { return c.specialInstructions }
func (c CreateOrderCommand) EstimatedCost() *kernel.Money { return c.estimatedCost }

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setWashType(raw string) error {
	washType, err := order.ParseWashType(raw)
	if err != nil {
		return err
	}
	c.washType = washType
	return nil
}

func (c *CreateOrderCommand) setPickupType(raw string) error {
	pickupType, err := order.ParsePickupType(raw)
	if err != nil {
		return err
	}
	c.pickupType = pickupType
	return nil
}
