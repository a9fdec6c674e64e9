package commands

import (
	"errors"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand carries the code the customer typed. Any string is accepted;
// a malformed one simply does not match.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	code    string

	guard guard.ConstructorGuard
}

func NewConfirmDeliveryCommand(orderID kernel.UUID, code string) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

func (c ConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ConfirmDeliveryCommand) Code() string {
	return c.code
}

func (c *ConfirmDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
