package commands

import (
	"errors"
	"strings"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/pkg/errs"
	"mozdelivery/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand is the driver saying "I have the food". It re-notifies but does
// not move the order out of OUT_FOR_DELIVERY.
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID string

	guard guard.ConstructorGuard
}

func NewConfirmPickupCommand(orderID kernel.UUID, driverID string) (ConfirmPickupCommand, error) {
	cmd := ConfirmPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return cmd, nil
}

func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

func (c ConfirmPickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ConfirmPickupCommand) DriverID() string {
	return c.driverID
}

func (c *ConfirmPickupCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmPickupCommand) setDriverID(driverID string) error {
	driverID = strings.TrimSpace(driverID)
	if driverID == "" {
		return errs.NewValueIsRequiredError("driverId")
	}
	c.driverID = driverID
	return nil
}
