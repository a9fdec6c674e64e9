package commands

import (
	"errors"
	"strings"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/order"
	"mozdelivery/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand is a dispatch or driver request to move an order along the
// state machine. prepTime is only read for PREPARING and driverID for OUT_FOR_DELIVERY.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status
	metadata  order.Metadata
	actor     kernel.Role

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	prepTime string,
	driverID string,
	actor kernel.Role,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
		cmd.setMetadata(prepTime, driverID),
		cmd.setActor(actor),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c UpdateOrderStatusCommand) Metadata() order.Metadata {
	return c.metadata
}

func (c UpdateOrderStatusCommand) Actor() kernel.Role {
	return c.actor
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNewStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.newStatus = status
	return nil
}

func (c *UpdateOrderStatusCommand) setMetadata(prepTime string, driverID string) error {
	c.metadata.DriverID = strings.TrimSpace(driverID)

	if strings.TrimSpace(prepTime) == "" {
		return nil
	}
	p, err := order.NewPrepTime(prepTime)
	if err != nil {
		return err
	}
	c.metadata.PrepTime = p
	return nil
}

func (c *UpdateOrderStatusCommand) setActor(actor kernel.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
