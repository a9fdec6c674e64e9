package commands

import (
	"errors"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/pkg/guard"
)

var ErrSoftDeleteOrderCommandIsNotConstructed = errors.New(
	"SoftDeleteOrderCommand must be created via NewSoftDeleteOrderCommand constructor",
)

// SoftDeleteOrderCommand hides an order from the customer's history.
type SoftDeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSoftDeleteOrderCommand(orderID kernel.UUID) (SoftDeleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SoftDeleteOrderCommand{}, err
	}

	return SoftDeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SoftDeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrSoftDeleteOrderCommandIsNotConstructed)
}

func (c SoftDeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
