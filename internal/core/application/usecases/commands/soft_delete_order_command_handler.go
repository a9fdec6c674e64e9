package commands

import (
	"context"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/services"
)

// SoftDeleteOrderCommandHandler sets the customer's hide flag. Every call is logged,
// including repeats; nobody is notified.
type SoftDeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher services.OrderDispatcher
	clock      kernel.Clock
}

func NewSoftDeleteOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) SoftDeleteOrderCommandHandler {
	return SoftDeleteOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
		clock:      clock,
	}
}

func (h *SoftDeleteOrderCommandHandler) Handle(ctx context.Context, cmd SoftDeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	outcome := h.dispatcher.HideFromCustomer(o)
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = recordActivity(ctx, uow, h.clock, outcome.Activity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
