package commands

import (
	"context"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/services"
)

// ConfirmPickupCommandHandler records the pickup re-affirmation. The order row is not
// rewritten since nothing on it changes.
type ConfirmPickupCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher services.OrderDispatcher
	clock      kernel.Clock
	toasts     ToastSurface
}

func NewConfirmPickupCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock, toasts ToastSurface) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
		clock:      clock,
		toasts:     toasts,
	}
}

func (h *ConfirmPickupCommandHandler) Handle(ctx context.Context, cmd ConfirmPickupCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	outcome, err := h.dispatcher.ConfirmPickup(o, cmd.DriverID())
	if err != nil {
		return err
	}

	notifications, err := recordOutcome(ctx, uow, h.clock, outcome)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	surface(h.toasts, notifications)
	return nil
}
