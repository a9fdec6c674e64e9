package commands

import (
	"context"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/services"
)

// ConfirmDeliveryCommandHandler is the only path to DELIVERED.
//
// A wrong code returns (false, nil) and commits nothing: no status change, no
// notification and no activity entry. The customer may retry without limit.
type ConfirmDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher services.OrderDispatcher
	clock      kernel.Clock
	toasts     ToastSurface
}

func NewConfirmDeliveryCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock, toasts ToastSurface) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
		clock:      clock,
		toasts:     toasts,
	}
}

func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	ok, outcome, err := h.dispatcher.ConfirmDelivery(o, cmd.Code())
	if err != nil || !ok {
		return false, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}

	notifications, err := recordOutcome(ctx, uow, h.clock, outcome)
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	surface(h.toasts, notifications)
	return true, nil
}
