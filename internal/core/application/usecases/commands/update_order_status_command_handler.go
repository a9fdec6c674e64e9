package commands

import (
	"context"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/order"
	"mozdelivery/internal/core/domain/services"
)

// UpdateOrderStatusCommandHandler applies one transition of the order state machine.
// An illegal transition leaves the ledger and both logs untouched.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher services.OrderDispatcher
	clock      kernel.Clock
	toasts     ToastSurface
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	toasts ToastSurface,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
		clock:      clock,
		toasts:     toasts,
	}
}

func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (order.Transition, error) {
	if err := cmd.Validate(); err != nil {
		return order.Transition{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Transition{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Transition{}, err
	}

	outcome, err := h.dispatcher.Dispatch(o, cmd.NewStatus(), cmd.Metadata(), cmd.Actor())
	if err != nil {
		return order.Transition{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Transition{}, err
	}

	notifications, err := recordOutcome(ctx, uow, h.clock, outcome)
	if err != nil {
		return order.Transition{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Transition{}, err
	}

	surface(h.toasts, notifications)
	return outcome.Transition, nil
}
