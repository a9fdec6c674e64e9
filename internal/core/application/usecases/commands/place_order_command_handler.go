package commands

import (
	"context"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/order"
	"mozdelivery/internal/core/domain/services"
)

// PlaceOrderCommandHandler creates a PENDING order with a fresh confirmation code,
// prices delivery by neighborhood and tells dispatch about it.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, codes, fees, clock, session)
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("order %s total %d MT", o.ID(), o.Total())
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	codes      order.CodeGenerator
	fees       services.DeliveryFeeCalculator
	dispatcher services.OrderDispatcher
	clock      kernel.Clock
	toasts     ToastSurface
}

func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	codes order.CodeGenerator,
	fees services.DeliveryFeeCalculator,
	clock kernel.Clock,
	toasts ToastSurface,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
		fees:       fees,
		dispatcher: services.NewOrderDispatcher(),
		clock:      clock,
		toasts:     toasts,
	}
}

// Handle appends the order, its new-order notification and one activity entry in a
// single transaction.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.Details(),
		cmd.Items(),
		h.fees.Fee(cmd.Neighborhood()),
		h.codes.Generate(),
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	notifications, err := recordOutcome(ctx, uow, h.clock, h.dispatcher.Place(o))
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	surface(h.toasts, notifications)
	return o, nil
}
