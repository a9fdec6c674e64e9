package commands_test

import (
	"errors"
	"testing"

	"mozdelivery/internal/core/application/usecases/commands"
	"mozdelivery/internal/core/domain/model/activity"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/notification"
	"mozdelivery/internal/core/domain/model/order"
	"mozdelivery/internal/core/domain/services"
	"mozdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCart() []commands.CartLine {
	return []commands.CartLine{
		{MenuItemID: "m1", Name: "Frango à Zambeziana", UnitPrice: 450, Quantity: 1},
		{MenuItemID: "m2", Name: "Matapa com Caranguejo", UnitPrice: 380, Quantity: 1},
	}
}

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		cmd, err := commands.NewPlaceOrderCommand(" Ana ", "Cantinho do Sabor", validCart(), "mpesa", "Central")
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())

		assert.Equal(t, "Ana", cmd.Details().CustomerName)
		assert.Equal(t, order.MPesa, cmd.Details().PaymentMethod)
		assert.Len(t, cmd.Items(), 2)
		assert.Equal(t, "Central", cmd.Neighborhood())
	})

	t.Run("empty cart", func(t *testing.T) {
		t.Parallel()

		_, err := commands.NewPlaceOrderCommand("Ana", "Cantinho do Sabor", nil, "MPESA", "Central")
		require.ErrorIs(t, err, order.ErrCartIsEmpty)
	})

	t.Run("collects every problem", func(t *testing.T) {
		t.Parallel()

		cart := []commands.CartLine{{MenuItemID: "m1", Name: "Frango", UnitPrice: 450, Quantity: 0}}
		_, err := commands.NewPlaceOrderCommand("", "", cart, "BITCOIN", "")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "item 0")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, commands.PlaceOrderCommand{}.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}

func TestPlaceOrderCommandHandler_Handle(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctx := t.Context()

		orders := &MockOrderRepository{}
		notifications := &MockNotificationRepository{}
		activities := &MockActivityRepository{}
		uow := orderUoW(orders, notifications, activities)
		factory := &MockOrderUoWFactory{}
		codes := &MockCodeGenerator{}
		toasts := &MockToastSurface{}

		factory.On("Create").Return(uow).Once()
		codes.On("Generate").Return(mustCode(t, "4821")).Once()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
				return o.Status() == order.Pending && o.Total() == 880 && o.ConfirmationCode().String() == "4821"
			})).Return(nil).Once(),
			notifications.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
				return n.TargetRole() == kernel.Manager && n.Severity() == notification.Success
			})).Return(nil).Once(),
			activities.On("Add", ctx, mock.MatchedBy(func(e *activity.Entry) bool {
				return e.Actor() == kernel.Customer.String() && e.Action() == "New order"
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		toasts.On("Surface", mock.Anything).Return(false).Once()

		cmd, err := commands.NewPlaceOrderCommand("Ana", "Cantinho do Sabor", validCart(), "MPESA", "Central")
		require.NoError(t, err)

		handler := commands.NewPlaceOrderCommandHandler(
			factory, codes, services.NewDeliveryFeeCalculator(services.DefaultDeliveryFee), kernel.NewFixedClock(now), toasts,
		)
		o, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, 830, o.Subtotal())
		assert.Equal(t, 50, o.DeliveryFee())
		assert.Equal(t, 880, o.Total())
		assert.Equal(t, now, o.PlacedAt())

		mock.AssertExpectationsForObjects(t, factory, uow, orders, notifications, activities, codes, toasts)
	})

	t.Run("neighborhood fee", func(t *testing.T) {
		t.Parallel()
		ctx := t.Context()

		orders := &MockOrderRepository{}
		notifications := &MockNotificationRepository{}
		activities := &MockActivityRepository{}
		uow := orderUoW(orders, notifications, activities)
		factory := &MockOrderUoWFactory{}
		codes := &MockCodeGenerator{}

		factory.On("Create").Return(uow).Once()
		codes.On("Generate").Return(mustCode(t, "1000")).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		orders.On("Add", ctx, mock.Anything).Return(nil).Once()
		notifications.On("Add", ctx, mock.Anything).Return(nil).Once()
		activities.On("Add", ctx, mock.Anything).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, err := commands.NewPlaceOrderCommand("Ana", "Cantinho do Sabor", validCart(), "CASH", "natikiri")
		require.NoError(t, err)

		handler := commands.NewPlaceOrderCommandHandler(
			factory, codes, services.NewDeliveryFeeCalculator(services.DefaultDeliveryFee), kernel.NewFixedClock(now), nil,
		)
		o, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, 120, o.DeliveryFee())
		assert.Equal(t, 950, o.Total())
	})

	t.Run("repository error rolls back", func(t *testing.T) {
		t.Parallel()
		ctx := t.Context()

		orders := &MockOrderRepository{}
		notifications := &MockNotificationRepository{}
		activities := &MockActivityRepository{}
		uow := orderUoW(orders, notifications, activities)
		factory := &MockOrderUoWFactory{}
		codes := &MockCodeGenerator{}
		toasts := &MockToastSurface{}
		boom := errors.New("disk full")

		factory.On("Create").Return(uow).Once()
		codes.On("Generate").Return(mustCode(t, "4821")).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			orders.On("Add", ctx, mock.Anything).Return(boom).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewPlaceOrderCommand("Ana", "Cantinho do Sabor", validCart(), "MPESA", "Central")
		require.NoError(t, err)

		handler := commands.NewPlaceOrderCommandHandler(
			factory, codes, services.NewDeliveryFeeCalculator(services.DefaultDeliveryFee), kernel.NewFixedClock(now), toasts,
		)
		_, err = handler.Handle(ctx, cmd)
		require.ErrorIs(t, err, boom)

		uow.AssertNotCalled(t, "Commit", ctx)
		notifications.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		toasts.AssertNotCalled(t, "Surface", mock.Anything)
	})

	t.Run("not constructed command", func(t *testing.T) {
		t.Parallel()

		factory := &MockOrderUoWFactory{}
		handler := commands.NewPlaceOrderCommandHandler(
			factory, &MockCodeGenerator{}, services.NewDeliveryFeeCalculator(0), kernel.NewFixedClock(now), nil,
		)
		_, err := handler.Handle(t.Context(), commands.PlaceOrderCommand{})
		require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
		factory.AssertNotCalled(t, "Create")
	})
}
