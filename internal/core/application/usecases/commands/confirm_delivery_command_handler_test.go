package commands_test

import (
	"testing"

	"mozdelivery/internal/core/application/usecases/commands"
	"mozdelivery/internal/core/domain/model/activity"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/notification"
	"mozdelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmDeliveryCommandHandler_Handle(t *testing.T) {
	t.Parallel()

	t.Run("matching code delivers", func(t *testing.T) {
		t.Parallel()
		ctx := t.Context()

		o := newPendingOrder(t)
		advance(t, o, order.Preparing, order.ReadyForPickup, order.OutForDelivery)

		orders := &MockOrderRepository{}
		notifications := &MockNotificationRepository{}
		activities := &MockActivityRepository{}
		uow := orderUoW(orders, notifications, activities)
		factory := &MockOrderUoWFactory{}
		toasts := &MockToastSurface{}

		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			orders.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
				return o.Status() == order.Delivered
			})).Return(nil).Once(),
			notifications.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
				return n.TargetRole() == kernel.Manager
			})).Return(nil).Once(),
			notifications.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
				return n.TargetRole() == kernel.Driver
			})).Return(nil).Once(),
			activities.On("Add", ctx, mock.MatchedBy(func(e *activity.Entry) bool {
				return e.Actor() == "CUSTOMER" && e.Action() == "Delivery confirmed"
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		toasts.On("Surface", mock.Anything).Return(false).Twice()

		cmd, err := commands.NewConfirmDeliveryCommand(o.ID(), "4821")
		require.NoError(t, err)

		handler := commands.NewConfirmDeliveryCommandHandler(factory, kernel.NewFixedClock(now), toasts)
		ok, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.True(t, ok)
		mock.AssertExpectationsForObjects(t, factory, uow, orders, notifications, activities, toasts)
	})

	t.Run("wrong code changes nothing", func(t *testing.T) {
		t.Parallel()
		ctx := t.Context()

		o := newPendingOrder(t)
		advance(t, o, order.Preparing, order.ReadyForPickup, order.OutForDelivery)

		orders := &MockOrderRepository{}
		notifications := &MockNotificationRepository{}
		activities := &MockActivityRepository{}
		uow := orderUoW(orders, notifications, activities)
		factory := &MockOrderUoWFactory{}
		toasts := &MockToastSurface{}

		factory.On("Create").Return(uow).Once()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewConfirmDeliveryCommand(o.ID(), "0000")
		require.NoError(t, err)

		handler := commands.NewConfirmDeliveryCommandHandler(factory, kernel.NewFixedClock(now), toasts)
		ok, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.False(t, ok)

		assert.Equal(t, order.OutForDelivery, o.Status())
		orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		notifications.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		activities.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", ctx)
		toasts.AssertNotCalled(t, "Surface", mock.Anything)
	})

	t.Run("order not out for delivery", func(t *testing.T) {
		t.Parallel()
		ctx := t.Context()

		o := newPendingOrder(t)
		orders := &MockOrderRepository{}
		uow := orderUoW(orders, &MockNotificationRepository{}, &MockActivityRepository{})
		factory := &MockOrderUoWFactory{}

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, err := commands.NewConfirmDeliveryCommand(o.ID(), "4821")
		require.NoError(t, err)

		handler := commands.NewConfirmDeliveryCommandHandler(factory, kernel.NewFixedClock(now), nil)
		ok, err := handler.Handle(ctx, cmd)
		require.ErrorIs(t, err, order.ErrTransitionNotAllowed)
		assert.False(t, ok)
		assert.Equal(t, order.Pending, o.Status())
	})
}
