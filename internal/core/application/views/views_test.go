package views_test

import (
	"context"
	"errors"
	"testing"

	"mozdelivery/internal/core/application/usecases/queries"
	"mozdelivery/internal/core/application/views"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/order"
	"mozdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderLister struct{ mock.Mock }

func (m *MockOrderLister) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query.Filter())
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderResponse), args.Error(1)
}

func withStatus(status order.Status) queries.OrderResponse {
	return queries.OrderResponse{ID: kernel.NewUUID(), Status: status, ConfirmationCode: "4821"}
}

func TestSet_For(t *testing.T) {
	t.Parallel()

	set := views.NewSet(&MockOrderLister{}, "d1")
	for _, role := range kernel.Roles() {
		v, err := set.For(role)
		require.NoError(t, err)
		assert.Equal(t, role, v.Role())
	}

	_, err := set.For(kernel.UnknownRole)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCustomerView_Board(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	lister := &MockOrderLister{}
	lister.On("Handle", ctx, queries.OrderFilter{Statuses: []order.Status{}, CustomerVisibleOnly: true}).
		Return([]queries.OrderResponse{withStatus(order.Pending)}, nil).Once()

	v, err := views.NewSet(lister, "d1").For(kernel.Customer)
	require.NoError(t, err)

	board, err := v.Board(ctx)
	require.NoError(t, err)
	require.Len(t, board.Sections, 1)
	assert.Equal(t, "history", board.Sections[0].Name)
	assert.Equal(t, "4821", board.Sections[0].Orders[0].ConfirmationCode)
	lister.AssertExpectations(t)
}

func TestDriverView_Board(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	lister := &MockOrderLister{}
	lister.On("Handle", ctx, queries.OrderFilter{
		Statuses:       []order.Status{order.ReadyForPickup},
		UnassignedOnly: true,
	}).Return([]queries.OrderResponse{withStatus(order.ReadyForPickup)}, nil).Once()
	lister.On("Handle", ctx, queries.OrderFilter{
		Statuses: []order.Status{order.OutForDelivery},
		DriverID: "d1",
	}).Return([]queries.OrderResponse{withStatus(order.OutForDelivery)}, nil).Once()

	v, err := views.NewSet(lister, "d1").For(kernel.Driver)
	require.NoError(t, err)

	board, err := v.Board(ctx)
	require.NoError(t, err)
	require.Len(t, board.Sections, 2)
	assert.Equal(t, "available", board.Sections[0].Name)
	assert.Equal(t, "active", board.Sections[1].Name)
	assert.Empty(t, board.Sections[0].Orders[0].ConfirmationCode)
	assert.Empty(t, board.Sections[1].Orders[0].ConfirmationCode)
	lister.AssertExpectations(t)
}

func TestDispatchView_Board(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	lister := &MockOrderLister{}
	lister.On("Handle", ctx, queries.OrderFilter{Statuses: []order.Status{}}).Return([]queries.OrderResponse{
		withStatus(order.Pending),
		withStatus(order.Preparing),
		withStatus(order.OutForDelivery),
		withStatus(order.Delivered),
		withStatus(order.Refused),
	}, nil).Once()

	v, err := views.NewSet(lister, "d1").For(kernel.Manager)
	require.NoError(t, err)

	board, err := v.Board(ctx)
	require.NoError(t, err)
	require.Len(t, board.Sections, 3)
	assert.Len(t, board.Sections[0].Orders, 1)
	assert.Len(t, board.Sections[1].Orders, 2)
	assert.Len(t, board.Sections[2].Orders, 2)
	assert.Equal(t, "4821", board.Sections[0].Orders[0].ConfirmationCode)
}

func TestOwnerView_BoardError(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	boom := errors.New("database is locked")
	lister := &MockOrderLister{}
	lister.On("Handle", ctx, mock.Anything).Return(nil, boom).Once()

	v, err := views.NewSet(lister, "d1").For(kernel.Owner)
	require.NoError(t, err)

	_, err = v.Board(ctx)
	require.ErrorIs(t, err, boom)
}
