package commands_test

import (
	"testing"
	"time"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC)

type MockCodeGenerator struct{ mock.Mock }

func (m *MockCodeGenerator) Generate() order.ConfirmationCode {
	return m.Called().Get(0).(order.ConfirmationCode)
}

func mustCode(t *testing.T, value string) order.ConfirmationCode {
	t.Helper()

	code, err := order.NewConfirmationCode(value)
	require.NoError(t, err)
	return code
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	frango, err := order.NewItem("m1", "Frango à Zambeziana", 450, 1)
	require.NoError(t, err)
	matapa, err := order.NewItem("m2", "Matapa com Caranguejo", 380, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		order.Details{
			CustomerName:   "Ana Macuácua",
			RestaurantName: "Cantinho do Sabor",
			PaymentMethod:  order.MPesa,
			Neighborhood:   "Central",
		},
		[]order.Item{frango, matapa},
		50,
		mustCode(t, "4821"),
		now,
	)
	require.NoError(t, err)
	return o
}

// advance walks o through the given statuses with the minimal metadata each needs.
func advance(t *testing.T, o *order.Order, statuses ...order.Status) {
	t.Helper()

	prep, err := order.NewPrepTime("20 min")
	require.NoError(t, err)

	for _, s := range statuses {
		_, err = o.Apply(s, order.Metadata{PrepTime: prep, DriverID: "d1"})
		require.NoError(t, err)
	}
}

// orderUoW wires a MockUoW with the three repositories the order commands use.
func orderUoW(
	orders *MockOrderRepository,
	notifications *MockNotificationRepository,
	activities *MockActivityRepository,
) *MockUoW {
	uow := &MockUoW{}
	uow.On("OrderRepository").Return(orders).Maybe()
	uow.On("NotificationRepository").Return(notifications).Maybe()
	uow.On("ActivityRepository").Return(activities).Maybe()
	return uow
}
