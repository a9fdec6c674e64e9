package commands_test

import (
	"context"

	"mozdelivery/internal/core/application/usecases/commands"
	"mozdelivery/internal/core/domain/model/activity"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/notification"
	"mozdelivery/internal/core/domain/model/order"
	"mozdelivery/internal/core/domain/model/partner"
	"mozdelivery/internal/core/domain/model/staff"
	"mozdelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockActivityRepository struct{ mock.Mock }

func (m *MockActivityRepository) Add(ctx context.Context, e *activity.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *staff.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *staff.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*staff.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.User), args.Error(1)
}

// MockUoW satisfies both OrderUoW and CatalogueUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

func (m *MockUoW) ActivityRepository() ports.ActivityRepository {
	args := m.Called()
	return args.Get(0).(ports.ActivityRepository)
}

func (m *MockUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCatalogueUoWFactory struct{ mock.Mock }

func (m *MockCatalogueUoWFactory) Create() commands.CatalogueUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogueUoW)
}

type MockToastSurface struct{ mock.Mock }

func (m *MockToastSurface) Surface(n *notification.Notification) bool {
	args := m.Called(n)
	return args.Bool(0)
}

type MockSession struct{ mock.Mock }

func (m *MockSession) SwitchRole(role kernel.Role) (kernel.Role, error) {
	args := m.Called(role)
	return args.Get(0).(kernel.Role), args.Error(1)
}

func (m *MockSession) Dismiss() bool {
	return m.Called().Bool(0)
}

func (m *MockSession) DismissExpired() bool {
	return m.Called().Bool(0)
}
