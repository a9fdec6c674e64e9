package commands_test

import (
	"testing"

	"mozdelivery/internal/adapters/out/storage"
	"mozdelivery/internal/core/application/session"
	"mozdelivery/internal/core/application/usecases/commands"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/order"
	"mozdelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OrderFlowTestSuite drives the order commands against an in-memory SQLite ledger.
type OrderFlowTestSuite struct {
	suite.Suite

	db      *gorm.DB
	clock   *kernel.FixedClock
	session *session.Session
	uow     commands.OrderUoWFactory
}

func TestOrderFlowTestSuite(t *testing.T) {
	suite.Run(t, new(OrderFlowTestSuite))
}

func (s *OrderFlowTestSuite) SetupTest() {
	db, err := storage.Open(storage.DialectSQLite, storage.InMemoryDSN, logger.Default.LogMode(logger.Silent))
	s.Require().NoError(err)
	s.db = db

	s.clock = kernel.NewFixedClock(now)
	s.session, err = session.NewSession(kernel.Customer, session.DefaultToastTTL, s.clock, nil)
	s.Require().NoError(err)

	factory := storage.NewGormUnitOfWorkFactory(db)
	s.uow = commands.OrderUoWFactoryFunc(func() commands.OrderUoW {
		return factory.Create()
	})
}

func (s *OrderFlowTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())
}

func (s *OrderFlowTestSuite) count(table string) int64 {
	var n int64
	s.Require().NoError(s.db.Table(table).Count(&n).Error)
	return n
}

func (s *OrderFlowTestSuite) place() *order.Order {
	codes := &MockCodeGenerator{}
	codes.On("Generate").Return(mustCode(s.T(), "4821")).Once()

	cmd, err := commands.NewPlaceOrderCommand("Ana", "Cantinho do Sabor", validCart(), "MPESA", "Central")
	s.Require().NoError(err)

	handler := commands.NewPlaceOrderCommandHandler(
		s.uow, codes, services.NewDeliveryFeeCalculator(services.DefaultDeliveryFee), s.clock, s.session,
	)
	o, err := handler.Handle(s.T().Context(), cmd)
	s.Require().NoError(err)
	return o
}

func (s *OrderFlowTestSuite) update(id kernel.UUID, next order.Status, prepTime, driverID string, actor kernel.Role) error {
	cmd, err := commands.NewUpdateOrderStatusCommand(id, next, prepTime, driverID, actor)
	s.Require().NoError(err)

	handler := commands.NewUpdateOrderStatusCommandHandler(s.uow, s.clock, s.session)
	_, err = handler.Handle(s.T().Context(), cmd)
	return err
}

func (s *OrderFlowTestSuite) confirm(id kernel.UUID, code string) bool {
	cmd, err := commands.NewConfirmDeliveryCommand(id, code)
	s.Require().NoError(err)

	handler := commands.NewConfirmDeliveryCommandHandler(s.uow, s.clock, s.session)
	ok, err := handler.Handle(s.T().Context(), cmd)
	s.Require().NoError(err)
	return ok
}

func (s *OrderFlowTestSuite) reload(id kernel.UUID) *order.Order {
	uow := s.uow.Create()
	o, err := uow.OrderRepository().Get(s.T().Context(), id)
	s.Require().NoError(err)
	return o
}

func (s *OrderFlowTestSuite) TestPlaceOrder() {
	o := s.place()

	stored := s.reload(o.ID())
	s.Equal(880, stored.Total())
	s.Equal(order.Pending, stored.Status())
	s.Equal("4821", stored.ConfirmationCode().String())

	s.EqualValues(1, s.count("notifications"))
	s.EqualValues(1, s.count("activity_log"))

	// The customer view does not see dispatch toasts.
	_, shown := s.session.ActiveToast()
	s.False(shown)
}

func (s *OrderFlowTestSuite) TestAcceptWithPrepTime() {
	o := s.place()

	s.Require().NoError(s.update(o.ID(), order.Preparing, "20 min", "", kernel.Manager))

	stored := s.reload(o.ID())
	s.Equal(order.Preparing, stored.Status())
	s.Equal("20 min", stored.PrepTime().String())

	s.EqualValues(2, s.count("notifications"))
	s.EqualValues(2, s.count("activity_log"))

	toast, shown := s.session.ActiveToast()
	s.Require().True(shown)
	s.Equal(kernel.Customer, toast.TargetRole)
	s.Contains(toast.Message, "20 min")
}

func (s *OrderFlowTestSuite) TestIllegalTransitionLeavesLedgerUntouched() {
	o := s.place()

	err := s.update(o.ID(), order.OutForDelivery, "", "d1", kernel.Driver)
	s.Require().ErrorIs(err, order.ErrTransitionNotAllowed)

	s.Equal(order.Pending, s.reload(o.ID()).Status())
	s.EqualValues(1, s.count("notifications"))
	s.EqualValues(1, s.count("activity_log"))
}

func (s *OrderFlowTestSuite) TestWrongCodeThenRightCode() {
	o := s.place()
	s.Require().NoError(s.update(o.ID(), order.Preparing, "15 min", "", kernel.Manager))
	s.Require().NoError(s.update(o.ID(), order.ReadyForPickup, "", "", kernel.Manager))
	s.Require().NoError(s.update(o.ID(), order.OutForDelivery, "", "d1", kernel.Driver))

	notifications, entries := s.count("notifications"), s.count("activity_log")

	s.False(s.confirm(o.ID(), "1234"))
	s.Equal(order.OutForDelivery, s.reload(o.ID()).Status())
	s.Equal(notifications, s.count("notifications"))
	s.Equal(entries, s.count("activity_log"))

	s.True(s.confirm(o.ID(), "4821"))
	s.Equal(order.Delivered, s.reload(o.ID()).Status())
	s.Equal(notifications+2, s.count("notifications"))
	s.Equal(entries+1, s.count("activity_log"))
}

func (s *OrderFlowTestSuite) TestSoftDeleteIsLoggedEveryTime() {
	o := s.place()

	cmd, err := commands.NewSoftDeleteOrderCommand(o.ID())
	s.Require().NoError(err)
	handler := commands.NewSoftDeleteOrderCommandHandler(s.uow, s.clock)

	s.Require().NoError(handler.Handle(s.T().Context(), cmd))
	s.Require().NoError(handler.Handle(s.T().Context(), cmd))

	s.True(s.reload(o.ID()).IsDeletedByCustomer())
	s.EqualValues(1, s.count("notifications"))
	s.EqualValues(3, s.count("activity_log"))
}

func TestOrderUoWFactoryFunc(t *testing.T) {
	t.Parallel()

	uow := &MockUoW{}
	factory := commands.OrderUoWFactoryFunc(func() commands.OrderUoW { return uow })
	assert.Same(t, uow, factory.Create())

	catalogue := commands.CatalogueUoWFactoryFunc(func() commands.CatalogueUoW { return uow })
	require.Same(t, uow, catalogue.Create())
}
