package queries_test

import (
	"context"
	"time"

	"mozdelivery/internal/core/application/usecases/queries"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/order"
	"mozdelivery/internal/core/domain/model/partner"
	"mozdelivery/internal/pkg/errs"
)

type OrderQueriesTestSuite struct {
	ledgerSuite
}

func (s *OrderQueriesTestSuite) list(filter queries.OrderFilter) []queries.OrderResponse {
	query, err := queries.NewListOrdersQuery(filter)
	s.Require().NoError(err)

	result, err := queries.NewListOrdersQueryHandler(s.db).Handle(context.Background(), query)
	s.Require().NoError(err)
	return result
}

func (s *OrderQueriesTestSuite) TestListOrders_EmptyLedger() {
	result := s.list(queries.OrderFilter{})
	s.NotNil(result)
	s.Empty(result)
}

func (s *OrderQueriesTestSuite) TestListOrders_NewestFirstWithItems() {
	first := s.placeOrder("Ana", 0)
	second := s.placeOrder("Bruno", 5)
	third := s.placeOrder("Carla", 10)

	result := s.list(queries.OrderFilter{})
	s.Require().Len(result, 3)
	s.True(result[0].ID.IsEqual(third.ID()))
	s.True(result[1].ID.IsEqual(second.ID()))
	s.True(result[2].ID.IsEqual(first.ID()))

	s.Equal(500, result[0].Total)
	s.Equal(order.Cash, result[0].PaymentMethod)
	s.Equal("4821", result[0].ConfirmationCode)
	s.Equal(baseTime.Add(10*time.Minute), result[0].PlacedAt)
	s.Require().Len(result[0].Items, 1)
	s.Equal("Frango à Zambeziana", result[0].Items[0].Name)
}

func (s *OrderQueriesTestSuite) TestListOrders_SameInstantKeepsInsertionOrder() {
	first := s.placeOrder("Ana", 0)
	second := s.placeOrder("Bruno", 0)

	result := s.list(queries.OrderFilter{})
	s.Require().Len(result, 2)
	s.True(result[0].ID.IsEqual(second.ID()))
	s.True(result[1].ID.IsEqual(first.ID()))
}

func (s *OrderQueriesTestSuite) TestListOrders_DriverProjections() {
	s.placeOrder("Ana", 0, order.Preparing)
	ready := s.placeOrder("Bruno", 1, order.Preparing, order.ReadyForPickup)
	mine := s.placeOrder("Carla", 2, order.Preparing, order.ReadyForPickup, order.OutForDelivery)
	s.placeOrder("Dina", 3, order.Preparing, order.ReadyForPickup, order.OutForDelivery, order.Delivered)

	available := s.list(queries.OrderFilter{Statuses: []order.Status{order.ReadyForPickup}, UnassignedOnly: true})
	s.Require().Len(available, 1)
	s.True(available[0].ID.IsEqual(ready.ID()))
	s.Empty(available[0].DriverID)

	active := s.list(queries.OrderFilter{Statuses: []order.Status{order.OutForDelivery}, DriverID: "d1"})
	s.Require().Len(active, 1)
	s.True(active[0].ID.IsEqual(mine.ID()))

	all := s.list(queries.OrderFilter{DriverID: "d1"})
	s.Len(all, 2)
}

func (s *OrderQueriesTestSuite) TestListOrders_CustomerVisibleOnly() {
	kept := s.placeOrder("Ana", 0)
	hidden := s.placeOrder("Ana", 1)
	hidden.HideFromCustomer()
	s.Require().NoError(s.db.Exec("UPDATE orders SET is_deleted_by_customer = ? WHERE id = ?", true, hidden.ID().String()).Error)

	visible := s.list(queries.OrderFilter{CustomerVisibleOnly: true})
	s.Require().Len(visible, 1)
	s.True(visible[0].ID.IsEqual(kept.ID()))

	everything := s.list(queries.OrderFilter{})
	s.Len(everything, 2)
}

func (s *OrderQueriesTestSuite) TestListOrders_InvalidFilter() {
	_, err := queries.NewListOrdersQuery(queries.OrderFilter{Statuses: []order.Status{order.Status(42)}})
	s.Require().Error(err)
}

func (s *OrderQueriesTestSuite) TestListOrders_InvalidQuery() {
	result, err := queries.NewListOrdersQueryHandler(s.db).Handle(context.Background(), queries.ListOrdersQuery{})
	s.Require().ErrorIs(err, queries.ErrListOrdersQueryIsNotConstructed)
	s.Nil(result)
}

func (s *OrderQueriesTestSuite) TestDashboardStats() {
	s.placeOrder("Ana", 0)
	s.placeOrder("Bruno", 1, order.Refused)
	s.placeOrder("Carla", 2, order.Preparing)
	s.placeOrder("Dina", 3, order.Preparing, order.ReadyForPickup, order.OutForDelivery, order.Delivered)
	s.placeOrder("Eva", 4, order.Preparing, order.ReadyForPickup, order.OutForDelivery, order.Delivered)

	s.addUser("joao", kernel.Driver, true)
	s.addUser("pedro", kernel.Driver, false)
	s.addUser("maria", kernel.Manager, true)
	s.addPartner("Cantinho do Sabor", partner.Restaurant)

	stats, err := queries.NewDashboardStatsQueryHandler(s.db).Handle(context.Background(), queries.NewDashboardStatsQuery())
	s.Require().NoError(err)

	s.Equal(1000, stats.Revenue)
	s.Equal(5, stats.OrderCount)
	s.Equal(1, stats.PendingOrders)
	s.Equal(2, stats.ActiveOrders)
	s.Equal(1, stats.ActiveDrivers)
	s.Equal(1, stats.PartnerCount)
}

func (s *OrderQueriesTestSuite) TestDashboardStats_EmptyLedger() {
	stats, err := queries.NewDashboardStatsQueryHandler(s.db).Handle(context.Background(), queries.NewDashboardStatsQuery())
	s.Require().NoError(err)
	s.Equal(queries.DashboardStatsResponse{}, stats)
}

func (s *OrderQueriesTestSuite) TestDriverEarnings() {
	s.placeOrder("Ana", 0, order.Preparing, order.ReadyForPickup, order.OutForDelivery, order.Delivered)
	s.placeOrder("Bruno", 1, order.Preparing, order.ReadyForPickup, order.OutForDelivery, order.Delivered)
	s.placeOrder("Carla", 2, order.Preparing, order.ReadyForPickup, order.OutForDelivery)

	query, err := queries.NewDriverEarningsQuery("d1")
	s.Require().NoError(err)

	earnings, err := queries.NewDriverEarningsQueryHandler(s.db).Handle(context.Background(), query)
	s.Require().NoError(err)
	s.Equal(2, earnings.Deliveries)
	s.Equal(2*queries.DriverFeePerDelivery, earnings.Earnings)
	s.Equal(1, earnings.ActiveOrders)

	query, err = queries.NewDriverEarningsQuery("d9")
	s.Require().NoError(err)
	earnings, err = queries.NewDriverEarningsQueryHandler(s.db).Handle(context.Background(), query)
	s.Require().NoError(err)
	s.Zero(earnings.Earnings)

	_, err = queries.NewDriverEarningsQuery(" ")
	s.Require().Error(err)
}

func (s *OrderQueriesTestSuite) TestGetOrder() {
	placed := s.placeOrder("Ana", 0, order.Preparing)

	query, err := queries.NewGetOrderQuery(placed.ID())
	s.Require().NoError(err)

	found, err := queries.NewGetOrderQueryHandler(s.db).Handle(context.Background(), query)
	s.Require().NoError(err)
	s.True(found.ID.IsEqual(placed.ID()))
	s.Equal(order.Preparing, found.Status)
	s.Equal("15 min", found.PrepTime)

	query, err = queries.NewGetOrderQuery(kernel.NewUUID())
	s.Require().NoError(err)
	_, err = queries.NewGetOrderQueryHandler(s.db).Handle(context.Background(), query)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
