package queries_test

import (
	"context"
	"time"

	"mozdelivery/internal/core/application/usecases/queries"
	"mozdelivery/internal/core/domain/model/kernel"
)

type LogQueriesTestSuite struct {
	ledgerSuite
}

func (s *LogQueriesTestSuite) notifications(role kernel.Role) []queries.NotificationResponse {
	query, err := queries.NewListNotificationsQuery(role)
	s.Require().NoError(err)

	result, err := queries.NewListNotificationsQueryHandler(s.db).Handle(context.Background(), query)
	s.Require().NoError(err)
	return result
}

func (s *LogQueriesTestSuite) TestListNotifications_ByRole() {
	s.addNotification(kernel.Manager, "New order!", 0)
	s.addNotification(kernel.Customer, "Order confirmed!", 1)
	s.addNotification(kernel.Driver, "Pickup available", 2)
	s.addNotification(kernel.Customer, "Order on the way!", 3)

	customer := s.notifications(kernel.Customer)
	s.Require().Len(customer, 2)
	s.Equal("Order on the way!", customer[0].Title)
	s.Equal("Order confirmed!", customer[1].Title)

	s.Len(s.notifications(kernel.Manager), 1)

	owner := s.notifications(kernel.Owner)
	s.Require().Len(owner, 4)
	s.Equal("Order on the way!", owner[0].Title)
	s.Equal(kernel.Manager, owner[3].TargetRole)

	s.Len(s.notifications(kernel.UnknownRole), 4)
}

func (s *LogQueriesTestSuite) TestListNotifications_InvalidRole() {
	_, err := queries.NewListNotificationsQuery(kernel.Role(99))
	s.Require().Error(err)
}

func (s *LogQueriesTestSuite) TestListActivityLog_NewestFirst() {
	s.addEntry("New order", baseTime)
	s.addEntry("Status changed", baseTime.Add(time.Minute))
	s.addEntry("Delivery confirmed", baseTime.Add(time.Minute))

	handler := queries.NewListActivityLogQueryHandler(s.db)

	entries, err := handler.Handle(context.Background(), queries.NewListActivityLogQuery(0))
	s.Require().NoError(err)
	s.Require().Len(entries, 3)
	s.Equal("Delivery confirmed", entries[0].Action)
	s.Equal("Status changed", entries[1].Action)
	s.Equal("New order", entries[2].Action)
	s.Equal(baseTime, entries[2].CreatedAt)

	latest, err := handler.Handle(context.Background(), queries.NewListActivityLogQuery(1))
	s.Require().NoError(err)
	s.Require().Len(latest, 1)
	s.Equal("Delivery confirmed", latest[0].Action)
}

func (s *LogQueriesTestSuite) TestListActivityLog_InvalidQuery() {
	_, err := queries.NewListActivityLogQueryHandler(s.db).Handle(context.Background(), queries.ListActivityLogQuery{})
	s.Require().ErrorIs(err, queries.ErrListActivityLogQueryIsNotConstructed)
}
