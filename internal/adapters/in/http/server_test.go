package http_test

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpin "mozdelivery/internal/adapters/in/http"
	"mozdelivery/internal/adapters/out/storage"
	"mozdelivery/internal/core/application/session"
	"mozdelivery/internal/core/application/usecases/commands"
	"mozdelivery/internal/core/application/usecases/queries"
	"mozdelivery/internal/core/application/views"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/order"
	"mozdelivery/internal/core/domain/services"
	"mozdelivery/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const driverID = "joao_123"

type fixedCodes struct{ code order.ConfirmationCode }

func (f fixedCodes) Generate() order.ConfirmationCode {
	return f.code
}

type ServerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	session *session.Session
	echo    *echo.Echo
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	db, err := storage.Open(storage.DialectSQLite, storage.InMemoryDSN, logger.Default.LogMode(logger.Silent))
	s.Require().NoError(err)
	s.db = db

	clock := kernel.NewFixedClock(time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC))
	s.session, err = session.NewSession(kernel.Customer, session.DefaultToastTTL, clock, nil)
	s.Require().NoError(err)

	code, err := order.NewConfirmationCode("4821")
	s.Require().NoError(err)

	factory := storage.NewGormUnitOfWorkFactory(db)
	orderUoW := commands.OrderUoWFactoryFunc(func() commands.OrderUoW { return factory.Create() })
	catalogueUoW := commands.CatalogueUoWFactoryFunc(func() commands.CatalogueUoW { return factory.Create() })
	fees := services.NewDeliveryFeeCalculator(services.DefaultDeliveryFee)

	listOrders := queries.NewListOrdersQueryHandler(db)
	server := httpin.NewServer(
		httpin.CommandHandlers{
			PlaceOrder:        commands.NewPlaceOrderCommandHandler(orderUoW, fixedCodes{code: code}, fees, clock, s.session),
			UpdateOrderStatus: commands.NewUpdateOrderStatusCommandHandler(orderUoW, clock, s.session),
			ConfirmPickup:     commands.NewConfirmPickupCommandHandler(orderUoW, clock, s.session),
			ConfirmDelivery:   commands.NewConfirmDeliveryCommandHandler(orderUoW, clock, s.session),
			SoftDeleteOrder:   commands.NewSoftDeleteOrderCommandHandler(orderUoW, clock),
			SwitchRole:        commands.NewSwitchRoleCommandHandler(s.session),
			DismissToast:      commands.NewDismissToastCommandHandler(s.session),
			AddPartner:        commands.NewAddPartnerCommandHandler(catalogueUoW, clock),
			RemovePartner:     commands.NewRemovePartnerCommandHandler(catalogueUoW, clock),
			AddStaffUser:      commands.NewAddStaffUserCommandHandler(catalogueUoW, clock),
			ToggleStaffUser:   commands.NewToggleStaffUserStatusCommandHandler(catalogueUoW, clock),
		},
		httpin.QueryHandlers{
			ListOrders:        listOrders,
			GetOrder:          queries.NewGetOrderQueryHandler(db),
			ListNotifications: queries.NewListNotificationsQueryHandler(db),
			ListActivityLog:   queries.NewListActivityLogQueryHandler(db),
			DashboardStats:    queries.NewDashboardStatsQueryHandler(db),
			DriverEarnings:    queries.NewDriverEarningsQueryHandler(db),
			ListPartners:      queries.NewListPartnersQueryHandler(db),
			ListStaffUsers:    queries.NewListStaffUsersQueryHandler(db),
			PeekActiveToast:   queries.NewPeekActiveToastQueryHandler(s.session),
		},
		views.NewSet(listOrders, driverID),
		fees,
		s.session,
	)

	s.echo = echo.New()
	s.Require().NoError(httpin.Register(s.echo, server, discardLogger()))
}

func (s *ServerTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())
}

func (s *ServerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		s.Require().NoError(err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder, into any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), into), rec.Body.String())
}

func newOrderBody(customer, neighborhood string) map[string]any {
	return map[string]any{
		"customerName":   customer,
		"restaurantName": "Cantinho do Sabor",
		"paymentMethod":  "MPESA",
		"neighborhood":   neighborhood,
		"items": []map[string]any{
			{"menuItemId": "m1", "name": "Frango à Zambeziana", "unitPrice": 450, "quantity": 1},
			{"menuItemId": "m2", "name": "Matapa", "unitPrice": 380, "quantity": 1},
		},
	}
}

func (s *ServerTestSuite) place(customer string) servers.Order {
	rec := s.do(nethttp.MethodPost, "/api/v1/orders", newOrderBody(customer, "Central"))
	s.Require().Equal(nethttp.StatusCreated, rec.Code, rec.Body.String())

	var placed servers.Order
	s.decode(rec, &placed)
	return placed
}

func (s *ServerTestSuite) setStatus(id uuid.UUID, body map[string]any) *httptest.ResponseRecorder {
	return s.do(nethttp.MethodPost, "/api/v1/orders/"+id.String()+"/status", body)
}

func (s *ServerTestSuite) TestPlaceOrderAndGetIt() {
	placed := s.place("Ana")

	s.Equal(servers.OrderStatusPENDING, placed.Status)
	s.Equal(50, placed.DeliveryFee)
	s.Equal(880, placed.Total)
	s.Require().NotNil(placed.ConfirmationCode)
	s.Equal("4821", *placed.ConfirmationCode)
	s.Nil(placed.DriverId)

	rec := s.do(nethttp.MethodGet, "/api/v1/orders/"+placed.Id.String(), nil)
	s.Require().Equal(nethttp.StatusOK, rec.Code)

	var fetched servers.Order
	s.decode(rec, &fetched)
	s.Equal(placed.Id, fetched.Id)
	s.Equal(880, fetched.Total)
	s.Len(fetched.Items, 2)
}

func (s *ServerTestSuite) TestPlaceOrderUsesNeighborhoodFee() {
	rec := s.do(nethttp.MethodPost, "/api/v1/orders", newOrderBody("Ana", "Natikiri"))
	s.Require().Equal(nethttp.StatusCreated, rec.Code)

	var placed servers.Order
	s.decode(rec, &placed)
	s.Equal(120, placed.DeliveryFee)
	s.Equal(950, placed.Total)
}

func (s *ServerTestSuite) TestPlaceOrderRejectsInvalidBody() {
	missingCustomer := newOrderBody("", "Central")
	delete(missingCustomer, "customerName")
	s.Equal(nethttp.StatusBadRequest, s.do(nethttp.MethodPost, "/api/v1/orders", missingCustomer).Code)

	badPayment := newOrderBody("Ana", "Central")
	badPayment["paymentMethod"] = "BITCOIN"
	s.Equal(nethttp.StatusBadRequest, s.do(nethttp.MethodPost, "/api/v1/orders", badPayment).Code)

	emptyCart := newOrderBody("Ana", "Central")
	emptyCart["items"] = []map[string]any{}
	s.Equal(nethttp.StatusBadRequest, s.do(nethttp.MethodPost, "/api/v1/orders", emptyCart).Code)
}

func (s *ServerTestSuite) TestFullLifecycle() {
	placed := s.place("Ana")

	rec := s.setStatus(placed.Id, map[string]any{"status": "PREPARING", "prepTime": "20 min"})
	s.Require().Equal(nethttp.StatusOK, rec.Code, rec.Body.String())
	var tr servers.Transition
	s.decode(rec, &tr)
	s.Equal(servers.Transition{From: servers.OrderStatusPENDING, To: servers.OrderStatusPREPARING}, tr)

	s.Require().Equal(nethttp.StatusOK, s.setStatus(placed.Id, map[string]any{"status": "READY_FOR_PICKUP"}).Code)
	rec = s.setStatus(placed.Id, map[string]any{"status": "OUT_FOR_DELIVERY", "driverId": driverID, "actor": "DRIVER"})
	s.Require().Equal(nethttp.StatusOK, rec.Code, rec.Body.String())

	pickupPath := "/api/v1/orders/" + placed.Id.String() + "/pickup"
	s.Equal(nethttp.StatusNoContent, s.do(nethttp.MethodPost, pickupPath, map[string]any{"driverId": driverID}).Code)
	s.Equal(nethttp.StatusConflict, s.do(nethttp.MethodPost, pickupPath, map[string]any{"driverId": "carlos"}).Code)

	confirmPath := "/api/v1/orders/" + placed.Id.String() + "/delivery-confirmation"
	var result servers.DeliveryConfirmationResult

	rec = s.do(nethttp.MethodPost, confirmPath, map[string]any{"code": "1111"})
	s.Require().Equal(nethttp.StatusOK, rec.Code)
	s.decode(rec, &result)
	s.False(result.Ok)

	rec = s.do(nethttp.MethodPost, confirmPath, map[string]any{"code": "4821"})
	s.Require().Equal(nethttp.StatusOK, rec.Code)
	s.decode(rec, &result)
	s.True(result.Ok)

	var fetched servers.Order
	s.decode(s.do(nethttp.MethodGet, "/api/v1/orders/"+placed.Id.String(), nil), &fetched)
	s.Equal(servers.OrderStatusDELIVERED, fetched.Status)
	s.Require().NotNil(fetched.PrepTime)
	s.Equal("20 min", *fetched.PrepTime)
	s.Require().NotNil(fetched.DriverId)
	s.Equal(driverID, *fetched.DriverId)

	var earnings servers.DriverEarnings
	s.decode(s.do(nethttp.MethodGet, "/api/v1/drivers/"+driverID+"/earnings", nil), &earnings)
	s.Equal(1, earnings.Deliveries)
	s.Equal(150, earnings.Earnings)
	s.Equal(0, earnings.ActiveOrders)
}

func (s *ServerTestSuite) TestIllegalTransitionsAreConflicts() {
	placed := s.place("Ana")

	s.Equal(nethttp.StatusConflict, s.setStatus(placed.Id, map[string]any{"status": "OUT_FOR_DELIVERY", "driverId": driverID}).Code)
	s.Equal(nethttp.StatusConflict, s.setStatus(placed.Id, map[string]any{"status": "DELIVERED"}).Code)

	var fetched servers.Order
	s.decode(s.do(nethttp.MethodGet, "/api/v1/orders/"+placed.Id.String(), nil), &fetched)
	s.Equal(servers.OrderStatusPENDING, fetched.Status)
}

func (s *ServerTestSuite) TestAcceptWithoutPrepTimeIsBadRequest() {
	placed := s.place("Ana")
	s.Equal(nethttp.StatusBadRequest, s.setStatus(placed.Id, map[string]any{"status": "PREPARING"}).Code)
}

func (s *ServerTestSuite) TestUnknownAndMalformedOrderIDs() {
	s.Equal(nethttp.StatusNotFound, s.do(nethttp.MethodGet, "/api/v1/orders/"+uuid.NewString(), nil).Code)
	s.Equal(nethttp.StatusBadRequest, s.do(nethttp.MethodGet, "/api/v1/orders/not-a-uuid", nil).Code)
	s.Equal(nethttp.StatusNotFound,
		s.setStatus(uuid.New(), map[string]any{"status": "REFUSED"}).Code)
}

func (s *ServerTestSuite) TestSessionToastFollowsActiveRole() {
	var state servers.Session
	s.decode(s.do(nethttp.MethodGet, "/api/v1/session", nil), &state)
	s.Equal(servers.RoleCUSTOMER, state.ActiveRole)
	s.Nil(state.Toast)

	rec := s.do(nethttp.MethodPut, "/api/v1/session/role", map[string]any{"role": "MANAGER"})
	s.Require().Equal(nethttp.StatusOK, rec.Code)
	s.decode(rec, &state)
	s.Equal(servers.RoleMANAGER, state.ActiveRole)

	s.place("Ana")

	s.decode(s.do(nethttp.MethodGet, "/api/v1/session", nil), &state)
	s.Require().NotNil(state.Toast)
	s.Equal(servers.RoleMANAGER, state.Toast.TargetRole)
	s.Contains(state.Toast.Message, "4821")

	s.Equal(nethttp.StatusNoContent, s.do(nethttp.MethodDelete, "/api/v1/session/toast", nil).Code)
	state = servers.Session{}
	s.decode(s.do(nethttp.MethodGet, "/api/v1/session", nil), &state)
	s.Nil(state.Toast)

	s.Equal(nethttp.StatusBadRequest, s.do(nethttp.MethodPut, "/api/v1/session/role", map[string]any{"role": "CHEF"}).Code)
}

func (s *ServerTestSuite) TestBoardFollowsActiveRole() {
	first := s.place("Ana")
	s.place("Rui")
	s.Require().Equal(nethttp.StatusOK, s.setStatus(first.Id, map[string]any{"status": "PREPARING", "prepTime": "15 min"}).Code)
	s.Require().Equal(nethttp.StatusOK, s.setStatus(first.Id, map[string]any{"status": "READY_FOR_PICKUP"}).Code)

	s.do(nethttp.MethodPut, "/api/v1/session/role", map[string]any{"role": "MANAGER"})
	var board servers.Board
	s.decode(s.do(nethttp.MethodGet, "/api/v1/board", nil), &board)
	s.Equal(servers.RoleMANAGER, board.Role)
	s.Require().Len(board.Sections, 3)
	s.Equal("incoming", board.Sections[0].Name)
	s.Len(board.Sections[0].Orders, 1)
	s.Len(board.Sections[1].Orders, 1)

	s.do(nethttp.MethodPut, "/api/v1/session/role", map[string]any{"role": "DRIVER"})
	board = servers.Board{}
	s.decode(s.do(nethttp.MethodGet, "/api/v1/board", nil), &board)
	s.Equal(servers.RoleDRIVER, board.Role)
	s.Require().Len(board.Sections, 2)
	s.Equal("available", board.Sections[0].Name)
	s.Require().Len(board.Sections[0].Orders, 1)
	s.Equal(first.Id, board.Sections[0].Orders[0].Id)
	s.Nil(board.Sections[0].Orders[0].ConfirmationCode)
	s.Empty(board.Sections[1].Orders)
}

func (s *ServerTestSuite) TestSoftDeleteHidesOrderFromCustomer() {
	placed := s.place("Ana")

	s.Equal(nethttp.StatusNoContent, s.do(nethttp.MethodDelete, "/api/v1/orders/"+placed.Id.String(), nil).Code)

	var visible []servers.Order
	s.decode(s.do(nethttp.MethodGet, "/api/v1/orders?customerVisible=true", nil), &visible)
	s.Empty(visible)

	var all []servers.Order
	s.decode(s.do(nethttp.MethodGet, "/api/v1/orders", nil), &all)
	s.Require().Len(all, 1)
	s.True(all[0].IsDeletedByCustomer)
}

func (s *ServerTestSuite) TestGetOrdersByStatus() {
	first := s.place("Ana")
	s.place("Rui")
	s.Require().Equal(nethttp.StatusOK, s.setStatus(first.Id, map[string]any{"status": "REFUSED"}).Code)

	var refused []servers.Order
	s.decode(s.do(nethttp.MethodGet, "/api/v1/orders?status=REFUSED", nil), &refused)
	s.Require().Len(refused, 1)
	s.Equal(first.Id, refused[0].Id)

	var both []servers.Order
	s.decode(s.do(nethttp.MethodGet, "/api/v1/orders?status=REFUSED&status=PENDING", nil), &both)
	s.Len(both, 2)

	s.Equal(nethttp.StatusBadRequest, s.do(nethttp.MethodGet, "/api/v1/orders?status=LOST", nil).Code)
}

func (s *ServerTestSuite) TestLogsAndStats() {
	placed := s.place("Ana")
	s.Require().Equal(nethttp.StatusOK, s.setStatus(placed.Id, map[string]any{"status": "PREPARING", "prepTime": "30 min"}).Code)

	var forCustomer []servers.Notification
	s.decode(s.do(nethttp.MethodGet, "/api/v1/notifications?targetRole=CUSTOMER", nil), &forCustomer)
	s.Require().Len(forCustomer, 1)
	s.Contains(forCustomer[0].Message, "30 min")

	var everything []servers.Notification
	s.decode(s.do(nethttp.MethodGet, "/api/v1/notifications", nil), &everything)
	s.Len(everything, 2)

	var entries []servers.ActivityEntry
	s.decode(s.do(nethttp.MethodGet, "/api/v1/activity-log?limit=1", nil), &entries)
	s.Len(entries, 1)

	var stats servers.DashboardStats
	s.decode(s.do(nethttp.MethodGet, "/api/v1/stats", nil), &stats)
	s.Equal(1, stats.OrderCount)
	s.Equal(0, stats.PendingOrders)
	s.Equal(1, stats.ActiveOrders)
	s.Equal(0, stats.Revenue)
}

func (s *ServerTestSuite) TestNeighborhoods() {
	var zones []servers.Neighborhood
	s.decode(s.do(nethttp.MethodGet, "/api/v1/neighborhoods", nil), &zones)
	s.Require().Len(zones, 5)
	s.Contains(zones, servers.Neighborhood{Name: "Natikiri", Fee: 120})
}

func (s *ServerTestSuite) TestPartnerCatalogue() {
	rec := s.do(nethttp.MethodPost, "/api/v1/partners", map[string]any{
		"name":   "Shoprite Nampula",
		"kind":   "MARKET",
		"rating": 4.5,
		"menu": []map[string]any{
			{"id": "p1", "name": "Arroz 5kg", "price": 600},
		},
	})
	s.Require().Equal(nethttp.StatusCreated, rec.Code, rec.Body.String())
	var added servers.Partner
	s.decode(rec, &added)
	s.Len(added.Menu, 1)

	var markets []servers.Partner
	s.decode(s.do(nethttp.MethodGet, "/api/v1/partners?kind=MARKET", nil), &markets)
	s.Require().Len(markets, 1)
	s.Equal("Shoprite Nampula", markets[0].Name)

	var restaurants []servers.Partner
	s.decode(s.do(nethttp.MethodGet, "/api/v1/partners?kind=RESTAURANT", nil), &restaurants)
	s.Empty(restaurants)

	path := "/api/v1/partners/" + added.Id.String()
	s.Equal(nethttp.StatusNoContent, s.do(nethttp.MethodDelete, path, nil).Code)
	s.Equal(nethttp.StatusNotFound, s.do(nethttp.MethodDelete, path, nil).Code)
}

func (s *ServerTestSuite) TestStaffManagement() {
	s.Equal(nethttp.StatusBadRequest, s.do(nethttp.MethodPost, "/api/v1/staff", map[string]any{
		"name": "Carlos", "role": "DRIVER", "email": "not-an-email",
	}).Code)

	rec := s.do(nethttp.MethodPost, "/api/v1/staff", map[string]any{
		"name": "Carlos", "role": "DRIVER", "email": "carlos@mozdelivery.co.mz",
	})
	s.Require().Equal(nethttp.StatusCreated, rec.Code, rec.Body.String())
	var added servers.StaffUser
	s.decode(rec, &added)
	s.Equal(servers.StaffStatusACTIVE, added.Status)

	var change servers.StaffStatusChange
	s.decode(s.do(nethttp.MethodPost, "/api/v1/staff/"+added.Id.String()+"/status", nil), &change)
	s.Equal(servers.StaffStatusINACTIVE, change.Status)

	var staffList []servers.StaffUser
	s.decode(s.do(nethttp.MethodGet, "/api/v1/staff", nil), &staffList)
	s.Require().Len(staffList, 1)
	s.Equal(servers.StaffStatusINACTIVE, staffList[0].Status)
}
