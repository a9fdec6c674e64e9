package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	httpin "mozdelivery/internal/adapters/in/http"
	"mozdelivery/internal/adapters/out/storage"
	"mozdelivery/internal/core/application/session"
	"mozdelivery/internal/core/application/usecases/commands"
	"mozdelivery/internal/core/application/usecases/queries"
	"mozdelivery/internal/core/application/views"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/order"
	"mozdelivery/internal/core/domain/services"
	"mozdelivery/internal/generated/docs"
	"mozdelivery/internal/jobs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	clock      kernel.Clock
	session    *session.Session
	uowFactory *storage.GormUnitOfWorkFactory
	codes      order.CodeGenerator
	fees       services.DeliveryFeeCalculator
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	clock := kernel.SystemClock{}

	s, err := session.NewSession(configs.InitialRole, configs.ToastTTL, clock, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	return &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		logger:     logger,
		clock:      clock,
		session:    s,
		uowFactory: storage.NewGormUnitOfWorkFactory(gormDB),
		codes:      order.NewRandomCodeGenerator(configs.CodeSeed),
		fees:       services.NewDeliveryFeeCalculator(configs.DefaultDeliveryFee),
	}, nil
}

func (c *CompositionRoot) Session() *session.Session {
	return c.session
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return commands.OrderUoWFactoryFunc(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogueUoWFactory() commands.CatalogueUoWFactory {
	return commands.CatalogueUoWFactoryFunc(func() commands.CatalogueUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.codes, c.fees, c.clock, c.session)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.clock, c.session)
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	return commands.NewConfirmPickupCommandHandler(c.orderUoWFactory(), c.clock, c.session)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.orderUoWFactory(), c.clock, c.session)
}

func (c *CompositionRoot) CreateSoftDeleteOrderCommandHandler() commands.SoftDeleteOrderCommandHandler {
	return commands.NewSoftDeleteOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSwitchRoleCommandHandler() commands.SwitchRoleCommandHandler {
	return commands.NewSwitchRoleCommandHandler(c.session)
}

func (c *CompositionRoot) CreateDismissToastCommandHandler() commands.DismissToastCommandHandler {
	return commands.NewDismissToastCommandHandler(c.session)
}

func (c *CompositionRoot) CreateDismissExpiredToastCommandHandler() commands.DismissExpiredToastCommandHandler {
	return commands.NewDismissExpiredToastCommandHandler(c.session)
}

func (c *CompositionRoot) CreateAddPartnerCommandHandler() commands.AddPartnerCommandHandler {
	return commands.NewAddPartnerCommandHandler(c.catalogueUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRemovePartnerCommandHandler() commands.RemovePartnerCommandHandler {
	return commands.NewRemovePartnerCommandHandler(c.catalogueUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAddStaffUserCommandHandler() commands.AddStaffUserCommandHandler {
	return commands.NewAddStaffUserCommandHandler(c.catalogueUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateToggleStaffUserStatusCommandHandler() commands.ToggleStaffUserStatusCommandHandler {
	return commands.NewToggleStaffUserStatusCommandHandler(c.catalogueUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListActivityLogQueryHandler() queries.ListActivityLogQueryHandler {
	return queries.NewListActivityLogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDashboardStatsQueryHandler() queries.DashboardStatsQueryHandler {
	return queries.NewDashboardStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDriverEarningsQueryHandler() queries.DriverEarningsQueryHandler {
	return queries.NewDriverEarningsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPartnersQueryHandler() queries.ListPartnersQueryHandler {
	return queries.NewListPartnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStaffUsersQueryHandler() queries.ListStaffUsersQueryHandler {
	return queries.NewListStaffUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePeekActiveToastQueryHandler() queries.PeekActiveToastQueryHandler {
	return queries.NewPeekActiveToastQueryHandler(c.session)
}

// CreateViews picks one view per role over the order ledger.
func (c *CompositionRoot) CreateViews() views.Set {
	return views.NewSet(c.CreateListOrdersQueryHandler(), c.configs.DriverID)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			PlaceOrder:        c.CreatePlaceOrderCommandHandler(),
			UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
			ConfirmPickup:     c.CreateConfirmPickupCommandHandler(),
			ConfirmDelivery:   c.CreateConfirmDeliveryCommandHandler(),
			SoftDeleteOrder:   c.CreateSoftDeleteOrderCommandHandler(),
			SwitchRole:        c.CreateSwitchRoleCommandHandler(),
			DismissToast:      c.CreateDismissToastCommandHandler(),
			AddPartner:        c.CreateAddPartnerCommandHandler(),
			RemovePartner:     c.CreateRemovePartnerCommandHandler(),
			AddStaffUser:      c.CreateAddStaffUserCommandHandler(),
			ToggleStaffUser:   c.CreateToggleStaffUserStatusCommandHandler(),
		},
		httpin.QueryHandlers{
			ListOrders:        c.CreateListOrdersQueryHandler(),
			GetOrder:          c.CreateGetOrderQueryHandler(),
			ListNotifications: c.CreateListNotificationsQueryHandler(),
			ListActivityLog:   c.CreateListActivityLogQueryHandler(),
			DashboardStats:    c.CreateDashboardStatsQueryHandler(),
			DriverEarnings:    c.CreateDriverEarningsQueryHandler(),
			ListPartners:      c.CreateListPartnersQueryHandler(),
			ListStaffUsers:    c.CreateListStaffUsersQueryHandler(),
			PeekActiveToast:   c.CreatePeekActiveToastQueryHandler(),
		},
		c.CreateViews(),
		c.fees,
		c.session,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDismissExpiredToastCommandHandler(), c.logger)
}

// CreateWebServer builds the echo instance: health check, swagger UI and the API.
func (c *CompositionRoot) CreateWebServer() (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})

	if err := docs.Register(); err != nil {
		return nil, err
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if err := httpin.Register(e, c.CreateServer(), c.logger); err != nil {
		return nil, err
	}
	return e, nil
}
