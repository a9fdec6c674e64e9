package http

import (
	"mozdelivery/internal/core/application/usecases/commands"
	"mozdelivery/internal/core/application/usecases/queries"
	"mozdelivery/internal/core/application/views"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/services"
	"mozdelivery/internal/generated/servers"
)

var _ servers.ServerInterface = (*Server)(nil)

// ActiveRoleReader is implemented by session.Session.
type ActiveRoleReader interface {
	ActiveRole() kernel.Role
}

// CommandHandlers groups every state-changing use case the API exposes.
type CommandHandlers struct {
	PlaceOrder        commands.PlaceOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	ConfirmPickup     commands.ConfirmPickupCommandHandler
	ConfirmDelivery   commands.ConfirmDeliveryCommandHandler
	SoftDeleteOrder   commands.SoftDeleteOrderCommandHandler
	SwitchRole        commands.SwitchRoleCommandHandler
	DismissToast      commands.DismissToastCommandHandler
	AddPartner        commands.AddPartnerCommandHandler
	RemovePartner     commands.RemovePartnerCommandHandler
	AddStaffUser      commands.AddStaffUserCommandHandler
	ToggleStaffUser   commands.ToggleStaffUserStatusCommandHandler
}

// QueryHandlers groups the read side.
type QueryHandlers struct {
	ListOrders        queries.ListOrdersQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	ListNotifications queries.ListNotificationsQueryHandler
	ListActivityLog   queries.ListActivityLogQueryHandler
	DashboardStats    queries.DashboardStatsQueryHandler
	DriverEarnings    queries.DriverEarningsQueryHandler
	ListPartners      queries.ListPartnersQueryHandler
	ListStaffUsers    queries.ListStaffUsersQueryHandler
	PeekActiveToast   queries.PeekActiveToastQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	boards   views.Set
	fees     services.DeliveryFeeCalculator
	roles    ActiveRoleReader
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	boards views.Set,
	fees services.DeliveryFeeCalculator,
	roles ActiveRoleReader,
) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		boards:   boards,
		fees:     fees,
		roles:    roles,
	}
}
