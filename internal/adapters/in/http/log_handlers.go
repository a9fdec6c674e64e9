package http

import (
	"net/http"

	"mozdelivery/internal/core/application/usecases/queries"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetNotifications handles GET /api/v1/notifications. Without targetRole every
// notification is listed, the same as the owner sees them.
func (s *Server) GetNotifications(ctx echo.Context, params servers.GetNotificationsParams) error {
	role := kernel.UnknownRole
	if params.TargetRole != nil {
		var err error
		if role, err = kernel.RoleFromString(string(*params.TargetRole)); err != nil {
			return fail(ctx, err, "Invalid target role")
		}
	}

	query, err := queries.NewListNotificationsQuery(role)
	if err != nil {
		return fail(ctx, err, "Invalid target role")
	}

	list, err := s.queries.ListNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err, "Failed to retrieve notifications")
	}

	return ctx.JSON(http.StatusOK, toNotifications(list))
}

// GetActivityLog handles GET /api/v1/activity-log.
func (s *Server) GetActivityLog(ctx echo.Context, params servers.GetActivityLogParams) error {
	query := queries.NewListActivityLogQuery(deref(params.Limit))

	entries, err := s.queries.ListActivityLog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err, "Failed to retrieve activity log")
	}

	return ctx.JSON(http.StatusOK, toActivityEntries(entries))
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(ctx echo.Context) error {
	stats, err := s.queries.DashboardStats.Handle(ctx.Request().Context(), queries.NewDashboardStatsQuery())
	if err != nil {
		return fail(ctx, err, "Failed to compute stats")
	}

	return ctx.JSON(http.StatusOK, servers.DashboardStats{
		Revenue:       stats.Revenue,
		OrderCount:    stats.OrderCount,
		PendingOrders: stats.PendingOrders,
		ActiveOrders:  stats.ActiveOrders,
		ActiveDrivers: stats.ActiveDrivers,
		PartnerCount:  stats.PartnerCount,
	})
}

// GetDriverEarnings handles GET /api/v1/drivers/{driverId}/earnings.
func (s *Server) GetDriverEarnings(ctx echo.Context, driverId string) error {
	query, err := queries.NewDriverEarningsQuery(driverId)
	if err != nil {
		return fail(ctx, err, "Invalid driver id")
	}

	earnings, err := s.queries.DriverEarnings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err, "Failed to compute earnings")
	}

	return ctx.JSON(http.StatusOK, servers.DriverEarnings{
		DriverId:     earnings.DriverID,
		Deliveries:   earnings.Deliveries,
		Earnings:     earnings.Earnings,
		ActiveOrders: earnings.ActiveOrders,
	})
}
