package queries

import (
	"context"
	"errors"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/order"
	"mozdelivery/internal/core/domain/model/staff"
	"mozdelivery/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrDashboardStatsQueryIsNotConstructed = errors.New(
	"DashboardStatsQuery must be created via NewDashboardStatsQuery constructor",
)

// DashboardStatsQuery aggregates the figures shown on the dispatch and owner dashboards.
type DashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewDashboardStatsQuery() DashboardStatsQuery {
	return DashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q DashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrDashboardStatsQueryIsNotConstructed)
}

// DashboardStatsResponse holds the dashboard figures. Revenue is the sum of DELIVERED
// totals; ActiveOrders counts everything not yet DELIVERED or REFUSED.
type DashboardStatsResponse struct {
	Revenue       int
	OrderCount    int
	PendingOrders int
	ActiveOrders  int
	ActiveDrivers int
	PartnerCount  int
}

type DashboardStatsQueryHandler struct {
	db *gorm.DB
}

func NewDashboardStatsQueryHandler(db *gorm.DB) DashboardStatsQueryHandler {
	return DashboardStatsQueryHandler{db: db}
}

func (h DashboardStatsQueryHandler) Handle(ctx context.Context, query DashboardStatsQuery) (DashboardStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardStatsResponse{}, err
	}

	var stats DashboardStatsResponse
	db := h.db.WithContext(ctx)

	err := db.Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN status = ? THEN total ELSE 0 END), 0),
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status NOT IN ? THEN 1 ELSE 0 END), 0)
		FROM orders
	`,
		order.Delivered.String(),
		order.Pending.String(),
		[]string{order.Delivered.String(), order.Refused.String()},
	).Row().Scan(&stats.Revenue, &stats.OrderCount, &stats.PendingOrders, &stats.ActiveOrders)
	if err != nil {
		return DashboardStatsResponse{}, err
	}

	err = db.Raw(`
		SELECT COUNT(*)
		FROM staff_users
		WHERE role = ? AND status = ?
	`, kernel.Driver.String(), staff.Active.String()).Row().Scan(&stats.ActiveDrivers)
	if err != nil {
		return DashboardStatsResponse{}, err
	}

	err = db.Raw(`SELECT COUNT(*) FROM partners`).Row().Scan(&stats.PartnerCount)
	if err != nil {
		return DashboardStatsResponse{}, err
	}

	return stats, nil
}
