package queries

import (
	"context"
	"errors"
	"strings"

	"mozdelivery/internal/core/domain/model/order"
	"mozdelivery/internal/pkg/errs"
	"mozdelivery/internal/pkg/guard"

	"gorm.io/gorm"
)

// DriverFeePerDelivery is what a driver earns for each DELIVERED order, in MT.
const DriverFeePerDelivery = 150

var ErrDriverEarningsQueryIsNotConstructed = errors.New(
	"DriverEarningsQuery must be created via NewDriverEarningsQuery constructor",
)

type DriverEarningsQuery struct {
	driverID string

	guard guard.ConstructorGuard
}

func NewDriverEarningsQuery(driverID string) (DriverEarningsQuery, error) {
	driverID = strings.TrimSpace(driverID)
	if driverID == "" {
		return DriverEarningsQuery{}, errs.NewValueIsRequiredError("driverId")
	}
	return DriverEarningsQuery{driverID: driverID, guard: guard.NewConstructorGuard()}, nil
}

func (q DriverEarningsQuery) Validate() error {
	return q.guard.Validate(ErrDriverEarningsQueryIsNotConstructed)
}

type DriverEarningsResponse struct {
	DriverID   string
	Deliveries int
	Earnings   int
	// ActiveOrders counts orders the driver holds that are still OUT_FOR_DELIVERY.
	ActiveOrders int
}

type DriverEarningsQueryHandler struct {
	db *gorm.DB
}

func NewDriverEarningsQueryHandler(db *gorm.DB) DriverEarningsQueryHandler {
	return DriverEarningsQueryHandler{db: db}
}

func (h DriverEarningsQueryHandler) Handle(ctx context.Context, query DriverEarningsQuery) (DriverEarningsResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverEarningsResponse{}, err
	}

	resp := DriverEarningsResponse{DriverID: query.driverID}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		FROM orders
		WHERE driver_id = ?
	`, order.Delivered.String(), order.OutForDelivery.String(), query.driverID).
		Row().Scan(&resp.Deliveries, &resp.ActiveOrders)
	if err != nil {
		return DriverEarningsResponse{}, err
	}

	resp.Earnings = resp.Deliveries * DriverFeePerDelivery
	return resp, nil
}
