// Package queries contains read operations for retrieving system state.
// Query handlers read the tables directly with SQL and return read models
// shaped for the role views, bypassing the aggregates.
package queries

import (
	"errors"
	"strings"
	"time"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/order"
	"mozdelivery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// OrderFilter narrows the ledger. Zero values do not filter.
//
//   - Statuses keeps orders in any of the listed statuses
//   - DriverID keeps orders assigned to that driver
//   - UnassignedOnly keeps orders with no driver yet
//   - CustomerVisibleOnly drops orders the customer deleted from their history
type OrderFilter struct {
	Statuses            []order.Status
	DriverID            string
	UnassignedOnly      bool
	CustomerVisibleOnly bool
}

// ListOrdersQuery lists ledger entries newest first.
//
// Example:
//
//	query, err := NewListOrdersQuery(OrderFilter{
//	    Statuses:       []order.Status{order.ReadyForPickup},
//	    UnassignedOnly: true,
//	})
//	available, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	filter OrderFilter

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(filter OrderFilter) (ListOrdersQuery, error) {
	statuses := make([]order.Status, 0, len(filter.Statuses))
	for _, s := range filter.Statuses {
		if err := s.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		statuses = append(statuses, s)
	}
	filter.Statuses = statuses
	filter.DriverID = strings.TrimSpace(filter.DriverID)

	return ListOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() OrderFilter {
	return q.filter
}

// OrderItemResponse is one cart line of an order.
type OrderItemResponse struct {
	MenuItemID string
	Name       string
	UnitPrice  int
	Quantity   int
}

// OrderResponse is the ledger row as the views display it.
type OrderResponse struct {
	ID                  kernel.UUID
	CustomerName        string
	RestaurantName      string
	Items               []OrderItemResponse
	DeliveryFee         int
	Total               int
	Status              order.Status
	PaymentMethod       order.PaymentMethod
	Neighborhood        string
	PrepTime            string
	DriverID            string
	PlacedAt            time.Time
	ConfirmationCode    string
	IsDeletedByCustomer bool
}
