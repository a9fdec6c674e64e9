// Package views holds one read model per role. The set is built once at the
// composition root and the active role picks its view from it.
package views

import (
	"context"
	"fmt"

	"mozdelivery/internal/core/application/usecases/queries"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/order"
	"mozdelivery/internal/pkg/errs"
)

// OrderLister is implemented by queries.ListOrdersQueryHandler.
type OrderLister interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error)
}

// Section is a titled slice of the ledger as one role sees it.
type Section struct {
	Name   string
	Orders []queries.OrderResponse
}

// Board is everything a role's order screen shows.
type Board struct {
	Role     kernel.Role
	Sections []Section
}

// RoleView maps a role onto its default order projection.
type RoleView interface {
	Role() kernel.Role
	Board(ctx context.Context) (Board, error)
}

// Set is the dispatch table from role to view.
type Set struct {
	views map[kernel.Role]RoleView
}

// NewSet builds the four views. driverID is the identity the driver view acts as.
func NewSet(orders OrderLister, driverID string) Set {
	return Set{views: map[kernel.Role]RoleView{
		kernel.Customer: CustomerView{orders: orders},
		kernel.Driver:   DriverView{orders: orders, driverID: driverID},
		kernel.Manager:  DispatchView{orders: orders},
		kernel.Owner:    OwnerView{orders: orders},
	}}
}

func (s Set) For(role kernel.Role) (RoleView, error) {
	v, ok := s.views[role]
	if !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("no view for role %d", int(role)))
	}
	return v, nil
}

// CustomerView shows the order history minus what the customer deleted.
type CustomerView struct {
	orders OrderLister
}

func (CustomerView) Role() kernel.Role {
	return kernel.Customer
}

func (v CustomerView) Board(ctx context.Context) (Board, error) {
	history, err := list(ctx, v.orders, queries.OrderFilter{CustomerVisibleOnly: true})
	if err != nil {
		return Board{}, err
	}
	return Board{Role: kernel.Customer, Sections: []Section{{Name: "history", Orders: history}}}, nil
}

// DriverView shows the pickups nobody has taken yet and the driver's own runs.
// The confirmation code is blanked: the customer hands it over at the door.
type DriverView struct {
	orders   OrderLister
	driverID string
}

func (DriverView) Role() kernel.Role {
	return kernel.Driver
}

func (v DriverView) DriverID() string {
	return v.driverID
}

func (v DriverView) Board(ctx context.Context) (Board, error) {
	available, err := list(ctx, v.orders, queries.OrderFilter{
		Statuses:       []order.Status{order.ReadyForPickup},
		UnassignedOnly: true,
	})
	if err != nil {
		return Board{}, err
	}

	var mine []queries.OrderResponse
	if v.driverID != "" {
		mine, err = list(ctx, v.orders, queries.OrderFilter{
			Statuses: []order.Status{order.OutForDelivery},
			DriverID: v.driverID,
		})
		if err != nil {
			return Board{}, err
		}
	} else {
		mine = []queries.OrderResponse{}
	}

	return Board{Role: kernel.Driver, Sections: []Section{
		{Name: "available", Orders: hideCodes(available)},
		{Name: "active", Orders: hideCodes(mine)},
	}}, nil
}

// DispatchView shows the whole ledger split into work still to do and the rest.
type DispatchView struct {
	orders OrderLister
}

func (DispatchView) Role() kernel.Role {
	return kernel.Manager
}

func (v DispatchView) Board(ctx context.Context) (Board, error) {
	all, err := list(ctx, v.orders, queries.OrderFilter{})
	if err != nil {
		return Board{}, err
	}

	incoming := make([]queries.OrderResponse, 0)
	inProgress := make([]queries.OrderResponse, 0)
	closed := make([]queries.OrderResponse, 0)
	for _, o := range all {
		switch {
		case o.Status == order.Pending:
			incoming = append(incoming, o)
		case o.Status.IsActive():
			inProgress = append(inProgress, o)
		default:
			closed = append(closed, o)
		}
	}

	return Board{Role: kernel.Manager, Sections: []Section{
		{Name: "incoming", Orders: incoming},
		{Name: "inProgress", Orders: inProgress},
		{Name: "closed", Orders: closed},
	}}, nil
}

// OwnerView shows every order, including the ones customers deleted.
type OwnerView struct {
	orders OrderLister
}

func (OwnerView) Role() kernel.Role {
	return kernel.Owner
}

func (v OwnerView) Board(ctx context.Context) (Board, error) {
	all, err := list(ctx, v.orders, queries.OrderFilter{})
	if err != nil {
		return Board{}, err
	}
	return Board{Role: kernel.Owner, Sections: []Section{{Name: "all", Orders: all}}}, nil
}

func list(ctx context.Context, orders OrderLister, filter queries.OrderFilter) ([]queries.OrderResponse, error) {
	query, err := queries.NewListOrdersQuery(filter)
	if err != nil {
		return nil, err
	}
	return orders.Handle(ctx, query)
}

func hideCodes(orders []queries.OrderResponse) []queries.OrderResponse {
	for i := range orders {
		orders[i].ConfirmationCode = ""
	}
	return orders
}
