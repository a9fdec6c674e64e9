package queries

import (
	"context"
	"errors"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/pkg/errs"
	"mozdelivery/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryHandler reads a single ledger row, including orders the customer deleted.
type GetOrderQueryHandler struct {
	orders ListOrdersQueryHandler
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: NewListOrdersQueryHandler(db)}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	found, err := h.orders.fetch(ctx, []string{"id = ?"}, []any{query.orderID.String()})
	if err != nil {
		return OrderResponse{}, err
	}
	if len(found) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.orderID)
	}
	return found[0], nil
}
