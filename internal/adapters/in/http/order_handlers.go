package http

import (
	"net/http"

	"mozdelivery/internal/core/application/usecases/commands"
	"mozdelivery/internal/core/application/usecases/queries"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/order"
	"mozdelivery/internal/core/domain/services"
	"mozdelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetNeighborhoods handles GET /api/v1/neighborhoods.
func (s *Server) GetNeighborhoods(ctx echo.Context) error {
	zones := services.Neighborhoods()
	response := make([]servers.Neighborhood, len(zones))
	for i, zone := range zones {
		response[i] = servers.Neighborhood{Name: zone.Name, Fee: s.fees.Fee(zone.Name)}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	filter := queries.OrderFilter{
		DriverID:            deref(params.DriverId),
		UnassignedOnly:      deref(params.Unassigned),
		CustomerVisibleOnly: deref(params.CustomerVisible),
	}
	for _, raw := range deref(params.Status) {
		status, err := order.StatusFromString(string(raw))
		if err != nil {
			return fail(ctx, err, "Invalid status filter")
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	query, err := queries.NewListOrdersQuery(filter)
	if err != nil {
		return fail(ctx, err, "Invalid order filter")
	}

	orders, err := s.queries.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cart := make([]commands.CartLine, len(body.Items))
	for i, line := range body.Items {
		cart[i] = commands.CartLine{
			MenuItemID: line.MenuItemId,
			Name:       line.Name,
			UnitPrice:  line.UnitPrice,
			Quantity:   line.Quantity,
		}
	}

	cmd, err := commands.NewPlaceOrderCommand(
		body.CustomerName,
		body.RestaurantName,
		cart,
		string(body.PaymentMethod),
		body.Neighborhood,
	)
	if err != nil {
		return fail(ctx, err, "Invalid order data")
	}

	placed, err := s.commands.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, toPlacedOrder(placed))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return fail(ctx, err, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return fail(ctx, err, "Invalid order id")
	}

	found, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrder(found))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}: the customer hides the order
// from their history. The ledger keeps it.
func (s *Server) DeleteOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return fail(ctx, err, "Invalid order id")
	}

	cmd, err := commands.NewSoftDeleteOrderCommand(id)
	if err != nil {
		return fail(ctx, err, "Invalid order id")
	}

	if err = s.commands.SoftDeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err, "Failed to delete order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles POST /api/v1/orders/{orderId}/status. Without an explicit
// actor the active role is credited.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return fail(ctx, err, "Invalid order id")
	}

	next, err := order.StatusFromString(string(body.Status))
	if err != nil {
		return fail(ctx, err, "Invalid status")
	}

	actor := s.roles.ActiveRole()
	if body.Actor != nil {
		if actor, err = kernel.RoleFromString(string(*body.Actor)); err != nil {
			return fail(ctx, err, "Invalid actor")
		}
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		id,
		next,
		string(deref(body.PrepTime)),
		deref(body.DriverId),
		actor,
	)
	if err != nil {
		return fail(ctx, err, "Invalid status update")
	}

	transition, err := s.commands.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err, "Failed to update order status")
	}

	return ctx.JSON(http.StatusOK, servers.Transition{
		From: servers.OrderStatus(transition.From.String()),
		To:   servers.OrderStatus(transition.To.String()),
	})
}

// ConfirmPickup handles POST /api/v1/orders/{orderId}/pickup.
func (s *Server) ConfirmPickup(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.PickupConfirmation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return fail(ctx, err, "Invalid order id")
	}

	cmd, err := commands.NewConfirmPickupCommand(id, body.DriverId)
	if err != nil {
		return fail(ctx, err, "Invalid pickup confirmation")
	}

	if err = s.commands.ConfirmPickup.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err, "Failed to confirm pickup")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/orders/{orderId}/delivery-confirmation.
// A wrong code is a normal outcome: 200 with ok=false and nothing changed.
func (s *Server) ConfirmDelivery(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.DeliveryConfirmation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return fail(ctx, err, "Invalid order id")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(id, body.Code)
	if err != nil {
		return fail(ctx, err, "Invalid delivery confirmation")
	}

	ok, err := s.commands.ConfirmDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err, "Failed to confirm delivery")
	}

	return ctx.JSON(http.StatusOK, servers.DeliveryConfirmationResult{Ok: ok})
}
