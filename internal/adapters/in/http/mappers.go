package http

import (
	"mozdelivery/internal/core/application/session"
	"mozdelivery/internal/core/application/usecases/queries"
	"mozdelivery/internal/core/application/views"
	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/order"
	"mozdelivery/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func toOrder(o queries.OrderResponse) servers.Order {
	items := make([]servers.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = servers.OrderItem{
			MenuItemId: item.MenuItemID,
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
		}
	}

	return servers.Order{
		Id:                  o.ID.Bytes(),
		CustomerName:        o.CustomerName,
		RestaurantName:      o.RestaurantName,
		Items:               items,
		DeliveryFee:         o.DeliveryFee,
		Total:               o.Total,
		Status:              servers.OrderStatus(o.Status.String()),
		PaymentMethod:       servers.PaymentMethod(o.PaymentMethod.String()),
		Neighborhood:        o.Neighborhood,
		PrepTime:            optional(o.PrepTime),
		DriverId:            optional(o.DriverID),
		PlacedAt:            o.PlacedAt,
		ConfirmationCode:    optional(o.ConfirmationCode),
		IsDeletedByCustomer: o.IsDeletedByCustomer,
	}
}

func toOrders(orders []queries.OrderResponse) []servers.Order {
	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return response
}

// toPlacedOrder renders the aggregate returned by PlaceOrder without a second read.
func toPlacedOrder(o *order.Order) servers.Order {
	items := make([]servers.OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, servers.OrderItem{
			MenuItemId: item.MenuItemID(),
			Name:       item.Name(),
			UnitPrice:  item.UnitPrice(),
			Quantity:   item.Quantity(),
		})
	}

	return servers.Order{
		Id:                  o.ID().Bytes(),
		CustomerName:        o.CustomerName(),
		RestaurantName:      o.RestaurantName(),
		Items:               items,
		DeliveryFee:         o.DeliveryFee(),
		Total:               o.Total(),
		Status:              servers.OrderStatus(o.Status().String()),
		PaymentMethod:       servers.PaymentMethod(o.PaymentMethod().String()),
		Neighborhood:        o.Neighborhood(),
		PlacedAt:            o.PlacedAt(),
		ConfirmationCode:    optional(o.ConfirmationCode().String()),
		IsDeletedByCustomer: o.IsDeletedByCustomer(),
	}
}

func toBoard(b views.Board) servers.Board {
	sections := make([]servers.BoardSection, len(b.Sections))
	for i, section := range b.Sections {
		sections[i] = servers.BoardSection{
			Name:   section.Name,
			Orders: toOrders(section.Orders),
		}
	}
	return servers.Board{Role: servers.Role(b.Role.String()), Sections: sections}
}

func toToast(t session.Toast) *servers.Toast {
	return &servers.Toast{
		NotificationId: t.NotificationID.Bytes(),
		TargetRole:     servers.Role(t.TargetRole.String()),
		Title:          t.Title,
		Message:        t.Message,
		Severity:       servers.Severity(t.Severity.String()),
		ShownAt:        t.ShownAt,
		ExpiresAt:      t.ExpiresAt,
	}
}

func toSession(s queries.SessionResponse) servers.Session {
	response := servers.Session{ActiveRole: servers.Role(s.ActiveRole.String())}
	if s.Toast != nil {
		response.Toast = toToast(*s.Toast)
	}
	return response
}

func toNotifications(list []queries.NotificationResponse) []servers.Notification {
	response := make([]servers.Notification, len(list))
	for i, n := range list {
		response[i] = servers.Notification{
			Id:         n.ID.Bytes(),
			TargetRole: servers.Role(n.TargetRole.String()),
			Title:      n.Title,
			Message:    n.Message,
			Severity:   servers.Severity(n.Severity.String()),
			CreatedAt:  n.CreatedAt,
		}
	}
	return response
}

func toActivityEntries(list []queries.ActivityEntryResponse) []servers.ActivityEntry {
	response := make([]servers.ActivityEntry, len(list))
	for i, e := range list {
		response[i] = servers.ActivityEntry{
			Id:        e.ID.Bytes(),
			Actor:     e.Actor,
			Action:    e.Action,
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		}
	}
	return response
}

func toMenu(menu []queries.MenuItemResponse) []servers.MenuItem {
	response := make([]servers.MenuItem, len(menu))
	for i, m := range menu {
		response[i] = servers.MenuItem{
			Id:          m.ID,
			Name:        m.Name,
			Price:       m.Price,
			Description: optional(m.Description),
			Image:       optional(m.Image),
		}
	}
	return response
}

func toPartner(p queries.PartnerResponse) servers.Partner {
	rating := float32(p.Rating)
	return servers.Partner{
		Id:           p.ID.Bytes(),
		Name:         p.Name,
		Category:     optional(p.Category),
		Rating:       &rating,
		DeliveryTime: optional(p.DeliveryTime),
		Landmark:     optional(p.Landmark),
		Image:        optional(p.Image),
		Kind:         servers.PartnerKind(p.Kind.String()),
		Menu:         toMenu(p.Menu),
	}
}

func toStaffUser(u queries.StaffUserResponse) servers.StaffUser {
	return servers.StaffUser{
		Id:     u.ID.Bytes(),
		Name:   u.Name,
		Role:   servers.Role(u.Role.String()),
		Status: servers.StaffStatus(u.Status.String()),
		Email:  u.Email,
	}
}
