package queries

import (
	"context"
	"strings"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns the matching orders with their items, newest first. Insertion order
// breaks ties between orders placed within the same instant.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, args := orderConditions(query.Filter())
	return h.fetch(ctx, where, args)
}

func (h ListOrdersQueryHandler) fetch(ctx context.Context, where []string, args []any) ([]OrderResponse, error) {
	sql := `
		SELECT
			id,
			customer_name,
			restaurant_name,
			delivery_fee,
			total,
			status,
			payment_method,
			neighborhood,
			prep_time,
			driver_id,
			placed_at,
			confirmation_code,
			is_deleted_by_customer
		FROM orders`
	if len(where) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	sql += "\n\t\tORDER BY placed_at DESC, seq DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var (
			o             OrderResponse
			id            string
			status        string
			paymentMethod string
		)

		err = rows.Scan(
			&id,
			&o.CustomerName,
			&o.RestaurantName,
			&o.DeliveryFee,
			&o.Total,
			&status,
			&paymentMethod,
			&o.Neighborhood,
			&o.PrepTime,
			&o.DriverID,
			&o.PlacedAt,
			&o.ConfirmationCode,
			&o.IsDeletedByCustomer,
		)
		if err != nil {
			return nil, err
		}

		if o.ID, err = kernel.UUIDFromString(id); err != nil {
			return nil, err
		}
		if o.Status, err = order.StatusFromString(status); err != nil {
			return nil, err
		}
		if o.PaymentMethod, err = order.PaymentMethodFromString(paymentMethod); err != nil {
			return nil, err
		}
		o.PlacedAt = o.PlacedAt.UTC()

		orders = append(orders, o)
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return orders, nil
	}

	items, err := h.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID.String()]
		if orders[i].Items == nil {
			orders[i].Items = []OrderItemResponse{}
		}
	}

	return orders, nil
}

func (h ListOrdersQueryHandler) loadItems(ctx context.Context, orderIDs []string) (map[string][]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_item_id,
			name,
			unit_price,
			quantity
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]OrderItemResponse, len(orderIDs))
	for rows.Next() {
		var (
			orderID string
			item    OrderItemResponse
		)
		if err = rows.Scan(&orderID, &item.MenuItemID, &item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			return nil, err
		}
		items[orderID] = append(items[orderID], item)
	}

	return items, rows.Err()
}

func orderConditions(filter OrderFilter) ([]string, []any) {
	var (
		where []string
		args  []any
	)

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, s.String())
		}
		where = append(where, "status IN ?")
		args = append(args, statuses)
	}
	if filter.DriverID != "" {
		where = append(where, "driver_id = ?")
		args = append(args, filter.DriverID)
	}
	if filter.UnassignedOnly {
		where = append(where, "(driver_id IS NULL OR driver_id = '')")
	}
	if filter.CustomerVisibleOnly {
		where = append(where, "is_deleted_by_customer = ?")
		args = append(args, false)
	}

	return where, args
}
