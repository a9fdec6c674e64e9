package ports

import (
	"context"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the order ledger.
// Orders are appended and patched; there is no delete.
type OrderRepository interface {
	// Add appends a new order together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update patches the mutable fields of an existing order: status, prep time,
	// driver and the customer soft-delete flag.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items. Returns errs.ObjectNotFoundError if absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
