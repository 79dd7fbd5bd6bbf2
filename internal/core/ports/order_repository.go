// Package ports defines the contracts between the reporting core and its
// infrastructure: where orders come from and where report tables go.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// OrderReader is an ordered source of validated orders.
type OrderReader interface {
	// GetAll returns every order in ledger order.
	// An empty source yields an empty slice, not an error.
	GetAll(ctx context.Context) ([]*order.Order, error)
}

// OrderRepository defines the persistence contract for the order ledger.
type OrderRepository interface {
	OrderReader

	// Add persists a new order with its product lines.
	// The order must be valid and its id must not exist yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves one order by its ledger id.
	// Returns errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id int64) (*order.Order, error)
}
