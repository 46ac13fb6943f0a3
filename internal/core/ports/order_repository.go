// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work, and message publishers.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates together with their items.
type OrderRepository interface {
	// Add persists a new order and its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order row and upserts every item. Items are never
	// deleted while the order exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its items. Returns errs.ObjectNotFoundError when missing.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate loads an order with its items under a row lock held until
	// the surrounding transaction ends. Every mutation starts here.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
