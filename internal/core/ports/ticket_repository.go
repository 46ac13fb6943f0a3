package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/kitchen"
)

// TicketRepository persists kitchen ticket aggregates together with their items.
type TicketRepository interface {
	// Add persists a new ticket and its items. A unique violation on a ticket
	// item's source order item is reported as ErrDuplicateTicketItem.
	Add(ctx context.Context, ticket *kitchen.Ticket) error

	Update(ctx context.Context, ticket *kitchen.Ticket) error

	Get(ctx context.Context, id kernel.UUID) (*kitchen.Ticket, error)

	// GetForUpdate loads a ticket under a row lock held until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*kitchen.Ticket, error)

	// TicketedSourceItems returns the subset of order item ids that already
	// have a ticket item.
	TicketedSourceItems(ctx context.Context, orderItemIDs []kernel.UUID) ([]kernel.UUID, error)

	// NextTicketNumber allocates the next ticket number for a tenant from the
	// per-tenant counter row. Numbering is gap-free only for committed tickets.
	NextTicketNumber(ctx context.Context, tenantID string) (int, error)
}
