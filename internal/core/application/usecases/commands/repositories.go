// Package commands contains business operations that modify system state.
// Every handler validates its command, opens a unit of work, re-reads the
// aggregate under a row lock, mutates it and commits.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces narrow the full ports.UnitOfWork to what each group
// of handlers touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TicketRepoFactory provides access to kitchen ticket repository within a transaction.
	TicketRepoFactory interface {
		TicketRepository() ports.TicketRepository
	}

	// OutboxRepoFactory provides access to the outbox within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW manages transactions for order operations. The outbox is part
	// of it so unpublished events land in the order service's own database.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OutboxRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// KitchenUoW manages transactions for kitchen ticket operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   ticket, err := uow.TicketRepository().GetForUpdate(ctx, id)
	//   // ... mutate ticket
	//   err = uow.TicketRepository().Update(ctx, ticket)
	//
	//   err = uow.Commit(ctx)
	KitchenUoW interface {
		TxManager
		TicketRepoFactory
	}

	// KitchenUoWFactory creates new kitchen unit of work instances.
	KitchenUoWFactory interface {
		Create() KitchenUoW
	}

	// OutboxUoW manages transactions for the outbox relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
