package ports

import (
	"context"
	"errors"
)

// ErrDuplicateTicketItem is returned when an order item already has a ticket
// item, typically because another consumer instance won the race.
var ErrDuplicateTicketItem = errors.New("order item already has a kitchen ticket item")

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after
// Begin run inside the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	TicketRepository() TicketRepository
	OutboxRepository() OutboxRepository
}
