package commands

import (
	"context"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/kitchen"
	"restaurant/internal/core/domain/model/order"
)

// mutateOrder runs fn against the order re-read under a row lock and persists
// the result in the same transaction. fn returning an error leaves the
// database untouched.
func mutateOrder(
	ctx context.Context,
	factory OrderUoWFactory,
	orderID kernel.UUID,
	fn func(o *order.Order, now time.Time) error,
) (*order.Order, error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = fn(o, time.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, fmt.Errorf("update order %s: %w", orderID, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// mutateTicket is mutateOrder for kitchen tickets.
func mutateTicket(
	ctx context.Context,
	factory KitchenUoWFactory,
	ticketID kernel.UUID,
	fn func(t *kitchen.Ticket, now time.Time) error,
) (*kitchen.Ticket, error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TicketRepository()
	t, err := repo.GetForUpdate(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if err = fn(t, time.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("update kitchen ticket %s: %w", ticketID, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return t, nil
}
