package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
)

// AddItemsCommandHandler appends items to an open order. New items start
// PENDING and wait for a waiter's acceptance like the first batch.
type AddItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAddItemsCommandHandler(uowFactory OrderUoWFactory) AddItemsCommandHandler {
	return AddItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *AddItemsCommandHandler) Handle(ctx context.Context, cmd AddItemsCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := buildItems(cmd.Items())
	if err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.AddItems(items, now)
	})
}
