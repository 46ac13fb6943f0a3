package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
)

type ServeItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewServeItemsCommandHandler(uowFactory OrderUoWFactory) ServeItemsCommandHandler {
	return ServeItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ServeItemsCommandHandler) Handle(ctx context.Context, cmd ServeItemsCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.ServeItems(cmd.ItemIDs(), now)
	})
}
