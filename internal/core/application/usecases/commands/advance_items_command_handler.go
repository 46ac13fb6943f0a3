package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
)

type AdvanceItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAdvanceItemsCommandHandler(uowFactory OrderUoWFactory) AdvanceItemsCommandHandler {
	return AdvanceItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *AdvanceItemsCommandHandler) Handle(ctx context.Context, cmd AdvanceItemsCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.AdvanceItems(cmd.ItemIDs(), cmd.Status(), now)
	})
}
