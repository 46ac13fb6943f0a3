package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
)

// RejectItemsCommandHandler rejects PENDING items. When every item ends up
// rejected or cancelled the order is cancelled too.
type RejectItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRejectItemsCommandHandler(uowFactory OrderUoWFactory) RejectItemsCommandHandler {
	return RejectItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RejectItemsCommandHandler) Handle(ctx context.Context, cmd RejectItemsCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.RejectItems(cmd.ItemIDs(), cmd.Reason(), now)
	})
}
