package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kitchen"
)

type CancelItemsCommandHandler struct {
	uowFactory KitchenUoWFactory
}

func NewCancelItemsCommandHandler(uowFactory KitchenUoWFactory) CancelItemsCommandHandler {
	return CancelItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CancelItemsCommandHandler) Handle(ctx context.Context, cmd CancelItemsCommand) (*kitchen.Ticket, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateTicket(ctx, h.uowFactory, cmd.TicketID(), func(t *kitchen.Ticket, now time.Time) error {
		return t.CancelItems(cmd.ItemIDs(), cmd.Reason(), now)
	})
}
