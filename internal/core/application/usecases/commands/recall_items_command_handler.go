package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kitchen"
)

type RecallItemsCommandHandler struct {
	uowFactory KitchenUoWFactory
}

func NewRecallItemsCommandHandler(uowFactory KitchenUoWFactory) RecallItemsCommandHandler {
	return RecallItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RecallItemsCommandHandler) Handle(ctx context.Context, cmd RecallItemsCommand) (*kitchen.Ticket, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateTicket(ctx, h.uowFactory, cmd.TicketID(), func(t *kitchen.Ticket, now time.Time) error {
		return t.RecallItems(cmd.ItemIDs(), cmd.Reason(), now)
	})
}
