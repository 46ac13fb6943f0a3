package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kitchen"
)

type StartItemsCommandHandler struct {
	uowFactory KitchenUoWFactory
}

func NewStartItemsCommandHandler(uowFactory KitchenUoWFactory) StartItemsCommandHandler {
	return StartItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *StartItemsCommandHandler) Handle(ctx context.Context, cmd StartItemsCommand) (*kitchen.Ticket, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateTicket(ctx, h.uowFactory, cmd.TicketID(), func(t *kitchen.Ticket, now time.Time) error {
		return t.StartItems(cmd.ItemIDs(), cmd.CookID(), now)
	})
}
