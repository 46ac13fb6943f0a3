package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kitchen"
)

// MarkItemsReadyCommandHandler marks items READY. The ticket follows once every
// item is ready or terminal.
type MarkItemsReadyCommandHandler struct {
	uowFactory KitchenUoWFactory
}

func NewMarkItemsReadyCommandHandler(uowFactory KitchenUoWFactory) MarkItemsReadyCommandHandler {
	return MarkItemsReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *MarkItemsReadyCommandHandler) Handle(ctx context.Context, cmd MarkItemsReadyCommand) (*kitchen.Ticket, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateTicket(ctx, h.uowFactory, cmd.TicketID(), func(t *kitchen.Ticket, now time.Time) error {
		return t.MarkItemsReady(cmd.ItemIDs(), now)
	})
}
