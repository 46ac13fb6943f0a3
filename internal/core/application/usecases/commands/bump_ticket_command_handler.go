package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kitchen"
)

// BumpTicketCommandHandler hands a finished ticket to service and closes it.
type BumpTicketCommandHandler struct {
	uowFactory KitchenUoWFactory
}

func NewBumpTicketCommandHandler(uowFactory KitchenUoWFactory) BumpTicketCommandHandler {
	return BumpTicketCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *BumpTicketCommandHandler) Handle(ctx context.Context, cmd BumpTicketCommand) (*kitchen.Ticket, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateTicket(ctx, h.uowFactory, cmd.TicketID(), func(t *kitchen.Ticket, now time.Time) error {
		return t.Bump(now)
	})
}
