package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kitchen"
)

type CancelTicketCommandHandler struct {
	uowFactory KitchenUoWFactory
}

func NewCancelTicketCommandHandler(uowFactory KitchenUoWFactory) CancelTicketCommandHandler {
	return CancelTicketCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CancelTicketCommandHandler) Handle(ctx context.Context, cmd CancelTicketCommand) (*kitchen.Ticket, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateTicket(ctx, h.uowFactory, cmd.TicketID(), func(t *kitchen.Ticket, now time.Time) error {
		return t.Cancel(cmd.Reason(), now)
	})
}
