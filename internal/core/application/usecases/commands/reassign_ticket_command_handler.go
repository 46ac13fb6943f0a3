package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kitchen"
)

type ReassignTicketCommandHandler struct {
	uowFactory KitchenUoWFactory
}

func NewReassignTicketCommandHandler(uowFactory KitchenUoWFactory) ReassignTicketCommandHandler {
	return ReassignTicketCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ReassignTicketCommandHandler) Handle(ctx context.Context, cmd ReassignTicketCommand) (*kitchen.Ticket, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateTicket(ctx, h.uowFactory, cmd.TicketID(), func(t *kitchen.Ticket, _ time.Time) error {
		return t.Reassign(cmd.CookID())
	})
}
