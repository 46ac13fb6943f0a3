package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kitchen"
)

type StartTicketCommandHandler struct {
	uowFactory KitchenUoWFactory
}

func NewStartTicketCommandHandler(uowFactory KitchenUoWFactory) StartTicketCommandHandler {
	return StartTicketCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *StartTicketCommandHandler) Handle(ctx context.Context, cmd StartTicketCommand) (*kitchen.Ticket, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateTicket(ctx, h.uowFactory, cmd.TicketID(), func(t *kitchen.Ticket, now time.Time) error {
		return t.Start(cmd.CookID(), now)
	})
}
