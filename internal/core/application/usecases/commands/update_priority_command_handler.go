package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kitchen"
)

type UpdatePriorityCommandHandler struct {
	uowFactory KitchenUoWFactory
}

func NewUpdatePriorityCommandHandler(uowFactory KitchenUoWFactory) UpdatePriorityCommandHandler {
	return UpdatePriorityCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdatePriorityCommandHandler) Handle(ctx context.Context, cmd UpdatePriorityCommand) (*kitchen.Ticket, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateTicket(ctx, h.uowFactory, cmd.TicketID(), func(t *kitchen.Ticket, _ time.Time) error {
		return t.UpdatePriority(cmd.Priority())
	})
}
