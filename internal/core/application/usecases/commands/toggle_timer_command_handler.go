package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kitchen"
)

type ToggleTimerCommandHandler struct {
	uowFactory KitchenUoWFactory
}

func NewToggleTimerCommandHandler(uowFactory KitchenUoWFactory) ToggleTimerCommandHandler {
	return ToggleTimerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ToggleTimerCommandHandler) Handle(ctx context.Context, cmd ToggleTimerCommand) (*kitchen.Ticket, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateTicket(ctx, h.uowFactory, cmd.TicketID(), func(t *kitchen.Ticket, now time.Time) error {
		return t.ToggleTimer(cmd.Pause(), now)
	})
}
