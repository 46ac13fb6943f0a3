package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrStartTicketCommandIsNotConstructed = errors.New(
	"StartTicketCommand must be created via NewStartTicketCommand constructor",
)

// StartTicketCommand starts preparation of every PENDING item on a ticket.
type StartTicketCommand struct {
	ticketID kernel.UUID
	cookID   string

	guard guard.ConstructorGuard
}

func NewStartTicketCommand(ticketID kernel.UUID, cookID string) (StartTicketCommand, error) {
	cmd := StartTicketCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
		cmd.setCookID(cookID),
	); err != nil {
		return StartTicketCommand{}, err
	}

	return cmd, nil
}

func (c StartTicketCommand) Validate() error {
	return c.guard.Validate(ErrStartTicketCommandIsNotConstructed)
}

func (c StartTicketCommand) TicketID() kernel.UUID {
	return c.ticketID
}

func (c StartTicketCommand) CookID() string {
	return c.cookID
}

func (c *StartTicketCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ticketId", err)
	}
	c.ticketID = ticketID
	return nil
}

func (c *StartTicketCommand) setCookID(cookID string) error {
	cookID = strings.TrimSpace(cookID)
	c.cookID = cookID
	return nil
}
