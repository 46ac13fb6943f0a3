package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrReassignTicketCommandIsNotConstructed = errors.New(
	"ReassignTicketCommand must be created via NewReassignTicketCommand constructor",
)

type ReassignTicketCommand struct {
	ticketID kernel.UUID
	cookID   string

	guard guard.ConstructorGuard
}

func NewReassignTicketCommand(ticketID kernel.UUID, cookID string) (ReassignTicketCommand, error) {
	cmd := ReassignTicketCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
		cmd.setCookID(cookID),
	); err != nil {
		return ReassignTicketCommand{}, err
	}

	return cmd, nil
}

func (c ReassignTicketCommand) Validate() error {
	return c.guard.Validate(ErrReassignTicketCommandIsNotConstructed)
}

func (c ReassignTicketCommand) TicketID() kernel.UUID {
	return c.ticketID
}

func (c ReassignTicketCommand) CookID() string {
	return c.cookID
}

func (c *ReassignTicketCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ticketId", err)
	}
	c.ticketID = ticketID
	return nil
}

func (c *ReassignTicketCommand) setCookID(cookID string) error {
	cookID = strings.TrimSpace(cookID)
	if cookID == "" {
		return errs.NewValueIsRequiredError("cookId")
	}
	c.cookID = cookID
	return nil
}
