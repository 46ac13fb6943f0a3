package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrBumpTicketCommandIsNotConstructed = errors.New(
	"BumpTicketCommand must be created via NewBumpTicketCommand constructor",
)

// BumpTicketCommand completes a READY ticket.
type BumpTicketCommand struct {
	ticketID kernel.UUID

	guard guard.ConstructorGuard
}

func NewBumpTicketCommand(ticketID kernel.UUID) (BumpTicketCommand, error) {
	cmd := BumpTicketCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
	); err != nil {
		return BumpTicketCommand{}, err
	}

	return cmd, nil
}

func (c BumpTicketCommand) Validate() error {
	return c.guard.Validate(ErrBumpTicketCommandIsNotConstructed)
}

func (c BumpTicketCommand) TicketID() kernel.UUID {
	return c.ticketID
}

func (c *BumpTicketCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ticketId", err)
	}
	c.ticketID = ticketID
	return nil
}
