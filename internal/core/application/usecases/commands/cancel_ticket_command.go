package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCancelTicketCommandIsNotConstructed = errors.New(
	"CancelTicketCommand must be created via NewCancelTicketCommand constructor",
)

type CancelTicketCommand struct {
	ticketID kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

func NewCancelTicketCommand(ticketID kernel.UUID, reason string) (CancelTicketCommand, error) {
	cmd := CancelTicketCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
		cmd.setReason(reason),
	); err != nil {
		return CancelTicketCommand{}, err
	}

	return cmd, nil
}

func (c CancelTicketCommand) Validate() error {
	return c.guard.Validate(ErrCancelTicketCommandIsNotConstructed)
}

func (c CancelTicketCommand) TicketID() kernel.UUID {
	return c.ticketID
}

func (c CancelTicketCommand) Reason() string {
	return c.reason
}

func (c *CancelTicketCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ticketId", err)
	}
	c.ticketID = ticketID
	return nil
}

func (c *CancelTicketCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	c.reason = reason
	return nil
}
