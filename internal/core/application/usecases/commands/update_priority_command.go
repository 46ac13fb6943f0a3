package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/kitchen"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrUpdatePriorityCommandIsNotConstructed = errors.New(
	"UpdatePriorityCommand must be created via NewUpdatePriorityCommand constructor",
)

type UpdatePriorityCommand struct {
	ticketID kernel.UUID
	priority kitchen.Priority

	guard guard.ConstructorGuard
}

func NewUpdatePriorityCommand(ticketID kernel.UUID, priority kitchen.Priority) (UpdatePriorityCommand, error) {
	cmd := UpdatePriorityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
		cmd.setPriority(priority),
	); err != nil {
		return UpdatePriorityCommand{}, err
	}

	return cmd, nil
}

func (c UpdatePriorityCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePriorityCommandIsNotConstructed)
}

func (c UpdatePriorityCommand) TicketID() kernel.UUID {
	return c.ticketID
}

func (c UpdatePriorityCommand) Priority() kitchen.Priority {
	return c.priority
}

func (c *UpdatePriorityCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ticketId", err)
	}
	c.ticketID = ticketID
	return nil
}

func (c *UpdatePriorityCommand) setPriority(priority kitchen.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}
