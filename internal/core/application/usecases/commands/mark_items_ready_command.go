package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrMarkItemsReadyCommandIsNotConstructed = errors.New(
	"MarkItemsReadyCommand must be created via NewMarkItemsReadyCommand constructor",
)

type MarkItemsReadyCommand struct {
	ticketID kernel.UUID
	itemIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkItemsReadyCommand(ticketID kernel.UUID, itemIDs []kernel.UUID) (MarkItemsReadyCommand, error) {
	cmd := MarkItemsReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
		cmd.setItemIDs(itemIDs),
	); err != nil {
		return MarkItemsReadyCommand{}, err
	}

	return cmd, nil
}

func (c MarkItemsReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkItemsReadyCommandIsNotConstructed)
}

func (c MarkItemsReadyCommand) TicketID() kernel.UUID {
	return c.ticketID
}

func (c MarkItemsReadyCommand) ItemIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.itemIDs...)
}

func (c *MarkItemsReadyCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ticketId", err)
	}
	c.ticketID = ticketID
	return nil
}

func (c *MarkItemsReadyCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if err := validateIDs("itemIds", itemIDs); err != nil {
		return err
	}
	c.itemIDs = itemIDs
	return nil
}
