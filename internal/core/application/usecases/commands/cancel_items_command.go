package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCancelItemsCommandIsNotConstructed = errors.New(
	"CancelItemsCommand must be created via NewCancelItemsCommand constructor",
)

type CancelItemsCommand struct {
	ticketID kernel.UUID
	itemIDs  []kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

func NewCancelItemsCommand(ticketID kernel.UUID, itemIDs []kernel.UUID, reason string) (CancelItemsCommand, error) {
	cmd := CancelItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
		cmd.setItemIDs(itemIDs),
		cmd.setReason(reason),
	); err != nil {
		return CancelItemsCommand{}, err
	}

	return cmd, nil
}

func (c CancelItemsCommand) Validate() error {
	return c.guard.Validate(ErrCancelItemsCommandIsNotConstructed)
}

func (c CancelItemsCommand) TicketID() kernel.UUID {
	return c.ticketID
}

func (c CancelItemsCommand) ItemIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.itemIDs...)
}

func (c CancelItemsCommand) Reason() string {
	return c.reason
}

func (c *CancelItemsCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ticketId", err)
	}
	c.ticketID = ticketID
	return nil
}

func (c *CancelItemsCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if err := validateIDs("itemIds", itemIDs); err != nil {
		return err
	}
	c.itemIDs = itemIDs
	return nil
}

func (c *CancelItemsCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	c.reason = reason
	return nil
}
