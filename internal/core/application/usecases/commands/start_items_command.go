package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrStartItemsCommandIsNotConstructed = errors.New(
	"StartItemsCommand must be created via NewStartItemsCommand constructor",
)

type StartItemsCommand struct {
	ticketID kernel.UUID
	itemIDs  []kernel.UUID
	cookID   string

	guard guard.ConstructorGuard
}

func NewStartItemsCommand(ticketID kernel.UUID, itemIDs []kernel.UUID, cookID string) (StartItemsCommand, error) {
	cmd := StartItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
		cmd.setItemIDs(itemIDs),
		cmd.setCookID(cookID),
	); err != nil {
		return StartItemsCommand{}, err
	}

	return cmd, nil
}

func (c StartItemsCommand) Validate() error {
	return c.guard.Validate(ErrStartItemsCommandIsNotConstructed)
}

func (c StartItemsCommand) TicketID() kernel.UUID {
	return c.ticketID
}

func (c StartItemsCommand) ItemIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.itemIDs...)
}

func (c StartItemsCommand) CookID() string {
	return c.cookID
}

func (c *StartItemsCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ticketId", err)
	}
	c.ticketID = ticketID
	return nil
}

func (c *StartItemsCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if err := validateIDs("itemIds", itemIDs); err != nil {
		return err
	}
	c.itemIDs = itemIDs
	return nil
}

func (c *StartItemsCommand) setCookID(cookID string) error {
	cookID = strings.TrimSpace(cookID)
	c.cookID = cookID
	return nil
}
