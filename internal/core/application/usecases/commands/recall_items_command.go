package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrRecallItemsCommandIsNotConstructed = errors.New(
	"RecallItemsCommand must be created via NewRecallItemsCommand constructor",
)

// RecallItemsCommand sends items back for a remake. The reason is required.
type RecallItemsCommand struct {
	ticketID kernel.UUID
	itemIDs  []kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

func NewRecallItemsCommand(ticketID kernel.UUID, itemIDs []kernel.UUID, reason string) (RecallItemsCommand, error) {
	cmd := RecallItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
		cmd.setItemIDs(itemIDs),
		cmd.setReason(reason),
	); err != nil {
		return RecallItemsCommand{}, err
	}

	return cmd, nil
}

func (c RecallItemsCommand) Validate() error {
	return c.guard.Validate(ErrRecallItemsCommandIsNotConstructed)
}

func (c RecallItemsCommand) TicketID() kernel.UUID {
	return c.ticketID
}

func (c RecallItemsCommand) ItemIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.itemIDs...)
}

func (c RecallItemsCommand) Reason() string {
	return c.reason
}

func (c *RecallItemsCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ticketId", err)
	}
	c.ticketID = ticketID
	return nil
}

func (c *RecallItemsCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if err := validateIDs("itemIds", itemIDs); err != nil {
		return err
	}
	c.itemIDs = itemIDs
	return nil
}

func (c *RecallItemsCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
