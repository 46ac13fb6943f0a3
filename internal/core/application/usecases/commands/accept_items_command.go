package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrAcceptItemsCommandIsNotConstructed = errors.New(
	"AcceptItemsCommand must be created via NewAcceptItemsCommand constructor",
)

// AcceptItemsCommand asks a waiter's acceptance of PENDING order items. The accepted
// batch is published to the kitchen after commit.
type AcceptItemsCommand struct {
	orderID  kernel.UUID
	itemIDs  []kernel.UUID
	waiterID string

	guard guard.ConstructorGuard
}

func NewAcceptItemsCommand(orderID kernel.UUID, itemIDs []kernel.UUID, waiterID string) (AcceptItemsCommand, error) {
	cmd := AcceptItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemIDs(itemIDs),
		cmd.setWaiterID(waiterID),
	); err != nil {
		return AcceptItemsCommand{}, err
	}

	return cmd, nil
}

func (c AcceptItemsCommand) Validate() error {
	return c.guard.Validate(ErrAcceptItemsCommandIsNotConstructed)
}

func (c AcceptItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AcceptItemsCommand) ItemIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.itemIDs...)
}

func (c AcceptItemsCommand) WaiterID() string {
	return c.waiterID
}

func (c *AcceptItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = orderID
	return nil
}

func (c *AcceptItemsCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if err := validateIDs("itemIds", itemIDs); err != nil {
		return err
	}
	c.itemIDs = itemIDs
	return nil
}

func (c *AcceptItemsCommand) setWaiterID(waiterID string) error {
	waiterID = strings.TrimSpace(waiterID)
	if waiterID == "" {
		return errs.NewValueIsRequiredError("waiterId")
	}
	c.waiterID = waiterID
	return nil
}
