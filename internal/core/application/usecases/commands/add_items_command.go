package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrAddItemsCommandIsNotConstructed = errors.New(
	"AddItemsCommand must be created via NewAddItemsCommand constructor",
)

// AddItemsCommand appends PENDING items to an open order.
type AddItemsCommand struct {
	orderID kernel.UUID
	items   []ItemInput

	guard guard.ConstructorGuard
}

func NewAddItemsCommand(orderID kernel.UUID, items []ItemInput) (AddItemsCommand, error) {
	cmd := AddItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
	); err != nil {
		return AddItemsCommand{}, err
	}

	return cmd, nil
}

func (c AddItemsCommand) Validate() error {
	return c.guard.Validate(ErrAddItemsCommandIsNotConstructed)
}

func (c AddItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddItemsCommand) Items() []ItemInput {
	return append([]ItemInput(nil), c.items...)
}

func (c *AddItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = orderID
	return nil
}

func (c *AddItemsCommand) setItems(items []ItemInput) error {
	if _, err := buildItems(items); err != nil {
		return err
	}
	c.items = items
	return nil
}
