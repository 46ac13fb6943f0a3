package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrServeItemsCommandIsNotConstructed = errors.New(
	"ServeItemsCommand must be created via NewServeItemsCommand constructor",
)

type ServeItemsCommand struct {
	orderID kernel.UUID
	itemIDs []kernel.UUID

	guard guard.ConstructorGuard
}

func NewServeItemsCommand(orderID kernel.UUID, itemIDs []kernel.UUID) (ServeItemsCommand, error) {
	cmd := ServeItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemIDs(itemIDs),
	); err != nil {
		return ServeItemsCommand{}, err
	}

	return cmd, nil
}

func (c ServeItemsCommand) Validate() error {
	return c.guard.Validate(ErrServeItemsCommandIsNotConstructed)
}

func (c ServeItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ServeItemsCommand) ItemIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.itemIDs...)
}

func (c *ServeItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = orderID
	return nil
}

func (c *ServeItemsCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if err := validateIDs("itemIds", itemIDs); err != nil {
		return err
	}
	c.itemIDs = itemIDs
	return nil
}
