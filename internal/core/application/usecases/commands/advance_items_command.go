package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrAdvanceItemsCommandIsNotConstructed = errors.New(
	"AdvanceItemsCommand must be created via NewAdvanceItemsCommand constructor",
)

// AdvanceItemsCommand records kitchen progress (PREPARING or READY) on order items.
type AdvanceItemsCommand struct {
	orderID kernel.UUID
	itemIDs []kernel.UUID
	status  order.ItemStatus

	guard guard.ConstructorGuard
}

func NewAdvanceItemsCommand(orderID kernel.UUID, itemIDs []kernel.UUID, status order.ItemStatus) (AdvanceItemsCommand, error) {
	cmd := AdvanceItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemIDs(itemIDs),
		cmd.setStatus(status),
	); err != nil {
		return AdvanceItemsCommand{}, err
	}

	return cmd, nil
}

func (c AdvanceItemsCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceItemsCommandIsNotConstructed)
}

func (c AdvanceItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AdvanceItemsCommand) ItemIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.itemIDs...)
}

func (c AdvanceItemsCommand) Status() order.ItemStatus {
	return c.status
}

func (c *AdvanceItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceItemsCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if err := validateIDs("itemIds", itemIDs); err != nil {
		return err
	}
	c.itemIDs = itemIDs
	return nil
}

func (c *AdvanceItemsCommand) setStatus(status order.ItemStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
