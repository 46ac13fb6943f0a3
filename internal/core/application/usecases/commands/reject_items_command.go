package commands

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrRejectItemsCommandIsNotConstructed = errors.New(
	"RejectItemsCommand must be created via NewRejectItemsCommand constructor",
)

// RejectItemsCommand rejects PENDING order items with a reason.
type RejectItemsCommand struct {
	orderID kernel.UUID
	itemIDs []kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

func NewRejectItemsCommand(orderID kernel.UUID, itemIDs []kernel.UUID, reason string) (RejectItemsCommand, error) {
	cmd := RejectItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemIDs(itemIDs),
		cmd.setReason(reason),
	); err != nil {
		return RejectItemsCommand{}, err
	}

	return cmd, nil
}

func (c RejectItemsCommand) Validate() error {
	return c.guard.Validate(ErrRejectItemsCommandIsNotConstructed)
}

func (c RejectItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RejectItemsCommand) ItemIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.itemIDs...)
}

func (c RejectItemsCommand) Reason() string {
	return c.reason
}

func (c *RejectItemsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = orderID
	return nil
}

func (c *RejectItemsCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if err := validateIDs("itemIds", itemIDs); err != nil {
		return err
	}
	c.itemIDs = itemIDs
	return nil
}

func (c *RejectItemsCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if n := utf8.RuneCountInString(reason); n < order.MinRejectionReasonLength {
		return errs.NewValueIsInvalidErrorWithCause("reason",
			fmt.Errorf("%d characters, at least %d required", n, order.MinRejectionReasonLength))
	}
	c.reason = reason
	return nil
}
