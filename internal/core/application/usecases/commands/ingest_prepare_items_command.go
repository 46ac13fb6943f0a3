package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/event"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/kitchen"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrIngestPrepareItemsCommandIsNotConstructed = errors.New(
	"IngestPrepareItemsCommand must be created via NewIngestPrepareItemsCommand constructor",
)

// IngestItem is one accepted order item to be cooked.
type IngestItem struct {
	SourceOrderItemID kernel.UUID
	MenuItemID        string
	Name              string
	Quantity          int
	Modifiers         []string
	Notes             string
}

// IngestPrepareItemsCommand turns a kitchen.prepare_items event into a ticket.
// Every error from the constructor means the event itself is malformed.
type IngestPrepareItemsCommand struct {
	eventID  string
	orderID  kernel.UUID
	tableID  string
	tenantID string
	priority kitchen.Priority
	items    []IngestItem

	guard guard.ConstructorGuard
}

func NewIngestPrepareItemsCommand(e event.PrepareItems) (IngestPrepareItemsCommand, error) {
	if err := e.Validate(); err != nil {
		return IngestPrepareItemsCommand{}, err
	}

	cmd := IngestPrepareItemsCommand{
		eventID:  e.EventID,
		tableID:  e.TableID,
		tenantID: e.TenantID,
		priority: kitchen.PriorityNormal,
		guard:    guard.NewConstructorGuard(),
	}

	orderID, err := kernel.UUIDFromString(e.OrderID)
	if err != nil {
		return IngestPrepareItemsCommand{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	cmd.orderID = orderID

	if e.Priority != nil {
		p, err := kitchen.NewPriority(*e.Priority)
		if err != nil {
			return IngestPrepareItemsCommand{}, err
		}
		cmd.priority = p
	}

	cmd.items = make([]IngestItem, 0, len(e.Items))
	for _, item := range e.Items {
		id, err := kernel.UUIDFromString(item.ID)
		if err != nil {
			return IngestPrepareItemsCommand{}, errs.NewValueIsInvalidErrorWithCause("items.id", err)
		}
		cmd.items = append(cmd.items, IngestItem{
			SourceOrderItemID: id,
			MenuItemID:        item.MenuItemID,
			Name:              item.Name,
			Quantity:          item.Quantity,
			Modifiers:         item.Modifiers,
			Notes:             item.Notes,
		})
	}

	return cmd, nil
}

func (c IngestPrepareItemsCommand) Validate() error {
	return c.guard.Validate(ErrIngestPrepareItemsCommandIsNotConstructed)
}

func (c IngestPrepareItemsCommand) EventID() string {
	return c.eventID
}

func (c IngestPrepareItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c IngestPrepareItemsCommand) TableID() string {
	return c.tableID
}

func (c IngestPrepareItemsCommand) TenantID() string {
	return c.tenantID
}

func (c IngestPrepareItemsCommand) Priority() kitchen.Priority {
	return c.priority
}

func (c IngestPrepareItemsCommand) Items() []IngestItem {
	return append([]IngestItem(nil), c.items...)
}
