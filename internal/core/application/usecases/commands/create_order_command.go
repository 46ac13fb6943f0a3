package commands

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new order at a table with its first items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("tenant-1", "table-4", nil, order.TypeDineIn, kernel.Zero,
//	    []ItemInput{{MenuItemID: "menu-1", Name: "Burger", Price: kernel.MustMoney("9.50"), Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	tenantID   string
	tableID    string
	customerID *string
	orderType  order.Type
	discount   kernel.Money
	items      []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape. Item validation is the
// same one the order aggregate applies.
func NewCreateOrderCommand(
	tenantID, tableID string,
	customerID *string,
	orderType order.Type,
	discount kernel.Money,
	items []ItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerID: customerID,
		discount:   discount,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTenantID(tenantID),
		cmd.setTableID(tableID),
		cmd.setOrderType(orderType),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) TenantID() string {
	return c.tenantID
}

func (c CreateOrderCommand) TableID() string {
	return c.tableID
}

func (c CreateOrderCommand) CustomerID() *string {
	return c.customerID
}

func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

func (c CreateOrderCommand) Discount() kernel.Money {
	return c.discount
}

func (c CreateOrderCommand) Items() []ItemInput {
	return append([]ItemInput(nil), c.items...)
}

func (c *CreateOrderCommand) setTenantID(tenantID string) error {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return errs.NewValueIsRequiredError("tenantId")
	}
	c.tenantID = tenantID
	return nil
}

func (c *CreateOrderCommand) setTableID(tableID string) error {
	tableID = strings.TrimSpace(tableID)
	if tableID == "" {
		return errs.NewValueIsRequiredError("tableId")
	}
	c.tableID = tableID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if _, err := buildItems(items); err != nil {
		return err
	}
	c.items = items
	return nil
}
