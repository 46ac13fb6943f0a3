package commands_test

import (
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/kitchen"
	"restaurant/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var taxRate = decimal.RequireFromString("0.1")

func itemInputs() []commands.ItemInput {
	return []commands.ItemInput{
		{MenuItemID: "menu-burger", Name: "Burger", Price: kernel.MustMoney("10.00"), Quantity: 2},
		{MenuItemID: "menu-fries", Name: "Fries", Price: kernel.MustMoney("5.50"), Quantity: 1},
	}
}

// pendingOrder returns a PENDING order with two PENDING items totalling 28.05.
func pendingOrder(t *testing.T) *order.Order {
	t.Helper()

	burger, err := order.NewItem("menu-burger", "Burger", kernel.MustMoney("10.00"), 2, nil, "")
	require.NoError(t, err)
	fries, err := order.NewItem("menu-fries", "Fries", kernel.MustMoney("5.50"), 1, []string{"no salt"}, "")
	require.NoError(t, err)

	o, err := order.NewOrder("tenant-1", "table-4", nil, order.TypeDineIn, taxRate, kernel.Zero,
		[]*order.Item{burger, fries}, time.Now())
	require.NoError(t, err)
	return o
}

func itemIDs(o *order.Order) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(o.Items()))
	for _, item := range o.Items() {
		ids = append(ids, item.ID())
	}
	return ids
}

// pendingTicket returns a PENDING ticket with two PENDING items.
func pendingTicket(t *testing.T) *kitchen.Ticket {
	t.Helper()

	burger, err := kitchen.NewTicketItem(kernel.NewUUID(), "menu-burger", "Burger", 2, nil, "")
	require.NoError(t, err)
	fries, err := kitchen.NewTicketItem(kernel.NewUUID(), "menu-fries", "Fries", 1, nil, "")
	require.NoError(t, err)

	ticket, err := kitchen.NewTicket("tenant-1", kernel.NewUUID(), "table-4", 1, kitchen.PriorityNormal,
		[]*kitchen.TicketItem{burger, fries}, time.Now())
	require.NoError(t, err)
	return ticket
}

func ticketItemIDs(ticket *kitchen.Ticket) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(ticket.Items()))
	for _, item := range ticket.Items() {
		ids = append(ids, item.ID())
	}
	return ids
}
