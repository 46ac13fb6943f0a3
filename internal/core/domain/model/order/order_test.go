package order_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 19, 30, 0, 0, time.UTC)

func newItem(t *testing.T, name, price string, qty int) *order.Item {
	t.Helper()
	item, err := order.NewItem("menu-"+name, name, kernel.MustMoney(price), qty, nil, "")
	require.NoError(t, err)
	return item
}

// newOrder places an order with A (2 x 10.00) and B (1 x 5.50) at a 10% tax rate.
func newOrder(t *testing.T) (*order.Order, *order.Item, *order.Item) {
	t.Helper()
	a := newItem(t, "A", "10.00", 2)
	b := newItem(t, "B", "5.50", 1)
	o, err := order.NewOrder("tenant-1", "table-7", nil, order.TypeDineIn,
		decimal.RequireFromString("0.1"), kernel.Zero, []*order.Item{a, b}, now)
	require.NoError(t, err)
	return o, a, b
}

// assertInvariants checks the order-level status against the item set.
// IN_PROGRESS needs a non-terminal item, except for a served tab still
// waiting for payment.
func assertInvariants(t *testing.T, o *order.Order) {
	t.Helper()
	switch o.Status() {
	case order.StatusInProgress:
		active, served := 0, 0
		for _, item := range o.Items() {
			if !item.Status().IsTerminal() {
				active++
			}
			if item.Status() == order.ItemStatusServed {
				served++
			}
		}
		if active == 0 {
			assert.Positive(t, served, "IN_PROGRESS with every item terminal and none served")
			assert.NotEqual(t, order.PaymentStatusPaid, o.PaymentStatus(), "a paid served tab must complete")
		}
	case order.StatusCompleted:
		assert.Equal(t, order.PaymentStatusPaid, o.PaymentStatus())
		for _, item := range o.Items() {
			assert.True(t, item.Status().IsTerminal(), "item %s is %s", item.Name(), item.Status())
		}
	case order.StatusCancelled:
		for _, item := range o.Items() {
			assert.True(t, item.Status().IsTerminal())
		}
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should place a pending unpaid order with totals", func(t *testing.T) {
		o, a, _ := newOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentStatusUnpaid, o.PaymentStatus())
		assert.Equal(t, "25.50", o.Subtotal().String())
		assert.Equal(t, "2.55", o.Tax().String())
		assert.Equal(t, "28.05", o.Total().String())
		assert.True(t, a.OrderID().IsEqual(o.ID()))
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should join every validation error", func(t *testing.T) {
		o, err := order.NewOrder("", "", nil, order.TypeUnknown, decimal.NewFromInt(2), kernel.Zero, nil, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "tenantId")
		assert.Contains(t, err.Error(), "tableId")
		assert.Contains(t, err.Error(), "orderType")
		assert.Contains(t, err.Error(), "taxRate")
		assert.Contains(t, err.Error(), "items")
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("should floor the total at zero", func(t *testing.T) {
		item := newItem(t, "C", "3.00", 1)

		o, err := order.NewOrder("tenant-1", "table-1", nil, order.TypeTakeaway,
			decimal.Zero, kernel.MustMoney("10"), []*order.Item{item}, now)

		require.NoError(t, err)
		assert.True(t, o.Total().IsEqual(kernel.Zero))
	})

	t.Run("should reject invalid items", func(t *testing.T) {
		_, err := order.NewItem("", "", kernel.Zero, 0, nil, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "menuItemId")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})
}

func TestOrder_AcceptItems(t *testing.T) {
	t.Run("should accept items and open the tab", func(t *testing.T) {
		o, a, b := newOrder(t)

		accepted, err := o.AcceptItems([]kernel.UUID{a.ID(), b.ID()}, "waiter-1", now)

		require.NoError(t, err)
		assert.Len(t, accepted, 2)
		assert.Equal(t, order.StatusInProgress, o.Status())
		assert.Equal(t, order.ItemStatusAccepted, a.Status())
		require.NotNil(t, a.AcceptedBy())
		assert.Equal(t, "waiter-1", *a.AcceptedBy())
		require.NotNil(t, a.AcceptedAt())
	})

	t.Run("should be all or nothing", func(t *testing.T) {
		o, a, b := newOrder(t)
		require.NoError(t, o.RejectItems([]kernel.UUID{b.ID()}, "out of stock", now))

		_, err := o.AcceptItems([]kernel.UUID{a.ID(), b.ID()}, "waiter-1", now)

		require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
		assert.Equal(t, order.ItemStatusPending, a.Status(), "no item changes when one fails")
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("should fail for unknown items", func(t *testing.T) {
		o, _, _ := newOrder(t)

		_, err := o.AcceptItems([]kernel.UUID{kernel.NewUUID()}, "waiter-1", now)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should require a waiter", func(t *testing.T) {
		o, a, _ := newOrder(t)

		_, err := o.AcceptItems([]kernel.UUID{a.ID()}, " ", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should ignore duplicate ids", func(t *testing.T) {
		o, a, _ := newOrder(t)

		accepted, err := o.AcceptItems([]kernel.UUID{a.ID(), a.ID()}, "waiter-1", now)

		require.NoError(t, err)
		assert.Len(t, accepted, 1)
	})
}

func TestOrder_RejectItems(t *testing.T) {
	testCases := []struct {
		name    string
		reason  string
		wantErr bool
	}{
		{"empty reason", "", true},
		{"four characters", "nope", true},
		{"padded short reason", "  no  ", true},
		{"five characters", "stale", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, a, _ := newOrder(t)

			err := o.RejectItems([]kernel.UUID{a.ID()}, tc.reason, now)

			if tc.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Equal(t, order.ItemStatusPending, a.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.ItemStatusRejected, a.Status())
			assert.Equal(t, tc.reason, a.RejectionReason())
		})
	}

	t.Run("should cancel the order when every item is rejected", func(t *testing.T) {
		o, a, b := newOrder(t)

		require.NoError(t, o.RejectItems([]kernel.UUID{a.ID(), b.ID()}, "kitchen closed", now))

		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.True(t, o.Subtotal().IsEqual(kernel.Zero))
		assertInvariants(t, o)
	})

	t.Run("should exclude rejected items from totals", func(t *testing.T) {
		o, a, _ := newOrder(t)

		require.NoError(t, o.RejectItems([]kernel.UUID{a.ID()}, "out of stock", now))

		assert.Equal(t, "5.50", o.Subtotal().String())
		assert.Equal(t, "6.05", o.Total().String())
	})
}

func TestOrder_FullLifecycle(t *testing.T) {
	o, a, b := newOrder(t)
	ids := []kernel.UUID{a.ID(), b.ID()}

	_, err := o.AcceptItems(ids, "waiter-1", now)
	require.NoError(t, err)
	require.NoError(t, o.AdvanceItems(ids, order.ItemStatusPreparing, now))
	require.NoError(t, o.AdvanceItems(ids, order.ItemStatusReady, now))
	require.NoError(t, o.ServeItems(ids, now))

	assert.Equal(t, order.StatusInProgress, o.Status(), "served but unpaid tab stays open")
	assertInvariants(t, o)

	err = o.UpdateStatus(order.StatusCompleted, now)
	require.ErrorIs(t, err, order.ErrPaymentRequired)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)

	require.NoError(t, o.RecordPayment(order.PaymentStatusPaid, now))

	assert.Equal(t, order.StatusCompleted, o.Status())
	require.NotNil(t, a.ServedAt())
	assertInvariants(t, o)

	err = o.AddItems([]*order.Item{newItem(t, "D", "1.00", 1)}, now)
	require.ErrorIs(t, err, order.ErrOrderClosed)
}

func TestOrder_ServedTabAwaitsPayment(t *testing.T) {
	o, a, b := newOrder(t)

	_, err := o.AcceptItems([]kernel.UUID{a.ID()}, "waiter-1", now)
	require.NoError(t, err)
	require.NoError(t, o.RejectItems([]kernel.UUID{b.ID()}, "out of stock", now))
	assertInvariants(t, o)

	require.NoError(t, o.AdvanceItems([]kernel.UUID{a.ID()}, order.ItemStatusPreparing, now))
	require.NoError(t, o.AdvanceItems([]kernel.UUID{a.ID()}, order.ItemStatusReady, now))
	require.NoError(t, o.ServeItems([]kernel.UUID{a.ID()}, now))

	assert.Equal(t, order.StatusInProgress, o.Status())
	assert.True(t, a.Status().IsTerminal())
	assert.True(t, b.Status().IsTerminal())
	assertInvariants(t, o)

	err = o.UpdateStatus(order.StatusInProgress, now)
	require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)

	require.NoError(t, o.RecordPayment(order.PaymentStatusPaid, now))
	assert.Equal(t, order.StatusCompleted, o.Status())
	assert.Equal(t, "20.00", o.Subtotal().String())
	assertInvariants(t, o)
}

func TestOrder_AdvanceItems(t *testing.T) {
	o, a, _ := newOrder(t)

	err := o.AdvanceItems([]kernel.UUID{a.ID()}, order.ItemStatusPreparing, now)
	require.ErrorIs(t, err, errs.ErrInvalidStatusTransition, "pending items must be accepted first")

	err = o.AdvanceItems([]kernel.UUID{a.ID()}, order.ItemStatusServed, now)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrder_AddItems(t *testing.T) {
	o, a, _ := newOrder(t)
	_, err := o.AcceptItems([]kernel.UUID{a.ID()}, "waiter-1", now)
	require.NoError(t, err)

	extra := newItem(t, "E", "4.00", 2)
	require.NoError(t, o.AddItems([]*order.Item{extra}, now.Add(time.Minute)))

	assert.Len(t, o.Items(), 3)
	assert.True(t, extra.OrderID().IsEqual(o.ID()))
	assert.Equal(t, "33.50", o.Subtotal().String())
	assert.Equal(t, order.StatusInProgress, o.Status())
	assert.Equal(t, now.Add(time.Minute), o.UpdatedAt())

	require.ErrorIs(t, o.AddItems(nil, now), errs.ErrValueIsRequired)
}

func TestOrder_UpdateStatus(t *testing.T) {
	t.Run("should follow the order-level table", func(t *testing.T) {
		o, _, _ := newOrder(t)

		err := o.UpdateStatus(order.StatusCompleted, now)

		require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
	})

	t.Run("should refuse to complete with open items", func(t *testing.T) {
		o, a, _ := newOrder(t)
		_, err := o.AcceptItems([]kernel.UUID{a.ID()}, "waiter-1", now)
		require.NoError(t, err)
		require.NoError(t, o.RecordPayment(order.PaymentStatusPaid, now))

		err = o.UpdateStatus(order.StatusCompleted, now)

		require.ErrorIs(t, err, order.ErrOrderNotCompletable)
		assert.Equal(t, order.StatusInProgress, o.Status())
	})

	t.Run("should open a pending order", func(t *testing.T) {
		o, _, _ := newOrder(t)

		require.NoError(t, o.UpdateStatus(order.StatusInProgress, now))
		assert.Equal(t, order.StatusInProgress, o.Status())
	})

	t.Run("should cancel through the status", func(t *testing.T) {
		o, a, _ := newOrder(t)

		require.NoError(t, o.UpdateStatus(order.StatusCancelled, now))
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, order.ItemStatusCancelled, a.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	o, a, b := newOrder(t)
	_, err := o.AcceptItems([]kernel.UUID{a.ID()}, "waiter-1", now)
	require.NoError(t, err)

	require.NoError(t, o.Cancel(" guest left ", now))

	assert.Equal(t, order.StatusCancelled, o.Status())
	assert.Equal(t, "guest left", o.CancellationReason())
	assert.Equal(t, order.ItemStatusCancelled, a.Status())
	assert.Equal(t, order.ItemStatusCancelled, b.Status())
	require.NotNil(t, b.CancelledAt())
	assertInvariants(t, o)

	err = o.Cancel("again", now)
	require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)

	err = o.RecordPayment(order.PaymentStatusPaid, now)
	require.ErrorIs(t, err, order.ErrOrderClosed)
}

func TestRestoreOrder(t *testing.T) {
	placed, a, _ := newOrder(t)
	item, err := order.RestoreItem(order.ItemState{
		ID:       a.ID(),
		OrderID:  placed.ID(),
		Name:     a.Name(),
		Price:    a.Price(),
		Quantity: a.Quantity(),
		Status:   order.ItemStatusAccepted,
	})
	require.NoError(t, err)

	restored, err := order.RestoreOrder(order.State{
		ID:            placed.ID(),
		TenantID:      placed.TenantID(),
		TableID:       placed.TableID(),
		Type:          order.TypeDineIn,
		Status:        order.StatusInProgress,
		PaymentStatus: order.PaymentStatusUnpaid,
		TaxRate:       placed.TaxRate(),
	}, []*order.Item{item})

	require.NoError(t, err)
	require.NoError(t, restored.Validate())
	found, ok := restored.Item(a.ID())
	require.True(t, ok)
	assert.Equal(t, order.ItemStatusAccepted, found.Status())

	_, err = order.RestoreOrder(order.State{}, nil)
	require.Error(t, err)

	var zero order.Order
	require.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)
}
