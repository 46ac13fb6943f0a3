package order_test

import (
	"fmt"
	"testing"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemStatus_TransitionTable(t *testing.T) {
	allowed := map[order.ItemStatus][]order.ItemStatus{
		order.ItemStatusPending:   {order.ItemStatusAccepted, order.ItemStatusRejected, order.ItemStatusCancelled},
		order.ItemStatusAccepted:  {order.ItemStatusPreparing, order.ItemStatusCancelled},
		order.ItemStatusPreparing: {order.ItemStatusReady, order.ItemStatusCancelled},
		order.ItemStatusReady:     {order.ItemStatusServed, order.ItemStatusCancelled},
	}

	isAllowed := func(from, to order.ItemStatus) bool {
		for _, s := range allowed[from] {
			if s == to {
				return true
			}
		}
		return false
	}

	// Every pair outside the table must be rejected with InvalidStatusTransition.
	for _, from := range order.ItemStatuses() {
		for _, to := range order.ItemStatuses() {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				next, err := from.TransitionTo(to)

				if isAllowed(from, to) {
					require.NoError(t, err)
					assert.Equal(t, to, next)
					assert.True(t, order.CanTransitionItem(from, to))
					return
				}

				require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
				assert.Equal(t, from, next)
				assert.False(t, order.CanTransitionItem(from, to))
			})
		}
	}
}

func TestItemStatus_Terminal(t *testing.T) {
	for _, s := range order.ItemStatuses() {
		terminal := s == order.ItemStatusServed || s == order.ItemStatusRejected || s == order.ItemStatusCancelled
		assert.Equal(t, terminal, s.IsTerminal(), s.String())
	}
}

func TestStatus_TransitionTable(t *testing.T) {
	testCases := []struct {
		from, to order.Status
		ok       bool
	}{
		{order.StatusPending, order.StatusInProgress, true},
		{order.StatusPending, order.StatusCancelled, true},
		{order.StatusPending, order.StatusCompleted, false},
		{order.StatusInProgress, order.StatusCompleted, true},
		{order.StatusInProgress, order.StatusCancelled, true},
		{order.StatusInProgress, order.StatusPending, false},
		{order.StatusCompleted, order.StatusCancelled, false},
		{order.StatusCancelled, order.StatusPending, false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
			_, err := tc.from.TransitionTo(tc.to)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
			assert.Contains(t, err.Error(), "order cannot move from "+tc.from.String())
		})
	}
}

func TestParseStatus(t *testing.T) {
	s, err := order.ParseStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, order.StatusInProgress, s)

	_, err = order.ParseStatus("DELIVERED")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.Error(t, order.StatusUnknown.Validate())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestPaymentStatus_TransitionTo(t *testing.T) {
	next, err := order.PaymentStatusUnpaid.TransitionTo(order.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, order.PaymentStatusPaid, next)

	_, err = order.PaymentStatusUnpaid.TransitionTo(order.PaymentStatusRefunded)
	require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)

	_, err = order.PaymentStatusRefunded.TransitionTo(order.PaymentStatusPaid)
	require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
}

func TestParseType(t *testing.T) {
	typ, err := order.ParseType("TAKEAWAY")
	require.NoError(t, err)
	assert.Equal(t, order.TypeTakeaway, typ)

	_, err = order.ParseType("DRIVE_THRU")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
