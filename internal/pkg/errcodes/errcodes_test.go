package errcodes_test

import (
	"testing"

	"restaurant/internal/pkg/errcodes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CodesAreUnique(t *testing.T) {
	seen := map[int]string{}
	for _, c := range errcodes.All() {
		prev, dup := seen[c.Code]
		require.False(t, dup, "code %d registered twice (%s, %s)", c.Code, prev, c.Message)
		seen[c.Code] = c.Message
	}
}

func TestRegistry_CodesRespectRanges(t *testing.T) {
	testCases := []struct {
		name     string
		code     errcodes.Code
		min, max int
	}{
		{"auth", errcodes.Unauthorized, 1000, 1999},
		{"user", errcodes.UserNotFound, 2000, 2999},
		{"menu", errcodes.MenuItemNotFound, 3000, 3999},
		{"order", errcodes.OrderNotFound, 4000, 4699},
		{"order transition", errcodes.InvalidStatusTransition, 4000, 4699},
		{"kitchen", errcodes.KitchenItemsNotReady, 4700, 4799},
		{"notification", errcodes.NotificationFailed, 6000, 6999},
		{"infra", errcodes.Internal, 9000, 9999},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.GreaterOrEqual(t, tc.code.Code, tc.min)
			assert.LessOrEqual(t, tc.code.Code, tc.max)
			assert.NotEmpty(t, tc.code.Message)
			assert.NotZero(t, tc.code.Status)
		})
	}
}

func TestLookup(t *testing.T) {
	c, ok := errcodes.Lookup(4703)
	require.True(t, ok)
	assert.Equal(t, errcodes.KitchenItemsNotReady, c)

	_, ok = errcodes.Lookup(1234)
	assert.False(t, ok)
}

func TestCode_WithMessage(t *testing.T) {
	c := errcodes.OrderNotFound.WithMessage("order 42 not found")

	assert.Equal(t, 4001, c.Code)
	assert.Equal(t, "order 42 not found", c.Message)
	assert.Equal(t, "order not found", errcodes.OrderNotFound.Message)
	assert.Equal(t, "4001: order 42 not found", c.Error())
}
