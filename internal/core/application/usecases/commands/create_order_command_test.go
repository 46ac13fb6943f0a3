package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	testCases := []struct {
		name      string
		tenantID  string
		tableID   string
		orderType order.Type
		items     []commands.ItemInput
		wantErr   error
	}{
		{"valid", "tenant-1", "table-4", order.TypeDineIn, itemInputs(), nil},
		{"missing tenant", " ", "table-4", order.TypeDineIn, itemInputs(), errs.ErrValueIsRequired},
		{"missing table", "tenant-1", "", order.TypeTakeaway, itemInputs(), errs.ErrValueIsRequired},
		{"unknown type", "tenant-1", "table-4", order.TypeUnknown, itemInputs(), errs.ErrValueIsInvalid},
		{"no items", "tenant-1", "table-4", order.TypeDelivery, nil, errs.ErrValueIsRequired},
		{
			"zero quantity", "tenant-1", "table-4", order.TypeDineIn,
			[]commands.ItemInput{{MenuItemID: "m", Name: "Soup", Price: kernel.MustMoney("3"), Quantity: 0}},
			errs.ErrValueIsInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := commands.NewCreateOrderCommand(tc.tenantID, tc.tableID, nil, tc.orderType, kernel.Zero, tc.items)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Error(t, cmd.Validate())
				return
			}
			require.NoError(t, err)
			require.NoError(t, cmd.Validate())
			assert.Equal(t, "tenant-1", cmd.TenantID())
			assert.Len(t, cmd.Items(), 2)
		})
	}
}

func TestCreateOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
