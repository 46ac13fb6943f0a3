package queries_test

import (
	"context"
	"testing"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/kitchen"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery(t *testing.T) {
	testCases := []struct {
		name    string
		filter  queries.OrderFilter
		wantErr error
		limit   int
	}{
		{name: "defaults", filter: queries.OrderFilter{}, limit: queries.DefaultPageSize},
		{name: "explicit limit", filter: queries.OrderFilter{Limit: 10}, limit: 10},
		{name: "limit too large", filter: queries.OrderFilter{Limit: queries.MaxPageSize + 1}, wantErr: errs.ErrValueIsOutOfRange},
		{name: "negative offset", filter: queries.OrderFilter{Offset: -1}, wantErr: errs.ErrValueIsInvalid},
		{name: "unknown status", filter: queries.OrderFilter{Statuses: []order.Status{order.Status(42)}}, wantErr: errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, err := queries.NewGetOrdersQuery(tc.filter)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, query.Validate())
			assert.Equal(t, tc.limit, query.Filter().Limit)
		})
	}
}

func TestNewGetTicketsQuery(t *testing.T) {
	_, err := queries.NewGetTicketsQuery(queries.TicketFilter{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	query, err := queries.NewGetTicketsQuery(queries.TicketFilter{
		TenantID: " tenant-1 ",
		Statuses: []kitchen.TicketStatus{kitchen.TicketStatusReady},
	})
	require.NoError(t, err)
	assert.Equal(t, "tenant-1", query.Filter().TenantID)
	assert.Equal(t, []kitchen.TicketStatus{kitchen.TicketStatusReady}, query.Filter().Statuses)
}

func TestNewGetOrderQuery_RequiresID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestHandlers_RejectUnconstructedQueries(t *testing.T) {
	ctx := context.Background()

	_, err := queries.NewGetOrderQueryHandler(nil).Handle(ctx, queries.GetOrderQuery{})
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)

	_, err = queries.NewGetOrdersQueryHandler(nil).Handle(ctx, queries.GetOrdersQuery{})
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)

	_, err = queries.NewGetKitchenDisplayQueryHandler(nil).Handle(ctx, queries.GetKitchenDisplayQuery{})
	assert.ErrorIs(t, err, queries.ErrGetKitchenDisplayQueryIsNotConstructed)

	_, err = queries.NewGetTicketsQueryHandler(nil).Handle(ctx, queries.GetTicketsQuery{})
	assert.ErrorIs(t, err, queries.ErrGetTicketsQueryIsNotConstructed)

	_, err = queries.NewGetKitchenStatsQueryHandler(nil).Handle(ctx, queries.GetKitchenStatsQuery{})
	assert.ErrorIs(t, err, queries.ErrGetKitchenStatsQueryIsNotConstructed)
}
