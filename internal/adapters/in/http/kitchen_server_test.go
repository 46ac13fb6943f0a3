package http_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/kitchen"
	"restaurant/internal/pkg/errcodes"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)

func sampleTicket(t *testing.T) *kitchen.Ticket {
	t.Helper()
	item, err := kitchen.NewTicketItem(kernel.NewUUID(), "menu-1", "Burger", 2, nil, "")
	require.NoError(t, err)
	ticket, err := kitchen.NewTicket("tenant-1", kernel.NewUUID(), "table-4", 7, kitchen.PriorityHigh,
		[]*kitchen.TicketItem{item}, fixedNow.Add(-10*time.Minute))
	require.NoError(t, err)
	return ticket
}

func kitchenEcho(h httpadapter.KitchenHandlers) *echo.Echo {
	h.Now = func() time.Time { return fixedNow }
	return newEcho(httpadapter.NewKitchenRouter(h, discardLogger()))
}

func ticketBody(extra string) string {
	return `{"ticketId": "` + kernel.NewUUID().String() + `"` + extra + `}`
}

func TestKitchenRouter_Patterns(t *testing.T) {
	router := httpadapter.NewKitchenRouter(httpadapter.KitchenHandlers{}, discardLogger())

	assert.Len(t, router.Patterns(), 13)
	assert.Contains(t, router.Patterns(), "kitchen:mark-items-ready")
	assert.Contains(t, router.Patterns(), "kitchen:get-stats")
}

func TestKitchenRouter_StartTicket(t *testing.T) {
	ticket := sampleTicket(t)
	require.NoError(t, ticket.Start("cook-1", fixedNow.Add(-5*time.Minute)))

	start := new(MockUseCase[commands.StartTicketCommand, *kitchen.Ticket])
	start.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.StartTicketCommand) bool {
		return cmd.CookID() == "cook-1"
	})).Return(ticket, nil)

	status, resp := call(t, kitchenEcho(httpadapter.KitchenHandlers{StartTicket: start}),
		"kitchen:start-ticket", ticketBody(`, "cookId": "cook-1"`))

	require.Equal(t, http.StatusOK, status)
	var body queries.TicketResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, "IN_PROGRESS", body.Status)
	assert.Equal(t, 7, body.TicketNumber)
	assert.Equal(t, int64(300), body.ActiveSeconds)
	start.AssertExpectations(t)
}

func TestKitchenRouter_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		code   errcodes.Code
		status int
	}{
		{
			name:   "items not ready",
			err:    errs.NewBusinessRuleViolationError(kitchen.ErrKitchenItemsNotReady, "item Burger is PREPARING"),
			code:   errcodes.KitchenItemsNotReady,
			status: http.StatusConflict,
		},
		{
			name:   "terminal ticket",
			err:    errs.NewInvalidStatusTransitionError("kitchen ticket", kitchen.TicketStatusCompleted, kitchen.TicketStatusCompleted),
			code:   errcodes.KitchenInvalidStatus,
			status: http.StatusConflict,
		},
		{
			name:   "ticket not found",
			err:    errs.NewObjectNotFoundError("kitchenTicket", "1"),
			code:   errcodes.KitchenTicketNotFound,
			status: http.StatusNotFound,
		},
		{
			name:   "closed ticket",
			err:    errs.NewBusinessRuleViolationError(kitchen.ErrTicketClosed, ""),
			code:   errcodes.KitchenRuleViolation,
			status: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bump := new(MockUseCase[commands.BumpTicketCommand, *kitchen.Ticket])
			bump.On("Handle", mock.Anything, mock.Anything).Return(nil, tc.err)

			status, resp := call(t, kitchenEcho(httpadapter.KitchenHandlers{BumpTicket: bump}),
				"kitchen:bump-ticket", ticketBody(""))

			assert.Equal(t, tc.status, status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.code.Code, resp.Error.Code)
		})
	}
}

func TestKitchenRouter_ItemNotFound(t *testing.T) {
	ready := new(MockUseCase[commands.MarkItemsReadyCommand, *kitchen.Ticket])
	ready.On("Handle", mock.Anything, mock.Anything).Return(nil, errs.NewObjectNotFoundError("ticketItem", "9"))

	status, resp := call(t, kitchenEcho(httpadapter.KitchenHandlers{MarkItemsReady: ready}),
		"kitchen:mark-items-ready", ticketBody(`, "itemIds": ["`+kernel.NewUUID().String()+`"]`))

	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, errcodes.KitchenItemNotFound.Code, resp.Error.Code)
}

func TestKitchenRouter_ToggleTimer(t *testing.T) {
	toggle := new(MockUseCase[commands.ToggleTimerCommand, *kitchen.Ticket])
	toggle.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ToggleTimerCommand) bool {
		return cmd.Pause()
	})).Return(nil, errs.NewBusinessRuleViolationError(kitchen.ErrTimerState, "timer is paused"))

	e := kitchenEcho(httpadapter.KitchenHandlers{ToggleTimer: toggle})

	status, resp := call(t, e, "kitchen:toggle-timer", ticketBody(`, "pause": true`))
	assert.Equal(t, http.StatusConflict, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, errcodes.KitchenTimerState.Code, resp.Error.Code)

	status, resp = call(t, e, "kitchen:toggle-timer", ticketBody(""))
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, errcodes.KitchenValidationFailed.Code, resp.Error.Code)
}

func TestKitchenRouter_UpdatePriorityOutOfRange(t *testing.T) {
	update := new(MockUseCase[commands.UpdatePriorityCommand, *kitchen.Ticket])

	status, resp := call(t, kitchenEcho(httpadapter.KitchenHandlers{UpdatePriority: update}),
		"kitchen:update-priority", ticketBody(`, "priority": 9`))

	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, errcodes.KitchenValidationFailed.Code, resp.Error.Code)
	update.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestKitchenRouter_Display(t *testing.T) {
	display := new(MockUseCase[queries.GetKitchenDisplayQuery, []queries.TicketResponse])
	display.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetKitchenDisplayQuery) bool {
		return q.TenantID() == "tenant-1" && q.Station() == "grill"
	})).Return([]queries.TicketResponse{queries.TicketResponseFromDomain(sampleTicket(t), fixedNow)}, nil)

	e := kitchenEcho(httpadapter.KitchenHandlers{GetDisplay: display})

	status, resp := call(t, e, "kitchen:get-display", `{"tenantId": "tenant-1", "station": "grill"}`)
	require.Equal(t, http.StatusOK, status)
	var body []queries.TicketResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	require.Len(t, body, 1)
	assert.Equal(t, "PENDING", body[0].Status)

	status, _ = call(t, e, "kitchen:get-display", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
	display.AssertNumberOfCalls(t, "Handle", 1)
}

func TestKitchenRouter_StatsDefaultsToCurrentDay(t *testing.T) {
	stats := new(MockUseCase[queries.GetKitchenStatsQuery, queries.KitchenStatsResponse])
	stats.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetKitchenStatsQuery) bool {
		return q.Since().Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	})).Return(queries.KitchenStatsResponse{TenantID: "tenant-1", Total: 3}, nil)

	status, resp := call(t, kitchenEcho(httpadapter.KitchenHandlers{GetStats: stats}),
		"kitchen:get-stats", `{"tenantId": "tenant-1"}`)

	require.Equal(t, http.StatusOK, status)
	var body queries.KitchenStatsResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, 3, body.Total)
	stats.AssertExpectations(t)
}

func TestKitchenRouter_GetTicketsParsesStatuses(t *testing.T) {
	tickets := new(MockUseCase[queries.GetTicketsQuery, []queries.TicketResponse])
	tickets.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetTicketsQuery) bool {
		f := q.Filter()
		return len(f.Statuses) == 1 && f.Statuses[0] == kitchen.TicketStatusReady
	})).Return([]queries.TicketResponse{}, nil)

	e := kitchenEcho(httpadapter.KitchenHandlers{GetTickets: tickets})

	status, _ := call(t, e, "kitchen:get-tickets", `{"tenantId": "tenant-1", "statuses": ["ready"]}`)
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, e, "kitchen:get-tickets", `{"tenantId": "tenant-1", "statuses": ["BURNT"]}`)
	assert.Equal(t, http.StatusBadRequest, status)
	tickets.AssertNumberOfCalls(t, "Handle", 1)
}
