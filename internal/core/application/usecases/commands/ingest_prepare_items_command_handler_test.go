package commands_test

import (
	"fmt"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/event"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/kitchen"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func prepareItemsEvent(n int) event.PrepareItems {
	items := make([]event.PrepareItem, 0, n)
	for i := range n {
		items = append(items, event.PrepareItem{
			ID:         kernel.NewUUID().String(),
			MenuItemID: fmt.Sprintf("menu-%d", i),
			Name:       fmt.Sprintf("Dish %d", i),
			Quantity:   1,
		})
	}
	priority := 2
	return event.PrepareItems{
		EventID:    kernel.NewUUID().String(),
		OrderID:    kernel.NewUUID().String(),
		TableID:    "table-4",
		TenantID:   "tenant-1",
		Items:      items,
		Priority:   &priority,
		OccurredAt: time.Now(),
	}
}

func ingestFixture(t *testing.T) (*MockKitchenUoWFactory, *MockUoW, *MockTicketRepository) {
	t.Helper()
	repo := new(MockTicketRepository)
	uow := new(MockUoW)
	factory := new(MockKitchenUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, repo
}

func TestIngestPrepareItemsCommandHandler_Handle_CreatesTicket(t *testing.T) {
	ctx := t.Context()
	e := prepareItemsEvent(2)
	cmd, err := commands.NewIngestPrepareItemsCommand(e)
	require.NoError(t, err)

	factory, uow, repo := ingestFixture(t)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TicketRepository").Return(repo).Once(),
		repo.On("TicketedSourceItems", ctx, mock.Anything).Return([]kernel.UUID{}, nil).Once(),
		repo.On("NextTicketNumber", ctx, "tenant-1").Return(17, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*kitchen.Ticket")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewIngestPrepareItemsCommandHandler(factory, nil)
	res, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.False(t, res.Duplicate)
	require.NotNil(t, res.Ticket)
	assert.Equal(t, 17, res.Ticket.TicketNumber())
	assert.Equal(t, kitchen.TicketStatusPending, res.Ticket.Status())
	assert.Equal(t, kitchen.PriorityUrgent, res.Ticket.Priority())
	assert.Nil(t, res.Ticket.Station())
	require.Len(t, res.Ticket.Items(), 2)
	assert.Equal(t, e.Items[0].ID, res.Ticket.Items()[0].SourceOrderItemID().String())
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestIngestPrepareItemsCommandHandler_Handle_RedeliveryIsDuplicate(t *testing.T) {
	ctx := t.Context()
	e := prepareItemsEvent(2)
	cmd, _ := commands.NewIngestPrepareItemsCommand(e)
	ticketed := make([]kernel.UUID, 0, len(e.Items))
	for _, item := range e.Items {
		id, _ := kernel.UUIDFromString(item.ID)
		ticketed = append(ticketed, id)
	}

	factory, uow, repo := ingestFixture(t)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TicketRepository").Return(repo).Once(),
		repo.On("TicketedSourceItems", ctx, mock.Anything).Return(ticketed, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewIngestPrepareItemsCommandHandler(factory, nil)
	res, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, res.Duplicate)
	assert.Nil(t, res.Ticket)
	repo.AssertNotCalled(t, "NextTicketNumber", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestIngestPrepareItemsCommandHandler_Handle_SkipsAlreadyTicketedItems(t *testing.T) {
	ctx := t.Context()
	e := prepareItemsEvent(3)
	cmd, _ := commands.NewIngestPrepareItemsCommand(e)
	first, _ := kernel.UUIDFromString(e.Items[0].ID)

	factory, uow, repo := ingestFixture(t)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TicketRepository").Return(repo).Once(),
		repo.On("TicketedSourceItems", ctx, mock.Anything).Return([]kernel.UUID{first}, nil).Once(),
		repo.On("NextTicketNumber", ctx, "tenant-1").Return(3, nil).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(t *kitchen.Ticket) bool {
			return len(t.Items()) == 2
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewIngestPrepareItemsCommandHandler(factory, nil)
	res, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, res.Ticket)
	for _, item := range res.Ticket.Items() {
		assert.False(t, item.SourceOrderItemID().IsEqual(first))
	}
}

func TestIngestPrepareItemsCommandHandler_Handle_LaterBatchGetsOwnTicket(t *testing.T) {
	ctx := t.Context()
	first := prepareItemsEvent(2)
	second := prepareItemsEvent(1)
	second.OrderID = first.OrderID
	cmd, err := commands.NewIngestPrepareItemsCommand(second)
	require.NoError(t, err)

	factory, uow, repo := ingestFixture(t)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TicketRepository").Return(repo).Once(),
		repo.On("TicketedSourceItems", ctx, mock.Anything).Return([]kernel.UUID{}, nil).Once(),
		repo.On("NextTicketNumber", ctx, "tenant-1").Return(8, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*kitchen.Ticket")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewIngestPrepareItemsCommandHandler(factory, nil)
	res, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, res.Ticket)
	assert.Equal(t, first.OrderID, res.Ticket.OrderID().String())
	assert.Equal(t, 8, res.Ticket.TicketNumber())
	require.Len(t, res.Ticket.Items(), 1)
	assert.Equal(t, second.Items[0].ID, res.Ticket.Items()[0].SourceOrderItemID().String())
	assert.NotEqual(t, first.Items[0].ID, res.Ticket.Items()[0].SourceOrderItemID().String())
	uow.AssertExpectations(t)
}

func TestIngestPrepareItemsCommandHandler_Handle_LostRaceIsDuplicate(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewIngestPrepareItemsCommand(prepareItemsEvent(1))

	factory, uow, repo := ingestFixture(t)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TicketRepository").Return(repo).Once(),
		repo.On("TicketedSourceItems", ctx, mock.Anything).Return(nil, nil).Once(),
		repo.On("NextTicketNumber", ctx, "tenant-1").Return(1, nil).Once(),
		repo.On("Add", ctx, mock.Anything).Return(fmt.Errorf("insert: %w", ports.ErrDuplicateTicketItem)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewIngestPrepareItemsCommandHandler(factory, nil)
	res, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, res.Duplicate)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewIngestPrepareItemsCommand_MalformedEvent(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(e *event.PrepareItems)
	}{
		{"missing order id", func(e *event.PrepareItems) { e.OrderID = "" }},
		{"order id not a uuid", func(e *event.PrepareItems) { e.OrderID = "order-1" }},
		{"no items", func(e *event.PrepareItems) { e.Items = nil }},
		{"zero quantity", func(e *event.PrepareItems) { e.Items[0].Quantity = 0 }},
		{"priority out of range", func(e *event.PrepareItems) { p := 9; e.Priority = &p }},
		{"missing tenant", func(e *event.PrepareItems) { e.TenantID = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := prepareItemsEvent(1)
			tc.mutate(&e)

			_, err := commands.NewIngestPrepareItemsCommand(e)

			require.Error(t, err)
			assert.True(t, errs.IsValidation(err), "malformed events are validation errors: %v", err)
		})
	}
}

func TestNewIngestPrepareItemsCommand_DefaultPriority(t *testing.T) {
	e := prepareItemsEvent(1)
	e.Priority = nil

	cmd, err := commands.NewIngestPrepareItemsCommand(e)

	require.NoError(t, err)
	assert.Equal(t, kitchen.PriorityNormal, cmd.Priority())
}
