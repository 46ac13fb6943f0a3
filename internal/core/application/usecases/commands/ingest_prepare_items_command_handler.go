package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/kitchen"
	"restaurant/internal/core/ports"
)

// IngestResult reports what an ingest did. Ticket is nil when Duplicate is set.
type IngestResult struct {
	Ticket    *kitchen.Ticket
	Duplicate bool
}

// IngestPrepareItemsCommandHandler creates one kitchen ticket per accepted
// batch. Redelivered events are recognised by their order item ids and
// produce no second ticket. A later batch for the same order, such as items
// added to an open tab, gets its own ticket and number; tickets already on
// the line are never extended.
type IngestPrepareItemsCommandHandler struct {
	uowFactory KitchenUoWFactory
	logger     *slog.Logger
}

func NewIngestPrepareItemsCommandHandler(uowFactory KitchenUoWFactory, logger *slog.Logger) IngestPrepareItemsCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return IngestPrepareItemsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "ingest-prepare-items"),
	}
}

func (h *IngestPrepareItemsCommandHandler) Handle(ctx context.Context, cmd IngestPrepareItemsCommand) (IngestResult, error) {
	if err := cmd.Validate(); err != nil {
		return IngestResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return IngestResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TicketRepository()

	pending, err := h.untracked(ctx, repo, cmd.Items())
	if err != nil {
		return IngestResult{}, err
	}
	if len(pending) == 0 {
		h.logger.Info("duplicate event, every item already ticketed",
			"eventId", cmd.EventID(),
			"orderId", cmd.OrderID().String(),
		)
		return IngestResult{Duplicate: true}, nil
	}

	items := make([]*kitchen.TicketItem, 0, len(pending))
	for _, in := range pending {
		item, err := kitchen.NewTicketItem(in.SourceOrderItemID, in.MenuItemID, in.Name, in.Quantity, in.Modifiers, in.Notes)
		if err != nil {
			return IngestResult{}, err
		}
		items = append(items, item)
	}

	number, err := repo.NextTicketNumber(ctx, cmd.TenantID())
	if err != nil {
		return IngestResult{}, fmt.Errorf("allocate ticket number: %w", err)
	}

	ticket, err := kitchen.NewTicket(cmd.TenantID(), cmd.OrderID(), cmd.TableID(), number, cmd.Priority(), items, time.Now())
	if err != nil {
		return IngestResult{}, err
	}

	if err = repo.Add(ctx, ticket); err != nil {
		if errors.Is(err, ports.ErrDuplicateTicketItem) {
			h.logger.Info("duplicate event, lost race to another consumer",
				"eventId", cmd.EventID(),
				"orderId", cmd.OrderID().String(),
			)
			return IngestResult{Duplicate: true}, nil
		}
		return IngestResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return IngestResult{}, err
	}

	h.logger.Info("kitchen ticket created",
		"ticketId", ticket.ID().String(),
		"ticketNumber", ticket.TicketNumber(),
		"orderId", cmd.OrderID().String(),
		"items", len(items),
	)
	return IngestResult{Ticket: ticket}, nil
}

func (h *IngestPrepareItemsCommandHandler) untracked(
	ctx context.Context,
	repo ports.TicketRepository,
	items []IngestItem,
) ([]IngestItem, error) {
	ids := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.SourceOrderItemID)
	}

	ticketed, err := repo.TicketedSourceItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(ticketed))
	for _, id := range ticketed {
		seen[id.String()] = struct{}{}
	}

	out := make([]IngestItem, 0, len(items))
	for _, item := range items {
		key := item.SourceOrderItemID.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out, nil
}
