package commands

import (
	"context"
	"fmt"
	"time"

	"restaurant/internal/core/ports"
)

// RelayResult counts the outcome of one relay pass.
type RelayResult struct {
	Published int
	Failed    int
}

// RelayOutboxCommandHandler drains the outbox. Messages stay locked for the
// duration of the pass so concurrent relays in other instances skip them.
// A failed publish is recorded on the message and retried on the next pass.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.OutboxPublisher
}

func NewRelayOutboxCommandHandler(uowFactory OutboxUoWFactory, publisher ports.OutboxPublisher) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

func (h *RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (RelayResult, error) {
	if err := cmd.Validate(); err != nil {
		return RelayResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RelayResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()
	pending, err := repo.Pending(ctx, cmd.BatchSize())
	if err != nil {
		return RelayResult{}, err
	}

	var res RelayResult
	for _, msg := range pending {
		if pubErr := h.publisher.PublishOutbox(ctx, msg); pubErr != nil {
			if err = repo.MarkFailed(ctx, msg.ID, pubErr.Error()); err != nil {
				return RelayResult{}, fmt.Errorf("mark outbox message %s failed: %w", msg.ID, err)
			}
			res.Failed++
			continue
		}

		if err = repo.MarkPublished(ctx, msg.ID, time.Now().UTC()); err != nil {
			return RelayResult{}, fmt.Errorf("mark outbox message %s published: %w", msg.ID, err)
		}
		res.Published++
	}

	if err = uow.Commit(ctx); err != nil {
		return RelayResult{}, err
	}

	return res, nil
}
