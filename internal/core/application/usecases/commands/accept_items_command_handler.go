package commands

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/domain/model/event"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// AcceptItemsCommandHandler accepts order items and announces the accepted
// batch to the kitchen.
//
// The order change is committed before publishing. A failed publish never
// rolls the order back: the event is parked in the outbox and the relay job
// retries it.
type AcceptItemsCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.ItemsAcceptedPublisher
	exchange   string
	logger     *slog.Logger
}

func NewAcceptItemsCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.ItemsAcceptedPublisher,
	exchange string,
	logger *slog.Logger,
) AcceptItemsCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return AcceptItemsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		exchange:   exchange,
		logger:     logger.With("component", "accept-items"),
	}
}

func (h *AcceptItemsCommandHandler) Handle(ctx context.Context, cmd AcceptItemsCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var accepted []*order.Item
	o, err := mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		var err error
		accepted, err = o.AcceptItems(cmd.ItemIDs(), cmd.WaiterID(), now)
		return err
	})
	if err != nil {
		return nil, err
	}

	h.publish(ctx, event.NewPrepareItems(o, accepted, cmd.WaiterID(), time.Now()))
	return o, nil
}

func (h *AcceptItemsCommandHandler) publish(ctx context.Context, e event.PrepareItems) {
	err := h.publisher.PublishItemsAccepted(ctx, e)
	if err == nil {
		return
	}

	h.logger.Error("publish failed, storing event in outbox",
		"orderId", e.OrderID,
		"eventId", e.EventID,
		"error", err,
	)

	if storeErr := h.storeInOutbox(ctx, e, err); storeErr != nil {
		h.logger.Error("outbox write failed, event lost",
			"orderId", e.OrderID,
			"eventId", e.EventID,
			"error", storeErr,
		)
	}
}

func (h *AcceptItemsCommandHandler) storeInOutbox(ctx context.Context, e event.PrepareItems, cause error) error {
	payload, err := e.Encode()
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromString(e.EventID)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	msg := ports.OutboxMessage{
		ID:        id,
		EventType: event.PrepareItemsType,
		Exchange:  h.exchange,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
		LastError: cause.Error(),
	}
	if err = uow.OutboxRepository().Add(ctx, msg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
