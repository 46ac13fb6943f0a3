package ports

import (
	"context"

	"restaurant/internal/core/domain/model/event"
)

// ItemsAcceptedPublisher broadcasts accepted-item batches to every bound consumer.
// A nil error means the broker took the message, not that anyone processed it.
type ItemsAcceptedPublisher interface {
	PublishItemsAccepted(ctx context.Context, e event.PrepareItems) error
}

// OutboxPublisher republishes a stored outbox message as-is.
type OutboxPublisher interface {
	PublishOutbox(ctx context.Context, msg OutboxMessage) error
}
