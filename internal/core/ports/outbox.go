package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
)

// OutboxMessage is an event whose publication failed and awaits a retry by the relay.
type OutboxMessage struct {
	ID          kernel.UUID
	EventType   string
	Exchange    string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
	Attempts    int
	LastError   string
}

// OutboxRepository stores and drains outbox messages.
type OutboxRepository interface {
	Add(ctx context.Context, msg OutboxMessage) error

	// Pending returns up to limit unpublished messages, oldest first, locked so
	// that concurrent relays skip them.
	Pending(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error

	// MarkFailed increments the attempt count and records the error.
	MarkFailed(ctx context.Context, id kernel.UUID, reason string) error
}
