package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
)

// DeadLetter is the post-mortem record of a message that exhausted its retries.
type DeadLetter struct {
	ID         kernel.UUID
	Queue      string
	MessageID  string
	Payload    []byte
	Headers    map[string]any
	DeathCount int
	ReceivedAt time.Time
}

type DeadLetterRepository interface {
	Add(ctx context.Context, letter DeadLetter) error
	List(ctx context.Context, queue string, limit int) ([]DeadLetter, error)
}
