package rabbitmq

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/application/delivery"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"
)

// DeadLetterProcessor stores every message of a dead-letter queue for
// post-mortem inspection and acknowledges it. Nothing is replayed. A message
// that cannot be stored is requeued after backoff, which holds the consumer
// (prefetch 1) so a failing store is not retried in a tight loop.
type DeadLetterProcessor struct {
	repo    ports.DeadLetterRepository
	backoff time.Duration
	logger  *slog.Logger
}

func NewDeadLetterProcessor(repo ports.DeadLetterRepository, backoff time.Duration, logger *slog.Logger) *DeadLetterProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeadLetterProcessor{
		repo:    repo,
		backoff: backoff,
		logger:  logger.With("component", "dead-letter-consumer"),
	}
}

func (p *DeadLetterProcessor) Process(ctx context.Context, env delivery.Envelope) delivery.Outcome {
	letter := ports.DeadLetter{
		ID:         kernel.NewUUID(),
		Queue:      env.Queue,
		MessageID:  env.MessageID,
		Payload:    env.Body,
		Headers:    env.Headers,
		DeathCount: env.DeathCount,
		ReceivedAt: time.Now().UTC(),
	}

	if err := p.repo.Add(ctx, letter); err != nil {
		p.logger.ErrorContext(ctx, "failed to record dead letter",
			"message_id", env.MessageID,
			"error", err,
			"backoff", p.backoff,
		)
		p.wait(ctx)
		return delivery.Requeue
	}

	p.logger.WarnContext(ctx, "dead letter recorded",
		"message_id", env.MessageID,
		"type", env.Type,
		"death_count", env.DeathCount,
		"dead_letter_id", letter.ID.String(),
	)
	return delivery.Ack
}

func (p *DeadLetterProcessor) wait(ctx context.Context) {
	if p.backoff <= 0 {
		return
	}
	timer := time.NewTimer(p.backoff)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
