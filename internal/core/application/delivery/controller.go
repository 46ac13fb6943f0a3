package delivery

import (
	"context"
	"fmt"
	"log/slog"
)

// Envelope is one consumed message with the broker metadata the controller needs.
type Envelope struct {
	Queue      string
	MessageID  string
	Type       string
	Body       []byte
	Headers    map[string]interface{}
	DeathCount int
}

// Handler processes one message. Returning nil acknowledges it.
type Handler func(ctx context.Context, env Envelope) error

// Controller wraps a Handler with the retry policy.
type Controller struct {
	policy  RetryPolicy
	handler Handler
	logger  *slog.Logger
}

func NewController(policy RetryPolicy, handler Handler, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		policy:  policy,
		handler: handler,
		logger:  logger.With("component", "delivery-controller"),
	}
}

func (c *Controller) Policy() RetryPolicy {
	return c.policy
}

// Process runs the handler and decides the outcome. A panicking handler is a
// transient failure.
func (c *Controller) Process(ctx context.Context, env Envelope) Outcome {
	err := c.run(ctx, env)
	outcome := Decide(c.policy, env.DeathCount, err)

	attrs := []any{
		"queue", env.Queue,
		"message_id", env.MessageID,
		"death_count", env.DeathCount,
		"max_retries", c.policy.MaxRetries,
		"outcome", outcome.String(),
	}
	switch outcome {
	case Ack:
		c.logger.DebugContext(ctx, "message processed", attrs...)
	case Requeue:
		c.logger.WarnContext(ctx, "message failed, scheduling retry", append(attrs, "error", err)...)
	case DeadLetter:
		c.logger.ErrorContext(ctx, "message dead-lettered",
			append(attrs, "error", err, "permanent", IsPermanent(err))...)
	}
	return outcome
}

func (c *Controller) run(ctx context.Context, env Envelope) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return c.handler(ctx, env)
}
