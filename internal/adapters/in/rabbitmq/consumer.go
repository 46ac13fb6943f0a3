package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"restaurant/internal/core/application/delivery"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrDeliveriesClosed is returned by Run when the broker closes the channel.
var ErrDeliveriesClosed = errors.New("delivery channel closed by broker")

// Processor decides the outcome of one message. *delivery.Controller is the
// usual implementation.
type Processor interface {
	Process(ctx context.Context, env delivery.Envelope) delivery.Outcome
}

// ConsumerConfig describes one consumer loop. RetryExchange may be empty, in
// which case failed messages are requeued in place.
type ConsumerConfig struct {
	Queue         string
	RetryExchange string
	Prefetch      int
	Tag           string
}

// Consumer reads one queue sequentially with manual acknowledgements.
type Consumer struct {
	conn      *amqp.Connection
	cfg       ConsumerConfig
	processor Processor
	logger    *slog.Logger
}

func NewConsumer(conn *amqp.Connection, cfg ConsumerConfig, processor Processor, logger *slog.Logger) *Consumer {
	if cfg.Prefetch <= 0 {
		cfg.Prefetch = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{
		conn:      conn,
		cfg:       cfg,
		processor: processor,
		logger:    logger.With("component", "amqp-consumer", "queue", cfg.Queue),
	}
}

// Run blocks until ctx is cancelled (returning nil) or the broker closes the
// channel (returning ErrDeliveriesClosed).
func (c *Consumer) Run(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() {
		_ = ch.Close()
	}()

	if err = ch.Qos(c.cfg.Prefetch, 0, false); err != nil {
		return fmt.Errorf("set prefetch: %w", err)
	}

	deliveries, err := ch.ConsumeWithContext(ctx, c.cfg.Queue, c.cfg.Tag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.cfg.Queue, err)
	}

	settler := NewSettler(c.cfg.Queue, c.cfg.RetryExchange, ch)
	c.logger.InfoContext(ctx, "consumer started", "prefetch", c.cfg.Prefetch)

	for {
		select {
		case <-ctx.Done():
			c.logger.InfoContext(ctx, "consumer stopped")
			return nil
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return ErrDeliveriesClosed
			}
			c.handle(ctx, settler, d)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, settler Settler, d amqp.Delivery) {
	env := EnvelopeFromDelivery(c.cfg.Queue, d)
	outcome := c.processor.Process(ctx, env)

	if err := settler.Settle(ctx, d, outcome); err != nil {
		c.logger.ErrorContext(ctx, "failed to settle message",
			"message_id", d.MessageId,
			"outcome", outcome.String(),
			"error", err,
		)
	}
}

// EnvelopeFromDelivery copies the fields the delivery controller reads.
func EnvelopeFromDelivery(queue string, d amqp.Delivery) delivery.Envelope {
	return delivery.Envelope{
		Queue:      queue,
		MessageID:  d.MessageId,
		Type:       d.Type,
		Body:       d.Body,
		Headers:    map[string]interface{}(d.Headers),
		DeathCount: delivery.DeathCount(d.Headers),
	}
}
