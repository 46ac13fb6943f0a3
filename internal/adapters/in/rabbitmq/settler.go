package rabbitmq

import (
	"context"
	"fmt"

	"restaurant/internal/core/application/delivery"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RetryPublisher is the subset of *amqp.Channel used for the retry hop.
type RetryPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Settler applies an Outcome to a delivery.
//
//	Ack        -> basic.ack
//	Requeue    -> copy to the retry exchange, then basic.ack
//	DeadLetter -> basic.nack without requeue, routed to the dead-letter exchange
//
// With no retry exchange, or when the retry hop cannot be published, Requeue
// degrades to basic.nack with requeue so the message is never lost.
type Settler struct {
	queue         string
	retryExchange string
	publisher     RetryPublisher
}

func NewSettler(queue, retryExchange string, publisher RetryPublisher) Settler {
	return Settler{queue: queue, retryExchange: retryExchange, publisher: publisher}
}

func (s Settler) Settle(ctx context.Context, d amqp.Delivery, outcome delivery.Outcome) error {
	switch outcome {
	case delivery.Ack:
		return d.Ack(false)
	case delivery.Requeue:
		if s.retryExchange == "" || s.publisher == nil {
			return d.Nack(false, true)
		}
		if err := s.publisher.PublishWithContext(ctx, s.retryExchange, s.queue, false, false, retryCopy(d)); err != nil {
			if nackErr := d.Nack(false, true); nackErr != nil {
				return fmt.Errorf("retry hop failed (%v), requeue failed: %w", err, nackErr)
			}
			return fmt.Errorf("retry hop failed, message requeued: %w", err)
		}
		return d.Ack(false)
	case delivery.DeadLetter:
		return d.Nack(false, false)
	default:
		return fmt.Errorf("unknown outcome %d", outcome)
	}
}

// retryCopy keeps the headers so the broker can extend the existing x-death
// entries when the copy expires from the retry queue, and advances
// RetryCountHeader for brokers that do not.
func retryCopy(d amqp.Delivery) amqp.Publishing {
	headers := make(amqp.Table, len(d.Headers)+1)
	for k, v := range d.Headers {
		headers[k] = v
	}
	headers[delivery.RetryCountHeader] = int64(delivery.DeathCount(d.Headers) + 1)

	return amqp.Publishing{
		Headers:         headers,
		ContentType:     d.ContentType,
		ContentEncoding: d.ContentEncoding,
		DeliveryMode:    amqp.Persistent,
		CorrelationId:   d.CorrelationId,
		MessageId:       d.MessageId,
		Timestamp:       d.Timestamp,
		Type:            d.Type,
		AppId:           d.AppId,
		Body:            d.Body,
	}
}
