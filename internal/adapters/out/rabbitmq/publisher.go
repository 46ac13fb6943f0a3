// Package rabbitmq publishes order events to RabbitMQ.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"restaurant/internal/core/domain/model/event"
	"restaurant/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrNotConfirmed is returned when the broker nacks a published message.
var ErrNotConfirmed = errors.New("broker did not confirm the message")

// Publisher sends accepted-item events to a durable fanout exchange with
// publisher confirms. The channel is reopened after the broker closes it.
type Publisher struct {
	conn     *amqp.Connection
	exchange string

	mu sync.Mutex
	ch *amqp.Channel
}

var (
	_ ports.ItemsAcceptedPublisher = (*Publisher)(nil)
	_ ports.OutboxPublisher        = (*Publisher)(nil)
)

// NewPublisher declares exchange as a durable fanout exchange.
func NewPublisher(conn *amqp.Connection, exchange string) (*Publisher, error) {
	if exchange == "" {
		return nil, errors.New("exchange name is required")
	}

	p := &Publisher{conn: conn, exchange: exchange}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := p.channel(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) PublishItemsAccepted(ctx context.Context, e event.PrepareItems) error {
	body, err := e.Encode()
	if err != nil {
		return fmt.Errorf("encode %s: %w", event.PrepareItemsType, err)
	}
	return p.publish(ctx, p.exchange, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    e.EventID,
		Type:         event.PrepareItemsType,
		Timestamp:    e.OccurredAt,
		Body:         body,
	})
}

// PublishOutbox republishes a parked message with its original id, so
// consumers see the same message id as the failed attempt would have carried.
func (p *Publisher) PublishOutbox(ctx context.Context, msg ports.OutboxMessage) error {
	exchange := msg.Exchange
	if exchange == "" {
		exchange = p.exchange
	}
	return p.publish(ctx, exchange, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID.String(),
		Type:         msg.EventType,
		Timestamp:    msg.CreatedAt,
		Body:         msg.Payload,
	})
}

// Close closes the publishing channel. The connection is owned by the caller.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil || p.ch.IsClosed() {
		return nil
	}
	return p.ch.Close()
}

func (p *Publisher) publish(ctx context.Context, exchange string, msg amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	confirm, err := ch.PublishWithDeferredConfirmWithContext(ctx, exchange, "", false, false, msg)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", exchange, err)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("wait for confirm from %s: %w", exchange, err)
	}
	if !acked {
		return fmt.Errorf("publish to %s: %w", exchange, ErrNotConfirmed)
	}
	return nil
}

// channel must be called with mu held.
func (p *Publisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err = ch.ExchangeDeclare(p.exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}
	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("enable confirms: %w", err)
	}

	p.ch = ch
	return ch, nil
}
