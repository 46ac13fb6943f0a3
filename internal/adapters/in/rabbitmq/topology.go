// Package rabbitmq consumes broker queues and turns delivery outcomes into
// acknowledgements, retry hops and dead letters.
//
// For a base queue q bound to a fanout exchange the topology is:
//
//	exchange         -> q
//	q (rejected)     -> q_dlx_exchange   -> q_dlq
//	q (retry hop)    -> q_retry_exchange -> q_retry
//	q_retry (ttl)    -> default exchange -> q
//
// Every expiry in q_retry adds to the x-death count the consumer reads.
package rabbitmq

import (
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Topology derives every broker object from the base queue name.
type Topology struct {
	Exchange   string
	Queue      string
	RetryDelay time.Duration
}

func NewTopology(exchange, queue string, retryDelay time.Duration) (Topology, error) {
	var validationErrs []error
	if exchange == "" {
		validationErrs = append(validationErrs, errors.New("exchange name is required"))
	}
	if queue == "" {
		validationErrs = append(validationErrs, errors.New("queue name is required"))
	}
	if retryDelay <= 0 {
		validationErrs = append(validationErrs, fmt.Errorf("retry delay must be positive, got %s", retryDelay))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return Topology{}, err
	}
	return Topology{Exchange: exchange, Queue: queue, RetryDelay: retryDelay}, nil
}

func (t Topology) DeadLetterExchange() string {
	return t.Queue + "_dlx_exchange"
}

func (t Topology) DeadLetterQueue() string {
	return t.Queue + "_dlq"
}

func (t Topology) RetryExchange() string {
	return t.Queue + "_retry_exchange"
}

func (t Topology) RetryQueue() string {
	return t.Queue + "_retry"
}

// Declarer is the subset of *amqp.Channel used to declare the topology.
type Declarer interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
}

// Declare creates every exchange, queue and binding. It is idempotent as long
// as existing objects were declared with the same arguments.
func (t Topology) Declare(ch Declarer) error {
	exchanges := []struct {
		name string
		kind string
	}{
		{t.Exchange, amqp.ExchangeFanout},
		{t.DeadLetterExchange(), amqp.ExchangeDirect},
		{t.RetryExchange(), amqp.ExchangeDirect},
	}
	for _, ex := range exchanges {
		if err := ch.ExchangeDeclare(ex.name, ex.kind, true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare exchange %s: %w", ex.name, err)
		}
	}

	queues := []struct {
		name     string
		args     amqp.Table
		exchange string
		key      string
	}{
		{
			name: t.Queue,
			args: amqp.Table{
				"x-dead-letter-exchange":    t.DeadLetterExchange(),
				"x-dead-letter-routing-key": t.DeadLetterQueue(),
			},
			exchange: t.Exchange,
			key:      "",
		},
		{
			name:     t.DeadLetterQueue(),
			exchange: t.DeadLetterExchange(),
			key:      t.DeadLetterQueue(),
		},
		{
			name: t.RetryQueue(),
			args: amqp.Table{
				"x-message-ttl":             t.RetryDelay.Milliseconds(),
				"x-dead-letter-exchange":    "",
				"x-dead-letter-routing-key": t.Queue,
			},
			exchange: t.RetryExchange(),
			key:      t.Queue,
		},
	}
	for _, q := range queues {
		if _, err := ch.QueueDeclare(q.name, true, false, false, false, q.args); err != nil {
			return fmt.Errorf("declare queue %s: %w", q.name, err)
		}
		if err := ch.QueueBind(q.name, q.key, q.exchange, false, nil); err != nil {
			return fmt.Errorf("bind queue %s to %s: %w", q.name, q.exchange, err)
		}
	}
	return nil
}
