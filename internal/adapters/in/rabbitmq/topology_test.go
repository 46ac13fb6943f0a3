package rabbitmq_test

import (
	"errors"
	"testing"
	"time"

	"restaurant/internal/adapters/in/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTopology_Names(t *testing.T) {
	topo, err := rabbitmq.NewTopology("order_items_accepted", "kitchen_queue", 5*time.Second)
	require.NoError(t, err)

	assert.Equal(t, "kitchen_queue_dlx_exchange", topo.DeadLetterExchange())
	assert.Equal(t, "kitchen_queue_dlq", topo.DeadLetterQueue())
	assert.Equal(t, "kitchen_queue_retry_exchange", topo.RetryExchange())
	assert.Equal(t, "kitchen_queue_retry", topo.RetryQueue())
}

func TestNewTopology_Validation(t *testing.T) {
	_, err := rabbitmq.NewTopology("", "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exchange name is required")
	assert.Contains(t, err.Error(), "queue name is required")
	assert.Contains(t, err.Error(), "retry delay must be positive")
}

func TestTopology_Declare(t *testing.T) {
	topo, err := rabbitmq.NewTopology("order_items_accepted", "kitchen_queue", 5*time.Second)
	require.NoError(t, err)

	ch := new(MockDeclarer)
	ch.On("ExchangeDeclare", "order_items_accepted", amqp.ExchangeFanout, true, false, false, false, amqp.Table(nil)).Return(nil)
	ch.On("ExchangeDeclare", "kitchen_queue_dlx_exchange", amqp.ExchangeDirect, true, false, false, false, amqp.Table(nil)).Return(nil)
	ch.On("ExchangeDeclare", "kitchen_queue_retry_exchange", amqp.ExchangeDirect, true, false, false, false, amqp.Table(nil)).Return(nil)

	ch.On("QueueDeclare", "kitchen_queue", true, false, false, false, amqp.Table{
		"x-dead-letter-exchange":    "kitchen_queue_dlx_exchange",
		"x-dead-letter-routing-key": "kitchen_queue_dlq",
	}).Return(nil)
	ch.On("QueueDeclare", "kitchen_queue_dlq", true, false, false, false, amqp.Table(nil)).Return(nil)
	ch.On("QueueDeclare", "kitchen_queue_retry", true, false, false, false, amqp.Table{
		"x-message-ttl":             int64(5000),
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": "kitchen_queue",
	}).Return(nil)

	ch.On("QueueBind", "kitchen_queue", "", "order_items_accepted", false, amqp.Table(nil)).Return(nil)
	ch.On("QueueBind", "kitchen_queue_dlq", "kitchen_queue_dlq", "kitchen_queue_dlx_exchange", false, amqp.Table(nil)).Return(nil)
	ch.On("QueueBind", "kitchen_queue_retry", "kitchen_queue", "kitchen_queue_retry_exchange", false, amqp.Table(nil)).Return(nil)

	require.NoError(t, topo.Declare(ch))
	ch.AssertExpectations(t)
}

func TestTopology_DeclareStopsOnError(t *testing.T) {
	topo, err := rabbitmq.NewTopology("order_items_accepted", "kitchen_queue", time.Second)
	require.NoError(t, err)

	ch := new(MockDeclarer)
	ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("access refused"))

	err = topo.Declare(ch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declare exchange order_items_accepted")
	ch.AssertNotCalled(t, "QueueDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
