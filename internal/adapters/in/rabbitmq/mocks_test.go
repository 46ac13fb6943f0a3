package rabbitmq_test

import (
	"context"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/mock"
)

type MockAcknowledger struct {
	mock.Mock
}

func (m *MockAcknowledger) Ack(tag uint64, multiple bool) error {
	return m.Called(tag, multiple).Error(0)
}

func (m *MockAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	return m.Called(tag, multiple, requeue).Error(0)
}

func (m *MockAcknowledger) Reject(tag uint64, requeue bool) error {
	return m.Called(tag, requeue).Error(0)
}

type MockRetryPublisher struct {
	mock.Mock
}

func (m *MockRetryPublisher) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

type MockDeclarer struct {
	mock.Mock
}

func (m *MockDeclarer) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *MockDeclarer) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	ret := m.Called(name, durable, autoDelete, exclusive, noWait, args)
	return amqp.Queue{Name: name}, ret.Error(0)
}

func (m *MockDeclarer) QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error {
	return m.Called(name, key, exchange, noWait, args).Error(0)
}

type MockIngester struct {
	mock.Mock
}

func (m *MockIngester) Handle(ctx context.Context, cmd commands.IngestPrepareItemsCommand) (commands.IngestResult, error) {
	ret := m.Called(ctx, cmd)
	return ret.Get(0).(commands.IngestResult), ret.Error(1)
}

type MockDeadLetterRepository struct {
	mock.Mock
}

func (m *MockDeadLetterRepository) Add(ctx context.Context, letter ports.DeadLetter) error {
	return m.Called(ctx, letter).Error(0)
}

func (m *MockDeadLetterRepository) List(ctx context.Context, queue string, limit int) ([]ports.DeadLetter, error) {
	ret := m.Called(ctx, queue, limit)
	letters, _ := ret.Get(0).([]ports.DeadLetter)
	return letters, ret.Error(1)
}
