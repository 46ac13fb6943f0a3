package delivery_test

import (
	"errors"
	"fmt"
	"testing"

	"restaurant/internal/core/application/delivery"
	"restaurant/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	policy := delivery.RetryPolicy{MaxRetries: 3}
	transient := errors.New("connection refused")

	testCases := []struct {
		name       string
		deathCount int
		err        error
		want       delivery.Outcome
	}{
		{"success", 0, nil, delivery.Ack},
		{"success after retries", 3, nil, delivery.Ack},
		{"first failure", 0, transient, delivery.Requeue},
		{"last retry", 2, transient, delivery.Requeue},
		{"ceiling reached", 3, transient, delivery.DeadLetter},
		{"beyond ceiling", 7, transient, delivery.DeadLetter},
		{"permanent", 0, delivery.Permanent(transient), delivery.DeadLetter},
		{"wrapped permanent", 0, fmt.Errorf("ingest: %w", delivery.Permanent(transient)), delivery.DeadLetter},
		{"validation", 0, errs.NewValueIsRequiredError("orderId"), delivery.DeadLetter},
		{"domain error is retried", 0, errs.NewObjectNotFoundError("ticket", "x"), delivery.Requeue},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, delivery.Decide(policy, tc.deathCount, tc.err))
		})
	}
}

func TestDecide_ZeroRetries(t *testing.T) {
	assert.Equal(t, delivery.DeadLetter, delivery.Decide(delivery.RetryPolicy{}, 0, errors.New("boom")))
}

func TestNewRetryPolicy(t *testing.T) {
	p, err := delivery.NewRetryPolicy(5)
	require.NoError(t, err)
	assert.Equal(t, 5, p.MaxRetries)

	_, err = delivery.NewRetryPolicy(-1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPermanent(t *testing.T) {
	cause := errors.New("bad payload")

	err := delivery.Permanent(cause)

	require.ErrorIs(t, err, delivery.ErrPermanent)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, "bad payload", err.Error())
	assert.NoError(t, delivery.Permanent(nil))
	assert.False(t, delivery.IsPermanent(cause))
}

func TestDeathCount(t *testing.T) {
	testCases := []struct {
		name    string
		headers amqp.Table
		want    int
	}{
		{"nil headers", nil, 0},
		{"no x-death", amqp.Table{"x-other": "v"}, 0},
		{"malformed x-death", amqp.Table{"x-death": "oops"}, 0},
		{
			"single entry",
			amqp.Table{"x-death": []interface{}{amqp.Table{"count": int64(2), "queue": "kitchen_queue_retry"}}},
			2,
		},
		{
			"sums every entry",
			amqp.Table{"x-death": []interface{}{
				amqp.Table{"count": int64(2), "queue": "kitchen_queue_retry", "reason": "expired"},
				amqp.Table{"count": int64(1), "queue": "kitchen_queue", "reason": "rejected"},
			}},
			3,
		},
		{
			"plain maps and other int types",
			amqp.Table{"x-death": []interface{}{
				map[string]interface{}{"count": int32(1)},
				amqp.Table{"count": 4},
				"garbage",
			}},
			5,
		},
		{"retry header only", amqp.Table{delivery.RetryCountHeader: int64(3)}, 3},
		{
			"retry header ahead of a reset x-death",
			amqp.Table{
				delivery.RetryCountHeader: int64(4),
				"x-death":                 []interface{}{amqp.Table{"count": int64(1), "queue": "kitchen_queue_retry"}},
			},
			4,
		},
		{
			"x-death ahead of the retry header",
			amqp.Table{
				delivery.RetryCountHeader: int32(2),
				"x-death": []interface{}{
					amqp.Table{"count": int64(2), "queue": "kitchen_queue_retry"},
					amqp.Table{"count": int64(1), "queue": "kitchen_queue"},
				},
			},
			3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, delivery.DeathCount(tc.headers))
		})
	}
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "ack", delivery.Ack.String())
	assert.Equal(t, "requeue", delivery.Requeue.String())
	assert.Equal(t, "dead-letter", delivery.DeadLetter.String())
	assert.Equal(t, "unknown", delivery.Outcome(9).String())
}
