package delivery_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"restaurant/internal/core/application/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeBroker replays a message until the controller stops requeueing it,
// incrementing the death count on every retry hop like the broker does.
func fakeBroker(t *testing.T, c *delivery.Controller, env delivery.Envelope) []delivery.Outcome {
	t.Helper()
	var outcomes []delivery.Outcome
	for attempt := 0; attempt < 100; attempt++ {
		outcome := c.Process(context.Background(), env)
		outcomes = append(outcomes, outcome)
		if outcome != delivery.Requeue {
			return outcomes
		}
		env.DeathCount++
	}
	t.Fatal("message never left the retry loop")
	return nil
}

func TestController_RetryEscalation(t *testing.T) {
	for _, n := range []int{0, 1, 3, 5} {
		t.Run(fmt.Sprintf("max retries %d", n), func(t *testing.T) {
			calls := 0
			c := delivery.NewController(delivery.RetryPolicy{MaxRetries: n}, func(context.Context, delivery.Envelope) error {
				calls++
				return errors.New("database unavailable")
			}, discardLogger())

			outcomes := fakeBroker(t, c, delivery.Envelope{Queue: "kitchen_queue", MessageID: "m-1"})

			require.Len(t, outcomes, n+1)
			for i := 0; i < n; i++ {
				assert.Equal(t, delivery.Requeue, outcomes[i], "attempt %d", i+1)
			}
			assert.Equal(t, delivery.DeadLetter, outcomes[n])
			assert.Equal(t, n+1, calls)
		})
	}
}

func TestController_RecoversAfterTransientFailure(t *testing.T) {
	calls := 0
	c := delivery.NewController(delivery.RetryPolicy{MaxRetries: 3}, func(context.Context, delivery.Envelope) error {
		calls++
		if calls < 3 {
			return errors.New("timeout")
		}
		return nil
	}, discardLogger())

	outcomes := fakeBroker(t, c, delivery.Envelope{Queue: "kitchen_queue"})

	assert.Equal(t, []delivery.Outcome{delivery.Requeue, delivery.Requeue, delivery.Ack}, outcomes)
}

func TestController_PermanentSkipsRetries(t *testing.T) {
	c := delivery.NewController(delivery.RetryPolicy{MaxRetries: 3}, func(context.Context, delivery.Envelope) error {
		return delivery.Permanent(errors.New("missing orderId"))
	}, discardLogger())

	outcomes := fakeBroker(t, c, delivery.Envelope{Queue: "kitchen_queue"})

	assert.Equal(t, []delivery.Outcome{delivery.DeadLetter}, outcomes)
}

func TestController_PanicIsTransient(t *testing.T) {
	c := delivery.NewController(delivery.RetryPolicy{MaxRetries: 1}, func(context.Context, delivery.Envelope) error {
		panic("nil map")
	}, nil)

	assert.Equal(t, delivery.Requeue, c.Process(context.Background(), delivery.Envelope{}))
	assert.Equal(t, delivery.DeadLetter, c.Process(context.Background(), delivery.Envelope{DeathCount: 1}))
	assert.Equal(t, 1, c.Policy().MaxRetries)
}
