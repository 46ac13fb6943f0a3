package delivery

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrPermanent marks a failure that no retry can fix.
var ErrPermanent = errors.New("permanent failure")

type permanentError struct {
	err error
}

func (e *permanentError) Error() string {
	return e.err.Error()
}

func (e *permanentError) Unwrap() []error {
	return []error{ErrPermanent, e.err}
}

// Permanent marks err as not retryable. Permanent(nil) is nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err should skip retries: explicitly marked
// permanent, or a validation-class error.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrPermanent) || errs.IsValidation(err)
}

// RetryPolicy bounds how many times a failing message is redelivered.
type RetryPolicy struct {
	MaxRetries int
}

func NewRetryPolicy(maxRetries int) (RetryPolicy, error) {
	if maxRetries < 0 {
		return RetryPolicy{}, errs.NewValueIsInvalidErrorWithCause("maxRetries", fmt.Errorf("%d is negative", maxRetries))
	}
	return RetryPolicy{MaxRetries: maxRetries}, nil
}

// Decide maps a handler result to an Outcome. deathCount is the number of
// times the broker has already dead-lettered the message.
//
// With MaxRetries = N a handler that always fails is requeued N times and
// dead-lettered on attempt N+1.
func Decide(policy RetryPolicy, deathCount int, handlerErr error) Outcome {
	switch {
	case handlerErr == nil:
		return Ack
	case IsPermanent(handlerErr):
		return DeadLetter
	case deathCount < policy.MaxRetries:
		return Requeue
	default:
		return DeadLetter
	}
}

// RetryCountHeader carries the number of retry hops a message has taken. It
// is written by the consumer on every hop, so the count keeps growing on
// brokers that drop or reset client-supplied x-death headers.
const RetryCountHeader = "x-retry-count"

// DeathCount is the larger of the summed x-death counts and RetryCountHeader.
// Absent or malformed headers count as zero.
func DeathCount(headers amqp.Table) int {
	return max(brokerDeaths(headers), toInt(headers[RetryCountHeader]))
}

// brokerDeaths sums the count field of every x-death entry.
func brokerDeaths(headers amqp.Table) int {
	raw, ok := headers["x-death"]
	if !ok {
		return 0
	}
	entries, ok := raw.([]interface{})
	if !ok {
		return 0
	}

	total := 0
	for _, entry := range entries {
		var fields map[string]interface{}
		switch e := entry.(type) {
		case amqp.Table:
			fields = e
		case map[string]interface{}:
			fields = e
		default:
			continue
		}
		total += toInt(fields["count"])
	}
	return total
}

func toInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
