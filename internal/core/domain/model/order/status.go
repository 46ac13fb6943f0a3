package order

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// Status is the order-level lifecycle state.
//
// Transitions:
//
//	PENDING ──> IN_PROGRESS ──> COMPLETED
//	   │             │
//	   └─────────────┴──> CANCELLED
//
// COMPLETED and CANCELLED are terminal.
type Status int

const (
	// StatusUnknown catches uninitialized values.
	StatusUnknown Status = iota
	// StatusPending: order placed, no item accepted yet.
	StatusPending
	// StatusInProgress: at least one item accepted and the tab is open.
	StatusInProgress
	// StatusCompleted: every item terminal and payment PAID.
	StatusCompleted
	// StatusCancelled: every item cancelled or rejected, or the order was cancelled.
	StatusCancelled
)

var statusNames = map[Status]string{
	StatusPending:    "PENDING",
	StatusInProgress: "IN_PROGRESS",
	StatusCompleted:  "COMPLETED",
	StatusCancelled:  "CANCELLED",
}

var statusTransitions = map[Status]map[Status]struct{}{
	StatusPending:    {StatusInProgress: {}, StatusCancelled: {}},
	StatusInProgress: {StatusCompleted: {}, StatusCancelled: {}},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// CanTransition reports whether the order-level table contains current -> next.
func CanTransition(current, next Status) bool {
	_, ok := statusTransitions[current][next]
	return ok
}

// ParseStatus converts the persisted or wire name of a status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Validate rejects StatusUnknown and values outside the enum.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// TransitionTo returns next if the order-level table allows it.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !CanTransition(s, next) {
		return s, errs.NewInvalidStatusTransitionError("order", s, next)
	}
	return next, nil
}
