package order

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// ItemStatus is the lifecycle state of a single order item.
//
// Transitions:
//
//	PENDING   -> ACCEPTED | REJECTED | CANCELLED
//	ACCEPTED  -> PREPARING | CANCELLED
//	PREPARING -> READY | CANCELLED
//	READY     -> SERVED | CANCELLED
//
// SERVED, REJECTED and CANCELLED are terminal.
type ItemStatus int

const (
	ItemStatusUnknown ItemStatus = iota
	ItemStatusPending
	ItemStatusAccepted
	ItemStatusPreparing
	ItemStatusReady
	ItemStatusServed
	ItemStatusRejected
	ItemStatusCancelled
)

var itemStatusNames = map[ItemStatus]string{
	ItemStatusPending:   "PENDING",
	ItemStatusAccepted:  "ACCEPTED",
	ItemStatusPreparing: "PREPARING",
	ItemStatusReady:     "READY",
	ItemStatusServed:    "SERVED",
	ItemStatusRejected:  "REJECTED",
	ItemStatusCancelled: "CANCELLED",
}

var itemStatusTransitions = map[ItemStatus]map[ItemStatus]struct{}{
	ItemStatusPending:   {ItemStatusAccepted: {}, ItemStatusRejected: {}, ItemStatusCancelled: {}},
	ItemStatusAccepted:  {ItemStatusPreparing: {}, ItemStatusCancelled: {}},
	ItemStatusPreparing: {ItemStatusReady: {}, ItemStatusCancelled: {}},
	ItemStatusReady:     {ItemStatusServed: {}, ItemStatusCancelled: {}},
	ItemStatusServed:    {},
	ItemStatusRejected:  {},
	ItemStatusCancelled: {},
}

// CanTransitionItem reports whether the item-level table contains current -> next.
func CanTransitionItem(current, next ItemStatus) bool {
	_, ok := itemStatusTransitions[current][next]
	return ok
}

// ItemStatuses lists every valid item status in workflow order.
func ItemStatuses() []ItemStatus {
	return []ItemStatus{
		ItemStatusPending, ItemStatusAccepted, ItemStatusPreparing, ItemStatusReady,
		ItemStatusServed, ItemStatusRejected, ItemStatusCancelled,
	}
}

func ParseItemStatus(s string) (ItemStatus, error) {
	for status, name := range itemStatusNames {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return ItemStatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order item status", s))
}

func (s ItemStatus) String() string {
	if name, ok := itemStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s ItemStatus) Validate() error {
	if _, ok := itemStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order item status", s))
	}
	return nil
}

func (s ItemStatus) IsTerminal() bool {
	return s == ItemStatusServed || s == ItemStatusRejected || s == ItemStatusCancelled
}

// IsVoid reports whether the item no longer counts toward the order total.
func (s ItemStatus) IsVoid() bool {
	return s == ItemStatusRejected || s == ItemStatusCancelled
}

// TransitionTo returns next if the item-level table allows it.
func (s ItemStatus) TransitionTo(next ItemStatus) (ItemStatus, error) {
	if !CanTransitionItem(s, next) {
		return s, errs.NewInvalidStatusTransitionError("order item", s, next)
	}
	return next, nil
}
