package kitchen

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// ItemStatus is the preparation state of a ticket item.
//
//	PENDING   -> PREPARING | CANCELLED
//	PREPARING -> READY | RECALLED | CANCELLED
//	READY     -> SERVED | RECALLED | CANCELLED
//	RECALLED  -> PREPARING | READY | CANCELLED
//
// SERVED and CANCELLED are terminal.
type ItemStatus int

const (
	ItemStatusUnknown ItemStatus = iota
	ItemStatusPending
	ItemStatusPreparing
	ItemStatusReady
	ItemStatusServed
	ItemStatusRecalled
	ItemStatusCancelled
)

var itemStatusNames = map[ItemStatus]string{
	ItemStatusPending:   "PENDING",
	ItemStatusPreparing: "PREPARING",
	ItemStatusReady:     "READY",
	ItemStatusServed:    "SERVED",
	ItemStatusRecalled:  "RECALLED",
	ItemStatusCancelled: "CANCELLED",
}

var itemTransitions = map[ItemStatus]map[ItemStatus]struct{}{
	ItemStatusPending:   {ItemStatusPreparing: {}, ItemStatusCancelled: {}},
	ItemStatusPreparing: {ItemStatusReady: {}, ItemStatusRecalled: {}, ItemStatusCancelled: {}},
	ItemStatusReady:     {ItemStatusServed: {}, ItemStatusRecalled: {}, ItemStatusCancelled: {}},
	ItemStatusRecalled:  {ItemStatusPreparing: {}, ItemStatusReady: {}, ItemStatusCancelled: {}},
	ItemStatusServed:    {},
	ItemStatusCancelled: {},
}

func CanTransitionItem(current, next ItemStatus) bool {
	_, ok := itemTransitions[current][next]
	return ok
}

func ItemStatuses() []ItemStatus {
	return []ItemStatus{
		ItemStatusPending, ItemStatusPreparing, ItemStatusReady,
		ItemStatusServed, ItemStatusRecalled, ItemStatusCancelled,
	}
}

func ParseItemStatus(s string) (ItemStatus, error) {
	for status, name := range itemStatusNames {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return ItemStatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid ticket item status", s))
}

func (s ItemStatus) String() string {
	if name, ok := itemStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s ItemStatus) Validate() error {
	if _, ok := itemStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid ticket item status", s))
	}
	return nil
}

func (s ItemStatus) IsTerminal() bool {
	return s == ItemStatusServed || s == ItemStatusCancelled
}

func (s ItemStatus) TransitionTo(next ItemStatus) (ItemStatus, error) {
	if !CanTransitionItem(s, next) {
		return s, errs.NewInvalidStatusTransitionError("kitchen ticket item", s, next)
	}
	return next, nil
}
