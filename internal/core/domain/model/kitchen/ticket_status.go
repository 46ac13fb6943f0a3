package kitchen

import (
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"
)

// TicketStatus is the lifecycle state of a kitchen ticket.
type TicketStatus int

const (
	TicketStatusUnknown TicketStatus = iota
	TicketStatusPending
	TicketStatusInProgress
	TicketStatusReady
	TicketStatusCompleted
	TicketStatusCancelled
)

var ticketStatusNames = map[TicketStatus]string{
	TicketStatusPending:    "PENDING",
	TicketStatusInProgress: "IN_PROGRESS",
	TicketStatusReady:      "READY",
	TicketStatusCompleted:  "COMPLETED",
	TicketStatusCancelled:  "CANCELLED",
}

var ticketTransitions = map[TicketStatus]map[TicketStatus]struct{}{
	TicketStatusPending:    {TicketStatusInProgress: {}, TicketStatusCancelled: {}},
	TicketStatusInProgress: {TicketStatusReady: {}, TicketStatusCancelled: {}},
	TicketStatusReady:      {TicketStatusCompleted: {}, TicketStatusInProgress: {}, TicketStatusCancelled: {}},
	TicketStatusCompleted:  {},
	TicketStatusCancelled:  {},
}

// CanTransitionTicket reports whether the ticket table contains current -> next.
func CanTransitionTicket(current, next TicketStatus) bool {
	_, ok := ticketTransitions[current][next]
	return ok
}

// TicketStatuses lists every valid ticket status.
func TicketStatuses() []TicketStatus {
	return []TicketStatus{
		TicketStatusPending, TicketStatusInProgress, TicketStatusReady,
		TicketStatusCompleted, TicketStatusCancelled,
	}
}

func ParseTicketStatus(s string) (TicketStatus, error) {
	for status, name := range ticketStatusNames {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return TicketStatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid ticket status", s))
}

func (s TicketStatus) String() string {
	if name, ok := ticketStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s TicketStatus) Validate() error {
	if _, ok := ticketStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid ticket status", s))
	}
	return nil
}

func (s TicketStatus) IsTerminal() bool {
	return s == TicketStatusCompleted || s == TicketStatusCancelled
}

// IsActive reports whether the ticket belongs on the kitchen display.
func (s TicketStatus) IsActive() bool {
	return s == TicketStatusPending || s == TicketStatusInProgress || s == TicketStatusReady
}

func (s TicketStatus) TransitionTo(next TicketStatus) (TicketStatus, error) {
	if !CanTransitionTicket(s, next) {
		return s, errs.NewInvalidStatusTransitionError("kitchen ticket", s, next)
	}
	return next, nil
}
