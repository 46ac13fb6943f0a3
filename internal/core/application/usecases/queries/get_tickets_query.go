package queries

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kitchen"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetTicketsQueryIsNotConstructed = errors.New(
	"GetTicketsQuery must be created via NewGetTicketsQuery constructor",
)

// TicketFilter narrows GetTicketsQuery. TenantID is required; other zero
// fields do not filter.
type TicketFilter struct {
	TenantID string
	Statuses []kitchen.TicketStatus
	Station  string
	OrderID  string
	Limit    int
	Offset   int
}

// GetTicketsQuery lists tickets newest first, terminal ones included.
type GetTicketsQuery struct {
	filter TicketFilter

	guard guard.ConstructorGuard
}

func NewGetTicketsQuery(filter TicketFilter) (GetTicketsQuery, error) {
	filter.TenantID = strings.TrimSpace(filter.TenantID)
	filter.Station = strings.TrimSpace(filter.Station)
	filter.OrderID = strings.TrimSpace(filter.OrderID)

	var validationErrs []error
	if filter.TenantID == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("tenantId"))
	}
	for _, s := range filter.Statuses {
		validationErrs = append(validationErrs, s.Validate())
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultPageSize
	}
	if filter.Limit < 0 || filter.Limit > MaxPageSize {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("limit", filter.Limit, 1, MaxPageSize))
	}
	if filter.Offset < 0 {
		validationErrs = append(validationErrs, errs.NewValueIsInvalidError("offset"))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return GetTicketsQuery{}, err
	}

	filter.Statuses = append([]kitchen.TicketStatus(nil), filter.Statuses...)
	return GetTicketsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTicketsQuery) Validate() error {
	return q.guard.Validate(ErrGetTicketsQueryIsNotConstructed)
}

func (q GetTicketsQuery) Filter() TicketFilter {
	f := q.filter
	f.Statuses = append([]kitchen.TicketStatus(nil), q.filter.Statuses...)
	return f
}
