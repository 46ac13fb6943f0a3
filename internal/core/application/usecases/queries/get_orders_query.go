package queries

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// OrderFilter narrows GetOrdersQuery. Zero fields do not filter.
type OrderFilter struct {
	TenantID string
	TableID  string
	Statuses []order.Status
	Limit    int
	Offset   int
}

// GetOrdersQuery lists orders newest first.
//
// Example:
//
//	query, _ := NewGetOrdersQuery(OrderFilter{TenantID: "tenant-1", Statuses: []order.Status{order.StatusPending}})
//	orders, err := NewGetOrdersQueryHandler(db).Handle(ctx, query)
type GetOrdersQuery struct {
	filter OrderFilter

	guard guard.ConstructorGuard
}

func NewGetOrdersQuery(filter OrderFilter) (GetOrdersQuery, error) {
	filter.TenantID = strings.TrimSpace(filter.TenantID)
	filter.TableID = strings.TrimSpace(filter.TableID)

	var validationErrs []error
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
		return GetOrdersQuery{}, err
	}

	filter.Statuses = append([]order.Status(nil), filter.Statuses...)
	return GetOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Filter() OrderFilter {
	f := q.filter
	f.Statuses = append([]order.Status(nil), q.filter.Statuses...)
	return f
}
