package queries

import (
	"errors"
	"strings"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetKitchenDisplayQueryIsNotConstructed = errors.New(
	"GetKitchenDisplayQuery must be created via NewGetKitchenDisplayQuery constructor",
)

// GetKitchenDisplayQuery reads the active tickets of a tenant (PENDING,
// IN_PROGRESS, READY) in the order cooks should work them: highest priority
// first, then oldest ticket number. An empty station shows every station.
type GetKitchenDisplayQuery struct {
	tenantID string
	station  string

	guard guard.ConstructorGuard
}

func NewGetKitchenDisplayQuery(tenantID, station string) (GetKitchenDisplayQuery, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return GetKitchenDisplayQuery{}, errs.NewValueIsRequiredError("tenantId")
	}

	return GetKitchenDisplayQuery{
		tenantID: tenantID,
		station:  strings.TrimSpace(station),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetKitchenDisplayQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenDisplayQueryIsNotConstructed)
}

func (q GetKitchenDisplayQuery) TenantID() string {
	return q.tenantID
}

func (q GetKitchenDisplayQuery) Station() string {
	return q.station
}
