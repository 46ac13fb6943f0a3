package queries

import (
	"errors"
	"strings"
	"time"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetKitchenStatsQueryIsNotConstructed = errors.New(
	"GetKitchenStatsQuery must be created via NewGetKitchenStatsQuery constructor",
)

// GetKitchenStatsQuery aggregates the tickets of a tenant created at or after
// since. A zero since covers every ticket.
type GetKitchenStatsQuery struct {
	tenantID string
	since    time.Time

	guard guard.ConstructorGuard
}

func NewGetKitchenStatsQuery(tenantID string, since time.Time) (GetKitchenStatsQuery, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return GetKitchenStatsQuery{}, errs.NewValueIsRequiredError("tenantId")
	}

	return GetKitchenStatsQuery{tenantID: tenantID, since: since, guard: guard.NewConstructorGuard()}, nil
}

func (q GetKitchenStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenStatsQueryIsNotConstructed)
}

func (q GetKitchenStatsQuery) TenantID() string {
	return q.tenantID
}

func (q GetKitchenStatsQuery) Since() time.Time {
	return q.since
}

// KitchenStatsResponse holds ticket counts per status name and the mean
// active preparation time, pauses excluded, of COMPLETED tickets.
type KitchenStatsResponse struct {
	TenantID                 string         `json:"tenantId"`
	Counts                   map[string]int `json:"counts"`
	Total                    int            `json:"total"`
	AverageActivePrepSeconds float64        `json:"averageActivePrepSeconds"`
}
