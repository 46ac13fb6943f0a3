package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kitchen"

	"gorm.io/gorm"
)

type GetKitchenStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetKitchenStatsQueryHandler(db *gorm.DB) GetKitchenStatsQueryHandler {
	return GetKitchenStatsQueryHandler{db: db}
}

func (h GetKitchenStatsQueryHandler) Handle(ctx context.Context, query GetKitchenStatsQuery) (KitchenStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return KitchenStatsResponse{}, err
	}

	resp := KitchenStatsResponse{TenantID: query.TenantID(), Counts: make(map[string]int)}
	for _, s := range kitchen.TicketStatuses() {
		resp.Counts[s.String()] = 0
	}

	db := h.db.WithContext(ctx)
	rows, err := db.Raw(`
		SELECT status, COUNT(*)
		FROM kitchen_tickets
		WHERE tenant_id = ? AND created_at >= ?
		GROUP BY status
	`, query.TenantID(), query.Since()).Rows()
	if err != nil {
		return KitchenStatsResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return KitchenStatsResponse{}, err
		}
		resp.Counts[kitchen.TicketStatus(status).String()] = count
		resp.Total += count
	}
	if err = rows.Err(); err != nil {
		return KitchenStatsResponse{}, err
	}

	var avg *float64
	err = db.Raw(`
		SELECT AVG(`+activeSecondsExpr+`)::float8
		FROM kitchen_tickets
		WHERE tenant_id = ? AND created_at >= ? AND status = ? AND started_at IS NOT NULL
	`, query.TenantID(), query.Since(), int(kitchen.TicketStatusCompleted)).Row().Scan(&avg)
	if err != nil {
		return KitchenStatsResponse{}, err
	}
	if avg != nil {
		resp.AverageActivePrepSeconds = *avg
	}

	return resp, nil
}
