package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kitchen"

	"gorm.io/gorm"
)

type GetKitchenDisplayQueryHandler struct {
	db *gorm.DB
}

func NewGetKitchenDisplayQueryHandler(db *gorm.DB) GetKitchenDisplayQueryHandler {
	return GetKitchenDisplayQueryHandler{db: db}
}

func (h GetKitchenDisplayQueryHandler) Handle(ctx context.Context, query GetKitchenDisplayQuery) ([]TicketResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active := []int{
		int(kitchen.TicketStatusPending),
		int(kitchen.TicketStatusInProgress),
		int(kitchen.TicketStatusReady),
	}
	sqlQuery := `SELECT ` + ticketColumns + ` FROM kitchen_tickets WHERE tenant_id = ? AND status IN ?`
	args := []any{query.TenantID(), active}
	if query.Station() != "" {
		sqlQuery += ` AND station = ?`
		args = append(args, query.Station())
	}
	sqlQuery += ` ORDER BY priority DESC, ticket_number ASC`

	return queryTickets(ctx, h.db, sqlQuery, args...)
}
