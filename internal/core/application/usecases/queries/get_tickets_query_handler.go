package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetTicketsQueryHandler struct {
	db *gorm.DB
}

func NewGetTicketsQueryHandler(db *gorm.DB) GetTicketsQueryHandler {
	return GetTicketsQueryHandler{db: db}
}

func (h GetTicketsQueryHandler) Handle(ctx context.Context, query GetTicketsQuery) ([]TicketResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	filter := query.Filter()

	sqlQuery := `SELECT ` + ticketColumns + ` FROM kitchen_tickets WHERE tenant_id = ?`
	args := []any{filter.TenantID}
	if len(filter.Statuses) > 0 {
		statuses := make([]int, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, int(s))
		}
		sqlQuery += ` AND status IN ?`
		args = append(args, statuses)
	}
	if filter.Station != "" {
		sqlQuery += ` AND station = ?`
		args = append(args, filter.Station)
	}
	if filter.OrderID != "" {
		sqlQuery += ` AND order_id = ?`
		args = append(args, filter.OrderID)
	}
	sqlQuery += ` ORDER BY created_at DESC, ticket_number DESC LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Offset)

	return queryTickets(ctx, h.db, sqlQuery, args...)
}
