package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/kitchen"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TicketResponse is the read view of a kitchen ticket.
type TicketResponse struct {
	ID                 kernel.UUID          `json:"id"`
	TenantID           string               `json:"tenantId"`
	OrderID            kernel.UUID          `json:"orderId"`
	TableID            string               `json:"tableId"`
	TicketNumber       int                  `json:"ticketNumber"`
	Status             string               `json:"status"`
	Priority           int                  `json:"priority"`
	CookID             *string              `json:"cookId,omitempty"`
	Station            *string              `json:"station,omitempty"`
	StartedAt          *time.Time           `json:"startedAt,omitempty"`
	CompletedAt        *time.Time           `json:"completedAt,omitempty"`
	CancellationReason string               `json:"cancellationReason,omitempty"`
	Paused             bool                 `json:"paused"`
	ActiveSeconds      int64                `json:"activeSeconds"`
	CreatedAt          time.Time            `json:"createdAt"`
	Items              []TicketItemResponse `json:"items"`
}

type TicketItemResponse struct {
	ID                kernel.UUID `json:"id"`
	SourceOrderItemID kernel.UUID `json:"sourceOrderItemId"`
	MenuItemID        string      `json:"menuItemId"`
	Name              string      `json:"name"`
	Quantity          int         `json:"quantity"`
	Modifiers         []string    `json:"modifiers"`
	Notes             string      `json:"notes,omitempty"`
	Status            string      `json:"status"`
	RecallReason      string      `json:"recallReason,omitempty"`
	RecallCount       int         `json:"recallCount"`
}

// TicketResponseFromDomain renders an aggregate as it would be read back at now.
func TicketResponseFromDomain(t *kitchen.Ticket, now time.Time) TicketResponse {
	items := make([]TicketItemResponse, 0, len(t.Items()))
	for _, item := range t.Items() {
		items = append(items, TicketItemResponse{
			ID:                item.ID(),
			SourceOrderItemID: item.SourceOrderItemID(),
			MenuItemID:        item.MenuItemID(),
			Name:              item.Name(),
			Quantity:          item.Quantity(),
			Modifiers:         nonNil(item.Modifiers()),
			Notes:             item.Notes(),
			Status:            item.Status().String(),
			RecallReason:      item.RecallReason(),
			RecallCount:       item.RecallCount(),
		})
	}

	return TicketResponse{
		ID:                 t.ID(),
		TenantID:           t.TenantID(),
		OrderID:            t.OrderID(),
		TableID:            t.TableID(),
		TicketNumber:       t.TicketNumber(),
		Status:             t.Status().String(),
		Priority:           int(t.Priority()),
		CookID:             t.CookID(),
		Station:            t.Station(),
		StartedAt:          t.StartedAt(),
		CompletedAt:        t.CompletedAt(),
		CancellationReason: t.CancellationReason(),
		Paused:             t.IsPaused(),
		ActiveSeconds:      int64(t.ActiveDuration(now) / time.Second),
		CreatedAt:          t.CreatedAt(),
		Items:              items,
	}
}

// activeSecondsExpr mirrors kitchen.Ticket.ActiveDuration in SQL, measured at
// the transaction timestamp.
const activeSecondsExpr = `
	CASE WHEN started_at IS NULL THEN 0 ELSE GREATEST(0,
		EXTRACT(EPOCH FROM (COALESCE(completed_at, cancelled_at, now()) - started_at))
		- accumulated_pause_seconds
		- CASE WHEN paused_at IS NULL THEN 0
			ELSE GREATEST(0, EXTRACT(EPOCH FROM (COALESCE(completed_at, cancelled_at, now()) - paused_at)))
		END
	) END`

const ticketColumns = `
	id, tenant_id, order_id, table_id, ticket_number, status, priority, cook_id, station,
	started_at, completed_at, cancellation_reason, paused_at IS NOT NULL, created_at,
	FLOOR(` + activeSecondsExpr + `)::bigint`

func scanTicket(row rowScanner) (TicketResponse, error) {
	var (
		resp        TicketResponse
		id, orderID uuid.UUID
		status      int
	)

	if err := row.Scan(
		&id, &resp.TenantID, &orderID, &resp.TableID, &resp.TicketNumber, &status, &resp.Priority,
		&resp.CookID, &resp.Station, &resp.StartedAt, &resp.CompletedAt, &resp.CancellationReason,
		&resp.Paused, &resp.CreatedAt, &resp.ActiveSeconds,
	); err != nil {
		return TicketResponse{}, err
	}

	var err error
	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return TicketResponse{}, err
	}
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return TicketResponse{}, err
	}
	resp.Status = kitchen.TicketStatus(status).String()
	resp.Items = make([]TicketItemResponse, 0)
	return resp, nil
}

func queryTickets(ctx context.Context, db *gorm.DB, sqlQuery string, args ...any) ([]TicketResponse, error) {
	rows, err := db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]TicketResponse, 0)
	for rows.Next() {
		t, scanErr := scanTicket(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		tickets = append(tickets, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachTicketItems(ctx, db, tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func attachTicketItems(ctx context.Context, db *gorm.DB, tickets []TicketResponse) error {
	if len(tickets) == 0 {
		return nil
	}

	ids := make([]string, 0, len(tickets))
	index := make(map[kernel.UUID]int, len(tickets))
	for i, t := range tickets {
		ids = append(ids, t.ID.String())
		index[t.ID] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			ticket_id, id, source_order_item_id, menu_item_id, name, quantity,
			modifiers, notes, status, recall_reason, recall_count
		FROM kitchen_ticket_items
		WHERE ticket_id IN ?
		ORDER BY ticket_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item                     TicketItemResponse
			ticketID, itemID, source uuid.UUID
			modifiers                pq.StringArray
			status                   int
		)
		if err = rows.Scan(
			&ticketID, &itemID, &source, &item.MenuItemID, &item.Name, &item.Quantity,
			&modifiers, &item.Notes, &status, &item.RecallReason, &item.RecallCount,
		); err != nil {
			return err
		}

		if item.ID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return err
		}
		if item.SourceOrderItemID, err = kernel.UUIDFromBytes(source[:]); err != nil {
			return err
		}
		item.Modifiers = nonNil(modifiers)
		item.Status = kitchen.ItemStatus(status).String()

		owner, idErr := kernel.UUIDFromBytes(ticketID[:])
		if idErr != nil {
			return idErr
		}
		if i, ok := index[owner]; ok {
			tickets[i].Items = append(tickets[i].Items, item)
		}
	}

	return rows.Err()
}
