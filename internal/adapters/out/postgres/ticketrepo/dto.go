// Package ticketrepo persists kitchen tickets, their items and the per-tenant
// ticket number counters.
package ticketrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/kitchen"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SourceOrderItemIndex is the unique index that makes ticket ingestion idempotent.
const SourceOrderItemIndex = "ux_kitchen_ticket_items_source_order_item"

type TicketDTO struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID                string    `gorm:"type:varchar(64);not null;uniqueIndex:ux_kitchen_tickets_tenant_number"`
	OrderID                 uuid.UUID `gorm:"type:uuid;not null;index"`
	TableID                 string    `gorm:"type:varchar(64)"`
	TicketNumber            int       `gorm:"not null;uniqueIndex:ux_kitchen_tickets_tenant_number"`
	Status                  int       `gorm:"type:smallint;not null;index"`
	Priority                int       `gorm:"type:smallint;not null"`
	CookID                  *string   `gorm:"type:varchar(64)"`
	Station                 *string   `gorm:"type:varchar(64);index"`
	StartedAt               *time.Time
	PausedAt                *time.Time
	AccumulatedPauseSeconds int64 `gorm:"not null;default:0"`
	CompletedAt             *time.Time
	CancelledAt             *time.Time
	CancellationReason      string          `gorm:"type:text"`
	CreatedAt               time.Time       `gorm:"not null"`
	Items                   []TicketItemDTO `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
}

func (TicketDTO) TableName() string {
	return "kitchen_tickets"
}

type TicketItemDTO struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TicketID           uuid.UUID      `gorm:"type:uuid;not null;index"`
	Position           int            `gorm:"not null"`
	SourceOrderItemID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:ux_kitchen_ticket_items_source_order_item"`
	MenuItemID         string         `gorm:"type:varchar(64);not null"`
	Name               string         `gorm:"type:varchar(255);not null"`
	Quantity           int            `gorm:"not null"`
	Modifiers          pq.StringArray `gorm:"type:text[]"`
	Notes              string         `gorm:"type:text"`
	Status             int            `gorm:"type:smallint;not null"`
	RecallReason       string         `gorm:"type:text"`
	RecallCount        int            `gorm:"not null;default:0"`
	CancellationReason string         `gorm:"type:text"`
	StartedAt          *time.Time
	ReadyAt            *time.Time
}

func (TicketItemDTO) TableName() string {
	return "kitchen_ticket_items"
}

// CounterDTO holds the last ticket number handed out for a tenant.
type CounterDTO struct {
	TenantID   string `gorm:"type:varchar(64);primaryKey"`
	LastNumber int    `gorm:"not null"`
}

func (CounterDTO) TableName() string {
	return "kitchen_ticket_counters"
}

func fromDomain(t *kitchen.Ticket) TicketDTO {
	ticketID := t.ID().Bytes()
	items := make([]TicketItemDTO, 0, len(t.Items()))
	for i, item := range t.Items() {
		items = append(items, TicketItemDTO{
			ID:                 item.ID().Bytes(),
			TicketID:           ticketID,
			Position:           i,
			SourceOrderItemID:  item.SourceOrderItemID().Bytes(),
			MenuItemID:         item.MenuItemID(),
			Name:               item.Name(),
			Quantity:           item.Quantity(),
			Modifiers:          pq.StringArray(item.Modifiers()),
			Notes:              item.Notes(),
			Status:             int(item.Status()),
			RecallReason:       item.RecallReason(),
			RecallCount:        item.RecallCount(),
			CancellationReason: item.CancellationReason(),
			StartedAt:          item.StartedAt(),
			ReadyAt:            item.ReadyAt(),
		})
	}

	return TicketDTO{
		ID:                      ticketID,
		TenantID:                t.TenantID(),
		OrderID:                 t.OrderID().Bytes(),
		TableID:                 t.TableID(),
		TicketNumber:            t.TicketNumber(),
		Status:                  int(t.Status()),
		Priority:                int(t.Priority()),
		CookID:                  t.CookID(),
		Station:                 t.Station(),
		StartedAt:               t.StartedAt(),
		PausedAt:                t.PausedAt(),
		AccumulatedPauseSeconds: t.AccumulatedPauseSeconds(),
		CompletedAt:             t.CompletedAt(),
		CancelledAt:             t.CancelledAt(),
		CancellationReason:      t.CancellationReason(),
		CreatedAt:               t.CreatedAt(),
		Items:                   items,
	}
}

func toDomain(dto TicketDTO) (*kitchen.Ticket, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*kitchen.TicketItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return kitchen.RestoreTicket(kitchen.TicketState{
		ID:                      id,
		TenantID:                dto.TenantID,
		OrderID:                 orderID,
		TableID:                 dto.TableID,
		TicketNumber:            dto.TicketNumber,
		Status:                  kitchen.TicketStatus(dto.Status),
		Priority:                kitchen.Priority(dto.Priority),
		CookID:                  dto.CookID,
		Station:                 dto.Station,
		StartedAt:               dto.StartedAt,
		PausedAt:                dto.PausedAt,
		AccumulatedPauseSeconds: dto.AccumulatedPauseSeconds,
		CompletedAt:             dto.CompletedAt,
		CancelledAt:             dto.CancelledAt,
		CancellationReason:      dto.CancellationReason,
		CreatedAt:               dto.CreatedAt,
	}, items)
}

func itemToDomain(dto TicketItemDTO) (*kitchen.TicketItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ticketID, err := kernel.UUIDFromBytes(dto.TicketID[:])
	if err != nil {
		return nil, err
	}
	sourceID, err := kernel.UUIDFromBytes(dto.SourceOrderItemID[:])
	if err != nil {
		return nil, err
	}

	return kitchen.RestoreTicketItem(kitchen.TicketItemState{
		ID:                 id,
		TicketID:           ticketID,
		SourceOrderItemID:  sourceID,
		MenuItemID:         dto.MenuItemID,
		Name:               dto.Name,
		Quantity:           dto.Quantity,
		Modifiers:          []string(dto.Modifiers),
		Notes:              dto.Notes,
		Status:             kitchen.ItemStatus(dto.Status),
		RecallReason:       dto.RecallReason,
		RecallCount:        dto.RecallCount,
		CancellationReason: dto.CancellationReason,
		StartedAt:          dto.StartedAt,
		ReadyAt:            dto.ReadyAt,
	})
}
