// Package orderrepo persists order aggregates and their items. Items live in
// their own table and are cascade-deleted with the order.
package orderrepo

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TenantID           string          `gorm:"type:varchar(64);not null;index"`
	TableID            string          `gorm:"type:varchar(64);not null"`
	CustomerID         *string         `gorm:"type:varchar(64)"`
	Type               int             `gorm:"type:smallint;not null"`
	Status             int             `gorm:"type:smallint;not null;index"`
	PaymentStatus      int             `gorm:"type:smallint;not null"`
	TaxRate            decimal.Decimal `gorm:"type:numeric(6,4);not null"`
	Subtotal           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Tax                decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Discount           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CancellationReason string          `gorm:"type:text"`
	CreatedAt          time.Time       `gorm:"not null;index"`
	UpdatedAt          time.Time       `gorm:"not null"`
	Items              []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is the order_items row. MenuItemID is a snapshot reference to
// the menu service and carries no foreign key.
type OrderItemDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position        int             `gorm:"not null"`
	MenuItemID      string          `gorm:"type:varchar(64);not null"`
	Name            string          `gorm:"type:varchar(255);not null"`
	Price           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Modifiers       pq.StringArray  `gorm:"type:text[]"`
	Notes           string          `gorm:"type:text"`
	Quantity        int             `gorm:"not null"`
	Status          int             `gorm:"type:smallint;not null"`
	RejectionReason string          `gorm:"type:text"`
	AcceptedBy      *string         `gorm:"type:varchar(64)"`
	AcceptedAt      *time.Time
	PreparingAt     *time.Time
	ReadyAt         *time.Time
	ServedAt        *time.Time
	CancelledAt     *time.Time
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:              item.ID().Bytes(),
			OrderID:         orderID,
			Position:        i,
			MenuItemID:      item.MenuItemID(),
			Name:            item.Name(),
			Price:           item.Price().Decimal(),
			Modifiers:       pq.StringArray(item.Modifiers()),
			Notes:           item.Notes(),
			Quantity:        item.Quantity(),
			Status:          int(item.Status()),
			RejectionReason: item.RejectionReason(),
			AcceptedBy:      item.AcceptedBy(),
			AcceptedAt:      item.AcceptedAt(),
			PreparingAt:     item.PreparingAt(),
			ReadyAt:         item.ReadyAt(),
			ServedAt:        item.ServedAt(),
			CancelledAt:     item.CancelledAt(),
		})
	}

	return OrderDTO{
		ID:                 orderID,
		TenantID:           o.TenantID(),
		TableID:            o.TableID(),
		CustomerID:         o.CustomerID(),
		Type:               int(o.Type()),
		Status:             int(o.Status()),
		PaymentStatus:      int(o.PaymentStatus()),
		TaxRate:            o.TaxRate(),
		Subtotal:           o.Subtotal().Decimal(),
		Tax:                o.Tax().Decimal(),
		Discount:           o.Discount().Decimal(),
		Total:              o.Total().Decimal(),
		CancellationReason: o.CancellationReason(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
		Items:              items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var subtotal, tax, discount, total kernel.Money
	if err = errors.Join(
		restoreMoney(&subtotal, dto.Subtotal),
		restoreMoney(&tax, dto.Tax),
		restoreMoney(&discount, dto.Discount),
		restoreMoney(&total, dto.Total),
	); err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.State{
		ID:                 id,
		TenantID:           dto.TenantID,
		TableID:            dto.TableID,
		CustomerID:         dto.CustomerID,
		Type:               order.Type(dto.Type),
		Status:             order.Status(dto.Status),
		PaymentStatus:      order.PaymentStatus(dto.PaymentStatus),
		TaxRate:            dto.TaxRate,
		Subtotal:           subtotal,
		Tax:                tax,
		Discount:           discount,
		Total:              total,
		CancellationReason: dto.CancellationReason,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	}, items)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(order.ItemState{
		ID:              id,
		OrderID:         orderID,
		MenuItemID:      dto.MenuItemID,
		Name:            dto.Name,
		Price:           price,
		Modifiers:       []string(dto.Modifiers),
		Notes:           dto.Notes,
		Quantity:        dto.Quantity,
		Status:          order.ItemStatus(dto.Status),
		RejectionReason: dto.RejectionReason,
		AcceptedBy:      dto.AcceptedBy,
		AcceptedAt:      dto.AcceptedAt,
		PreparingAt:     dto.PreparingAt,
		ReadyAt:         dto.ReadyAt,
		ServedAt:        dto.ServedAt,
		CancelledAt:     dto.CancelledAt,
	})
}

func restoreMoney(dst *kernel.Money, d decimal.Decimal) error {
	m, err := kernel.NewMoney(d)
	if err != nil {
		return err
	}
	*dst = m
	return nil
}
