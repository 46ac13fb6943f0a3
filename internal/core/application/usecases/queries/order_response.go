// Package queries contains read-only operations. Handlers run raw SQL against
// the read side and return response views; they never load aggregates.
package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderResponse is the read view of an order and its items.
type OrderResponse struct {
	ID                 kernel.UUID         `json:"id"`
	TenantID           string              `json:"tenantId"`
	TableID            string              `json:"tableId"`
	CustomerID         *string             `json:"customerId,omitempty"`
	Type               string              `json:"type"`
	Status             string              `json:"status"`
	PaymentStatus      string              `json:"paymentStatus"`
	Subtotal           kernel.Money        `json:"subtotal"`
	Tax                kernel.Money        `json:"tax"`
	Discount           kernel.Money        `json:"discount"`
	Total              kernel.Money        `json:"total"`
	CancellationReason string              `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
	Items              []OrderItemResponse `json:"items"`
}

type OrderItemResponse struct {
	ID              kernel.UUID  `json:"id"`
	MenuItemID      string       `json:"menuItemId"`
	Name            string       `json:"name"`
	Price           kernel.Money `json:"price"`
	Quantity        int          `json:"quantity"`
	Modifiers       []string     `json:"modifiers"`
	Notes           string       `json:"notes,omitempty"`
	Status          string       `json:"status"`
	RejectionReason string       `json:"rejectionReason,omitempty"`
	AcceptedBy      *string      `json:"acceptedBy,omitempty"`
	AcceptedAt      *time.Time   `json:"acceptedAt,omitempty"`
	ReadyAt         *time.Time   `json:"readyAt,omitempty"`
	ServedAt        *time.Time   `json:"servedAt,omitempty"`
}

// OrderResponseFromDomain renders an aggregate as it would be read back.
// Command results are returned to RPC callers through it.
func OrderResponseFromDomain(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ID:              item.ID(),
			MenuItemID:      item.MenuItemID(),
			Name:            item.Name(),
			Price:           item.Price(),
			Quantity:        item.Quantity(),
			Modifiers:       nonNil(item.Modifiers()),
			Notes:           item.Notes(),
			Status:          item.Status().String(),
			RejectionReason: item.RejectionReason(),
			AcceptedBy:      item.AcceptedBy(),
			AcceptedAt:      item.AcceptedAt(),
			ReadyAt:         item.ReadyAt(),
			ServedAt:        item.ServedAt(),
		})
	}

	return OrderResponse{
		ID:                 o.ID(),
		TenantID:           o.TenantID(),
		TableID:            o.TableID(),
		CustomerID:         o.CustomerID(),
		Type:               o.Type().String(),
		Status:             o.Status().String(),
		PaymentStatus:      o.PaymentStatus().String(),
		Subtotal:           o.Subtotal(),
		Tax:                o.Tax(),
		Discount:           o.Discount(),
		Total:              o.Total(),
		CancellationReason: o.CancellationReason(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
		Items:              items,
	}
}

const orderColumns = `
	id, tenant_id, table_id, customer_id, type, status, payment_status,
	subtotal, tax, discount, total, cancellation_reason, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (OrderResponse, error) {
	var (
		resp                             OrderResponse
		id                               uuid.UUID
		orderType, status, paymentStatus int
		subtotal, tax, discount, total   decimal.Decimal
	)

	if err := row.Scan(
		&id, &resp.TenantID, &resp.TableID, &resp.CustomerID,
		&orderType, &status, &paymentStatus,
		&subtotal, &tax, &discount, &total,
		&resp.CancellationReason, &resp.CreatedAt, &resp.UpdatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID
	resp.Type = order.Type(orderType).String()
	resp.Status = order.Status(status).String()
	resp.PaymentStatus = order.PaymentStatus(paymentStatus).String()

	if resp.Subtotal, err = kernel.NewMoney(subtotal); err != nil {
		return OrderResponse{}, err
	}
	if resp.Tax, err = kernel.NewMoney(tax); err != nil {
		return OrderResponse{}, err
	}
	if resp.Discount, err = kernel.NewMoney(discount); err != nil {
		return OrderResponse{}, err
	}
	if resp.Total, err = kernel.NewMoney(total); err != nil {
		return OrderResponse{}, err
	}

	resp.Items = make([]OrderItemResponse, 0)
	return resp, nil
}

// attachOrderItems loads the items of every order in one query, in position order.
func attachOrderItems(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, 0, len(orders))
	index := make(map[kernel.UUID]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID.String())
		index[o.ID] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id, id, menu_item_id, name, price, quantity, modifiers, notes,
			status, rejection_reason, accepted_by, accepted_at, ready_at, served_at
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item            OrderItemResponse
			orderID, itemID uuid.UUID
			price           decimal.Decimal
			modifiers       pq.StringArray
			status          int
		)
		if err = rows.Scan(
			&orderID, &itemID, &item.MenuItemID, &item.Name, &price, &item.Quantity, &modifiers, &item.Notes,
			&status, &item.RejectionReason, &item.AcceptedBy, &item.AcceptedAt, &item.ReadyAt, &item.ServedAt,
		); err != nil {
			return err
		}

		if item.ID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return err
		}
		if item.Price, err = kernel.NewMoney(price); err != nil {
			return err
		}
		item.Modifiers = nonNil(modifiers)
		item.Status = order.ItemStatus(status).String()

		owner, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return idErr
		}
		if i, ok := index[owner]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
