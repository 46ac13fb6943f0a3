package event

import (
	"encoding/json"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// PrepareItemsType is the message type of the items-accepted event.
const PrepareItemsType = "kitchen.prepare_items"

var validate = validator.New()

// PrepareItems is published once per accepted batch. Consumers correlate
// ticket items to order items through PrepareItem.ID.
type PrepareItems struct {
	EventID    string        `json:"eventId" validate:"required,uuid"`
	OrderID    string        `json:"orderId" validate:"required,uuid"`
	TableID    string        `json:"tableId" validate:"required"`
	TenantID   string        `json:"tenantId" validate:"required"`
	WaiterID   *string       `json:"waiterId,omitempty"`
	Items      []PrepareItem `json:"items" validate:"required,min=1,dive"`
	Priority   *int          `json:"priority,omitempty" validate:"omitempty,min=0,max=3"`
	OccurredAt time.Time     `json:"occurredAt"`
}

type PrepareItem struct {
	ID         string   `json:"id" validate:"required,uuid"`
	MenuItemID string   `json:"menuItemId" validate:"required"`
	Name       string   `json:"name" validate:"required"`
	Quantity   int      `json:"quantity" validate:"gt=0"`
	Modifiers  []string `json:"modifiers,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// NewPrepareItems builds the event for a batch of items accepted on o.
func NewPrepareItems(o *order.Order, accepted []*order.Item, waiterID string, now time.Time) PrepareItems {
	items := make([]PrepareItem, 0, len(accepted))
	for _, item := range accepted {
		items = append(items, PrepareItem{
			ID:         item.ID().String(),
			MenuItemID: item.MenuItemID(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			Modifiers:  item.Modifiers(),
			Notes:      item.Notes(),
		})
	}

	e := PrepareItems{
		EventID:    kernel.NewUUID().String(),
		OrderID:    o.ID().String(),
		TableID:    o.TableID(),
		TenantID:   o.TenantID(),
		Items:      items,
		OccurredAt: now.UTC(),
	}
	if waiterID != "" {
		e.WaiterID = &waiterID
	}
	return e
}

// DecodePrepareItems parses and validates a message body. Every error is
// validation-class: the payload itself is malformed.
func DecodePrepareItems(body []byte) (PrepareItems, error) {
	var e PrepareItems
	if err := json.Unmarshal(body, &e); err != nil {
		return PrepareItems{}, errs.NewValueIsInvalidErrorWithCause(PrepareItemsType, err)
	}
	if err := e.Validate(); err != nil {
		return PrepareItems{}, err
	}
	return e, nil
}

func (e PrepareItems) Validate() error {
	if err := validate.Struct(e); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(PrepareItemsType, err)
	}
	return nil
}

// Encode renders the event as JSON.
func (e PrepareItems) Encode() ([]byte, error) {
	return json.Marshal(e)
}
