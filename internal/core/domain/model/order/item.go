package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// MinRejectionReasonLength is the shortest accepted rejection reason, in characters.
const MinRejectionReasonLength = 5

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("order item must be created via NewItem constructor")

// Item is one line of an order. Name, price and modifiers are a snapshot of the
// menu item taken at placement; menuItemID is a reference, not a foreign key,
// so the item survives menu deletion.
type Item struct {
	id         kernel.UUID
	orderID    kernel.UUID
	menuItemID string
	name       string
	price      kernel.Money
	modifiers  []string
	notes      string
	quantity   int
	status     ItemStatus

	rejectionReason string
	acceptedBy      *string

	acceptedAt  *time.Time
	preparingAt *time.Time
	readyAt     *time.Time
	servedAt    *time.Time
	cancelledAt *time.Time

	isConstructed bool
}

// NewItem creates a PENDING item. The owning order is set when the item is
// attached through NewOrder or Order.AddItems.
func NewItem(menuItemID, name string, price kernel.Money, quantity int, modifiers []string, notes string) (*Item, error) {
	item := &Item{
		id:            kernel.NewUUID(),
		price:         price,
		modifiers:     append([]string(nil), modifiers...),
		notes:         notes,
		status:        ItemStatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// ItemState carries every persisted field of an item for RestoreItem.
type ItemState struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	MenuItemID      string
	Name            string
	Price           kernel.Money
	Modifiers       []string
	Notes           string
	Quantity        int
	Status          ItemStatus
	RejectionReason string
	AcceptedBy      *string
	AcceptedAt      *time.Time
	PreparingAt     *time.Time
	ReadyAt         *time.Time
	ServedAt        *time.Time
	CancelledAt     *time.Time
}

// RestoreItem rehydrates an item from persistence.
func RestoreItem(state ItemState) (*Item, error) {
	if err := errors.Join(state.ID.Validate(), state.Status.Validate()); err != nil {
		return nil, fmt.Errorf("restore order item: %w", err)
	}

	return &Item{
		id:              state.ID,
		orderID:         state.OrderID,
		menuItemID:      state.MenuItemID,
		name:            state.Name,
		price:           state.Price,
		modifiers:       state.Modifiers,
		notes:           state.Notes,
		quantity:        state.Quantity,
		status:          state.Status,
		rejectionReason: state.RejectionReason,
		acceptedBy:      state.AcceptedBy,
		acceptedAt:      state.AcceptedAt,
		preparingAt:     state.PreparingAt,
		readyAt:         state.ReadyAt,
		servedAt:        state.ServedAt,
		cancelledAt:     state.CancelledAt,
		isConstructed:   true,
	}, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

func (i *Item) MenuItemID() string {
	return i.menuItemID
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) Modifiers() []string {
	return append([]string(nil), i.modifiers...)
}

func (i *Item) Notes() string {
	return i.notes
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) Status() ItemStatus {
	return i.status
}

func (i *Item) RejectionReason() string {
	return i.rejectionReason
}

func (i *Item) AcceptedBy() *string {
	return i.acceptedBy
}

func (i *Item) AcceptedAt() *time.Time {
	return i.acceptedAt
}

func (i *Item) PreparingAt() *time.Time {
	return i.preparingAt
}

func (i *Item) ReadyAt() *time.Time {
	return i.readyAt
}

func (i *Item) ServedAt() *time.Time {
	return i.servedAt
}

func (i *Item) CancelledAt() *time.Time {
	return i.cancelledAt
}

func (i *Item) LineTotal() kernel.Money {
	return i.price.Times(i.quantity)
}

// checkTransition validates next against the item-level table without mutating.
func (i *Item) checkTransition(next ItemStatus) error {
	_, err := i.status.TransitionTo(next)
	return err
}

// apply performs a transition already validated by checkTransition and stamps
// the matching stage timestamp.
func (i *Item) apply(next ItemStatus, now time.Time) {
	i.status = next
	at := now
	switch next {
	case ItemStatusAccepted:
		i.acceptedAt = &at
	case ItemStatusPreparing:
		i.preparingAt = &at
	case ItemStatusReady:
		i.readyAt = &at
	case ItemStatusServed:
		i.servedAt = &at
	case ItemStatusCancelled, ItemStatusRejected:
		i.cancelledAt = &at
	}
}

func (i *Item) setMenuItemID(menuItemID string) error {
	if strings.TrimSpace(menuItemID) == "" {
		return errs.NewValueIsRequiredError("menuItemId")
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
