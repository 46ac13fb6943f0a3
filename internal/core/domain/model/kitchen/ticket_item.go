package kitchen

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrTicketItemIsNotConstructed = errors.New("ticket item must be created via NewTicketItem constructor")

// TicketItem mirrors one accepted order item. sourceOrderItemID is the
// correlation key back to the order item and is unique across all tickets.
type TicketItem struct {
	id                 kernel.UUID
	ticketID           kernel.UUID
	sourceOrderItemID  kernel.UUID
	menuItemID         string
	name               string
	quantity           int
	modifiers          []string
	notes              string
	status             ItemStatus
	recallReason       string
	recallCount        int
	cancellationReason string
	startedAt          *time.Time
	readyAt            *time.Time

	isConstructed bool
}

func NewTicketItem(
	sourceOrderItemID kernel.UUID,
	menuItemID, name string,
	quantity int,
	modifiers []string,
	notes string,
) (*TicketItem, error) {
	item := &TicketItem{
		id:            kernel.NewUUID(),
		menuItemID:    menuItemID,
		modifiers:     append([]string(nil), modifiers...),
		notes:         notes,
		status:        ItemStatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setSourceOrderItemID(sourceOrderItemID),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// TicketItemState carries every persisted field of a ticket item.
type TicketItemState struct {
	ID                 kernel.UUID
	TicketID           kernel.UUID
	SourceOrderItemID  kernel.UUID
	MenuItemID         string
	Name               string
	Quantity           int
	Modifiers          []string
	Notes              string
	Status             ItemStatus
	RecallReason       string
	RecallCount        int
	CancellationReason string
	StartedAt          *time.Time
	ReadyAt            *time.Time
}

func RestoreTicketItem(state TicketItemState) (*TicketItem, error) {
	if err := errors.Join(state.ID.Validate(), state.SourceOrderItemID.Validate(), state.Status.Validate()); err != nil {
		return nil, fmt.Errorf("restore ticket item: %w", err)
	}

	return &TicketItem{
		id:                 state.ID,
		ticketID:           state.TicketID,
		sourceOrderItemID:  state.SourceOrderItemID,
		menuItemID:         state.MenuItemID,
		name:               state.Name,
		quantity:           state.Quantity,
		modifiers:          state.Modifiers,
		notes:              state.Notes,
		status:             state.Status,
		recallReason:       state.RecallReason,
		recallCount:        state.RecallCount,
		cancellationReason: state.CancellationReason,
		startedAt:          state.StartedAt,
		readyAt:            state.ReadyAt,
		isConstructed:      true,
	}, nil
}

func (i *TicketItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrTicketItemIsNotConstructed
	}
	return nil
}

func (i *TicketItem) ID() kernel.UUID {
	return i.id
}

func (i *TicketItem) TicketID() kernel.UUID {
	return i.ticketID
}

func (i *TicketItem) SourceOrderItemID() kernel.UUID {
	return i.sourceOrderItemID
}

func (i *TicketItem) MenuItemID() string {
	return i.menuItemID
}

func (i *TicketItem) Name() string {
	return i.name
}

func (i *TicketItem) Quantity() int {
	return i.quantity
}

func (i *TicketItem) Modifiers() []string {
	return append([]string(nil), i.modifiers...)
}

func (i *TicketItem) Notes() string {
	return i.notes
}

func (i *TicketItem) Status() ItemStatus {
	return i.status
}

func (i *TicketItem) RecallReason() string {
	return i.recallReason
}

func (i *TicketItem) RecallCount() int {
	return i.recallCount
}

func (i *TicketItem) CancellationReason() string {
	return i.cancellationReason
}

func (i *TicketItem) StartedAt() *time.Time {
	return i.startedAt
}

func (i *TicketItem) ReadyAt() *time.Time {
	return i.readyAt
}

func (i *TicketItem) readyOrTerminal() bool {
	return i.status == ItemStatusReady || i.status.IsTerminal()
}

func (i *TicketItem) apply(next ItemStatus, now time.Time) {
	i.status = next
	at := now
	switch next {
	case ItemStatusPreparing:
		if i.startedAt == nil {
			i.startedAt = &at
		}
	case ItemStatusReady:
		i.readyAt = &at
	case ItemStatusRecalled:
		i.readyAt = nil
	}
}

func (i *TicketItem) setSourceOrderItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sourceOrderItemId", err)
	}
	i.sourceOrderItemID = id
	return nil
}

func (i *TicketItem) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *TicketItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
