package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder constructor")

	// ErrOrderClosed is the rule violated when changing the contents or payment of a terminal order.
	ErrOrderClosed = errors.New("order is closed")

	// ErrOrderNotCompletable is the rule violated when completing an order that
	// still has open items or nothing served.
	ErrOrderNotCompletable = errors.New("order cannot be completed")

	// ErrPaymentRequired is the rule violated when completing an unpaid order.
	ErrPaymentRequired = errors.New("payment required")

	// ErrNoActiveItems is the rule violated when opening an order whose items are all terminal.
	ErrNoActiveItems = errors.New("order has no active items")
)

// Order is the aggregate root for one table session. It owns its items; every
// item change goes through an Order method so that totals and the order-level
// status stay consistent with the item set.
//
// Invariants:
//   - status COMPLETED implies every item is terminal and paymentStatus is PAID
//   - subtotal covers items that are neither CANCELLED nor REJECTED
//   - total = max(0, subtotal + tax - discount)
//
// An order whose items are all terminal with at least one SERVED but which is
// not yet PAID stays IN_PROGRESS: the tab is open until payment completes it.
type Order struct {
	id            kernel.UUID
	tenantID      string
	tableID       string
	customerID    *string
	orderType     Type
	status        Status
	paymentStatus PaymentStatus

	taxRate  decimal.Decimal
	subtotal kernel.Money
	tax      kernel.Money
	discount kernel.Money
	total    kernel.Money

	items              []*Item
	cancellationReason string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder places an order with at least one PENDING item. taxRate is fixed for
// the lifetime of the order.
//
// Example:
//
//	burger, _ := order.NewItem("menu-1", "Burger", kernel.MustMoney("9.50"), 2, nil, "")
//	o, err := order.NewOrder("tenant-1", "table-4", nil, order.TypeDineIn,
//	    decimal.RequireFromString("0.1"), kernel.Zero, []*order.Item{burger}, time.Now())
func NewOrder(
	tenantID, tableID string,
	customerID *string,
	orderType Type,
	taxRate decimal.Decimal,
	discount kernel.Money,
	items []*Item,
	now time.Time,
) (*Order, error) {
	o := &Order{
		id:            kernel.NewUUID(),
		customerID:    customerID,
		status:        StatusPending,
		paymentStatus: PaymentStatusUnpaid,
		discount:      discount,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setTenantID(tenantID),
		o.setTableID(tableID),
		o.setType(orderType),
		o.setTaxRate(taxRate),
		o.attachItems(items),
	); err != nil {
		return nil, err
	}

	o.recalculateTotals()
	return o, nil
}

// State carries every persisted field of an order for RestoreOrder.
type State struct {
	ID                 kernel.UUID
	TenantID           string
	TableID            string
	CustomerID         *string
	Type               Type
	Status             Status
	PaymentStatus      PaymentStatus
	TaxRate            decimal.Decimal
	Subtotal           kernel.Money
	Tax                kernel.Money
	Discount           kernel.Money
	Total              kernel.Money
	CancellationReason string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// RestoreOrder rehydrates an order and its items from persistence. Stored totals
// are kept as-is; they are recalculated on the next change.
func RestoreOrder(state State, items []*Item) (*Order, error) {
	if err := errors.Join(
		state.ID.Validate(),
		state.Status.Validate(),
		state.PaymentStatus.Validate(),
		state.Type.Validate(),
	); err != nil {
		return nil, fmt.Errorf("restore order: %w", err)
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("restore order: %w", err)
		}
	}

	return &Order{
		id:                 state.ID,
		tenantID:           state.TenantID,
		tableID:            state.TableID,
		customerID:         state.CustomerID,
		orderType:          state.Type,
		status:             state.Status,
		paymentStatus:      state.PaymentStatus,
		taxRate:            state.TaxRate,
		subtotal:           state.Subtotal,
		tax:                state.Tax,
		discount:           state.Discount,
		total:              state.Total,
		items:              items,
		cancellationReason: state.CancellationReason,
		createdAt:          state.CreatedAt,
		updatedAt:          state.UpdatedAt,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) TenantID() string {
	return o.tenantID
}

func (o *Order) TableID() string {
	return o.tableID
}

func (o *Order) CustomerID() *string {
	return o.customerID
}

func (o *Order) Type() Type {
	return o.orderType
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

func (o *Order) TaxRate() decimal.Decimal {
	return o.taxRate
}

func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

func (o *Order) Tax() kernel.Money {
	return o.tax
}

func (o *Order) Discount() kernel.Money {
	return o.discount
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns the order's items in placement order.
func (o *Order) Items() []*Item {
	return append([]*Item(nil), o.items...)
}

// Item finds an item by id.
func (o *Order) Item(id kernel.UUID) (*Item, bool) {
	for _, item := range o.items {
		if item.id.IsEqual(id) {
			return item, true
		}
	}
	return nil, false
}

// AcceptItems moves the given PENDING items to ACCEPTED on behalf of a waiter and
// returns the accepted items, which form one published batch.
func (o *Order) AcceptItems(ids []kernel.UUID, waiterID string, now time.Time) ([]*Item, error) {
	if strings.TrimSpace(waiterID) == "" {
		return nil, errs.NewValueIsRequiredError("waiterId")
	}

	items, err := o.transitionItems(ids, ItemStatusAccepted, now, func(item *Item) {
		waiter := waiterID
		item.acceptedBy = &waiter
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// RejectItems moves the given PENDING items to REJECTED. reason must be at least
// MinRejectionReasonLength characters.
func (o *Order) RejectItems(ids []kernel.UUID, reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if n := utf8.RuneCountInString(reason); n < MinRejectionReasonLength {
		return errs.NewValueIsInvalidErrorWithCause("reason",
			fmt.Errorf("%d characters, at least %d required", n, MinRejectionReasonLength))
	}

	_, err := o.transitionItems(ids, ItemStatusRejected, now, func(item *Item) {
		item.rejectionReason = reason
	})
	return err
}

// AdvanceItems reports kitchen progress for accepted items: next must be
// PREPARING or READY.
func (o *Order) AdvanceItems(ids []kernel.UUID, next ItemStatus, now time.Time) error {
	if next != ItemStatusPreparing && next != ItemStatusReady {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a progress status, expected PREPARING or READY", next))
	}

	_, err := o.transitionItems(ids, next, now, nil)
	return err
}

// ServeItems moves the given READY items to SERVED.
func (o *Order) ServeItems(ids []kernel.UUID, now time.Time) error {
	_, err := o.transitionItems(ids, ItemStatusServed, now, nil)
	return err
}

// AddItems appends new PENDING items to an open order.
func (o *Order) AddItems(items []*Item, now time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewBusinessRuleViolationError(ErrOrderClosed, fmt.Sprintf("order is %s", o.status))
	}
	if err := o.attachItems(items); err != nil {
		return err
	}

	o.refresh(now)
	return nil
}

// UpdateStatus applies an explicit order-level transition.
//
// COMPLETED requires every item terminal, at least one SERVED and payment PAID.
// IN_PROGRESS requires at least one non-terminal item. CANCELLED behaves as
// Cancel without a reason.
func (o *Order) UpdateStatus(next Status, now time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if _, err := o.status.TransitionTo(next); err != nil {
		return err
	}

	switch next {
	case StatusCancelled:
		return o.Cancel("", now)
	case StatusCompleted:
		if !o.allItemsSettled() {
			return errs.NewBusinessRuleViolationError(ErrOrderNotCompletable, "every item must be terminal with at least one served")
		}
		if o.paymentStatus != PaymentStatusPaid {
			return errs.NewBusinessRuleViolationError(ErrPaymentRequired, fmt.Sprintf("payment is %s", o.paymentStatus))
		}
	case StatusInProgress:
		if !o.hasActiveItems() {
			return errs.NewBusinessRuleViolationError(ErrNoActiveItems, "")
		}
	}

	o.status = next
	o.updatedAt = now.UTC()
	return nil
}

// Cancel cancels every non-terminal item and moves the order to CANCELLED.
func (o *Order) Cancel(reason string, now time.Time) error {
	if _, err := o.status.TransitionTo(StatusCancelled); err != nil {
		return err
	}

	for _, item := range o.items {
		if !item.status.IsTerminal() {
			item.apply(ItemStatusCancelled, now.UTC())
		}
	}

	o.cancellationReason = strings.TrimSpace(reason)
	o.status = StatusCancelled
	o.refresh(now)
	return nil
}

// RecordPayment moves the payment status along UNPAID -> PAID -> REFUNDED.
// Paying an order whose items are all settled completes it.
func (o *Order) RecordPayment(next PaymentStatus, now time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if o.status == StatusCancelled && next == PaymentStatusPaid {
		return errs.NewBusinessRuleViolationError(ErrOrderClosed, "order is CANCELLED")
	}

	status, err := o.paymentStatus.TransitionTo(next)
	if err != nil {
		return err
	}

	o.paymentStatus = status
	o.refresh(now)
	return nil
}

// transitionItems validates every selected item against next before mutating
// any of them; mutate runs on each item after the transition.
func (o *Order) transitionItems(ids []kernel.UUID, next ItemStatus, now time.Time, mutate func(*Item)) ([]*Item, error) {
	items, err := o.selectItems(ids)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = item.checkTransition(next); err != nil {
			return nil, err
		}
	}

	at := now.UTC()
	for _, item := range items {
		item.apply(next, at)
		if mutate != nil {
			mutate(item)
		}
	}

	o.refresh(now)
	return items, nil
}

// selectItems resolves ids to items, ignoring duplicates.
func (o *Order) selectItems(ids []kernel.UUID) ([]*Item, error) {
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("itemIds")
	}

	seen := make(map[kernel.UUID]struct{}, len(ids))
	items := make([]*Item, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		item, ok := o.Item(id)
		if !ok {
			return nil, errs.NewObjectNotFoundError("orderItem", id)
		}
		items = append(items, item)
	}
	return items, nil
}

func (o *Order) refresh(now time.Time) {
	o.recalculateTotals()
	o.deriveStatus()
	o.updatedAt = now.UTC()
}

// deriveStatus recomputes the order-level status from the item set. The
// derived status is applied only when the order-level table allows it.
// A tab whose items are all settled stays IN_PROGRESS until it is paid.
func (o *Order) deriveStatus() {
	next := o.derivedStatus()
	if next != o.status && CanTransition(o.status, next) {
		o.status = next
	}
}

func (o *Order) derivedStatus() Status {
	if o.status.IsTerminal() {
		return o.status
	}

	allVoid, allTerminal, anyServed, anyStarted := true, true, false, false
	for _, item := range o.items {
		s := item.status
		if !s.IsVoid() {
			allVoid = false
		}
		if !s.IsTerminal() {
			allTerminal = false
		}
		switch s {
		case ItemStatusServed:
			anyServed = true
			anyStarted = true
		case ItemStatusAccepted, ItemStatusPreparing, ItemStatusReady:
			anyStarted = true
		}
	}

	switch {
	case allVoid:
		return StatusCancelled
	case allTerminal && anyServed && o.paymentStatus == PaymentStatusPaid:
		return StatusCompleted
	case anyStarted:
		return StatusInProgress
	default:
		return StatusPending
	}
}

func (o *Order) recalculateTotals() {
	subtotal := kernel.Zero
	for _, item := range o.items {
		if item.status.IsVoid() {
			continue
		}
		subtotal = subtotal.Add(item.LineTotal())
	}

	o.subtotal = subtotal
	o.tax = subtotal.ApplyRate(o.taxRate)
	o.total = subtotal.Add(o.tax).Sub(o.discount)
}

func (o *Order) allItemsSettled() bool {
	anyServed := false
	for _, item := range o.items {
		if !item.status.IsTerminal() {
			return false
		}
		if item.status == ItemStatusServed {
			anyServed = true
		}
	}
	return anyServed
}

func (o *Order) hasActiveItems() bool {
	for _, item := range o.items {
		if !item.status.IsTerminal() {
			return true
		}
	}
	return false
}

func (o *Order) attachItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if item.status != ItemStatusPending {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("new item %s is %s", item.id, item.status))
		}
	}

	for _, item := range items {
		item.orderID = o.id
		o.items = append(o.items, item)
	}
	return nil
}

func (o *Order) setTenantID(tenantID string) error {
	if strings.TrimSpace(tenantID) == "" {
		return errs.NewValueIsRequiredError("tenantId")
	}
	o.tenantID = tenantID
	return nil
}

func (o *Order) setTableID(tableID string) error {
	if strings.TrimSpace(tableID) == "" {
		return errs.NewValueIsRequiredError("tableId")
	}
	o.tableID = tableID
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setTaxRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return errs.NewValueIsOutOfRangeError("taxRate", rate.String(), 0, 1)
	}
	o.taxRate = rate
	return nil
}
