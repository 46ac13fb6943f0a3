package kitchen

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	ErrTicketIsNotConstructed = errors.New("kitchen ticket must be created via NewTicket constructor")

	// ErrKitchenItemsNotReady is the rule violated when bumping a ticket that
	// still has items in preparation.
	ErrKitchenItemsNotReady = errors.New("kitchen items not ready")

	// ErrTimerState is the rule violated when pausing a paused timer, resuming a
	// running one, or toggling a timer that never started.
	ErrTimerState = errors.New("kitchen timer is already in that state")

	// ErrTicketClosed is the rule violated when changing metadata of a completed or cancelled ticket.
	ErrTicketClosed = errors.New("kitchen ticket is closed")
)

// Ticket is the aggregate root for one batch of accepted order items.
//
// Invariants:
//   - ticket READY implies every item is READY or terminal, not all cancelled
//   - ticket CANCELLED implies every item is terminal
//   - accumulatedPauseSeconds counts closed pause intervals only; an open
//     pause is tracked by pausedAt
type Ticket struct {
	id           kernel.UUID
	tenantID     string
	orderID      kernel.UUID
	tableID      string
	ticketNumber int
	status       TicketStatus
	priority     Priority
	cookID       *string
	station      *string

	startedAt               *time.Time
	pausedAt                *time.Time
	accumulatedPauseSeconds int64
	completedAt             *time.Time
	cancelledAt             *time.Time
	cancellationReason      string
	createdAt               time.Time

	items []*TicketItem

	isConstructed bool
}

// NewTicket creates a PENDING ticket. ticketNumber is allocated by the caller
// from the per-tenant counter.
func NewTicket(
	tenantID string,
	orderID kernel.UUID,
	tableID string,
	ticketNumber int,
	priority Priority,
	items []*TicketItem,
	now time.Time,
) (*Ticket, error) {
	t := &Ticket{
		id:            kernel.NewUUID(),
		tableID:       tableID,
		status:        TicketStatusPending,
		createdAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		t.setTenantID(tenantID),
		t.setOrderID(orderID),
		t.setTicketNumber(ticketNumber),
		t.setPriority(priority),
		t.attachItems(items),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// TicketState carries every persisted field of a ticket for RestoreTicket.
type TicketState struct {
	ID                      kernel.UUID
	TenantID                string
	OrderID                 kernel.UUID
	TableID                 string
	TicketNumber            int
	Status                  TicketStatus
	Priority                Priority
	CookID                  *string
	Station                 *string
	StartedAt               *time.Time
	PausedAt                *time.Time
	AccumulatedPauseSeconds int64
	CompletedAt             *time.Time
	CancelledAt             *time.Time
	CancellationReason      string
	CreatedAt               time.Time
}

func RestoreTicket(state TicketState, items []*TicketItem) (*Ticket, error) {
	if err := errors.Join(state.ID.Validate(), state.Status.Validate(), state.Priority.Validate()); err != nil {
		return nil, fmt.Errorf("restore kitchen ticket: %w", err)
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("restore kitchen ticket: %w", err)
		}
	}

	return &Ticket{
		id:                      state.ID,
		tenantID:                state.TenantID,
		orderID:                 state.OrderID,
		tableID:                 state.TableID,
		ticketNumber:            state.TicketNumber,
		status:                  state.Status,
		priority:                state.Priority,
		cookID:                  state.CookID,
		station:                 state.Station,
		startedAt:               state.StartedAt,
		pausedAt:                state.PausedAt,
		accumulatedPauseSeconds: state.AccumulatedPauseSeconds,
		completedAt:             state.CompletedAt,
		cancelledAt:             state.CancelledAt,
		cancellationReason:      state.CancellationReason,
		createdAt:               state.CreatedAt,
		items:                   items,
		isConstructed:           true,
	}, nil
}

func (t *Ticket) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTicketIsNotConstructed
	}
	return nil
}

func (t *Ticket) ID() kernel.UUID {
	return t.id
}

func (t *Ticket) TenantID() string {
	return t.tenantID
}

func (t *Ticket) OrderID() kernel.UUID {
	return t.orderID
}

func (t *Ticket) TableID() string {
	return t.tableID
}

func (t *Ticket) TicketNumber() int {
	return t.ticketNumber
}

func (t *Ticket) Status() TicketStatus {
	return t.status
}

func (t *Ticket) Priority() Priority {
	return t.priority
}

func (t *Ticket) CookID() *string {
	return t.cookID
}

func (t *Ticket) Station() *string {
	return t.station
}

func (t *Ticket) StartedAt() *time.Time {
	return t.startedAt
}

func (t *Ticket) PausedAt() *time.Time {
	return t.pausedAt
}

func (t *Ticket) AccumulatedPauseSeconds() int64 {
	return t.accumulatedPauseSeconds
}

func (t *Ticket) CompletedAt() *time.Time {
	return t.completedAt
}

func (t *Ticket) CancelledAt() *time.Time {
	return t.cancelledAt
}

func (t *Ticket) CancellationReason() string {
	return t.cancellationReason
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) Items() []*TicketItem {
	return append([]*TicketItem(nil), t.items...)
}

func (t *Ticket) Item(id kernel.UUID) (*TicketItem, bool) {
	for _, item := range t.items {
		if item.id.IsEqual(id) {
			return item, true
		}
	}
	return nil, false
}

// Start begins preparation of the whole ticket: every PENDING item moves to
// PREPARING and the ticket to IN_PROGRESS.
func (t *Ticket) Start(cookID string, now time.Time) error {
	if t.status != TicketStatusPending {
		return errs.NewInvalidStatusTransitionError("kitchen ticket", t.status, TicketStatusInProgress)
	}

	ids := make([]kernel.UUID, 0, len(t.items))
	for _, item := range t.items {
		if item.status == ItemStatusPending {
			ids = append(ids, item.id)
		}
	}
	if len(ids) == 0 {
		t.begin(cookID, now)
		return nil
	}
	return t.StartItems(ids, cookID, now)
}

// StartItems moves the given PENDING or RECALLED items to PREPARING. A PENDING
// ticket moves to IN_PROGRESS.
func (t *Ticket) StartItems(ids []kernel.UUID, cookID string, now time.Time) error {
	if t.status.IsTerminal() {
		return errs.NewInvalidStatusTransitionError("kitchen ticket", t.status, TicketStatusInProgress)
	}
	if err := t.transitionItems(ids, ItemStatusPreparing, now, nil); err != nil {
		return err
	}

	t.begin(cookID, now)
	return nil
}

// MarkItemsReady moves the given PREPARING or RECALLED items to READY. The ticket
// becomes READY once every item is READY or terminal.
func (t *Ticket) MarkItemsReady(ids []kernel.UUID, now time.Time) error {
	if t.status.IsTerminal() {
		return errs.NewInvalidStatusTransitionError("kitchen ticket", t.status, TicketStatusReady)
	}
	if err := t.transitionItems(ids, ItemStatusReady, now, nil); err != nil {
		return err
	}

	t.settle()
	return nil
}

// Bump completes the ticket: READY items are SERVED and the ticket COMPLETED.
// Every item must be READY or terminal.
func (t *Ticket) Bump(now time.Time) error {
	if t.status.IsTerminal() {
		return errs.NewInvalidStatusTransitionError("kitchen ticket", t.status, TicketStatusCompleted)
	}
	for _, item := range t.items {
		if !item.readyOrTerminal() {
			return errs.NewBusinessRuleViolationError(ErrKitchenItemsNotReady,
				fmt.Sprintf("item %s is %s", item.name, item.status))
		}
	}
	if t.status == TicketStatusInProgress {
		t.status = TicketStatusReady
	}
	if _, err := t.status.TransitionTo(TicketStatusCompleted); err != nil {
		return errs.NewBusinessRuleViolationError(ErrKitchenItemsNotReady, fmt.Sprintf("ticket is %s", t.status))
	}

	at := now.UTC()
	for _, item := range t.items {
		if item.status == ItemStatusReady {
			item.apply(ItemStatusServed, at)
		}
	}

	t.closePause(at)
	t.status = TicketStatusCompleted
	t.completedAt = &at
	return nil
}

// RecallItems sends READY or PREPARING items back for a remake. A READY
// ticket returns to IN_PROGRESS.
func (t *Ticket) RecallItems(ids []kernel.UUID, reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if t.status.IsTerminal() {
		return errs.NewInvalidStatusTransitionError("kitchen ticket", t.status, TicketStatusInProgress)
	}

	err := t.transitionItems(ids, ItemStatusRecalled, now, func(item *TicketItem) {
		item.recallReason = reason
		item.recallCount++
	})
	if err != nil {
		return err
	}

	if t.status == TicketStatusReady {
		t.status = TicketStatusInProgress
	}
	return nil
}

// CancelItems cancels the given non-terminal items. The ticket is cancelled
// when no item is left, or becomes READY when the remaining items are.
func (t *Ticket) CancelItems(ids []kernel.UUID, reason string, now time.Time) error {
	if t.status.IsTerminal() {
		return errs.NewInvalidStatusTransitionError("kitchen ticket", t.status, TicketStatusCancelled)
	}

	reason = strings.TrimSpace(reason)
	err := t.transitionItems(ids, ItemStatusCancelled, now, func(item *TicketItem) {
		item.cancellationReason = reason
	})
	if err != nil {
		return err
	}

	if t.allItemsCancelled() {
		t.cancel(reason, now.UTC())
		return nil
	}
	t.settle()
	return nil
}

// Cancel cancels the ticket and every non-terminal item.
func (t *Ticket) Cancel(reason string, now time.Time) error {
	if _, err := t.status.TransitionTo(TicketStatusCancelled); err != nil {
		return err
	}

	reason = strings.TrimSpace(reason)
	at := now.UTC()
	for _, item := range t.items {
		if !item.status.IsTerminal() {
			item.apply(ItemStatusCancelled, at)
			item.cancellationReason = reason
		}
	}

	t.cancel(reason, at)
	return nil
}

// UpdatePriority sets the display priority of an open ticket.
func (t *Ticket) UpdatePriority(p Priority) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if t.status.IsTerminal() {
		return errs.NewBusinessRuleViolationError(ErrTicketClosed, fmt.Sprintf("ticket is %s", t.status))
	}
	t.priority = p
	return nil
}

// ToggleTimer pauses or resumes the preparation timer. Resuming adds the paused
// interval to accumulatedPauseSeconds.
func (t *Ticket) ToggleTimer(pause bool, now time.Time) error {
	if t.status.IsTerminal() {
		return errs.NewBusinessRuleViolationError(ErrTicketClosed, fmt.Sprintf("ticket is %s", t.status))
	}
	if t.startedAt == nil {
		return errs.NewBusinessRuleViolationError(ErrTimerState, "timer has not started")
	}

	at := now.UTC()
	switch {
	case pause && t.pausedAt != nil:
		return errs.NewBusinessRuleViolationError(ErrTimerState, "timer is already paused")
	case !pause && t.pausedAt == nil:
		return errs.NewBusinessRuleViolationError(ErrTimerState, "timer is already running")
	case pause:
		t.pausedAt = &at
	default:
		t.closePause(at)
	}
	return nil
}

// Reassign hands the ticket to another cook. No status changes.
func (t *Ticket) Reassign(cookID string) error {
	cookID = strings.TrimSpace(cookID)
	if cookID == "" {
		return errs.NewValueIsRequiredError("cookId")
	}
	if t.status.IsTerminal() {
		return errs.NewBusinessRuleViolationError(ErrTicketClosed, fmt.Sprintf("ticket is %s", t.status))
	}
	t.cookID = &cookID
	return nil
}

// IsPaused reports whether the timer has an open pause.
func (t *Ticket) IsPaused() bool {
	return t.pausedAt != nil
}

// ActiveDuration is the preparation time excluding paused intervals, measured
// up to completion, cancellation or now.
func (t *Ticket) ActiveDuration(now time.Time) time.Duration {
	if t.startedAt == nil {
		return 0
	}

	end := now
	switch {
	case t.completedAt != nil:
		end = *t.completedAt
	case t.cancelledAt != nil:
		end = *t.cancelledAt
	}

	d := end.Sub(*t.startedAt) - time.Duration(t.accumulatedPauseSeconds)*time.Second
	if t.pausedAt != nil && end.After(*t.pausedAt) {
		d -= end.Sub(*t.pausedAt)
	}
	if d < 0 {
		return 0
	}
	return d
}

func (t *Ticket) transitionItems(ids []kernel.UUID, next ItemStatus, now time.Time, mutate func(*TicketItem)) error {
	items, err := t.selectItems(ids)
	if err != nil {
		return err
	}

	for _, item := range items {
		if _, err = item.status.TransitionTo(next); err != nil {
			return err
		}
	}

	at := now.UTC()
	for _, item := range items {
		item.apply(next, at)
		if mutate != nil {
			mutate(item)
		}
	}
	return nil
}

func (t *Ticket) selectItems(ids []kernel.UUID) ([]*TicketItem, error) {
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("itemIds")
	}

	seen := make(map[kernel.UUID]struct{}, len(ids))
	items := make([]*TicketItem, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		item, ok := t.Item(id)
		if !ok {
			return nil, errs.NewObjectNotFoundError("ticketItem", id)
		}
		items = append(items, item)
	}
	return items, nil
}

// begin moves a PENDING ticket to IN_PROGRESS and records the cook.
func (t *Ticket) begin(cookID string, now time.Time) {
	if t.status == TicketStatusPending {
		t.status = TicketStatusInProgress
	}
	if t.startedAt == nil {
		at := now.UTC()
		t.startedAt = &at
	}
	if cookID = strings.TrimSpace(cookID); cookID != "" {
		t.cookID = &cookID
	}
}

// settle moves an IN_PROGRESS ticket to READY once every item is READY or terminal.
func (t *Ticket) settle() {
	if t.status != TicketStatusInProgress {
		return
	}
	for _, item := range t.items {
		if !item.readyOrTerminal() {
			return
		}
	}
	if !t.allItemsCancelled() {
		t.status = TicketStatusReady
	}
}

func (t *Ticket) cancel(reason string, at time.Time) {
	t.closePause(at)
	t.status = TicketStatusCancelled
	t.cancelledAt = &at
	t.cancellationReason = reason
}

func (t *Ticket) closePause(at time.Time) {
	if t.pausedAt == nil {
		return
	}
	if at.After(*t.pausedAt) {
		t.accumulatedPauseSeconds += int64(at.Sub(*t.pausedAt) / time.Second)
	}
	t.pausedAt = nil
}

func (t *Ticket) allItemsCancelled() bool {
	for _, item := range t.items {
		if item.status != ItemStatusCancelled {
			return false
		}
	}
	return true
}

func (t *Ticket) attachItems(items []*TicketItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	for _, item := range items {
		item.ticketID = t.id
		t.items = append(t.items, item)
	}
	return nil
}

func (t *Ticket) setTenantID(tenantID string) error {
	if strings.TrimSpace(tenantID) == "" {
		return errs.NewValueIsRequiredError("tenantId")
	}
	t.tenantID = tenantID
	return nil
}

func (t *Ticket) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	t.orderID = orderID
	return nil
}

func (t *Ticket) setTicketNumber(n int) error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("ticketNumber", fmt.Errorf("%d is not greater than 0", n))
	}
	t.ticketNumber = n
	return nil
}

func (t *Ticket) setPriority(p Priority) error {
	if err := p.Validate(); err != nil {
		return err
	}
	t.priority = p
	return nil
}
