package ticketrepo

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/kitchen"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolation = "23505"

// GormTicketRepository implements ports.TicketRepository using GORM.
type GormTicketRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTicketRepository(db *gorm.DB, tracker aggregateTracker) *GormTicketRepository {
	return &GormTicketRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new ticket with its items. A second ticket item for the same
// order item is reported as ports.ErrDuplicateTicketItem.
func (r *GormTicketRepository) Add(ctx context.Context, aggregate *kitchen.Ticket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isDuplicateSourceItem(err) {
			return fmt.Errorf("ticket for order %s: %w", aggregate.OrderID(), ports.ErrDuplicateTicketItem)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the ticket row and upserts every item.
func (r *GormTicketRepository) Update(ctx context.Context, aggregate *kitchen.Ticket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&TicketDTO{}).Where("id = ?", dto.ID).Select("*").Omit("Items", "ID", "CreatedAt").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("kitchenTicket", aggregate.ID().String())
	}

	if len(dto.Items) > 0 {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormTicketRepository) Get(ctx context.Context, id kernel.UUID) (*kitchen.Ticket, error) {
	return r.load(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the ticket row until the surrounding transaction ends.
func (r *GormTicketRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*kitchen.Ticket, error) {
	return r.load(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// TicketedSourceItems returns the order item ids that already have a ticket item.
func (r *GormTicketRepository) TicketedSourceItems(ctx context.Context, orderItemIDs []kernel.UUID) ([]kernel.UUID, error) {
	if len(orderItemIDs) == 0 {
		return nil, nil
	}

	raw := make([]uuid.UUID, 0, len(orderItemIDs))
	for _, id := range orderItemIDs {
		raw = append(raw, id.Bytes())
	}

	var found []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&TicketItemDTO{}).
		Where("source_order_item_id IN ?", raw).
		Pluck("source_order_item_id", &found).Error; err != nil {
		return nil, err
	}

	out := make([]kernel.UUID, 0, len(found))
	for _, id := range found {
		parsed, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		out = append(out, parsed)
	}
	return out, nil
}

// NextTicketNumber increments the tenant's counter row, creating it on first
// use. The row stays locked until the surrounding transaction ends, so numbers
// of concurrent ingests are serialised per tenant.
func (r *GormTicketRepository) NextTicketNumber(ctx context.Context, tenantID string) (int, error) {
	if tenantID == "" {
		return 0, errs.NewValueIsRequiredError("tenantId")
	}

	var number int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO kitchen_ticket_counters (tenant_id, last_number)
		VALUES (?, 1)
		ON CONFLICT (tenant_id)
		DO UPDATE SET last_number = kitchen_ticket_counters.last_number + 1
		RETURNING last_number
	`, tenantID).Scan(&number).Error
	if err != nil {
		return 0, err
	}
	return number, nil
}

func (r *GormTicketRepository) load(db *gorm.DB, id kernel.UUID) (*kitchen.Ticket, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TicketDTO
	err := db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("kitchenTicket", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func isDuplicateSourceItem(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == uniqueViolation && pgErr.ConstraintName == SourceOrderItemIndex
}
