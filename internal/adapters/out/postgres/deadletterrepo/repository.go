package deadletterrepo

import (
	"context"

	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeadLetterRepository implements ports.DeadLetterRepository using GORM.
// It writes outside of any unit of work: a dead letter is recorded once and
// never changes afterwards.
type GormDeadLetterRepository struct {
	db *gorm.DB
}

func NewGormDeadLetterRepository(db *gorm.DB) *GormDeadLetterRepository {
	return &GormDeadLetterRepository{db: db}
}

func (r *GormDeadLetterRepository) Add(ctx context.Context, letter ports.DeadLetter) error {
	if err := letter.ID.Validate(); err != nil {
		return err
	}
	if letter.Queue == "" {
		return errs.NewValueIsRequiredError("queue")
	}

	dto := fromDomain(letter)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// List returns the newest dead letters of a queue first.
func (r *GormDeadLetterRepository) List(ctx context.Context, queue string, limit int) ([]ports.DeadLetter, error) {
	var dtos []DeadLetterDTO
	if err := r.db.WithContext(ctx).
		Where("queue = ?", queue).
		Order("received_at DESC").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	out := make([]ports.DeadLetter, 0, len(dtos))
	for _, dto := range dtos {
		letter, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, letter)
	}
	return out, nil
}
