// Package deadletterrepo keeps a post-mortem record of every message the
// kitchen consumers gave up on.
package deadletterrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DeadLetterDTO struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Queue      string            `gorm:"type:varchar(255);not null;index:idx_dead_letters_queue_received"`
	MessageID  string            `gorm:"type:varchar(128)"`
	Payload    []byte            `gorm:"type:bytea;not null"`
	Headers    datatypes.JSONMap `gorm:"type:jsonb"`
	DeathCount int               `gorm:"not null"`
	ReceivedAt time.Time         `gorm:"not null;index:idx_dead_letters_queue_received"`
}

func (DeadLetterDTO) TableName() string {
	return "dead_letters"
}

func fromDomain(letter ports.DeadLetter) DeadLetterDTO {
	return DeadLetterDTO{
		ID:         letter.ID.Bytes(),
		Queue:      letter.Queue,
		MessageID:  letter.MessageID,
		Payload:    letter.Payload,
		Headers:    datatypes.JSONMap(letter.Headers),
		DeathCount: letter.DeathCount,
		ReceivedAt: letter.ReceivedAt,
	}
}

func toDomain(dto DeadLetterDTO) (ports.DeadLetter, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.DeadLetter{}, err
	}

	return ports.DeadLetter{
		ID:         id,
		Queue:      dto.Queue,
		MessageID:  dto.MessageID,
		Payload:    dto.Payload,
		Headers:    map[string]any(dto.Headers),
		DeathCount: dto.DeathCount,
		ReceivedAt: dto.ReceivedAt,
	}, nil
}
