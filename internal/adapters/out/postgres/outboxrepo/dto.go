// Package outboxrepo stores events whose publication failed until the relay
// job republishes them.
package outboxrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OutboxDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EventType   string         `gorm:"type:varchar(128);not null"`
	Exchange    string         `gorm:"type:varchar(255);not null"`
	Payload     datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time      `gorm:"not null;index"`
	PublishedAt *time.Time     `gorm:"index"`
	Attempts    int            `gorm:"not null;default:0"`
	LastError   string         `gorm:"type:text"`
}

func (OutboxDTO) TableName() string {
	return "outbox_events"
}

func fromDomain(msg ports.OutboxMessage) OutboxDTO {
	return OutboxDTO{
		ID:          msg.ID.Bytes(),
		EventType:   msg.EventType,
		Exchange:    msg.Exchange,
		Payload:     datatypes.JSON(msg.Payload),
		CreatedAt:   msg.CreatedAt,
		PublishedAt: msg.PublishedAt,
		Attempts:    msg.Attempts,
		LastError:   msg.LastError,
	}
}

func toDomain(dto OutboxDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		EventType:   dto.EventType,
		Exchange:    dto.Exchange,
		Payload:     []byte(dto.Payload),
		CreatedAt:   dto.CreatedAt,
		PublishedAt: dto.PublishedAt,
		Attempts:    dto.Attempts,
		LastError:   dto.LastError,
	}, nil
}
