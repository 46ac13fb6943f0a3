package postgres

import (
	"restaurant/internal/adapters/out/postgres/deadletterrepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/outboxrepo"
	"restaurant/internal/adapters/out/postgres/ticketrepo"

	"gorm.io/gorm"
)

// MigrateOrders creates or updates the tables owned by the order service.
func MigrateOrders(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &outboxrepo.OutboxDTO{})
}

// MigrateKitchen creates or updates the tables owned by the kitchen service.
func MigrateKitchen(db *gorm.DB) error {
	return db.AutoMigrate(
		&ticketrepo.TicketDTO{},
		&ticketrepo.TicketItemDTO{},
		&ticketrepo.CounterDTO{},
		&deadletterrepo.DeadLetterDTO{},
	)
}
