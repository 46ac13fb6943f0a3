// Package pgtest starts a throwaway PostgreSQL container for integration tests.
package pgtest

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a running container together with an open GORM connection.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine and applies migrate to the new database.
// Tests are skipped in -short mode.
func Start(t testing.TB, migrate func(*gorm.DB) error) *Database {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("postgres connection string: %v", err)
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("open database: %v", err)
	}

	if migrate != nil {
		if err := migrate(db); err != nil {
			_ = container.Terminate(ctx)
			t.Fatalf("migrate: %v", err)
		}
	}

	return &Database{Container: container, DB: db}
}

// Truncate empties the given tables.
func (d *Database) Truncate(t testing.TB, tables ...string) {
	t.Helper()
	for _, table := range tables {
		if err := d.DB.Exec("TRUNCATE TABLE " + table + " CASCADE").Error; err != nil {
			t.Fatalf("truncate %s: %v", table, err)
		}
	}
}

// Terminate stops the container.
func (d *Database) Terminate(t testing.TB) {
	t.Helper()
	if d == nil || d.Container == nil {
		return
	}
	if err := d.Container.Terminate(context.Background()); err != nil {
		t.Errorf("terminate postgres container: %v", err)
	}
}

// MigrateAll creates every table used by either service.
func MigrateAll(migrations ...func(*gorm.DB) error) func(*gorm.DB) error {
	return func(db *gorm.DB) error {
		for _, m := range migrations {
			if err := m(db); err != nil {
				return err
			}
		}
		return nil
	}
}
