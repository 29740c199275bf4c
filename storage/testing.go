package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/tdstudios/storefront/storage/db"
)

// NewTestDB creates an in-memory sqlite database with all migrations applied.
func NewTestDB() (*sql.DB, *db.Queries, func(), error) {
	database, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open test database: %w", err)
	}

	// An in-memory database exists per connection; keep the pool at one so
	// every query sees the migrated schema.
	database.SetMaxOpenConns(1)

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		database.Close()
		return nil, nil, nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(database, "migrations"); err != nil {
		database.Close()
		return nil, nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	cleanup := func() {
		database.Close()
	}

	return database, db.New(database), cleanup, nil
}

// NewTestStorage wraps NewTestDB in a Storage for tests that exercise the
// full service surface.
func NewTestStorage() (*Storage, func(), error) {
	database, queries, cleanup, err := NewTestDB()
	if err != nil {
		return nil, nil, err
	}
	return &Storage{db: database, Queries: queries}, cleanup, nil
}
