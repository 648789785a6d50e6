package service

import (
	"context"
	"testing"
	"time"

	"github.com/allinlistings/admin/internal/cache"
	"github.com/allinlistings/admin/internal/middleware"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", "file::memory:")
	require.NoError(t, err, "Failed to connect to in-memory DB")

	// The in-memory DB is per connection.
	database.SetMaxOpenConns(1)

	_, err = database.Exec("PRAGMA foreign_keys = ON;")
	require.NoError(t, err)

	driver, err := sqlite3.WithInstance(database.DB, &sqlite3.Config{})
	require.NoError(t, err, "Failed to create migrate driver instance")

	m, err := migrate.NewWithDatabaseInstance(
		"file://../../migrations",
		"sqlite3",
		driver,
	)
	require.NoError(t, err, "Failed to create migrate instance")

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		require.NoError(t, err, "Failed to apply migrations")
	}

	return database
}

func testCache() *cache.Cache {
	return cache.New(time.Hour)
}

// authContext inserts an admin user and returns a context carrying its id,
// the way the auth middleware would.
func authContext(t *testing.T, db *sqlx.DB) context.Context {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec("INSERT INTO users (id, email, username) VALUES (?, ?, ?)",
		id, "admin@example.com", "admin")
	require.NoError(t, err)

	return context.WithValue(context.Background(), middleware.UserIDKey, id)
}
