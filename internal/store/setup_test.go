package store

import (
	"context"
	"testing"

	"github.com/allinlistings/admin/internal/catalog"
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

func insertTestUser(t *testing.T, db *sqlx.DB) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec("INSERT INTO users (id, email, username) VALUES (?, ?, ?)",
		id, "admin@example.com", "admin")
	require.NoError(t, err)
	return id
}

func insertTestCasino(t *testing.T, db *sqlx.DB, slug string) int64 {
	t.Helper()

	store := NewCasinoStore(db)
	id, err := store.Insert(context.Background(), &catalog.Casino{
		Name:    "Casino " + slug,
		Slug:    slug,
		Logo:    "https://cdn.example.com/" + slug + ".png",
		Color:   "#1A6E46",
		Content: "content",
	})
	require.NoError(t, err)
	return id
}

func insertTestTour(t *testing.T, db *sqlx.DB, slug string) int64 {
	t.Helper()

	store := NewTourStore(db)
	id, err := store.Insert(context.Background(), &catalog.Tour{
		Name: "Tour " + slug,
		Slug: slug,
	})
	require.NoError(t, err)
	return id
}
