package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/allinlistings/admin/internal/cache"
	"github.com/allinlistings/admin/internal/catalog"
	"github.com/allinlistings/admin/internal/config"
	"github.com/allinlistings/admin/internal/middleware"
	"github.com/allinlistings/admin/internal/service"
	"github.com/allinlistings/admin/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
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

// newCatalogTestRouter mounts the catalog routes behind a stub auth
// middleware that marks every request as a logged-in user.
func newCatalogTestRouter(db *sqlx.DB) http.Handler {
	listingCache := cache.New(time.Minute)
	casinoService := service.NewCasinoService(store.NewCasinoStore(db), listingCache)
	tourService := service.NewTourService(store.NewTourStore(db), listingCache)
	eventService := service.NewEventService(db, store.NewEventStore(db), listingCache)
	tournamentService := service.NewTournamentService(store.NewTournamentStore(db), listingCache)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), middleware.UserIDKey, uuid.New())
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	registerCatalogRoutes(r, config.Config{SiteBaseURL: "https://example.com"}, casinoService, tourService, eventService, tournamentService)
	return r
}

func TestTournamentClonePage(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	casinoID, err := store.NewCasinoStore(db).Insert(context.Background(), &catalog.Casino{
		Name:    "Casino Royale",
		Slug:    "casino-royale",
		Logo:    "https://cdn.example.com/royale.png",
		Color:   "#1A6E46",
		Content: "content",
	})
	require.NoError(t, err)

	tournamentID, err := store.NewTournamentStore(db).Insert(context.Background(), &catalog.Tournament{
		Name:     "Sunday Special",
		Slug:     "sunday-special",
		CasinoID: casinoID,
		Date:     time.Date(2026, 10, 4, 0, 0, 0, 0, time.UTC),
		Time:     "18:00",
		Buyin:    "150",
	})
	require.NoError(t, err)

	router := newCatalogTestRouter(db)

	req := httptest.NewRequest("GET", "/dashboard/tournaments/"+strconv.FormatInt(tournamentID, 10)+"/clone", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	// The form is pre-filled from the source row.
	assert.Contains(t, body, "Sunday Special")
	assert.Contains(t, body, "Clone tournament")

	// No hidden id and a blank slug, so submitting creates a new row.
	assert.NotContains(t, body, "name=\"id\"")
	assert.Contains(t, body, "name=\"slug\" value=\"\"")
}

func TestTournamentCloneMissingRow(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	router := newCatalogTestRouter(db)

	req := httptest.NewRequest("GET", "/dashboard/tournaments/999/clone", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
