package store

import (
	"context"
	"testing"
	"time"

	"github.com/allinlistings/admin/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCountTournaments(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	eventStore := NewEventStore(db)
	tournamentStore := NewTournamentStore(db)
	ctx := context.Background()

	casinoID := insertTestCasino(t, db, "kings-resort")
	tourID := insertTestTour(t, db, "wsop-circuit")

	eventID, err := eventStore.Insert(ctx, &catalog.Event{
		Name:     "WSOP Circuit Rozvadov",
		Slug:     "wsop-circuit-rozvadov",
		CasinoID: casinoID,
		TourID:   tourID,
		From:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	count, err := eventStore.CountTournaments(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	for i, slug := range []string{"main-event", "side-event"} {
		_, err := tournamentStore.Insert(ctx, &catalog.Tournament{
			Name:     "Tournament " + slug,
			Slug:     slug,
			CasinoID: casinoID,
			EventID:  &eventID,
			Date:     time.Date(2026, 3, 11+i, 0, 0, 0, 0, time.UTC),
			Time:     "18:00",
			Buyin:    "550 EUR",
		})
		require.NoError(t, err)
	}

	count, err = eventStore.CountTournaments(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestEventCascadeDeleteTx(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	eventStore := NewEventStore(db)
	tournamentStore := NewTournamentStore(db)
	ctx := context.Background()

	casinoID := insertTestCasino(t, db, "kings-resort")
	tourID := insertTestTour(t, db, "wsop-circuit")

	eventID, err := eventStore.Insert(ctx, &catalog.Event{
		Name:     "WSOP Circuit Rozvadov",
		Slug:     "wsop-circuit-rozvadov",
		CasinoID: casinoID,
		TourID:   tourID,
		From:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	attachedID, err := tournamentStore.Insert(ctx, &catalog.Tournament{
		Name:     "Main Event",
		Slug:     "main-event",
		CasinoID: casinoID,
		EventID:  &eventID,
		Date:     time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Time:     "12:00",
		Buyin:    "1700 EUR",
	})
	require.NoError(t, err)

	// A tournament outside the event must survive the cascade.
	standaloneID, err := tournamentStore.Insert(ctx, &catalog.Tournament{
		Name:     "Daily Deepstack",
		Slug:     "daily-deepstack",
		CasinoID: casinoID,
		Date:     time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Time:     "20:00",
		Buyin:    "100 EUR",
	})
	require.NoError(t, err)

	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)

	require.NoError(t, eventStore.DeleteTournamentsTx(ctx, tx, eventID))
	require.NoError(t, eventStore.DeleteTx(ctx, tx, eventID))
	require.NoError(t, tx.Commit())

	_, err = eventStore.Get(ctx, eventID)
	assert.Error(t, err)

	_, err = tournamentStore.Get(ctx, attachedID)
	assert.Error(t, err)

	_, err = tournamentStore.Get(ctx, standaloneID)
	assert.NoError(t, err)
}

func TestEventListJoinsNames(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	eventStore := NewEventStore(db)
	ctx := context.Background()

	casinoID := insertTestCasino(t, db, "kings-resort")
	tourID := insertTestTour(t, db, "wsop-circuit")

	_, err := eventStore.Insert(ctx, &catalog.Event{
		Name:     "WSOP Circuit Rozvadov",
		Slug:     "wsop-circuit-rozvadov",
		CasinoID: casinoID,
		TourID:   tourID,
		From:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	rows, err := eventStore.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Casino kings-resort", rows[0].CasinoName)
	assert.Equal(t, "Tour wsop-circuit", rows[0].TourName)
}
