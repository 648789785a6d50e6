package service

import (
	"context"
	"net/url"
	"strconv"
	"testing"

	"github.com/allinlistings/admin/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedEvent creates a casino, a tour and an event through the services and
// returns the event id.
func seedEvent(t *testing.T, ctx context.Context, casinos *CasinoService, tours *TourService, events *EventService) int64 {
	t.Helper()

	res := casinos.Upsert(ctx, casinoValues("Kings Resort", "kings-resort"))
	require.True(t, res.Success, res.Message)
	casinoRefs, err := casinos.Options(ctx)
	require.NoError(t, err)
	require.Len(t, casinoRefs, 1)

	res = tours.Upsert(ctx, url.Values{
		"name": {"WSOP Circuit"},
		"slug": {"wsop-circuit"},
	})
	require.True(t, res.Success, res.Message)
	tourRefs, err := tours.Options(ctx)
	require.NoError(t, err)
	require.Len(t, tourRefs, 1)

	res = events.Upsert(ctx, url.Values{
		"name":      {"WSOP Circuit Rozvadov"},
		"slug":      {"wsop-circuit-rozvadov"},
		"casino_id": {strconv.FormatInt(casinoRefs[0].ID, 10)},
		"tour_id":   {strconv.FormatInt(tourRefs[0].ID, 10)},
		"from":      {"2026-03-10"},
		"to":        {"2026-03-20"},
	})
	require.True(t, res.Success, res.Message)

	eventRefs, err := events.Options(ctx)
	require.NoError(t, err)
	require.Len(t, eventRefs, 1)
	return eventRefs[0].ID
}

func TestEventDeleteWithoutTournaments(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	c := testCache()
	casinos := NewCasinoService(store.NewCasinoStore(db), c)
	tours := NewTourService(store.NewTourStore(db), c)
	events := NewEventService(db, store.NewEventStore(db), c)
	ctx := authContext(t, db)

	eventID := seedEvent(t, ctx, casinos, tours, events)

	res := events.Delete(ctx, eventID, false)
	assert.True(t, res.Success)
	assert.False(t, res.RequiresConfirmation)

	rows, err := events.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestEventDeleteTwoPhase(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	c := testCache()
	casinos := NewCasinoService(store.NewCasinoStore(db), c)
	tours := NewTourService(store.NewTourStore(db), c)
	events := NewEventService(db, store.NewEventStore(db), c)
	tournaments := NewTournamentService(store.NewTournamentStore(db), c)
	ctx := authContext(t, db)

	eventID := seedEvent(t, ctx, casinos, tours, events)

	casinoRefs, err := casinos.Options(ctx)
	require.NoError(t, err)

	for _, slug := range []string{"main-event", "side-event"} {
		res := tournaments.Upsert(ctx, url.Values{
			"name":      {"Tournament " + slug},
			"slug":      {slug},
			"casino_id": {strconv.FormatInt(casinoRefs[0].ID, 10)},
			"event_id":  {strconv.FormatInt(eventID, 10)},
			"date":      {"2026-03-15"},
			"time":      {"18:00"},
			"buyin":     {"550 EUR"},
		})
		require.True(t, res.Success, res.Message)
	}

	// First call is a dry run: nothing is deleted, the caller is told how
	// many tournaments hang off the event.
	res := events.Delete(ctx, eventID, false)
	assert.False(t, res.Success)
	assert.True(t, res.RequiresConfirmation)
	assert.Equal(t, 2, res.TournamentCount)
	assert.Contains(t, res.Message, "2 associated tournament(s)")

	rows, err := events.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	// The forced call removes the event and its tournaments together.
	res = events.Delete(ctx, eventID, true)
	assert.True(t, res.Success)
	assert.False(t, res.RequiresConfirmation)

	rows, err = events.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	remaining, err := tournaments.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestEventDeleteRequiresAuth(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	events := NewEventService(db, store.NewEventStore(db), testCache())

	res := events.Delete(context.Background(), 1, true)
	assert.False(t, res.Success)
	assert.Equal(t, "Operation failed: not authenticated.", res.Message)
}
