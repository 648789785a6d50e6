package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCasinoValues() url.Values {
	return url.Values{
		"name":    {"Kings Resort"},
		"slug":    {"kings-resort"},
		"logo":    {"https://cdn.example.com/kings.png"},
		"color":   {"#1A6E46"},
		"content": {"The largest poker room in Europe."},
	}
}

func TestParseCasinoForm(t *testing.T) {
	casino, errs := ParseCasinoForm(validCasinoValues())
	require.Nil(t, errs)
	assert.Equal(t, int64(0), casino.ID)
	assert.Equal(t, "Kings Resort", casino.Name)
	assert.Equal(t, "kings-resort", casino.Slug)
}

func TestParseCasinoFormKeepsValuesOnError(t *testing.T) {
	values := validCasinoValues()
	values.Set("color", "green")

	casino, errs := ParseCasinoForm(values)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("color"))

	// The submitted values survive so the form can re-render filled in.
	assert.Equal(t, "Kings Resort", casino.Name)
	assert.Equal(t, "green", casino.Color)
}

func TestParseEventFormDateRange(t *testing.T) {
	values := url.Values{
		"name":      {"WSOP Circuit Rozvadov"},
		"slug":      {"wsop-circuit-rozvadov"},
		"casino_id": {"1"},
		"tour_id":   {"2"},
		"from":      {"2026-03-10"},
		"to":        {"2026-03-01"},
	}

	_, errs := ParseEventForm(values)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("to"))

	values.Set("to", "2026-03-20")
	event, errs := ParseEventForm(values)
	require.Nil(t, errs)
	assert.Equal(t, int64(1), event.CasinoID)
	assert.Equal(t, int64(2), event.TourID)

	// A single-day event is allowed.
	values.Set("to", "2026-03-10")
	_, errs = ParseEventForm(values)
	assert.Nil(t, errs)
}

func TestParseTournamentFormOptionals(t *testing.T) {
	values := url.Values{
		"name":      {"Midnight Turbo"},
		"slug":      {"midnight-turbo"},
		"casino_id": {"1"},
		"event_id":  {"-"},
		"date":      {"2026-04-02"},
		"time":      {"23:00"},
		"buyin":     {"150 EUR"},
		"fee":       {""},
		"bounty":    {"50 EUR"},
	}

	tournament, errs := ParseTournamentForm(values)
	require.Nil(t, errs)
	assert.Nil(t, tournament.EventID)
	assert.Nil(t, tournament.Fee)
	require.NotNil(t, tournament.Bounty)
	assert.Equal(t, "50 EUR", *tournament.Bounty)

	values.Set("id", "12")
	tournament, errs = ParseTournamentForm(values)
	require.Nil(t, errs)
	assert.Equal(t, int64(12), tournament.ID)
}
