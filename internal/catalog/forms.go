package catalog

import (
	"net/url"

	"github.com/allinlistings/admin/internal/form"
)

// ParseCasinoForm validates a casino submission. The struct always comes
// back carrying the submitted values so forms can re-render; it is only safe
// to persist when the error map is nil. The ID is zero for new rows.
func ParseCasinoForm(values url.Values) (*Casino, form.Errors) {
	f := form.New(values)
	c := &Casino{
		Name:    f.Required("name", 3),
		Slug:    f.Slug("slug"),
		Logo:    f.URL("logo"),
		Color:   f.HexColor("color"),
		Content: f.Required("content", 1),
	}
	if id := f.OptionalPositiveInt("id"); id != nil {
		c.ID = *id
	}
	if !f.Valid() {
		return c, f.Errors
	}
	return c, nil
}

func ParseTourForm(values url.Values) (*Tour, form.Errors) {
	f := form.New(values)
	t := &Tour{
		Name: f.Required("name", 3),
		Slug: f.Slug("slug"),
		Logo: f.OptionalURL("logo"),
	}
	if id := f.OptionalPositiveInt("id"); id != nil {
		t.ID = *id
	}
	if !f.Valid() {
		return t, f.Errors
	}
	return t, nil
}

func ParseEventForm(values url.Values) (*Event, form.Errors) {
	f := form.New(values)
	e := &Event{
		Name:     f.Required("name", 3),
		Slug:     f.Slug("slug"),
		CasinoID: f.PositiveInt("casino_id"),
		TourID:   f.PositiveInt("tour_id"),
		From:     f.Date("from"),
		To:       f.Date("to"),
		Draft:    f.Checkbox("draft"),
	}
	if id := f.OptionalPositiveInt("id"); id != nil {
		e.ID = *id
	}
	// Cross-field check: the range must not end before it starts.
	if !e.From.IsZero() && !e.To.IsZero() && e.To.Before(e.From) {
		f.Errors.Add("to", "The 'To' date cannot be before the 'From' date.")
	}
	if !f.Valid() {
		return e, f.Errors
	}
	return e, nil
}

func ParseTournamentForm(values url.Values) (*Tournament, form.Errors) {
	f := form.New(values)
	t := &Tournament{
		Name:     f.Required("name", 3),
		Slug:     f.Slug("slug"),
		CasinoID: f.PositiveInt("casino_id"),
		EventID:  f.OptionalPositiveInt("event_id"),
		Date:     f.Date("date"),
		Time:     f.TimeHHMM("time"),
		Buyin:    f.Required("buyin", 1),

		Fee:            f.Optional("fee"),
		Points:         f.Optional("points"),
		LevelTime:      f.Optional("leveltime"),
		Punctuality:    f.Optional("punctuality"),
		Bounty:         f.Optional("bounty"),
		RegisterLevels: f.Optional("registerlevels"),
		Content:        f.Optional("content"),

		Draft: f.Checkbox("draft"),
	}
	if id := f.OptionalPositiveInt("id"); id != nil {
		t.ID = *id
	}
	if !f.Valid() {
		return t, f.Errors
	}
	return t, nil
}
