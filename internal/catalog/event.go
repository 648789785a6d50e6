package catalog

import "time"

type Event struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	CasinoID  int64     `db:"casino_id"`
	TourID    int64     `db:"tour_id"`
	From      time.Time `db:"date_from"`
	To        time.Time `db:"date_to"`
	Draft     bool      `db:"draft"`
	CreatedAt time.Time `db:"created_at"`
}

// EventRow is the denormalized listing view.
type EventRow struct {
	Event
	CasinoName string `db:"casino_name"`
	TourName   string `db:"tour_name"`
}
