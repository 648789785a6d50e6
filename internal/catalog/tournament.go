package catalog

import "time"

type Tournament struct {
	ID       int64     `db:"id"`
	Name     string    `db:"name"`
	Slug     string    `db:"slug"`
	CasinoID int64     `db:"casino_id"`
	EventID  *int64    `db:"event_id"`
	Date     time.Time `db:"date"`
	Time     string    `db:"time"`
	Buyin    string    `db:"buyin"`

	Fee            *string `db:"fee"`
	Points         *string `db:"points"`
	LevelTime      *string `db:"leveltime"`
	Punctuality    *string `db:"punctuality"`
	Bounty         *string `db:"bounty"`
	RegisterLevels *string `db:"registerlevels"`
	Content        *string `db:"content"`

	Draft     bool      `db:"draft"`
	CreatedAt time.Time `db:"created_at"`
}

// TournamentRow is the denormalized listing view: casino name plus, when the
// tournament belongs to an event, the event and its tour.
type TournamentRow struct {
	Tournament
	CasinoName string  `db:"casino_name"`
	EventName  *string `db:"event_name"`
	TourName   *string `db:"tour_name"`
}
