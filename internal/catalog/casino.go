package catalog

import "time"

type Casino struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	Logo      string    `db:"logo"`
	Color     string    `db:"color"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

// CasinoStar is a rating sub-row shown alongside the casino listing.
type CasinoStar struct {
	ID       int64   `db:"id"`
	CasinoID int64   `db:"casino_id"`
	Category string  `db:"category"`
	Score    float64 `db:"score"`
}

type CasinoWithStars struct {
	Casino
	Stars []CasinoStar
}
