package catalog

import "time"

type Tour struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	Logo      *string   `db:"logo"`
	CreatedAt time.Time `db:"created_at"`
}
