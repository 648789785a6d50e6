package blog

import (
	"time"

	"github.com/google/uuid"
)

// Categories and tags share the same shape; they live in separate tables
// with separate slug-uniqueness scopes.

type Category struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	CreatedAt time.Time `db:"created_at"`
}

type Tag struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	CreatedAt time.Time `db:"created_at"`
}

// Option is the {id, name} pair served by the JSON endpoints that refresh
// the post form selects.
type Option struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name"`
}
