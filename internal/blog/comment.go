package blog

import (
	"time"

	"github.com/google/uuid"
)

// Comments are written on the public site; the dashboard only lists and
// deletes them.
type Comment struct {
	ID        uuid.UUID `db:"id"`
	PostID    uuid.UUID `db:"post_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}
