package blog

import (
	"time"

	"github.com/google/uuid"
)

type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
)

type Post struct {
	ID               uuid.UUID  `db:"id"`
	Title            string     `db:"title"`
	Slug             string     `db:"slug"`
	Content          string     `db:"content"`
	CategoryID       *uuid.UUID `db:"category_id"`
	FeaturedImageURL *string    `db:"featured_image_url"`
	Status           PostStatus `db:"status"`
	PublishedAt      *time.Time `db:"published_at"`
	AuthorID         uuid.UUID  `db:"author_id"`
	CreatedAt        time.Time  `db:"created_at"`
}

// PostRow is the listing view: category name plus a comment count aggregate.
type PostRow struct {
	ID           uuid.UUID  `db:"id"`
	Title        string     `db:"title"`
	Slug         string     `db:"slug"`
	Status       PostStatus `db:"status"`
	CategoryName *string    `db:"category_name"`
	CommentCount int        `db:"comment_count"`
	PublishedAt  *time.Time `db:"published_at"`
	CreatedAt    time.Time  `db:"created_at"`
}

// PostDetail backs the edit page: the row, its tag ids and its comments.
type PostDetail struct {
	Post
	TagIDs   []uuid.UUID
	Comments []Comment
}
