package store

import (
	"context"

	"github.com/allinlistings/admin/internal/blog"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type BlogStore struct {
	db *sqlx.DB
}

func NewBlogStore(db *sqlx.DB) *BlogStore {
	return &BlogStore{db: db}
}

// Categories

func (s *BlogStore) ListCategories(ctx context.Context) ([]blog.Category, error) {
	var categories []blog.Category
	err := s.db.SelectContext(ctx, &categories, "SELECT * FROM blog_categories ORDER BY name ASC")
	return categories, err
}

func (s *BlogStore) GetCategory(ctx context.Context, id uuid.UUID) (*blog.Category, error) {
	var category blog.Category
	err := s.db.GetContext(ctx, &category, "SELECT * FROM blog_categories WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *BlogStore) CategoryOptions(ctx context.Context) ([]blog.Option, error) {
	var options []blog.Option
	err := s.db.SelectContext(ctx, &options, "SELECT id, name FROM blog_categories ORDER BY name ASC")
	return options, err
}

func (s *BlogStore) InsertCategory(ctx context.Context, c *blog.Category) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO blog_categories (id, name, slug)
		VALUES (:id, :name, :slug)`, c)
	return err
}

func (s *BlogStore) UpdateCategory(ctx context.Context, c *blog.Category) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE blog_categories SET
		name = :name,
		slug = :slug
		WHERE id = :id`, c)
	return err
}

func (s *BlogStore) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM blog_categories WHERE id = ?", id)
	return err
}

// Tags

func (s *BlogStore) ListTags(ctx context.Context) ([]blog.Tag, error) {
	var tags []blog.Tag
	err := s.db.SelectContext(ctx, &tags, "SELECT * FROM blog_tags ORDER BY name ASC")
	return tags, err
}

func (s *BlogStore) GetTag(ctx context.Context, id uuid.UUID) (*blog.Tag, error) {
	var tag blog.Tag
	err := s.db.GetContext(ctx, &tag, "SELECT * FROM blog_tags WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (s *BlogStore) TagOptions(ctx context.Context) ([]blog.Option, error) {
	var options []blog.Option
	err := s.db.SelectContext(ctx, &options, "SELECT id, name FROM blog_tags ORDER BY name ASC")
	return options, err
}

func (s *BlogStore) InsertTag(ctx context.Context, t *blog.Tag) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO blog_tags (id, name, slug)
		VALUES (:id, :name, :slug)`, t)
	return err
}

func (s *BlogStore) UpdateTag(ctx context.Context, t *blog.Tag) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE blog_tags SET
		name = :name,
		slug = :slug
		WHERE id = :id`, t)
	return err
}

func (s *BlogStore) DeleteTag(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM blog_tags WHERE id = ?", id)
	return err
}

// Posts

func (s *BlogStore) ListPosts(ctx context.Context) ([]blog.PostRow, error) {
	var posts []blog.PostRow
	err := s.db.SelectContext(ctx, &posts, `
		SELECT p.id, p.title, p.slug, p.status, p.published_at, p.created_at,
			c.name AS category_name,
			(SELECT COUNT(*) FROM blog_comments bc WHERE bc.post_id = p.id) AS comment_count
		FROM blog_posts p
		LEFT JOIN blog_categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC`)
	return posts, err
}

// GetPostDetail loads the post together with its tag-id list and comments.
func (s *BlogStore) GetPostDetail(ctx context.Context, id uuid.UUID) (*blog.PostDetail, error) {
	var post blog.Post
	err := s.db.GetContext(ctx, &post, "SELECT * FROM blog_posts WHERE id = ?", id)
	if err != nil {
		return nil, err
	}

	var tagIDs []uuid.UUID
	err = s.db.SelectContext(ctx, &tagIDs, "SELECT tag_id FROM blog_post_tags WHERE post_id = ?", id)
	if err != nil {
		return nil, err
	}

	comments, err := s.ListComments(ctx, id)
	if err != nil {
		return nil, err
	}

	return &blog.PostDetail{Post: post, TagIDs: tagIDs, Comments: comments}, nil
}

func (s *BlogStore) InsertPostTx(ctx context.Context, tx *sqlx.Tx, p *blog.Post) error {
	_, err := tx.NamedExecContext(ctx, `INSERT INTO blog_posts
		(id, title, slug, content, category_id, featured_image_url, status, published_at, author_id)
		VALUES (:id, :title, :slug, :content, :category_id, :featured_image_url, :status, :published_at, :author_id)`, p)
	return err
}

func (s *BlogStore) UpdatePostTx(ctx context.Context, tx *sqlx.Tx, p *blog.Post) error {
	_, err := tx.NamedExecContext(ctx, `UPDATE blog_posts SET
		title = :title,
		slug = :slug,
		content = :content,
		category_id = :category_id,
		featured_image_url = :featured_image_url,
		status = :status,
		published_at = :published_at
		WHERE id = :id`, p)
	return err
}

// ReplaceTagsTx reconciles the post-tag relation against the submitted tag
// set inside the caller's transaction. Only the difference is written, so a
// post save and its tag changes commit or roll back together.
func (s *BlogStore) ReplaceTagsTx(ctx context.Context, tx *sqlx.Tx, postID uuid.UUID, tagIDs []uuid.UUID) error {
	var existing []uuid.UUID
	if err := tx.SelectContext(ctx, &existing, "SELECT tag_id FROM blog_post_tags WHERE post_id = ?", postID); err != nil {
		return err
	}

	want := make(map[uuid.UUID]bool, len(tagIDs))
	for _, id := range tagIDs {
		want[id] = true
	}
	have := make(map[uuid.UUID]bool, len(existing))
	for _, id := range existing {
		have[id] = true
	}

	var removed []uuid.UUID
	for _, id := range existing {
		if !want[id] {
			removed = append(removed, id)
		}
	}
	if len(removed) > 0 {
		query, args, err := sqlx.In("DELETE FROM blog_post_tags WHERE post_id = ? AND tag_id IN (?)", postID, removed)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return err
		}
	}

	for _, id := range tagIDs {
		if have[id] {
			continue
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO blog_post_tags (post_id, tag_id) VALUES (?, ?)", postID, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *BlogStore) DeletePost(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM blog_posts WHERE id = ?", id)
	return err
}

// Comments

func (s *BlogStore) ListComments(ctx context.Context, postID uuid.UUID) ([]blog.Comment, error) {
	var comments []blog.Comment
	err := s.db.SelectContext(ctx, &comments, "SELECT * FROM blog_comments WHERE post_id = ? ORDER BY created_at DESC", postID)
	return comments, err
}

func (s *BlogStore) DeleteComment(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM blog_comments WHERE id = ?", id)
	return err
}
