package store

import (
	"context"
	"testing"

	"github.com/allinlistings/admin/internal/blog"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertTestPost(t *testing.T, db *sqlx.DB, store *BlogStore, authorID uuid.UUID, slug string) uuid.UUID {
	t.Helper()

	post := &blog.Post{
		ID:       uuid.New(),
		Title:    "Post " + slug,
		Slug:     slug,
		Content:  "content",
		Status:   blog.PostDraft,
		AuthorID: authorID,
	}

	tx, err := db.BeginTxx(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, store.InsertPostTx(context.Background(), tx, post))
	require.NoError(t, tx.Commit())
	return post.ID
}

func insertTestTag(t *testing.T, store *BlogStore, slug string) uuid.UUID {
	t.Helper()

	tag := &blog.Tag{ID: uuid.New(), Name: "Tag " + slug, Slug: slug}
	require.NoError(t, store.InsertTag(context.Background(), tag))
	return tag.ID
}

func TestCategoryUniqueSlug(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewBlogStore(db)
	ctx := context.Background()

	require.NoError(t, store.InsertCategory(ctx, &blog.Category{ID: uuid.New(), Name: "Strategy", Slug: "strategy"}))

	err := store.InsertCategory(ctx, &blog.Category{ID: uuid.New(), Name: "Strategy 2", Slug: "strategy"})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err, "blog_categories.slug"))

	// Tags have their own uniqueness scope, so the same slug is fine there.
	require.NoError(t, store.InsertTag(ctx, &blog.Tag{ID: uuid.New(), Name: "Strategy", Slug: "strategy"}))
}

func TestReplaceTagsTx(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewBlogStore(db)
	ctx := context.Background()

	authorID := insertTestUser(t, db)
	postID := insertTestPost(t, db, store, authorID, "gto-basics")

	a := insertTestTag(t, store, "preflop")
	b := insertTestTag(t, store, "icm")
	c := insertTestTag(t, store, "mtt")

	apply := func(tagIDs []uuid.UUID) {
		tx, err := db.BeginTxx(ctx, nil)
		require.NoError(t, err)
		require.NoError(t, store.ReplaceTagsTx(ctx, tx, postID, tagIDs))
		require.NoError(t, tx.Commit())
	}

	linked := func() []uuid.UUID {
		var ids []uuid.UUID
		require.NoError(t, db.Select(&ids, "SELECT tag_id FROM blog_post_tags WHERE post_id = ? ORDER BY tag_id", postID))
		return ids
	}

	apply([]uuid.UUID{a, b})
	assert.Len(t, linked(), 2)

	// Only the difference is written: b stays, a goes, c arrives.
	apply([]uuid.UUID{b, c})
	ids := linked()
	assert.Len(t, ids, 2)
	assert.NotContains(t, ids, a)
	assert.Contains(t, ids, b)
	assert.Contains(t, ids, c)

	// An empty selection clears the relation.
	apply(nil)
	assert.Empty(t, linked())
}

func TestGetPostDetail(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewBlogStore(db)
	ctx := context.Background()

	authorID := insertTestUser(t, db)
	postID := insertTestPost(t, db, store, authorID, "gto-basics")
	tagID := insertTestTag(t, store, "preflop")

	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, store.ReplaceTagsTx(ctx, tx, postID, []uuid.UUID{tagID}))
	require.NoError(t, tx.Commit())

	commentID := uuid.New()
	_, err = db.Exec("INSERT INTO blog_comments (id, post_id, content) VALUES (?, ?, ?)", commentID, postID, "Nice writeup")
	require.NoError(t, err)

	detail, err := store.GetPostDetail(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, "gto-basics", detail.Slug)
	assert.Equal(t, []uuid.UUID{tagID}, detail.TagIDs)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "Nice writeup", detail.Comments[0].Content)
}

func TestListPostsAggregates(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewBlogStore(db)
	ctx := context.Background()

	authorID := insertTestUser(t, db)

	category := &blog.Category{ID: uuid.New(), Name: "Strategy", Slug: "strategy"}
	require.NoError(t, store.InsertCategory(ctx, category))

	post := &blog.Post{
		ID:         uuid.New(),
		Title:      "GTO Basics",
		Slug:       "gto-basics",
		Content:    "content",
		CategoryID: &category.ID,
		Status:     blog.PostPublished,
		AuthorID:   authorID,
	}
	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, store.InsertPostTx(ctx, tx, post))
	require.NoError(t, tx.Commit())

	for i := 0; i < 2; i++ {
		_, err = db.Exec("INSERT INTO blog_comments (id, post_id, content) VALUES (?, ?, ?)", uuid.New(), post.ID, "comment")
		require.NoError(t, err)
	}

	rows, err := store.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].CategoryName)
	assert.Equal(t, "Strategy", *rows[0].CategoryName)
	assert.Equal(t, 2, rows[0].CommentCount)
}

func TestDeletePostCascades(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewBlogStore(db)
	ctx := context.Background()

	authorID := insertTestUser(t, db)
	postID := insertTestPost(t, db, store, authorID, "gto-basics")
	tagID := insertTestTag(t, store, "preflop")

	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, store.ReplaceTagsTx(ctx, tx, postID, []uuid.UUID{tagID}))
	require.NoError(t, tx.Commit())

	_, err = db.Exec("INSERT INTO blog_comments (id, post_id, content) VALUES (?, ?, ?)", uuid.New(), postID, "comment")
	require.NoError(t, err)

	require.NoError(t, store.DeletePost(ctx, postID))

	var links int
	require.NoError(t, db.Get(&links, "SELECT COUNT(*) FROM blog_post_tags WHERE post_id = ?", postID))
	assert.Equal(t, 0, links)

	comments, err := store.ListComments(ctx, postID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
