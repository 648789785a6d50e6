package service

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/allinlistings/admin/internal/blog"
	"github.com/allinlistings/admin/internal/cache"
	"github.com/allinlistings/admin/internal/middleware"
	"github.com/allinlistings/admin/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type BlogService struct {
	db    *sqlx.DB
	store *store.BlogStore
	cache *cache.Cache
}

func NewBlogService(db *sqlx.DB, store *store.BlogStore, cache *cache.Cache) *BlogService {
	return &BlogService{db: db, store: store, cache: cache}
}

// Reads

func (s *BlogService) ListPosts(ctx context.Context) ([]blog.PostRow, error) {
	if cached, ok := s.cache.Get(PathBlogPosts); ok {
		if posts, ok := cached.([]blog.PostRow); ok {
			return posts, nil
		}
	}
	posts, err := s.store.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(PathBlogPosts, posts)
	return posts, nil
}

func (s *BlogService) GetPostDetail(ctx context.Context, id uuid.UUID) (*blog.PostDetail, error) {
	return s.store.GetPostDetail(ctx, id)
}

func (s *BlogService) ListCategories(ctx context.Context) ([]blog.Category, error) {
	return s.store.ListCategories(ctx)
}

func (s *BlogService) GetCategory(ctx context.Context, id uuid.UUID) (*blog.Category, error) {
	return s.store.GetCategory(ctx, id)
}

func (s *BlogService) ListTags(ctx context.Context) ([]blog.Tag, error) {
	return s.store.ListTags(ctx)
}

func (s *BlogService) GetTag(ctx context.Context, id uuid.UUID) (*blog.Tag, error) {
	return s.store.GetTag(ctx, id)
}

// CategoryOptions backs both the JSON refresh endpoint and the post form
// select; entries are cached until a category mutation invalidates them.
func (s *BlogService) CategoryOptions(ctx context.Context) ([]blog.Option, error) {
	if cached, ok := s.cache.Get(PathAPICategories); ok {
		if options, ok := cached.([]blog.Option); ok {
			return options, nil
		}
	}
	options, err := s.store.CategoryOptions(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(PathAPICategories, options)
	return options, nil
}

func (s *BlogService) TagOptions(ctx context.Context) ([]blog.Option, error) {
	if cached, ok := s.cache.Get(PathAPITags); ok {
		if options, ok := cached.([]blog.Option); ok {
			return options, nil
		}
	}
	options, err := s.store.TagOptions(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(PathAPITags, options)
	return options, nil
}

// Categories

func (s *BlogService) UpsertCategory(ctx context.Context, values url.Values) UpsertResult {
	if !authenticated(ctx) {
		return authFailure()
	}

	category, errs := blog.ParseCategoryForm(values)
	if errs != nil {
		return validationFailure(errs)
	}

	update := category.ID != uuid.Nil
	if !update {
		category.ID = uuid.New()
	}

	var err error
	if update {
		err = s.store.UpdateCategory(ctx, category)
	} else {
		err = s.store.InsertCategory(ctx, category)
	}
	if err != nil {
		return classifyWriteError(err, "blog_categories.slug")
	}

	s.cache.Invalidate(PathBlogCategories, PathAPICategories)
	if update {
		return UpsertResult{Success: true, Message: "Category updated."}
	}
	return UpsertResult{Success: true, Message: "Category created."}
}

func (s *BlogService) DeleteCategory(ctx context.Context, id string) DeleteResult {
	return s.deleteByUUID(ctx, id, "category", s.store.DeleteCategory, PathBlogCategories, PathAPICategories)
}

// Tags

func (s *BlogService) UpsertTag(ctx context.Context, values url.Values) UpsertResult {
	if !authenticated(ctx) {
		return authFailure()
	}

	tag, errs := blog.ParseTagForm(values)
	if errs != nil {
		return validationFailure(errs)
	}

	update := tag.ID != uuid.Nil
	if !update {
		tag.ID = uuid.New()
	}

	var err error
	if update {
		err = s.store.UpdateTag(ctx, tag)
	} else {
		err = s.store.InsertTag(ctx, tag)
	}
	if err != nil {
		return classifyWriteError(err, "blog_tags.slug")
	}

	s.cache.Invalidate(PathBlogTags, PathAPITags)
	if update {
		return UpsertResult{Success: true, Message: "Tag updated."}
	}
	return UpsertResult{Success: true, Message: "Tag created."}
}

func (s *BlogService) DeleteTag(ctx context.Context, id string) DeleteResult {
	return s.deleteByUUID(ctx, id, "tag", s.store.DeleteTag, PathBlogTags, PathAPITags)
}

// Posts

// UpsertPost writes the post row and reconciles its tag links in a single
// transaction.
func (s *BlogService) UpsertPost(ctx context.Context, values url.Values) UpsertResult {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return authFailure()
	}

	input, errs := blog.ParsePostForm(values)
	if errs != nil {
		return validationFailure(errs)
	}

	update := input.ID != uuid.Nil
	if !update {
		input.ID = uuid.New()
		input.AuthorID = userID
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		slog.Error("failed to begin post upsert", "error", err)
		return UpsertResult{Message: "Database error while saving."}
	}
	defer tx.Rollback()

	if update {
		err = s.store.UpdatePostTx(ctx, tx, &input.Post)
	} else {
		err = s.store.InsertPostTx(ctx, tx, &input.Post)
	}
	if err != nil {
		return classifyWriteError(err, "blog_posts.slug")
	}

	if err := s.store.ReplaceTagsTx(ctx, tx, input.ID, input.TagIDs); err != nil {
		slog.Error("failed to update post tags", "post", input.ID, "error", err)
		return UpsertResult{Message: "Failed to update the post tags."}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit post upsert", "post", input.ID, "error", err)
		return UpsertResult{Message: "Database error while saving."}
	}

	s.cache.Invalidate(PathBlogPosts)
	if update {
		return UpsertResult{Success: true, Message: "Post updated."}
	}
	return UpsertResult{Success: true, Message: "Post created."}
}

func (s *BlogService) DeletePost(ctx context.Context, id string) DeleteResult {
	return s.deleteByUUID(ctx, id, "post", s.store.DeletePost, PathBlogPosts)
}

// Comments

func (s *BlogService) DeleteComment(ctx context.Context, id string) DeleteResult {
	return s.deleteByUUID(ctx, id, "comment", s.store.DeleteComment, PathBlogPosts)
}

// deleteByUUID validates the id shape before touching the backend; malformed
// ids never reach the store.
func (s *BlogService) deleteByUUID(ctx context.Context, id, kind string, del func(context.Context, uuid.UUID) error, invalidate ...string) DeleteResult {
	if !authenticated(ctx) {
		return DeleteResult{Message: "Operation failed: not authenticated."}
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return DeleteResult{Message: "Invalid " + kind + " ID."}
	}

	if err := del(ctx, parsed); err != nil {
		slog.Error("failed to delete "+kind, "id", parsed, "error", err)
		return DeleteResult{Message: "Failed to delete the " + kind + "."}
	}

	s.cache.Invalidate(invalidate...)
	return DeleteResult{Success: true, Message: capitalize(kind) + " deleted."}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
