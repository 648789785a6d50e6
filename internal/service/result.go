package service

import (
	"context"
	"log/slog"

	"github.com/allinlistings/admin/internal/form"
	"github.com/allinlistings/admin/internal/middleware"
	"github.com/allinlistings/admin/internal/store"
)

// Listing paths double as cache keys; mutations invalidate the paths whose
// pages display the entity.
const (
	PathTournaments    = "/dashboard/tournaments"
	PathCasinos        = "/dashboard/casinos"
	PathTours          = "/dashboard/tours"
	PathEvents         = "/dashboard/events"
	PathBlogPosts      = "/dashboard/blog/posts"
	PathBlogCategories = "/dashboard/blog/categories"
	PathBlogTags       = "/dashboard/blog/tags"
	PathAPICategories  = "/api/blog/categories"
	PathAPITags        = "/api/blog/tags"
)

// UpsertResult is what every upsert action returns: either a success message
// or field-scoped errors with nothing written.
type UpsertResult struct {
	Success bool
	Message string
	Errors  form.Errors
}

type DeleteResult struct {
	Success bool
	Message string
}

// DeleteEventResult overlays the two-phase confirm-then-cascade protocol on
// the shared delete shape.
type DeleteEventResult struct {
	DeleteResult
	RequiresConfirmation bool
	TournamentCount      int
}

func authenticated(ctx context.Context) bool {
	_, ok := middleware.GetUserIDFromContext(ctx)
	return ok
}

func authFailure() UpsertResult {
	return UpsertResult{Message: "Operation failed: not authenticated."}
}

func validationFailure(errs form.Errors) UpsertResult {
	return UpsertResult{Message: "Validation failed. Check the marked fields.", Errors: errs}
}

// classifyWriteError maps a slug uniqueness violation to a field error; any
// other backend error becomes a generic message and is logged.
func classifyWriteError(err error, slugColumn string) UpsertResult {
	if store.IsUniqueViolation(err, slugColumn) {
		errs := form.Errors{}
		errs.Add("slug", "This slug already exists. Choose another.")
		return UpsertResult{Message: "Failed to save.", Errors: errs}
	}
	slog.Error("database write failed", "error", err)
	return UpsertResult{Message: "Database error while saving."}
}
