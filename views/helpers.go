package views

import (
	"context"
	"time"

	"github.com/allinlistings/admin/internal/middleware"
	users "github.com/allinlistings/admin/internal/user"
	"github.com/dustin/go-humanize"
)

func GetUser(ctx context.Context) *users.User {
	return middleware.GetAuthenticatedUser(ctx)
}

func fmtDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func fmtDatePtr(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format("2006-01-02")
}

func ago(t time.Time) string {
	return humanize.Time(t)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
