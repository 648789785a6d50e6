package service

import (
	"context"
	"testing"

	"github.com/allinlistings/admin/internal/store"
	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrCreateUserByProvider(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	service := NewUserService(store.NewUserStore(db))
	ctx := context.Background()

	gothUser := goth.User{
		Provider:  "google",
		UserID:    "google-123",
		Email:     "admin@example.com",
		Name:      "Admin",
		NickName:  "admin",
		AvatarURL: "https://example.com/avatar.png",
	}

	created, err := service.FindOrCreateUserByProvider(ctx, gothUser)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "admin@example.com", created.Email)

	// A second login with the same provider identity returns the same row.
	found, err := service.FindOrCreateUserByProvider(ctx, gothUser)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// A changed nickname or avatar is synced on login.
	gothUser.NickName = "admin-renamed"
	updated, err := service.FindOrCreateUserByProvider(ctx, gothUser)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "admin-renamed", updated.Username)
}
