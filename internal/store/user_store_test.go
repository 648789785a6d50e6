package store

import (
	"context"
	"testing"

	users "github.com/allinlistings/admin/internal/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStoreListUsers(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	userStore := NewUserStore(db)
	ctx := context.Background()

	provider := "google"
	for _, name := range []string{"zoe", "alice", "mike"} {
		providerID := "pid-" + name
		err := userStore.CreateUser(ctx, &users.User{
			ID:         uuid.New(),
			Email:      name + "@example.com",
			Username:   name,
			Provider:   &provider,
			ProviderID: &providerID,
		})
		require.NoError(t, err)
	}

	list, err := userStore.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	// Ordered by username.
	assert.Equal(t, "alice", list[0].Username)
	assert.Equal(t, "mike", list[1].Username)
	assert.Equal(t, "zoe", list[2].Username)
	assert.Equal(t, "alice@example.com", list[0].Email)
}
