package store

import (
	"context"
	"testing"

	"github.com/allinlistings/admin/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCasinoInsertAndGet(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewCasinoStore(db)
	ctx := context.Background()

	id, err := store.Insert(ctx, &catalog.Casino{
		Name:    "Kings Resort",
		Slug:    "kings-resort",
		Logo:    "https://cdn.example.com/kings.png",
		Color:   "#1A6E46",
		Content: "The largest poker room in Europe.",
	})
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	fetched, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Kings Resort", fetched.Name)
	assert.Equal(t, "kings-resort", fetched.Slug)
	assert.False(t, fetched.CreatedAt.IsZero())
}

func TestCasinoUniqueSlug(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewCasinoStore(db)
	ctx := context.Background()

	insertTestCasino(t, db, "kings-resort")

	_, err := store.Insert(ctx, &catalog.Casino{
		Name:    "Another Kings",
		Slug:    "kings-resort",
		Logo:    "https://cdn.example.com/other.png",
		Color:   "#F00",
		Content: "content",
	})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err, "casinos.slug"))
	assert.False(t, IsUniqueViolation(err, "tours.slug"))
}

func TestCasinoListAttachesStars(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewCasinoStore(db)
	ctx := context.Background()

	first := insertTestCasino(t, db, "aria")
	second := insertTestCasino(t, db, "bellagio")

	_, err := db.Exec("INSERT INTO casino_stars (casino_id, category, score) VALUES (?, ?, ?)", first, "service", 4.5)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO casino_stars (casino_id, category, score) VALUES (?, ?, ?)", first, "structure", 3.0)
	require.NoError(t, err)

	casinos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, casinos, 2)

	byID := make(map[int64]catalog.CasinoWithStars)
	for _, c := range casinos {
		byID[c.ID] = c
	}
	assert.Len(t, byID[first].Stars, 2)
	assert.Empty(t, byID[second].Stars)
}

func TestCasinoUpdate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewCasinoStore(db)
	ctx := context.Background()

	id := insertTestCasino(t, db, "aria")

	casino, err := store.Get(ctx, id)
	require.NoError(t, err)

	casino.Name = "Aria Resort"
	casino.Color = "#000"
	require.NoError(t, store.Update(ctx, casino))

	fetched, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Aria Resort", fetched.Name)
	assert.Equal(t, "#000", fetched.Color)
}

func TestCasinoDelete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewCasinoStore(db)
	ctx := context.Background()

	id := insertTestCasino(t, db, "aria")
	require.NoError(t, store.Delete(ctx, id))

	_, err := store.Get(ctx, id)
	assert.Error(t, err)
}
