package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Gin_postgres_redis_toolshare/models"
	"Gin_postgres_redis_toolshare/store"
)

func TestSeed(t *testing.T) {
	s := store.Seed()

	assert.Equal(t, "you", s.User.ID)
	require.Len(t, s.Friends, 2)
	require.Len(t, s.Circles, 1)
	assert.Equal(t, "Family", s.Circles[0].Name)
	assert.True(t, s.Circles[0].HasMember("you"))
	assert.Contains(t, s.User.Circles, s.Circles[0].ID)

	require.Len(t, s.Items, 2)
	assert.Equal(t, "Spray Painter", s.Items[0].Title)
	assert.Equal(t, "you", s.Items[0].OwnerID)
	assert.Equal(t, "18V Drill + Bits", s.Items[1].Title)
	assert.Equal(t, "alice", s.Items[1].OwnerID)

	assert.Empty(t, s.Requests)
	assert.Empty(t, s.Loans)
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	fs := store.NewFileStore(path)

	saved := store.Seed()
	saved.Requests = []models.Request{{
		ID: "r1", ItemID: saved.Items[0].ID, BorrowerID: "bob",
		StartDate: "2024-06-01", EndDate: "2024-06-03",
		Status: models.RequestPending, CreatedAt: saved.Items[0].CreatedAt,
	}}
	require.NoError(t, fs.Save(ctx, saved))

	loaded, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestFileStoreMissingFileFallsBackToSeed(t *testing.T) {
	fs := store.NewFileStore(filepath.Join(t.TempDir(), "never_written.json"))

	s, err := fs.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "you", s.User.ID)
	require.Len(t, s.Items, 2)
}

func TestFileStoreCorruptBlobFallsBackToSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json at all"), 0o644))

	s, err := store.NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "you", s.User.ID)
	assert.Equal(t, "Family", s.Circles[0].Name)
}
