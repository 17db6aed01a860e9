package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Gin_postgres_redis_toolshare/models"
	"Gin_postgres_redis_toolshare/store"
)

func TestKeeperCommitsAndPersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	k, err := store.NewKeeper(ctx, store.NewFileStore(path))
	require.NoError(t, err)

	err = k.Update(ctx, func(s models.State) (models.State, error) {
		s.Friends = append(s.Friends, models.Friend{ID: "carol", Name: "Carol"})
		return s, nil
	})
	require.NoError(t, err)
	assert.Len(t, k.Current().Friends, 3)

	// a fresh keeper over the same file sees the committed snapshot
	k2, err := store.NewKeeper(ctx, store.NewFileStore(path))
	require.NoError(t, err)
	assert.Len(t, k2.Current().Friends, 3)
}

func TestKeeperRejectedTransitionLeavesStateAlone(t *testing.T) {
	ctx := context.Background()
	k, err := store.NewKeeper(ctx, store.NewFileStore(filepath.Join(t.TempDir(), "state.json")))
	require.NoError(t, err)

	before := k.Current()
	boom := errors.New("nope")
	err = k.Update(ctx, func(s models.State) (models.State, error) {
		s.Friends = nil
		return s, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, before, k.Current())
}

type failingStore struct{}

func (failingStore) Load(context.Context) (models.State, error) { return store.Seed(), nil }
func (failingStore) Save(context.Context, models.State) error {
	return errors.New("disk on fire")
}

func TestKeeperSaveFailureKeepsOldState(t *testing.T) {
	ctx := context.Background()
	k, err := store.NewKeeper(ctx, failingStore{})
	require.NoError(t, err)

	before := k.Current()
	err = k.Update(ctx, func(s models.State) (models.State, error) {
		s.Friends = nil
		return s, nil
	})
	assert.Error(t, err)
	assert.Equal(t, before, k.Current())
}

func TestKeeperCurrentReturnsACopy(t *testing.T) {
	ctx := context.Background()
	k, err := store.NewKeeper(ctx, store.NewFileStore(filepath.Join(t.TempDir(), "state.json")))
	require.NoError(t, err)

	got := k.Current()
	got.Circles[0].Members[0] = "mallory"
	assert.Equal(t, "you", k.Current().Circles[0].Members[0])
}
