package store

import (
	"context"
	"sync"

	"Gin_postgres_redis_toolshare/models"
)

// Keeper holds the current snapshot and is the only writer. Every update
// runs a pure transition on a clone, persists the result, and only then
// replaces the in-memory state; a rejected or unsaved transition leaves the
// committed snapshot untouched.
type Keeper struct {
	mu    sync.Mutex
	store Store
	cur   models.State
}

func NewKeeper(ctx context.Context, st Store) (*Keeper, error) {
	s, err := st.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Keeper{store: st, cur: s}, nil
}

// Current returns a clone of the committed snapshot.
func (k *Keeper) Current() models.State {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.cur.Clone()
}

// Update applies fn to a clone of the current snapshot and commits the
// result after a successful save.
func (k *Keeper) Update(ctx context.Context, fn func(models.State) (models.State, error)) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	next, err := fn(k.cur.Clone())
	if err != nil {
		return err
	}
	if err := k.store.Save(ctx, next); err != nil {
		return err
	}
	k.cur = next
	return nil
}
