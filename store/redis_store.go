package store

import (
	"context"
	"errors"

	"Gin_postgres_redis_toolshare/models"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the snapshot under a single key, no TTL.
type RedisStore struct {
	rdb *redis.Client
	key string
}

func NewRedisStore(rdb *redis.Client, key string) *RedisStore {
	return &RedisStore{rdb: rdb, key: key}
}

func (r *RedisStore) Load(ctx context.Context) (models.State, error) {
	b, err := r.rdb.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Seed(), nil
	}
	if err != nil {
		return models.State{}, err
	}
	s, err := decode(b)
	if err != nil {
		return Seed(), nil
	}
	return s, nil
}

func (r *RedisStore) Save(ctx context.Context, s models.State) error {
	b, err := encode(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, r.key, b, 0).Err()
}
