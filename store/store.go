package store

import (
	"context"

	"Gin_postgres_redis_toolshare/models"

	jsoniter "github.com/json-iterator/go"
)

// Store persists the full snapshot as one opaque blob. Load never fails on
// missing or unparsable data: it falls back to the seed snapshot so a corrupt
// blob cannot break startup. Errors are reserved for backend trouble
// (connection refused, permission denied on write, ...).
type Store interface {
	Load(ctx context.Context) (models.State, error)
	Save(ctx context.Context, s models.State) error
}

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

func encode(s models.State) ([]byte, error) {
	return codec.Marshal(s)
}

func decode(b []byte) (models.State, error) {
	var s models.State
	if err := codec.Unmarshal(b, &s); err != nil {
		return models.State{}, err
	}
	return s, nil
}
