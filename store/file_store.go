package store

import (
	"context"
	"os"

	"Gin_postgres_redis_toolshare/models"
)

// FileStore keeps the snapshot in one local JSON file. Default backend for
// single-machine use.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

func (f *FileStore) Load(_ context.Context) (models.State, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return Seed(), nil
	}
	s, err := decode(b)
	if err != nil {
		return Seed(), nil
	}
	return s, nil
}

func (f *FileStore) Save(_ context.Context, s models.State) error {
	b, err := encode(s)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, b, 0o644)
}
