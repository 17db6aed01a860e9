package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"Gin_postgres_redis_toolshare/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const StateTable = "toolshare_state"

// StateBlob is the single keyed row holding the serialized snapshot.
type StateBlob struct {
	Key       string `gorm:"primaryKey;size:120"`
	Blob      []byte `gorm:"type:bytea;not null"`
	UpdatedAt time.Time
}

func (StateBlob) TableName() string { return StateTable }

// ConnectDB opens Postgres from the usual DB_* env vars and migrates the
// blob table.
func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := db.AutoMigrate(&StateBlob{}); err != nil {
		log.Fatal("Failed to migrate state table: ", err)
	}
	log.Println("Database connected")
	return db
}

// PostgresStore keeps the snapshot in one upserted row.
type PostgresStore struct {
	db  *gorm.DB
	key string
}

func NewPostgresStore(db *gorm.DB, key string) *PostgresStore {
	return &PostgresStore{db: db, key: key}
}

func (p *PostgresStore) Load(ctx context.Context) (models.State, error) {
	var row StateBlob
	err := p.db.WithContext(ctx).First(&row, "key = ?", p.key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Seed(), nil
	}
	if err != nil {
		return models.State{}, err
	}
	s, err := decode(row.Blob)
	if err != nil {
		return Seed(), nil
	}
	return s, nil
}

func (p *PostgresStore) Save(ctx context.Context, s models.State) error {
	b, err := encode(s)
	if err != nil {
		return err
	}
	row := StateBlob{Key: p.key, Blob: b, UpdatedAt: time.Now().UTC()}
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}
