package app

import (
	"context"
	"log"
	"os"
	"time"

	"Gin_postgres_redis_toolshare/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Aliases so handlers stay short.
type Ctx = gin.Context
type H = gin.H

// App aggregates the dependencies handlers need.
type App struct {
	Router *gin.Engine
	RDB    *redis.Client
	DB     *gorm.DB
	Keeper *store.Keeper
	Config Config
}

// Config comes from environment variables.
type Config struct {
	Port         string
	StoreBackend string // file | redis | postgres
	StateFile    string
	StateKey     string
	RedisAddr    string
	RedisPwd     string
	WebOrigin    string
}

func MustNew() *App {
	cfg := loadConfig()

	var (
		st  store.Store
		rdb *redis.Client
		db  *gorm.DB
	)
	switch cfg.StoreBackend {
	case "redis":
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis: %v", err)
		}
		st = store.NewRedisStore(rdb, cfg.StateKey)
	case "postgres":
		db = store.ConnectDB()
		st = store.NewPostgresStore(db, cfg.StateKey)
	default:
		st = store.NewFileStore(cfg.StateFile)
	}

	keeper, err := store.NewKeeper(context.Background(), st)
	if err != nil {
		log.Fatalf("load state: %v", err)
	}

	r := gin.Default()
	useCORS(r, cfg.WebOrigin)
	return &App{Router: r, RDB: rdb, DB: db, Keeper: keeper, Config: cfg}
}

func (a *App) Close() {
	if a.RDB != nil {
		_ = a.RDB.Close()
	}
}

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	return Config{
		Port:         get("PORT", "3001"),
		StoreBackend: get("STORE_BACKEND", "file"),
		StateFile:    get("STATE_FILE", "toolshare_state.json"),
		StateKey:     get("STATE_KEY", "toolshare_state_final_v9"),
		RedisAddr:    get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:     os.Getenv("REDIS_PASSWORD"),
		WebOrigin:    get("WEB_ORIGIN", "http://localhost:3000"),
	}
}
