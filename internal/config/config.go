package config

import (
	"os"
	"strconv"
	"time"

	"todoapp/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort  string
	LogLevel string
	LogJSON  bool

	// Persistence backend: memory, file, redis or postgres.
	StoreBackend string
	StorePath    string
	DatabaseURL  string
	RedisAddr    string
	RedisPass    string
	RedisDB      int
	SaveDebounce time.Duration

	// Where Add inserts new todos: prepend (newest first) or append.
	InsertOrder string

	// API rate limit (fixed window, per client IP)
	APIRateLimit  int
	APIRateWindow time.Duration

	// Due-date notification sweep
	DueCheckInterval time.Duration
}

// Load reads configuration from the environment (with .env support).
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:          getString("APP_PORT", "8080"),
		LogLevel:         getString("LOG_LEVEL", "info"),
		LogJSON:          os.Getenv("LOG_JSON") == "true",
		StoreBackend:     getString("STORE_BACKEND", "memory"),
		StorePath:        getString("STORE_PATH", "data/todos.json"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getInt("REDIS_DB", 0),
		SaveDebounce:     time.Duration(getInt("SAVE_DEBOUNCE_MS", 250)) * time.Millisecond,
		InsertOrder:      getString("INSERT_ORDER", "prepend"),
		APIRateLimit:     getInt("API_RATE_LIMIT", 120),
		APIRateWindow:    time.Duration(getInt("API_RATE_WINDOW_SECONDS", 60)) * time.Second,
		DueCheckInterval: time.Duration(getInt("DUE_CHECK_INTERVAL_SECONDS", 1800)) * time.Second,
	}

	switch cfg.StoreBackend {
	case "memory", "file", "redis", "postgres":
	default:
		logger.Fatal("unknown STORE_BACKEND", "backend", cfg.StoreBackend)
	}
	if cfg.StoreBackend == "postgres" && cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required with STORE_BACKEND=postgres")
	}
	if cfg.StoreBackend == "redis" && cfg.RedisAddr == "" {
		logger.Fatal("REDIS_ADDR is required with STORE_BACKEND=redis")
	}
	if cfg.InsertOrder != "prepend" && cfg.InsertOrder != "append" {
		logger.Fatal("INSERT_ORDER must be prepend or append", "order", cfg.InsertOrder)
	}

	return cfg
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
