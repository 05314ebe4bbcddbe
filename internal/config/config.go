package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the full client configuration.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Sync    SyncConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	URL            string
	RequestTimeout time.Duration
}

type StorageConfig struct {
	DatabasePath string // SQLite: entities, queue, conflict log
	SessionPath  string // BoltDB: session and sync metadata
}

type SyncConfig struct {
	Interval       time.Duration // periodic pass interval
	BaseRetryDelay time.Duration // linear backoff unit
	MaxRetries     int           // queue eviction threshold
	ConflictPolicy string        // "preserve-local" or "last-writer-wins"
}

type LoggingConfig struct {
	Level string
}

// Conflict policy values accepted in NOTESYNC_CONFLICT_POLICY.
const (
	PolicyPreserveLocal  = "preserve-local"
	PolicyLastWriterWins = "last-writer-wins"
)

// Load reads configuration from the environment, with an optional .env file.
func Load() (*Config, error) {
	godotenv.Load()

	requestTimeout, err := time.ParseDuration(getEnv("NOTESYNC_REQUEST_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid NOTESYNC_REQUEST_TIMEOUT: %w", err)
	}

	interval, err := time.ParseDuration(getEnv("NOTESYNC_SYNC_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid NOTESYNC_SYNC_INTERVAL: %w", err)
	}

	baseDelay, err := time.ParseDuration(getEnv("NOTESYNC_BASE_RETRY_DELAY", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid NOTESYNC_BASE_RETRY_DELAY: %w", err)
	}

	policy := getEnv("NOTESYNC_CONFLICT_POLICY", PolicyPreserveLocal)
	if policy != PolicyPreserveLocal && policy != PolicyLastWriterWins {
		return nil, fmt.Errorf("invalid NOTESYNC_CONFLICT_POLICY: %q", policy)
	}

	return &Config{
		Server: ServerConfig{
			URL:            getEnv("NOTESYNC_SERVER_URL", "http://localhost:8080"),
			RequestTimeout: requestTimeout,
		},
		Storage: StorageConfig{
			DatabasePath: getEnv("NOTESYNC_DB_PATH", "notesync.db"),
			SessionPath:  getEnv("NOTESYNC_SESSION_PATH", "notesync-session.db"),
		},
		Sync: SyncConfig{
			Interval:       interval,
			BaseRetryDelay: baseDelay,
			MaxRetries:     getEnvAsInt("NOTESYNC_MAX_RETRIES", 5),
			ConflictPolicy: policy,
		},
		Logging: LoggingConfig{
			Level: getEnv("NOTESYNC_LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
