package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Server.URL)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "notesync.db", cfg.Storage.DatabasePath)
	assert.Equal(t, "notesync-session.db", cfg.Storage.SessionPath)
	assert.Equal(t, 5*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 30*time.Second, cfg.Sync.BaseRetryDelay)
	assert.Equal(t, 5, cfg.Sync.MaxRetries)
	assert.Equal(t, PolicyPreserveLocal, cfg.Sync.ConflictPolicy)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("NOTESYNC_SERVER_URL", "https://notes.example.com")
	t.Setenv("NOTESYNC_SYNC_INTERVAL", "1m")
	t.Setenv("NOTESYNC_BASE_RETRY_DELAY", "10s")
	t.Setenv("NOTESYNC_MAX_RETRIES", "3")
	t.Setenv("NOTESYNC_CONFLICT_POLICY", "last-writer-wins")
	t.Setenv("NOTESYNC_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://notes.example.com", cfg.Server.URL)
	assert.Equal(t, time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 10*time.Second, cfg.Sync.BaseRetryDelay)
	assert.Equal(t, 3, cfg.Sync.MaxRetries)
	assert.Equal(t, PolicyLastWriterWins, cfg.Sync.ConflictPolicy)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("NOTESYNC_SYNC_INTERVAL", "often")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTESYNC_SYNC_INTERVAL")
}

func TestLoad_InvalidPolicy(t *testing.T) {
	t.Setenv("NOTESYNC_CONFLICT_POLICY", "server-wins")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTESYNC_CONFLICT_POLICY")
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("NOTESYNC_MAX_RETRIES", "many")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Sync.MaxRetries)
}
