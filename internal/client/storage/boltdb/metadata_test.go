package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataStorage_LastSyncTime(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStorage(t)

	// Zero time before the first successful pass.
	got, err := store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	synced := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveLastSyncTime(ctx, synced))

	got, err = store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, synced, got)
}

func TestMetadataStorage_LastSyncTimeOverwrite(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStorage(t)

	first := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(5 * time.Minute)
	require.NoError(t, store.SaveLastSyncTime(ctx, first))
	require.NoError(t, store.SaveLastSyncTime(ctx, second))

	got, err := store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestMetadataStorage_DeviceID(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStorage(t)

	deviceID, err := store.GetOrCreateDeviceID(ctx)
	require.NoError(t, err)
	_, err = uuid.Parse(deviceID)
	require.NoError(t, err)

	// Subsequent calls return the same id.
	again, err := store.GetOrCreateDeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, deviceID, again)
}

func TestMetadataStorage_DeviceIDSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := t.TempDir() + "/notesync-session.db"

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	deviceID, err := store.GetOrCreateDeviceID(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()

	again, err := store.GetOrCreateDeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, deviceID, again)
}
