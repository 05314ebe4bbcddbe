package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/client/storage"
)

func testAuthData() *storage.AuthData {
	return &storage.AuthData{
		Email:        "user@example.com",
		UserID:       "u-1",
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	}
}

func TestAuthStorage_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStorage(t)

	auth := testAuthData()
	require.NoError(t, store.SaveAuth(ctx, auth))

	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth, got)
}

func TestAuthStorage_GetNotFound(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStorage(t)

	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestAuthStorage_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStorage(t)

	require.NoError(t, store.SaveAuth(ctx, testAuthData()))

	updated := testAuthData()
	updated.AccessToken = "new-access-token"
	require.NoError(t, store.SaveAuth(ctx, updated))

	got, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-access-token", got.AccessToken)
}

func TestAuthStorage_Delete(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStorage(t)

	require.NoError(t, store.SaveAuth(ctx, testAuthData()))
	require.NoError(t, store.DeleteAuth(ctx))

	_, err := store.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestAuthStorage_DeleteWithoutSession(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStorage(t)

	// The auth service treats this as an already-logged-out state.
	err := store.DeleteAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}
