package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/client/storage"
)

func TestGroupStorage_InsertAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	group := testGroup("Work")
	group.Color = "blue"

	localID, err := s.InsertGroup(ctx, group)
	require.NoError(t, err)
	assert.Positive(t, localID)
	assert.Equal(t, localID, group.LocalID)

	got, err := s.GetGroupByID(ctx, localID)
	require.NoError(t, err)
	assert.Equal(t, "Work", got.Name)
	assert.Equal(t, "blue", got.Color)
	assert.Equal(t, int64(1), got.Version)
	assert.True(t, got.NeedsSync)
	assert.False(t, got.Deleted)
	assert.Empty(t, got.RemoteID)
	// Timestamps survive with millisecond precision.
	assert.WithinDuration(t, group.CreatedAt, got.CreatedAt, time.Millisecond)
	assert.WithinDuration(t, group.UpdatedAt, got.UpdatedAt, time.Millisecond)
}

func TestGroupStorage_GetNotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetGroupByID(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrGroupNotFound)

	_, err = s.GetGroupByRemoteID(ctx, "g-missing")
	assert.ErrorIs(t, err, storage.ErrGroupNotFound)
}

func TestGroupStorage_Update(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	group := testGroup("Work")
	_, err := s.InsertGroup(ctx, group)
	require.NoError(t, err)

	group.RemoteID = "g-1"
	group.Name = "Projects"
	group.Version = 4
	group.NeedsSync = false
	group.UpdatedAt = time.Now().Add(time.Minute)
	require.NoError(t, s.UpdateGroup(ctx, group))

	got, err := s.GetGroupByID(ctx, group.LocalID)
	require.NoError(t, err)
	assert.Equal(t, "g-1", got.RemoteID)
	assert.Equal(t, "Projects", got.Name)
	assert.Equal(t, int64(4), got.Version)
	assert.False(t, got.NeedsSync)

	byRemote, err := s.GetGroupByRemoteID(ctx, "g-1")
	require.NoError(t, err)
	assert.Equal(t, group.LocalID, byRemote.LocalID)
}

func TestGroupStorage_UpdateNotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	group := testGroup("Ghost")
	group.LocalID = 42

	err := s.UpdateGroup(ctx, group)
	assert.ErrorIs(t, err, storage.ErrGroupNotFound)
}

func TestGroupStorage_SoftDelete(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	group := testGroup("Work")
	_, err := s.InsertGroup(ctx, group)
	require.NoError(t, err)

	require.NoError(t, s.SoftDeleteGroup(ctx, group.LocalID))

	// Hidden from the default listings and lookups.
	_, err = s.GetGroupByID(ctx, group.LocalID)
	assert.ErrorIs(t, err, storage.ErrGroupNotFound)

	groups, err := s.ListGroups(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)

	// Still reachable for the sync engine.
	got, err := s.GetGroupByIDIncludingDeleted(ctx, group.LocalID)
	require.NoError(t, err)
	assert.True(t, got.Deleted)
	assert.True(t, got.NeedsSync)

	all, err := s.ListGroupsIncludingDeleted(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGroupStorage_SoftDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.SoftDeleteGroup(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrGroupNotFound)
}

func TestGroupStorage_RemoteLookupIncludesDeleted(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	group := testGroup("Work")
	group.RemoteID = "g-1"
	_, err := s.InsertGroup(ctx, group)
	require.NoError(t, err)
	require.NoError(t, s.SoftDeleteGroup(ctx, group.LocalID))

	// The resolver matches remote rows against tombstones too.
	got, err := s.GetGroupByRemoteID(ctx, "g-1")
	require.NoError(t, err)
	assert.True(t, got.Deleted)
}

func TestGroupStorage_ListOrder(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		_, err := s.InsertGroup(ctx, testGroup(name))
		require.NoError(t, err)
	}

	groups, err := s.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "Alpha", groups[0].Name)
	assert.Equal(t, "Gamma", groups[2].Name)
}
