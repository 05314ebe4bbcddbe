package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/client/storage"
)

func TestNoteStorage_InsertAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	group := testGroup("Work")
	_, err := s.InsertGroup(ctx, group)
	require.NoError(t, err)

	note := testNote(group.LocalID, "Meeting notes")
	localID, err := s.InsertNote(ctx, note)
	require.NoError(t, err)
	assert.Positive(t, localID)

	got, err := s.GetNoteByID(ctx, localID)
	require.NoError(t, err)
	assert.Equal(t, "Meeting notes", got.Title)
	assert.Equal(t, []byte("note body"), got.Content)
	assert.Equal(t, group.LocalID, got.GroupID)
	assert.True(t, got.NeedsSync)
}

func TestNoteStorage_GetNotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetNoteByID(ctx, 999)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)

	_, err = s.GetNoteByRemoteID(ctx, "n-missing")
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)
}

func TestNoteStorage_Update(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	group := testGroup("Work")
	_, err := s.InsertGroup(ctx, group)
	require.NoError(t, err)

	note := testNote(group.LocalID, "Draft")
	_, err = s.InsertNote(ctx, note)
	require.NoError(t, err)

	note.RemoteID = "n-1"
	note.Title = "Final"
	note.Content = []byte("updated body")
	note.NeedsSync = false
	require.NoError(t, s.UpdateNote(ctx, note))

	got, err := s.GetNoteByRemoteID(ctx, "n-1")
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, []byte("updated body"), got.Content)
	assert.False(t, got.NeedsSync)
}

func TestNoteStorage_UpdateNotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	note := testNote(1, "Ghost")
	note.LocalID = 42

	err := s.UpdateNote(ctx, note)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)
}

func TestNoteStorage_SoftDelete(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	group := testGroup("Work")
	_, err := s.InsertGroup(ctx, group)
	require.NoError(t, err)

	note := testNote(group.LocalID, "Old")
	_, err = s.InsertNote(ctx, note)
	require.NoError(t, err)

	require.NoError(t, s.SoftDeleteNote(ctx, note.LocalID))

	_, err = s.GetNoteByID(ctx, note.LocalID)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)

	notes, err := s.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	got, err := s.GetNoteByIDIncludingDeleted(ctx, note.LocalID)
	require.NoError(t, err)
	assert.True(t, got.Deleted)
	assert.True(t, got.NeedsSync)
}

func TestNoteStorage_ListSeveralGroups(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	work := testGroup("Work")
	_, err := s.InsertGroup(ctx, work)
	require.NoError(t, err)
	home := testGroup("Home")
	_, err = s.InsertGroup(ctx, home)
	require.NoError(t, err)

	_, err = s.InsertNote(ctx, testNote(work.LocalID, "Standup"))
	require.NoError(t, err)
	_, err = s.InsertNote(ctx, testNote(home.LocalID, "Groceries"))
	require.NoError(t, err)

	notes, err := s.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, work.LocalID, notes[0].GroupID)
	assert.Equal(t, home.LocalID, notes[1].GroupID)
}
