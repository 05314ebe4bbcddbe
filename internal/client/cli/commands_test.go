package cli

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/client/sync"
	"github.com/iudanet/notesync/internal/models"
)

func TestRunAddGroup(t *testing.T) {
	f := newFixture()
	f.notes.createGroupFunc = func(ctx context.Context, name, color string) (*models.Group, error) {
		assert.Equal(t, "Work", name)
		assert.Equal(t, "blue", color)
		return &models.Group{LocalID: 7, Name: name, Color: color}, nil
	}

	err := f.cli.Run(context.Background(), "add", []string{"group", "Work", "blue"})
	require.NoError(t, err)

	out := f.io.out.String()
	assert.Contains(t, out, "✓ Group created!")
	assert.Contains(t, out, "ID:   7")
}

func TestRunAddGroup_MissingName(t *testing.T) {
	f := newFixture()

	err := f.cli.Run(context.Background(), "add", []string{"group"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing group name")
}

func TestRunAddNote(t *testing.T) {
	f := newFixture("shopping list for saturday")
	f.notes.createNoteFunc = func(ctx context.Context, groupID int64, title string, content []byte) (*models.Note, error) {
		assert.Equal(t, int64(3), groupID)
		assert.Equal(t, "Groceries", title)
		assert.Equal(t, "shopping list for saturday", string(content))
		return &models.Note{LocalID: 12, GroupID: groupID, Title: title, Content: content}, nil
	}

	err := f.cli.Run(context.Background(), "add", []string{"note", "3", "Groceries"})
	require.NoError(t, err)
	assert.Contains(t, f.io.out.String(), "✓ Note created!")
}

func TestRunAddNote_BadGroupID(t *testing.T) {
	f := newFixture()

	err := f.cli.Run(context.Background(), "add", []string{"note", "abc", "Title"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid group id")
}

func TestRunAdd_UnknownType(t *testing.T) {
	f := newFixture()

	err := f.cli.Run(context.Background(), "add", []string{"folder"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown entity type")
}

func TestRunListGroups(t *testing.T) {
	f := newFixture()
	f.notes.listGroupsFunc = func(ctx context.Context) ([]*models.Group, error) {
		return []*models.Group{
			{LocalID: 1, Name: "Work", Color: "blue", NeedsSync: true},
			{LocalID: 2, Name: "Home"},
		}, nil
	}

	err := f.cli.Run(context.Background(), "list", []string{"groups"})
	require.NoError(t, err)

	out := f.io.out.String()
	assert.Contains(t, out, "Found 2 group(s)")
	assert.Contains(t, out, "1. Work")
	assert.Contains(t, out, "Synced: pending")
	assert.Contains(t, out, "2. Home")
	assert.Contains(t, out, "Synced: yes")
}

func TestRunListNotes_Empty(t *testing.T) {
	f := newFixture()
	f.notes.listNotesFunc = func(ctx context.Context) ([]*models.Note, error) {
		return nil, nil
	}

	err := f.cli.Run(context.Background(), "list", []string{"notes"})
	require.NoError(t, err)
	assert.Contains(t, f.io.out.String(), "No notes found.")
}

func TestRunGet(t *testing.T) {
	f := newFixture()
	f.notes.getNoteFunc = func(ctx context.Context, localID int64) (*models.Note, error) {
		assert.Equal(t, int64(5), localID)
		return &models.Note{
			LocalID:   5,
			GroupID:   1,
			Title:     "Meeting notes",
			Content:   []byte("discuss roadmap"),
			UpdatedAt: time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC),
		}, nil
	}

	err := f.cli.Run(context.Background(), "get", []string{"5"})
	require.NoError(t, err)

	out := f.io.out.String()
	assert.Contains(t, out, "Title:   Meeting notes")
	assert.Contains(t, out, "discuss roadmap")
	assert.Contains(t, out, "2026-04-02T09:30:00Z")
}

func TestRunGet_MissingID(t *testing.T) {
	f := newFixture()

	err := f.cli.Run(context.Background(), "get", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing note id")
}

func TestRunDelete(t *testing.T) {
	f := newFixture()

	err := f.cli.Run(context.Background(), "delete", []string{"note", "4"})
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, f.notes.deletedNotes)
	assert.Contains(t, f.io.out.String(), "✓ Note 4 deleted")

	err = f.cli.Run(context.Background(), "delete", []string{"group", "2"})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, f.notes.deletedGroups)
}

func TestRunDelete_UnknownType(t *testing.T) {
	f := newFixture()

	err := f.cli.Run(context.Background(), "delete", []string{"folder", "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown entity type")
}

func TestRunSync_NotAuthenticated(t *testing.T) {
	f := newFixture()
	f.auth.IsAuthenticatedFunc = func(ctx context.Context) (bool, error) { return false, nil }

	err := f.cli.Run(context.Background(), "sync", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
	assert.Zero(t, f.engine.forceSyncs)
}

func TestRunSync_Clean(t *testing.T) {
	f := newFixture()

	err := f.cli.Run(context.Background(), "sync", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, f.engine.forceSyncs)
	assert.Contains(t, f.io.out.String(), "✓ Synchronization completed successfully!")
}

func TestRunSync_WorkRemaining(t *testing.T) {
	f := newFixture()
	f.engine.info = &sync.DebugInfo{QueueDepth: 2, UnsyncedNotes: 1}

	err := f.cli.Run(context.Background(), "sync", nil)
	require.NoError(t, err)

	out := f.io.out.String()
	assert.Contains(t, out, "work remaining")
	assert.Contains(t, out, "Queued operations: 2")
}

func TestRunSync_Failure(t *testing.T) {
	f := newFixture()
	f.engine.forceSyncErr = fmt.Errorf("listing groups: boom")

	err := f.cli.Run(context.Background(), "sync", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "synchronization failed")
}

func TestRunDebug(t *testing.T) {
	f := newFixture()
	next := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	f.engine.info = &sync.DebugInfo{
		QueueDepth: 1,
		ReadyCount: 0,
		Operations: []sync.OperationDetail{
			{
				ID:          9,
				Kind:        models.OpUpdate,
				Table:       models.TableNotes,
				LocalID:     4,
				RetryCount:  2,
				NextRetryAt: &next,
				CreatedAt:   time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC),
			},
		},
	}

	err := f.cli.Run(context.Background(), "debug", nil)
	require.NoError(t, err)

	out := f.io.out.String()
	assert.Contains(t, out, "Queue depth:     1")
	assert.Contains(t, out, "#9 update notes local_id=4")
	assert.Contains(t, out, "retries: 2")
	assert.Contains(t, out, "next retry: 2026-04-02T10:00:00Z")
}

func TestRunDebug_EmptyQueue(t *testing.T) {
	f := newFixture()

	err := f.cli.Run(context.Background(), "debug", nil)
	require.NoError(t, err)
	assert.Contains(t, f.io.out.String(), "✓ Queue is empty")
}
