package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/models"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "notesync-test.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)

	return s, func() {
		require.NoError(t, s.Close())
	}
}

func TestNew_InvalidPath(t *testing.T) {
	_, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "nested", "db.sqlite"))
	require.Error(t, err)
}

func TestNew_Reopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "notesync-test.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)

	_, err = s.InsertGroup(ctx, testGroup("Work"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopening applies migrations idempotently and keeps the data.
	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer s.Close()

	groups, err := s.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Equal(t, "Work", groups[0].Name)
}

func testGroup(name string) *models.Group {
	now := time.Now()
	return &models.Group{
		Name:      name,
		Version:   1,
		NeedsSync: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func testNote(groupID int64, title string) *models.Note {
	now := time.Now()
	return &models.Note{
		GroupID:   groupID,
		Title:     title,
		Content:   []byte("note body"),
		Version:   1,
		NeedsSync: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
