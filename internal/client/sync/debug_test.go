package sync

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/models"
)

func TestDebugInfo(t *testing.T) {
	store := newMemStore()
	now := time.Now()
	groupID := store.addGroup(models.Group{Name: "Dirty", NeedsSync: true, UpdatedAt: now})
	store.addNote(models.Note{Title: "Dirty too", GroupID: groupID, NeedsSync: true, UpdatedAt: now})
	store.addNote(models.Note{Title: "Clean", GroupID: groupID, RemoteID: "n-1", UpdatedAt: now})

	later := now.Add(time.Hour)
	enqueue(t, store, models.SyncOperation{
		Kind:    models.OpCreate,
		Table:   models.TableGroups,
		LocalID: groupID,
		Payload: json.RawMessage(`{}`),
	})
	enqueue(t, store, models.SyncOperation{
		Kind:        models.OpUpdate,
		Table:       models.TableNotes,
		LocalID:     2,
		Payload:     json.RawMessage(`{}`),
		RetryCount:  2,
		NextRetryAt: &later,
	})

	engine := newTestEngine(store, quietRemote(), Config{})

	info, err := engine.DebugInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, info.QueueDepth)
	assert.Equal(t, 1, info.ReadyCount, "the rescheduled operation is not ready yet")
	assert.Equal(t, 1, info.UnsyncedGroups)
	assert.Equal(t, 1, info.UnsyncedNotes)

	require.Len(t, info.Operations, 2)
	assert.Equal(t, models.OpCreate, info.Operations[0].Kind)
	assert.Equal(t, 2, info.Operations[1].RetryCount)
	require.NotNil(t, info.Operations[1].NextRetryAt)
}
