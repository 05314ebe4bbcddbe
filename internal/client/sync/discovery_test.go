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

func TestDiscovery_SynthesizesOperationsForDirtyEntities(t *testing.T) {
	store := newMemStore()
	now := time.Now()
	createID := store.addGroup(models.Group{Name: "NeverPushed", NeedsSync: true, UpdatedAt: now})
	updateID := store.addGroup(models.Group{Name: "Edited", RemoteID: "g-1", NeedsSync: true, UpdatedAt: now})
	deleteID := store.addGroup(models.Group{Name: "Gone", RemoteID: "g-2", NeedsSync: true, Deleted: true, UpdatedAt: now})
	store.addGroup(models.Group{Name: "Clean", RemoteID: "g-3", UpdatedAt: now})

	engine := newTestEngine(store, quietRemote(), Config{})
	require.NoError(t, engine.discoverOperations(context.Background()))

	ops, err := store.ListPendingOperations(context.Background())
	require.NoError(t, err)
	require.Len(t, ops, 3)

	kinds := make(map[int64]models.OperationKind, len(ops))
	for _, op := range ops {
		assert.Equal(t, models.TableGroups, op.Table)
		kinds[op.LocalID] = op.Kind
	}
	assert.Equal(t, models.OpCreate, kinds[createID])
	assert.Equal(t, models.OpUpdate, kinds[updateID])
	assert.Equal(t, models.OpDelete, kinds[deleteID])
}

func TestDiscovery_PayloadSnapshotsCurrentFields(t *testing.T) {
	store := newMemStore()
	noteID := store.addNote(models.Note{
		Title: "Draft", Content: []byte("text"), GroupID: 7,
		NeedsSync: true, UpdatedAt: time.Now(),
	})

	engine := newTestEngine(store, quietRemote(), Config{})
	require.NoError(t, engine.discoverOperations(context.Background()))

	ops, err := store.ListPendingOperations(context.Background())
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, noteID, ops[0].LocalID)

	var payload models.NotePayload
	require.NoError(t, json.Unmarshal(ops[0].Payload, &payload))
	assert.Equal(t, "Draft", payload.Title)
	assert.Equal(t, []byte("text"), payload.Content)
	assert.Equal(t, int64(7), payload.GroupID)
}

func TestDiscovery_DoesNotDuplicateQueuedOperations(t *testing.T) {
	store := newMemStore()
	groupID := store.addGroup(models.Group{Name: "Work", NeedsSync: true, UpdatedAt: time.Now()})
	enqueue(t, store, models.SyncOperation{
		Kind:    models.OpCreate,
		Table:   models.TableGroups,
		LocalID: groupID,
		Payload: json.RawMessage(`{"name":"Work","updated_at":"2026-01-02T15:04:05Z"}`),
	})

	engine := newTestEngine(store, quietRemote(), Config{})
	require.NoError(t, engine.discoverOperations(context.Background()))

	ops, err := store.ListPendingOperations(context.Background())
	require.NoError(t, err)
	assert.Len(t, ops, 1)
}

func TestDiscovery_RediscoversAfterLostEnqueue(t *testing.T) {
	store := newMemStore()
	// Entity is dirty but its enqueue was lost, e.g. a crash mid-write.
	store.addNote(models.Note{Title: "Recovered", GroupID: 1, NeedsSync: true, UpdatedAt: time.Now()})
	store.addGroup(models.Group{Name: "Holder", RemoteID: "g-1", UpdatedAt: time.Now()})

	engine := newTestEngine(store, quietRemote(), Config{})
	require.NoError(t, engine.discoverOperations(context.Background()))

	ops, err := store.ListPendingOperations(context.Background())
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, models.TableNotes, ops[0].Table)
	assert.Equal(t, models.OpCreate, ops[0].Kind)
}
