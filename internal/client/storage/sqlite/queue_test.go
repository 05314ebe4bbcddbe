package sqlite

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

func testOperation(kind models.OperationKind, table models.EntityTable, localID int64) *models.SyncOperation {
	return &models.SyncOperation{
		Kind:      kind,
		Table:     table,
		LocalID:   localID,
		Payload:   json.RawMessage(`{"name":"Work","updated_at":"2026-04-02T09:00:00Z"}`),
		CreatedAt: time.Now(),
	}
}

func TestQueueStorage_EnqueueAndList(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	op := testOperation(models.OpCreate, models.TableGroups, 1)
	id, err := s.EnqueueOperation(ctx, op)
	require.NoError(t, err)
	assert.Positive(t, id)
	assert.Equal(t, id, op.ID)

	ops, err := s.ListPendingOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)

	got := ops[0]
	assert.Equal(t, models.OpCreate, got.Kind)
	assert.Equal(t, models.TableGroups, got.Table)
	assert.Equal(t, int64(1), got.LocalID)
	assert.JSONEq(t, string(op.Payload), string(got.Payload))
	assert.Zero(t, got.RetryCount)
	assert.Nil(t, got.NextRetryAt)
	assert.WithinDuration(t, op.CreatedAt, got.CreatedAt, time.Millisecond)
}

func TestQueueStorage_ListOrderedByCreation(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	base := time.Now()
	second := testOperation(models.OpUpdate, models.TableNotes, 2)
	second.CreatedAt = base.Add(time.Second)
	first := testOperation(models.OpCreate, models.TableGroups, 1)
	first.CreatedAt = base

	_, err := s.EnqueueOperation(ctx, second)
	require.NoError(t, err)
	_, err = s.EnqueueOperation(ctx, first)
	require.NoError(t, err)

	ops, err := s.ListPendingOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, int64(1), ops[0].LocalID)
	assert.Equal(t, int64(2), ops[1].LocalID)
}

func TestQueueStorage_Remove(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	op := testOperation(models.OpDelete, models.TableNotes, 3)
	id, err := s.EnqueueOperation(ctx, op)
	require.NoError(t, err)

	require.NoError(t, s.RemoveOperation(ctx, id))

	ops, err := s.ListPendingOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)

	err = s.RemoveOperation(ctx, id)
	assert.ErrorIs(t, err, storage.ErrOperationNotFound)
}

func TestQueueStorage_Reschedule(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	op := testOperation(models.OpCreate, models.TableGroups, 1)
	id, err := s.EnqueueOperation(ctx, op)
	require.NoError(t, err)

	next := time.Now().Add(30 * time.Second)
	require.NoError(t, s.RescheduleOperation(ctx, id, 2, &next))

	ops, err := s.ListPendingOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, 2, ops[0].RetryCount)
	require.NotNil(t, ops[0].NextRetryAt)
	assert.WithinDuration(t, next, *ops[0].NextRetryAt, time.Millisecond)

	// A nil nextRetryAt makes the operation eligible immediately.
	require.NoError(t, s.RescheduleOperation(ctx, id, 3, nil))
	ops, err = s.ListPendingOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Nil(t, ops[0].NextRetryAt)
}

func TestQueueStorage_RescheduleNotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.RescheduleOperation(ctx, 999, 1, nil)
	assert.ErrorIs(t, err, storage.ErrOperationNotFound)
}
