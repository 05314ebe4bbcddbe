package storage

import (
	"context"
	"time"

	"github.com/iudanet/notesync/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage defines the interface for the durable operation queue.
// The queue is a derived work list: entities carrying needs_sync are the
// source of truth and queue discovery re-synthesizes lost operations.
type QueueStorage interface {
	// ListPendingOperations returns all queued operations ordered by creation
	ListPendingOperations(ctx context.Context) ([]*models.SyncOperation, error)

	// EnqueueOperation appends an operation and returns its assigned id
	EnqueueOperation(ctx context.Context, op *models.SyncOperation) (int64, error)

	// RemoveOperation deletes a completed or abandoned operation
	// Returns ErrOperationNotFound if the operation doesn't exist
	RemoveOperation(ctx context.Context, id int64) error

	// RescheduleOperation persists updated retry bookkeeping for a failed
	// operation. A nil nextRetryAt makes the operation eligible immediately.
	RescheduleOperation(ctx context.Context, id int64, retryCount int, nextRetryAt *time.Time) error
}

//go:generate moq -out conflicts_mock.go . ConflictStorage

// ConflictStorage defines the interface for the append-only conflict
// history log. Records are never mutated or deleted by the sync engine.
type ConflictStorage interface {
	// AppendConflictRecord stores one conflict record
	AppendConflictRecord(ctx context.Context, record *models.ConflictRecord) error

	// ListConflictRecords returns all recorded conflicts ordered by creation
	ListConflictRecords(ctx context.Context) ([]*models.ConflictRecord, error)
}
