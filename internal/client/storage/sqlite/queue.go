package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

// ListPendingOperations returns all queued operations ordered by creation
func (s *Storage) ListPendingOperations(ctx context.Context) ([]*models.SyncOperation, error) {
	query := `
		SELECT id, operation, entity_table, local_id, data, created_at, retry_count, next_retry_at
		FROM sync_queue
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending operations: %w", err)
	}
	defer rows.Close()

	var ops []*models.SyncOperation
	for rows.Next() {
		op := &models.SyncOperation{}
		var payload string
		var createdAt int64
		var nextRetryAt *int64

		err := rows.Scan(
			&op.ID,
			&op.Kind,
			&op.Table,
			&op.LocalID,
			&payload,
			&createdAt,
			&op.RetryCount,
			&nextRetryAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}

		op.Payload = []byte(payload)
		op.CreatedAt = unixTime(createdAt)
		if nextRetryAt != nil {
			t := unixTime(*nextRetryAt)
			op.NextRetryAt = &t
		}

		ops = append(ops, op)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate operations: %w", err)
	}

	return ops, nil
}

// EnqueueOperation appends an operation and returns its assigned id
func (s *Storage) EnqueueOperation(ctx context.Context, op *models.SyncOperation) (int64, error) {
	query := `
		INSERT INTO sync_queue (operation, entity_table, local_id, data, created_at, retry_count, next_retry_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var nextRetryAt *int64
	if op.NextRetryAt != nil {
		ms := op.NextRetryAt.UnixMilli()
		nextRetryAt = &ms
	}

	res, err := s.db.ExecContext(ctx, query,
		string(op.Kind),
		string(op.Table),
		op.LocalID,
		string(op.Payload),
		op.CreatedAt.UnixMilli(),
		op.RetryCount,
		nextRetryAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to enqueue operation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get enqueued operation id: %w", err)
	}

	op.ID = id
	return id, nil
}

// RemoveOperation deletes a completed or abandoned operation
func (s *Storage) RemoveOperation(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sync_queue WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to remove operation: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check removed rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrOperationNotFound
	}

	return nil
}

// RescheduleOperation persists updated retry bookkeeping for a failed operation
func (s *Storage) RescheduleOperation(ctx context.Context, id int64, retryCount int, nextRetryAt *time.Time) error {
	var next *int64
	if nextRetryAt != nil {
		ms := nextRetryAt.UnixMilli()
		next = &ms
	}

	query := `UPDATE sync_queue SET retry_count = ?, next_retry_at = ? WHERE id = ?`

	res, err := s.db.ExecContext(ctx, query, retryCount, next, id)
	if err != nil {
		return fmt.Errorf("failed to reschedule operation: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rescheduled rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrOperationNotFound
	}

	return nil
}
