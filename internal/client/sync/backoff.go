package sync

import (
	"context"
	"time"

	"github.com/iudanet/notesync/internal/models"
)

// scheduleRetry pushes a failed operation back with linear backoff
// (baseDelay scaled by the attempt count, not exponential doubling), or
// evicts it once the retry budget is spent. Reports whether the
// operation was evicted. An evicted entity keeps its dirty flag, so a
// later discovery pass starts over with a fresh operation.
func (e *Engine) scheduleRetry(ctx context.Context, op *models.SyncOperation, cause error) bool {
	retryCount := op.RetryCount + 1
	if retryCount >= e.cfg.MaxRetries {
		if err := e.queue.RemoveOperation(ctx, op.ID); err != nil {
			e.logger.Warn("failed to evict operation", "op_id", op.ID, "error", err)
		}
		e.logger.Warn("operation abandoned",
			"op_id", op.ID, "operation", op.Kind, "table", op.Table,
			"local_id", op.LocalID, "retry_count", retryCount,
			"error", ErrMaxRetriesExceeded, "cause", cause)
		return true
	}

	next := time.Now().Add(e.cfg.BaseRetryDelay * time.Duration(retryCount))
	if err := e.queue.RescheduleOperation(ctx, op.ID, retryCount, &next); err != nil {
		e.logger.Warn("failed to reschedule operation", "op_id", op.ID, "error", err)
		return false
	}
	e.logger.Info("operation scheduled for retry",
		"op_id", op.ID, "operation", op.Kind, "table", op.Table,
		"local_id", op.LocalID, "retry_count", retryCount,
		"next_retry_at", next, "error", cause)
	return false
}
