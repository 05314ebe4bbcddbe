package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/notesync/internal/models"
)

// OperationDetail describes one queued operation for diagnostics.
type OperationDetail struct {
	CreatedAt   time.Time
	NextRetryAt *time.Time
	Kind        models.OperationKind
	Table       models.EntityTable
	ID          int64
	LocalID     int64
	RetryCount  int
}

// DebugInfo is a point-in-time snapshot of the engine's backlog,
// exposed to the settings surface and the debug command.
type DebugInfo struct {
	Operations     []OperationDetail
	QueueDepth     int
	ReadyCount     int
	UnsyncedGroups int
	UnsyncedNotes  int
}

// DebugInfo reports the current queue depth, readiness and per-entity
// unsynced counts.
func (e *Engine) DebugInfo(ctx context.Context) (*DebugInfo, error) {
	ops, err := e.queue.ListPendingOperations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending operations: %w", err)
	}

	now := time.Now()
	info := &DebugInfo{
		QueueDepth: len(ops),
		Operations: make([]OperationDetail, 0, len(ops)),
	}
	for _, op := range ops {
		if op.Ready(now) {
			info.ReadyCount++
		}
		info.Operations = append(info.Operations, OperationDetail{
			ID:          op.ID,
			Kind:        op.Kind,
			Table:       op.Table,
			LocalID:     op.LocalID,
			RetryCount:  op.RetryCount,
			NextRetryAt: op.NextRetryAt,
			CreatedAt:   op.CreatedAt,
		})
	}

	groups, err := e.entities.ListGroupsIncludingDeleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	for _, g := range groups {
		if g.NeedsSync {
			info.UnsyncedGroups++
		}
	}

	notes, err := e.entities.ListNotesIncludingDeleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	for _, n := range notes {
		if n.NeedsSync {
			info.UnsyncedNotes++
		}
	}

	return info, nil
}
