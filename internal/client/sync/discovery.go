package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/notesync/internal/models"
)

type opKey struct {
	table   models.EntityTable
	localID int64
}

// discoverOperations makes the queue match reality: every entity with
// unconfirmed changes or no remote id gets a pending operation, even if
// an earlier enqueue was lost. Entities are the source of truth; the
// queue is a derived work list.
func (e *Engine) discoverOperations(ctx context.Context) error {
	pending, err := e.queue.ListPendingOperations(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending operations: %w", err)
	}

	queued := make(map[opKey]bool, len(pending))
	for _, op := range pending {
		queued[opKey{table: op.Table, localID: op.LocalID}] = true
	}

	groups, err := e.entities.ListGroupsIncludingDeleted(ctx)
	if err != nil {
		return fmt.Errorf("failed to list groups: %w", err)
	}
	for _, group := range groups {
		if !group.NeedsSync && group.HasRemoteID() {
			continue
		}
		if queued[opKey{table: models.TableGroups, localID: group.LocalID}] {
			continue
		}
		op, err := groupOperation(group)
		if err != nil {
			e.logger.Warn("failed to snapshot group for discovery",
				"local_id", group.LocalID, "error", err)
			continue
		}
		if _, err := e.queue.EnqueueOperation(ctx, op); err != nil {
			return fmt.Errorf("failed to enqueue group operation: %w", err)
		}
		e.logger.Info("discovered pending group change",
			"local_id", group.LocalID, "operation", op.Kind)
	}

	notes, err := e.entities.ListNotesIncludingDeleted(ctx)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}
	for _, note := range notes {
		if !note.NeedsSync && note.HasRemoteID() {
			continue
		}
		if queued[opKey{table: models.TableNotes, localID: note.LocalID}] {
			continue
		}
		op, err := noteOperation(note)
		if err != nil {
			e.logger.Warn("failed to snapshot note for discovery",
				"local_id", note.LocalID, "error", err)
			continue
		}
		if _, err := e.queue.EnqueueOperation(ctx, op); err != nil {
			return fmt.Errorf("failed to enqueue note operation: %w", err)
		}
		e.logger.Info("discovered pending note change",
			"local_id", note.LocalID, "operation", op.Kind)
	}

	return nil
}

func groupOperation(group *models.Group) (*models.SyncOperation, error) {
	kind := discoveredKind(group.Deleted, group.HasRemoteID())
	payload := json.RawMessage(`{}`)
	if kind != models.OpDelete {
		snapshot := models.GroupSnapshot(group)
		data, err := json.Marshal(snapshot)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal group snapshot: %w", err)
		}
		payload = data
	}
	return &models.SyncOperation{
		Kind:      kind,
		Table:     models.TableGroups,
		LocalID:   group.LocalID,
		Payload:   payload,
		CreatedAt: time.Now(),
	}, nil
}

func noteOperation(note *models.Note) (*models.SyncOperation, error) {
	kind := discoveredKind(note.Deleted, note.HasRemoteID())
	payload := json.RawMessage(`{}`)
	if kind != models.OpDelete {
		snapshot := models.NoteSnapshot(note)
		data, err := json.Marshal(snapshot)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal note snapshot: %w", err)
		}
		payload = data
	}
	return &models.SyncOperation{
		Kind:      kind,
		Table:     models.TableNotes,
		LocalID:   note.LocalID,
		Payload:   payload,
		CreatedAt: time.Now(),
	}, nil
}

func discoveredKind(deleted, hasRemoteID bool) models.OperationKind {
	switch {
	case deleted:
		return models.OpDelete
	case !hasRemoteID:
		return models.OpCreate
	default:
		return models.OpUpdate
	}
}
