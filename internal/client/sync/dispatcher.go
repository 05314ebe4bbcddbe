package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
	"github.com/iudanet/notesync/internal/validation"
	"github.com/iudanet/notesync/pkg/api"
)

// errDropOperation marks an operation that can never succeed, such as a
// note whose group row is gone. Dropped from the queue without retry.
var errDropOperation = errors.New("operation is unrecoverable")

type dispatchStats struct {
	executed int
	failed   int
	evicted  int
	dropped  int
}

// dispatch executes every ready operation. Group operations carry no
// dependencies and run before any note operation; failures are isolated
// per operation and never abort the pass.
func (e *Engine) dispatch(ctx context.Context) (dispatchStats, error) {
	var stats dispatchStats

	ops, err := e.queue.ListPendingOperations(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to list pending operations: %w", err)
	}

	now := time.Now()
	var groupOps, noteOps []*models.SyncOperation
	for _, op := range ops {
		if !op.Ready(now) {
			continue
		}
		switch op.Table {
		case models.TableGroups:
			groupOps = append(groupOps, op)
		case models.TableNotes:
			noteOps = append(noteOps, op)
		default:
			e.logger.Warn("unknown entity table in queue", "op_id", op.ID, "table", op.Table)
		}
	}

	for _, op := range groupOps {
		e.finishOperation(ctx, op, e.executeGroupOperation(ctx, op), &stats)
	}
	for _, op := range noteOps {
		e.finishOperation(ctx, op, e.executeNoteOperation(ctx, op), &stats)
	}

	if stats != (dispatchStats{}) {
		e.logger.Info("dispatch finished",
			"executed", stats.executed,
			"failed", stats.failed,
			"evicted", stats.evicted,
			"dropped", stats.dropped)
	}
	return stats, nil
}

// finishOperation routes the execution outcome: success removes the
// operation, unrecoverable errors drop it, everything else goes to the
// backoff controller.
func (e *Engine) finishOperation(ctx context.Context, op *models.SyncOperation, err error, stats *dispatchStats) {
	switch {
	case err == nil:
		if rmErr := e.queue.RemoveOperation(ctx, op.ID); rmErr != nil {
			e.logger.Warn("failed to remove completed operation", "op_id", op.ID, "error", rmErr)
		}
		stats.executed++
		e.logger.Info("operation succeeded",
			"op_id", op.ID, "operation", op.Kind, "table", op.Table, "local_id", op.LocalID)

	case errors.Is(err, ErrMalformedPayload), errors.Is(err, errDropOperation):
		if rmErr := e.queue.RemoveOperation(ctx, op.ID); rmErr != nil {
			e.logger.Warn("failed to remove dropped operation", "op_id", op.ID, "error", rmErr)
		}
		stats.dropped++
		e.logger.Warn("dropping unrecoverable operation",
			"op_id", op.ID, "operation", op.Kind, "table", op.Table,
			"local_id", op.LocalID, "error", err)

	default:
		if e.scheduleRetry(ctx, op, err) {
			stats.evicted++
		} else {
			stats.failed++
		}
	}
}

func (e *Engine) executeGroupOperation(ctx context.Context, op *models.SyncOperation) error {
	group, err := e.entities.GetGroupByIDIncludingDeleted(ctx, op.LocalID)
	if err != nil {
		if errors.Is(err, storage.ErrGroupNotFound) {
			return fmt.Errorf("%w: group %d does not exist", errDropOperation, op.LocalID)
		}
		return fmt.Errorf("failed to load group %d: %w", op.LocalID, err)
	}

	switch op.Kind {
	case models.OpCreate, models.OpUpdate:
		payload, err := validation.DecodeGroupPayload(op.Payload)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		return e.pushGroup(ctx, group, payload)
	case models.OpDelete:
		return e.deleteGroupRemote(ctx, group)
	default:
		return fmt.Errorf("%w: unknown operation kind %q", errDropOperation, op.Kind)
	}
}

func (e *Engine) executeNoteOperation(ctx context.Context, op *models.SyncOperation) error {
	note, err := e.entities.GetNoteByIDIncludingDeleted(ctx, op.LocalID)
	if err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			return fmt.Errorf("%w: note %d does not exist", errDropOperation, op.LocalID)
		}
		return fmt.Errorf("failed to load note %d: %w", op.LocalID, err)
	}

	switch op.Kind {
	case models.OpCreate, models.OpUpdate:
		payload, err := validation.DecodeNotePayload(op.Payload)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		remoteGroupID, err := e.resolveGroupRef(ctx, payload.GroupID)
		if err != nil {
			return err
		}
		return e.pushNote(ctx, note, payload, remoteGroupID)
	case models.OpDelete:
		// Deletes bypass dependency resolution: removing a note never
		// requires its group to be synced.
		return e.deleteNoteRemote(ctx, note)
	default:
		return fmt.Errorf("%w: unknown operation kind %q", errDropOperation, op.Kind)
	}
}

// resolveGroupRef turns a local group reference into a remote id,
// creating the group remotely inline when it has never been pushed. A
// note must never travel with an unresolved group reference.
func (e *Engine) resolveGroupRef(ctx context.Context, groupLocalID int64) (string, error) {
	group, err := e.entities.GetGroupByIDIncludingDeleted(ctx, groupLocalID)
	if err != nil {
		if errors.Is(err, storage.ErrGroupNotFound) {
			return "", fmt.Errorf("%w: group %d does not exist", errDropOperation, groupLocalID)
		}
		return "", fmt.Errorf("failed to load group %d: %w", groupLocalID, err)
	}
	if group.HasRemoteID() {
		return group.RemoteID, nil
	}

	snapshot := models.GroupSnapshot(group)
	record, err := e.remote.Create(ctx, models.TableGroups, groupFields(&snapshot))
	if err != nil {
		return "", fmt.Errorf("%w: %v", &DependencyNotSyncedError{LocalID: groupLocalID}, err)
	}
	if err := e.confirmGroup(ctx, group, record); err != nil {
		return "", err
	}
	e.logger.Info("created group inline for dependent note",
		"group_local_id", groupLocalID, "remote_id", record.ID)
	return record.ID, nil
}

// pushGroup transmits the payload, creating the group remotely when it
// has no remote id yet regardless of the queued kind.
func (e *Engine) pushGroup(ctx context.Context, group *models.Group, payload *models.GroupPayload) error {
	fields := groupFields(payload)
	var record *api.Record
	var err error
	if group.HasRemoteID() {
		record, err = e.remote.Update(ctx, models.TableGroups, group.RemoteID, fields)
	} else {
		record, err = e.remote.Create(ctx, models.TableGroups, fields)
	}
	if err != nil {
		return fmt.Errorf("remote group push failed: %w", err)
	}
	return e.confirmGroup(ctx, group, record)
}

func (e *Engine) pushNote(ctx context.Context, note *models.Note, payload *models.NotePayload, remoteGroupID string) error {
	fields := noteFields(payload, remoteGroupID)
	var record *api.Record
	var err error
	if note.HasRemoteID() {
		record, err = e.remote.Update(ctx, models.TableNotes, note.RemoteID, fields)
	} else {
		record, err = e.remote.Create(ctx, models.TableNotes, fields)
	}
	if err != nil {
		return fmt.Errorf("remote note push failed: %w", err)
	}
	return e.confirmNote(ctx, note, record)
}

// confirmGroup stamps the server-assigned id and version after the
// remote accepted the group. RemoteID is write-once.
func (e *Engine) confirmGroup(ctx context.Context, group *models.Group, record *api.Record) error {
	if !group.HasRemoteID() {
		group.RemoteID = record.ID
	}
	group.Version = record.Version
	group.NeedsSync = false
	if err := e.entities.UpdateGroup(ctx, group); err != nil {
		return fmt.Errorf("failed to confirm group %d: %w", group.LocalID, err)
	}
	return nil
}

func (e *Engine) confirmNote(ctx context.Context, note *models.Note, record *api.Record) error {
	if !note.HasRemoteID() {
		note.RemoteID = record.ID
	}
	note.Version = record.Version
	note.NeedsSync = false
	if err := e.entities.UpdateNote(ctx, note); err != nil {
		return fmt.Errorf("failed to confirm note %d: %w", note.LocalID, err)
	}
	return nil
}

// deleteGroupRemote propagates a soft delete. An entity that never got a
// remote id has nothing to delete remotely and completes trivially.
func (e *Engine) deleteGroupRemote(ctx context.Context, group *models.Group) error {
	if group.HasRemoteID() {
		if err := e.remote.SoftDelete(ctx, models.TableGroups, group.RemoteID); err != nil {
			return fmt.Errorf("remote group delete failed: %w", err)
		}
	}
	group.Deleted = true
	group.NeedsSync = false
	if err := e.entities.UpdateGroup(ctx, group); err != nil {
		return fmt.Errorf("failed to confirm group delete %d: %w", group.LocalID, err)
	}
	return nil
}

func (e *Engine) deleteNoteRemote(ctx context.Context, note *models.Note) error {
	if note.HasRemoteID() {
		if err := e.remote.SoftDelete(ctx, models.TableNotes, note.RemoteID); err != nil {
			return fmt.Errorf("remote note delete failed: %w", err)
		}
	}
	note.Deleted = true
	note.NeedsSync = false
	if err := e.entities.UpdateNote(ctx, note); err != nil {
		return fmt.Errorf("failed to confirm note delete %d: %w", note.LocalID, err)
	}
	return nil
}

func groupFields(p *models.GroupPayload) api.Fields {
	return api.Fields{
		Name:      &p.Name,
		Color:     &p.Color,
		Version:   &p.Version,
		Deleted:   &p.Deleted,
		UpdatedAt: &p.UpdatedAt,
	}
}

func noteFields(p *models.NotePayload, remoteGroupID string) api.Fields {
	return api.Fields{
		Title:     &p.Title,
		Content:   p.Content,
		GroupID:   &remoteGroupID,
		Version:   &p.Version,
		Deleted:   &p.Deleted,
		UpdatedAt: &p.UpdatedAt,
	}
}
