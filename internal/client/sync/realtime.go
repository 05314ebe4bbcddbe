package sync

import (
	"context"
	"time"

	"github.com/iudanet/notesync/internal/models"
	"github.com/iudanet/notesync/pkg/api"
)

const realtimeApplyTimeout = 30 * time.Second

// handleRealtimeEvent applies one pushed change event through the same
// resolver the periodic pull uses, so the two paths cannot diverge in
// policy. Runs outside the single-flight guard; failures are logged and
// dropped, never retried, since the next full pull reconciles anything
// missed.
func (e *Engine) handleRealtimeEvent(event api.ChangeEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), realtimeApplyTimeout)
	defer cancel()

	table := models.EntityTable(event.Table)
	if table != models.TableGroups && table != models.TableNotes {
		e.logger.Warn("realtime event for unknown table", "table", event.Table)
		return
	}

	rec := event.NewRecord
	if event.EventType == api.EventDelete {
		if rec == nil {
			rec = event.OldRecord
		}
		if rec != nil {
			// Delete events may omit the new row; the flag is what counts.
			deleted := *rec
			deleted.Deleted = true
			rec = &deleted
		}
	}
	if rec == nil {
		e.logger.Warn("realtime event without record",
			"event_type", event.EventType, "table", event.Table)
		return
	}

	e.logger.Debug("realtime event received",
		"event_type", event.EventType, "table", event.Table, "remote_id", rec.ID)

	if err := e.mergeRemoteRecord(ctx, table, rec, true); err != nil {
		e.logger.Warn("failed to apply realtime event",
			"event_type", event.EventType, "table", event.Table,
			"remote_id", rec.ID, "error", err)
	}
}
