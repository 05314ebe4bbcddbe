package models

import (
	"encoding/json"
	"time"
)

// ConflictReason tags why a conflict record was written.
type ConflictReason string

const (
	// ReasonConflictBackup is a backup of the local snapshot taken just
	// before server fields overwrite a clean local entity.
	ReasonConflictBackup ConflictReason = "conflict_backup"

	// ReasonServerConflict records a server version that was not applied
	// because the local entity still has unconfirmed edits.
	ReasonServerConflict ConflictReason = "server_conflict"

	// ReasonServerDeleted records a remote soft-delete that was not applied
	// because the local entity still has unconfirmed edits.
	ReasonServerDeleted ConflictReason = "server_deleted"

	// ReasonRealtimeConflict is ReasonServerConflict arriving via the
	// realtime feed rather than the periodic pull.
	ReasonRealtimeConflict ConflictReason = "realtime_conflict"

	// ReasonLocalUnsynced records a local unsynced snapshot that was
	// discarded because the last-writer-wins policy let the server win.
	ReasonLocalUnsynced ConflictReason = "local_unsynced"
)

// ConflictRecord is one append-only entry in the conflict history log.
// Data holds either the superseded local snapshot or the server state
// that was not applied, depending on Reason.
type ConflictRecord struct {
	CreatedAt time.Time       `json:"created_at"`
	Data      json.RawMessage `json:"data"`
	Table     EntityTable     `json:"entity_table"`
	Reason    ConflictReason  `json:"reason"`
	RecordID  int64           `json:"record_id"`
}
