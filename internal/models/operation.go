package models

import (
	"encoding/json"
	"time"
)

// OperationKind is the kind of a queued sync mutation.
type OperationKind string

const (
	OpCreate OperationKind = "create"
	OpUpdate OperationKind = "update"
	OpDelete OperationKind = "delete"
)

// EntityTable identifies which local table an operation targets.
type EntityTable string

const (
	TableGroups EntityTable = "groups"
	TableNotes  EntityTable = "notes"
)

// SyncOperation is one pending mutation in the durable operation queue.
// Payload is a snapshot of the fields relevant to the mutation, captured
// at enqueue time (GroupPayload or NotePayload depending on Table).
type SyncOperation struct {
	CreatedAt   time.Time       `json:"created_at"`
	NextRetryAt *time.Time      `json:"next_retry_at"` // nil means eligible now
	Payload     json.RawMessage `json:"data"`
	Kind        OperationKind   `json:"operation"`
	Table       EntityTable     `json:"entity_table"`
	ID          int64           `json:"id"`
	LocalID     int64           `json:"local_id"`
	RetryCount  int             `json:"retry_count"`
}

// Ready reports whether the operation is eligible for dispatch at now.
func (op *SyncOperation) Ready(now time.Time) bool {
	return op.NextRetryAt == nil || !op.NextRetryAt.After(now)
}

// GroupPayload is the typed queue payload for group operations.
type GroupPayload struct {
	UpdatedAt time.Time `json:"updated_at" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Color     string    `json:"color"`
	Version   int64     `json:"version"`
	Deleted   bool      `json:"deleted"`
}

// NotePayload is the typed queue payload for note operations.
// GroupID is the local group reference; the dispatcher resolves it to the
// group's remote id before the note is transmitted.
type NotePayload struct {
	UpdatedAt time.Time `json:"updated_at" validate:"required"`
	Title     string    `json:"title"`
	Content   []byte    `json:"content"`
	GroupID   int64     `json:"group_id" validate:"required"`
	Version   int64     `json:"version"`
	Deleted   bool      `json:"deleted"`
}

// GroupSnapshot captures the group's current syncable fields as a payload.
func GroupSnapshot(g *Group) GroupPayload {
	return GroupPayload{
		Name:      g.Name,
		Color:     g.Color,
		Version:   g.Version,
		Deleted:   g.Deleted,
		UpdatedAt: g.UpdatedAt,
	}
}

// NoteSnapshot captures the note's current syncable fields as a payload.
func NoteSnapshot(n *Note) NotePayload {
	content := make([]byte, len(n.Content))
	copy(content, n.Content)

	return NotePayload{
		Title:     n.Title,
		Content:   content,
		GroupID:   n.GroupID,
		Version:   n.Version,
		Deleted:   n.Deleted,
		UpdatedAt: n.UpdatedAt,
	}
}
