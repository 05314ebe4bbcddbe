package api

import "time"

// Record is one row as the server stores it, shared by both entity tables.
// Group rows leave Title/Content/GroupID empty; note rows leave Name/Color
// empty. GroupID carries the remote id of the note's group.
type Record struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	Name      string    `json:"name,omitempty"`
	Color     string    `json:"color,omitempty"`
	Title     string    `json:"title,omitempty"`
	GroupID   string    `json:"group_id,omitempty"`
	Content   []byte    `json:"content,omitempty"`
	Version   int64     `json:"version"`
	Deleted   bool      `json:"deleted"`
}

// Fields is a partial row sent on create and update calls.
// Nil pointers mean "leave unchanged".
type Fields struct {
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Name      *string    `json:"name,omitempty"`
	Color     *string    `json:"color,omitempty"`
	Title     *string    `json:"title,omitempty"`
	GroupID   *string    `json:"group_id,omitempty"`
	Content   []byte     `json:"content,omitempty"`
	Version   *int64     `json:"version,omitempty"`
	Deleted   *bool      `json:"deleted,omitempty"`
}

// Change event types delivered by the realtime feed.
const (
	EventInsert = "insert"
	EventUpdate = "update"
	EventDelete = "delete"
)

// ChangeEvent is one row-level change pushed over the realtime channel.
// OldRecord is populated for update and delete events when the server has
// the previous row available. DeviceID identifies the device that caused
// the change, so a client can skip its own echoes.
type ChangeEvent struct {
	NewRecord *Record `json:"new_record,omitempty"`
	OldRecord *Record `json:"old_record,omitempty"`
	EventType string  `json:"event_type"`
	Table     string  `json:"table"`
	DeviceID  string  `json:"device_id,omitempty"`
}

// SubscribeRequest is the first frame a client sends on the realtime channel.
type SubscribeRequest struct {
	Tables   []string `json:"tables"`
	DeviceID string   `json:"device_id"`
}
