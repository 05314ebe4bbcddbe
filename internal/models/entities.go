package models

import "time"

// Group represents a notes group (folder) stored locally.
// LocalID is the primary identity; RemoteID is assigned exactly once,
// the moment the group is first successfully created on the server.
type Group struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	RemoteID  string    `json:"remote_id"` // empty until first remote create; write-once
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	LocalID   int64     `json:"local_id"`
	Version   int64     `json:"version"`    // advisory revision counter, not the conflict signal
	NeedsSync bool      `json:"needs_sync"` // local mutations not yet confirmed by the server
	Deleted   bool      `json:"deleted"`    // soft delete; hard purge is an external job
}

// Note represents a single note stored locally.
// Content is opaque to the sync engine and treated as an atomic blob.
type Note struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	RemoteID  string    `json:"remote_id"`
	Title     string    `json:"title"`
	Content   []byte    `json:"content"`
	LocalID   int64     `json:"local_id"`
	GroupID   int64     `json:"group_id"` // local foreign key to Group.LocalID
	Version   int64     `json:"version"`
	NeedsSync bool      `json:"needs_sync"`
	Deleted   bool      `json:"deleted"`
}

// HasRemoteID reports whether the group has been created on the server.
func (g *Group) HasRemoteID() bool { return g.RemoteID != "" }

// HasRemoteID reports whether the note has been created on the server.
func (n *Note) HasRemoteID() bool { return n.RemoteID != "" }
