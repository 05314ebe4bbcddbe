package storage

import (
	"context"

	"github.com/iudanet/notesync/internal/models"
)

//go:generate moq -out entities_mock.go . EntityStorage

// EntityStorage defines the interface for reading and writing the two
// syncable entity kinds. Soft-deleted rows stay queryable through the
// IncludingDeleted variants because in-flight operations must still
// resolve references to them.
type EntityStorage interface {
	// ListGroups returns all non-deleted groups
	ListGroups(ctx context.Context) ([]*models.Group, error)

	// ListGroupsIncludingDeleted returns all groups, soft-deleted included
	ListGroupsIncludingDeleted(ctx context.Context) ([]*models.Group, error)

	// GetGroupByID retrieves a non-deleted group by local id
	// Returns ErrGroupNotFound if the group doesn't exist
	GetGroupByID(ctx context.Context, localID int64) (*models.Group, error)

	// GetGroupByIDIncludingDeleted retrieves a group by local id regardless
	// of its soft-delete flag
	GetGroupByIDIncludingDeleted(ctx context.Context, localID int64) (*models.Group, error)

	// GetGroupByRemoteID retrieves a group by its remote id
	// Returns ErrGroupNotFound if no group carries that remote id
	GetGroupByRemoteID(ctx context.Context, remoteID string) (*models.Group, error)

	// InsertGroup stores a new group and returns its assigned local id
	InsertGroup(ctx context.Context, group *models.Group) (int64, error)

	// UpdateGroup overwrites the group's mutable fields by local id
	UpdateGroup(ctx context.Context, group *models.Group) error

	// SoftDeleteGroup marks the group deleted without removing the row
	SoftDeleteGroup(ctx context.Context, localID int64) error

	// ListNotes returns all non-deleted notes
	ListNotes(ctx context.Context) ([]*models.Note, error)

	// ListNotesIncludingDeleted returns all notes, soft-deleted included
	ListNotesIncludingDeleted(ctx context.Context) ([]*models.Note, error)

	// GetNoteByID retrieves a non-deleted note by local id
	// Returns ErrNoteNotFound if the note doesn't exist
	GetNoteByID(ctx context.Context, localID int64) (*models.Note, error)

	// GetNoteByIDIncludingDeleted retrieves a note by local id regardless
	// of its soft-delete flag
	GetNoteByIDIncludingDeleted(ctx context.Context, localID int64) (*models.Note, error)

	// GetNoteByRemoteID retrieves a note by its remote id
	// Returns ErrNoteNotFound if no note carries that remote id
	GetNoteByRemoteID(ctx context.Context, remoteID string) (*models.Note, error)

	// InsertNote stores a new note and returns its assigned local id
	InsertNote(ctx context.Context, note *models.Note) (int64, error)

	// UpdateNote overwrites the note's mutable fields by local id
	UpdateNote(ctx context.Context, note *models.Note) error

	// SoftDeleteNote marks the note deleted without removing the row
	SoftDeleteNote(ctx context.Context, localID int64) error
}
