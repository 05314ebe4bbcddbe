package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

const noteColumns = `local_id, remote_id, group_id, title, content, version, needs_sync, deleted, created_at, updated_at`

// ListNotes returns all non-deleted notes ordered by local id
func (s *Storage) ListNotes(ctx context.Context) ([]*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE deleted = 0 ORDER BY local_id`
	return s.queryNotes(ctx, query)
}

// ListNotesIncludingDeleted returns all notes, soft-deleted included
func (s *Storage) ListNotesIncludingDeleted(ctx context.Context) ([]*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes ORDER BY local_id`
	return s.queryNotes(ctx, query)
}

// GetNoteByID retrieves a non-deleted note by local id
func (s *Storage) GetNoteByID(ctx context.Context, localID int64) (*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE local_id = ? AND deleted = 0`
	return s.queryNote(ctx, query, localID)
}

// GetNoteByIDIncludingDeleted retrieves a note by local id regardless of
// its soft-delete flag
func (s *Storage) GetNoteByIDIncludingDeleted(ctx context.Context, localID int64) (*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE local_id = ?`
	return s.queryNote(ctx, query, localID)
}

// GetNoteByRemoteID retrieves a note by its remote id
func (s *Storage) GetNoteByRemoteID(ctx context.Context, remoteID string) (*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE remote_id = ?`
	return s.queryNote(ctx, query, remoteID)
}

// InsertNote stores a new note and returns its assigned local id
func (s *Storage) InsertNote(ctx context.Context, note *models.Note) (int64, error) {
	query := `
		INSERT INTO notes (remote_id, group_id, title, content, version, needs_sync, deleted, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		note.RemoteID,
		note.GroupID,
		note.Title,
		note.Content,
		note.Version,
		boolToInt(note.NeedsSync),
		boolToInt(note.Deleted),
		note.CreatedAt.UnixMilli(),
		note.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert note: %w", err)
	}

	localID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted note id: %w", err)
	}

	note.LocalID = localID
	return localID, nil
}

// UpdateNote overwrites the note's mutable fields by local id
func (s *Storage) UpdateNote(ctx context.Context, note *models.Note) error {
	query := `
		UPDATE notes
		SET remote_id = ?, group_id = ?, title = ?, content = ?, version = ?,
		    needs_sync = ?, deleted = ?, updated_at = ?
		WHERE local_id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		note.RemoteID,
		note.GroupID,
		note.Title,
		note.Content,
		note.Version,
		boolToInt(note.NeedsSync),
		boolToInt(note.Deleted),
		note.UpdatedAt.UnixMilli(),
		note.LocalID,
	)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNoteNotFound
	}

	return nil
}

// SoftDeleteNote marks the note deleted without removing the row
func (s *Storage) SoftDeleteNote(ctx context.Context, localID int64) error {
	query := `UPDATE notes SET deleted = 1, needs_sync = 1 WHERE local_id = ?`

	res, err := s.db.ExecContext(ctx, query, localID)
	if err != nil {
		return fmt.Errorf("failed to soft delete note: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNoteNotFound
	}

	return nil
}

func (s *Storage) queryNote(ctx context.Context, query string, arg any) (*models.Note, error) {
	row := s.db.QueryRowContext(ctx, query, arg)

	note, err := scanNote(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

func (s *Storage) queryNotes(ctx context.Context, query string) ([]*models.Note, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []*models.Note
	for rows.Next() {
		note, err := scanNote(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

func scanNote(scan func(dest ...any) error) (*models.Note, error) {
	note := &models.Note{}
	var needsSync, deleted int
	var createdAt, updatedAt int64

	err := scan(
		&note.LocalID,
		&note.RemoteID,
		&note.GroupID,
		&note.Title,
		&note.Content,
		&note.Version,
		&needsSync,
		&deleted,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	note.NeedsSync = needsSync != 0
	note.Deleted = deleted != 0
	note.CreatedAt = unixTime(createdAt)
	note.UpdatedAt = unixTime(updatedAt)

	return note, nil
}
