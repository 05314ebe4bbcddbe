package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

const groupColumns = `local_id, remote_id, name, color, version, needs_sync, deleted, created_at, updated_at`

// ListGroups returns all non-deleted groups ordered by local id
func (s *Storage) ListGroups(ctx context.Context) ([]*models.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE deleted = 0 ORDER BY local_id`
	return s.queryGroups(ctx, query)
}

// ListGroupsIncludingDeleted returns all groups, soft-deleted included
func (s *Storage) ListGroupsIncludingDeleted(ctx context.Context) ([]*models.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups ORDER BY local_id`
	return s.queryGroups(ctx, query)
}

// GetGroupByID retrieves a non-deleted group by local id
func (s *Storage) GetGroupByID(ctx context.Context, localID int64) (*models.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE local_id = ? AND deleted = 0`
	return s.queryGroup(ctx, query, localID)
}

// GetGroupByIDIncludingDeleted retrieves a group by local id regardless of
// its soft-delete flag
func (s *Storage) GetGroupByIDIncludingDeleted(ctx context.Context, localID int64) (*models.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE local_id = ?`
	return s.queryGroup(ctx, query, localID)
}

// GetGroupByRemoteID retrieves a group by its remote id
func (s *Storage) GetGroupByRemoteID(ctx context.Context, remoteID string) (*models.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE remote_id = ?`
	return s.queryGroup(ctx, query, remoteID)
}

// InsertGroup stores a new group and returns its assigned local id
func (s *Storage) InsertGroup(ctx context.Context, group *models.Group) (int64, error) {
	query := `
		INSERT INTO groups (remote_id, name, color, version, needs_sync, deleted, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		group.RemoteID,
		group.Name,
		group.Color,
		group.Version,
		boolToInt(group.NeedsSync),
		boolToInt(group.Deleted),
		group.CreatedAt.UnixMilli(),
		group.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert group: %w", err)
	}

	localID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted group id: %w", err)
	}

	group.LocalID = localID
	return localID, nil
}

// UpdateGroup overwrites the group's mutable fields by local id
func (s *Storage) UpdateGroup(ctx context.Context, group *models.Group) error {
	query := `
		UPDATE groups
		SET remote_id = ?, name = ?, color = ?, version = ?,
		    needs_sync = ?, deleted = ?, updated_at = ?
		WHERE local_id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		group.RemoteID,
		group.Name,
		group.Color,
		group.Version,
		boolToInt(group.NeedsSync),
		boolToInt(group.Deleted),
		group.UpdatedAt.UnixMilli(),
		group.LocalID,
	)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrGroupNotFound
	}

	return nil
}

// SoftDeleteGroup marks the group deleted without removing the row
func (s *Storage) SoftDeleteGroup(ctx context.Context, localID int64) error {
	query := `UPDATE groups SET deleted = 1, needs_sync = 1 WHERE local_id = ?`

	res, err := s.db.ExecContext(ctx, query, localID)
	if err != nil {
		return fmt.Errorf("failed to soft delete group: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrGroupNotFound
	}

	return nil
}

func (s *Storage) queryGroup(ctx context.Context, query string, arg any) (*models.Group, error) {
	row := s.db.QueryRowContext(ctx, query, arg)

	group, err := scanGroup(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

func (s *Storage) queryGroups(ctx context.Context, query string) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		group, err := scanGroup(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, nil
}

func scanGroup(scan func(dest ...any) error) (*models.Group, error) {
	group := &models.Group{}
	var needsSync, deleted int
	var createdAt, updatedAt int64

	err := scan(
		&group.LocalID,
		&group.RemoteID,
		&group.Name,
		&group.Color,
		&group.Version,
		&needsSync,
		&deleted,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	group.NeedsSync = needsSync != 0
	group.Deleted = deleted != 0
	group.CreatedAt = unixTime(createdAt)
	group.UpdatedAt = unixTime(updatedAt)

	return group, nil
}
