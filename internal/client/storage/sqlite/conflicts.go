package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/notesync/internal/models"
)

// AppendConflictRecord stores one conflict record.
// The log is append-only: nothing in the engine updates or deletes rows.
func (s *Storage) AppendConflictRecord(ctx context.Context, record *models.ConflictRecord) error {
	query := `
		INSERT INTO conflict_log (entity_table, record_id, data, reason, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		string(record.Table),
		record.RecordID,
		string(record.Data),
		string(record.Reason),
		record.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to append conflict record: %w", err)
	}

	return nil
}

// ListConflictRecords returns all recorded conflicts ordered by creation
func (s *Storage) ListConflictRecords(ctx context.Context) ([]*models.ConflictRecord, error) {
	query := `
		SELECT entity_table, record_id, data, reason, created_at
		FROM conflict_log
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list conflict records: %w", err)
	}
	defer rows.Close()

	var records []*models.ConflictRecord
	for rows.Next() {
		record := &models.ConflictRecord{}
		var data string
		var createdAt int64

		err := rows.Scan(
			&record.Table,
			&record.RecordID,
			&data,
			&record.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conflict record: %w", err)
		}

		record.Data = []byte(data)
		record.CreatedAt = unixTime(createdAt)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conflict records: %w", err)
	}

	return records, nil
}
