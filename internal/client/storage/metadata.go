package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines the interface for small per-client sync metadata.
type MetadataStorage interface {
	// SaveLastSyncTime saves the wall-clock time of the last successful pass
	SaveLastSyncTime(ctx context.Context, t time.Time) error

	// GetLastSyncTime retrieves the time of the last successful pass
	// Returns the zero time if no pass has completed yet
	GetLastSyncTime(ctx context.Context) (time.Time, error)

	// GetOrCreateDeviceID returns the stable device identifier, generating
	// and persisting one on first call. The id is sent on the realtime
	// subscription so the feed can suppress this device's own events.
	GetOrCreateDeviceID(ctx context.Context) (string, error)
}
