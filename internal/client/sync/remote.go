package sync

import (
	"context"

	"github.com/iudanet/notesync/internal/models"
	"github.com/iudanet/notesync/pkg/api"
)

//go:generate moq -out remote_mock.go . RemoteClient

// RemoteClient is the backend surface the engine consumes. All entity
// calls are scoped to the authenticated user by the implementation.
type RemoteClient interface {
	// Create inserts a record and returns it with its server-assigned id
	Create(ctx context.Context, table models.EntityTable, fields api.Fields) (*api.Record, error)

	// Update applies partial fields to a record by remote id
	Update(ctx context.Context, table models.EntityTable, remoteID string, fields api.Fields) (*api.Record, error)

	// SoftDelete marks a record deleted on the server
	SoftDelete(ctx context.Context, table models.EntityTable, remoteID string) error

	// List returns all of the user's records, soft-deleted included
	List(ctx context.Context, table models.EntityTable) ([]api.Record, error)

	// Subscribe opens the realtime change feed. The returned func closes it.
	Subscribe(ctx context.Context, deviceID string, onEvent func(api.ChangeEvent)) (func(), error)

	// Ping probes server reachability
	Ping(ctx context.Context) error
}
