package sync

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPayload marks an operation whose stored payload cannot be
	// decoded or validated. Non-retryable: the operation is dropped and the
	// entity waits for rediscovery with a fresh snapshot.
	ErrMalformedPayload = errors.New("malformed operation payload")

	// ErrMaxRetriesExceeded marks an operation evicted from the queue after
	// exhausting its retry budget. The entity keeps its dirty flag, so a
	// later discovery pass starts over with a fresh operation.
	ErrMaxRetriesExceeded = errors.New("operation exceeded retry limit")
)

// DependencyNotSyncedError reports that a note operation could not be sent
// because its group has no remote id and creating the group inline failed.
// Treated as a transient failure on the note operation.
type DependencyNotSyncedError struct {
	LocalID int64
}

func (e *DependencyNotSyncedError) Error() string {
	return fmt.Sprintf("group %d is not synced yet", e.LocalID)
}
