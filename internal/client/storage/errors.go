package storage

import "errors"

// Common client storage errors
var (
	// ErrGroupNotFound indicates that the group was not found
	ErrGroupNotFound = errors.New("group not found")

	// ErrNoteNotFound indicates that the note was not found
	ErrNoteNotFound = errors.New("note not found")

	// ErrOperationNotFound indicates that the queued operation was not found
	ErrOperationNotFound = errors.New("sync operation not found")

	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
