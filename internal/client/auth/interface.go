package auth

import (
	"context"

	"github.com/iudanet/notesync/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service defines the interface for session management.
// The session is a local cache of the backend tokens; expiry is read from
// the access token itself so the client never consults the server to decide
// whether it is logged in.
type Service interface {
	// Login authenticates against the backend and persists the session
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Logout removes the stored session
	Logout(ctx context.Context) error

	// IsAuthenticated reports whether a non-expired session exists
	IsAuthenticated(ctx context.Context) (bool, error)

	// Session returns the stored session data
	Session(ctx context.Context) (*storage.AuthData, error)

	// AccessToken returns the current access token.
	// Returns an error when no session exists or the token has expired.
	AccessToken(ctx context.Context) (string, error)
}
