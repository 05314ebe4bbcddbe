package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	clientapi "github.com/iudanet/notesync/internal/client/api"
	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/pkg/api"
)

// LoginClient is the part of the API client the auth service needs.
type LoginClient interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
}

// AuthService implements Service on top of the API client and the
// local session storage.
type AuthService struct {
	apiClient LoginClient
	store     storage.AuthStorage
}

var _ Service = (*AuthService)(nil)

// NewAuthService creates a new session service
func NewAuthService(apiClient LoginClient, store storage.AuthStorage) *AuthService {
	return &AuthService{
		apiClient: apiClient,
		store:     store,
	}
}

// LoginResult contains the outcome of a successful login
type LoginResult struct {
	UserID string
	Email  string
}

// Login authenticates the user and persists the session locally
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	resp, err := s.apiClient.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	expiresAt, ok := tokenExpiry(resp.AccessToken)
	if !ok {
		// Opaque token, fall back to the advertised lifetime
		expiresAt = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix()
	}

	auth := &storage.AuthData{
		Email:        email,
		UserID:       resp.UserID,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    expiresAt,
	}
	if err := s.store.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &LoginResult{
		UserID: resp.UserID,
		Email:  email,
	}, nil
}

// Logout removes the stored session
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a non-expired session exists
func (s *AuthService) IsAuthenticated(ctx context.Context) (bool, error) {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load session: %w", err)
	}
	return auth.ExpiresAt > time.Now().Unix(), nil
}

// Session returns the stored session data
func (s *AuthService) Session(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return auth, nil
}

// AccessToken implements api.TokenProvider
func (s *AuthService) AccessToken(ctx context.Context) (string, error) {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return "", fmt.Errorf("%w: not logged in", clientapi.ErrAuthExpired)
		}
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	if auth.ExpiresAt <= time.Now().Unix() {
		return "", fmt.Errorf("%w: session expired, log in again", clientapi.ErrAuthExpired)
	}
	return auth.AccessToken, nil
}

// tokenExpiry extracts the exp claim from a JWT without verifying the
// signature. Verification is the server's job; the client only needs the
// expiry to avoid sending requests doomed to a 401.
func tokenExpiry(token string) (int64, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return 0, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, false
	}
	return exp.Unix(), true
}
