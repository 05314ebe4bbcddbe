package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/notesync/internal/client/api"
	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/pkg/api"
)

type fakeLoginClient struct {
	resp *api.TokenResponse
	err  error
	got  api.LoginRequest
}

func (f *fakeLoginClient) Login(_ context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	f.got = req
	return f.resp, f.err
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-123",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestAuthService_Login(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	client := &fakeLoginClient{
		resp: &api.TokenResponse{
			AccessToken:  signedToken(t, exp),
			RefreshToken: "refresh",
			UserID:       "user-123",
			ExpiresIn:    3600,
		},
	}

	var saved *storage.AuthData
	store := &storage.AuthStorageMock{
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error {
			saved = auth
			return nil
		},
	}

	svc := NewAuthService(client, store)

	result, err := svc.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-123", result.UserID)
	assert.Equal(t, "user@example.com", result.Email)

	assert.Equal(t, "user@example.com", client.got.Email)
	assert.Equal(t, "secret", client.got.Password)

	require.NotNil(t, saved)
	assert.Equal(t, "refresh", saved.RefreshToken)
	// Expiry comes from the token's exp claim
	assert.Equal(t, exp.Unix(), saved.ExpiresAt)
}

func TestAuthService_Login_OpaqueTokenFallsBackToExpiresIn(t *testing.T) {
	client := &fakeLoginClient{
		resp: &api.TokenResponse{
			AccessToken: "not-a-jwt",
			UserID:      "user-123",
			ExpiresIn:   3600,
		},
	}

	var saved *storage.AuthData
	store := &storage.AuthStorageMock{
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error {
			saved = auth
			return nil
		},
	}

	svc := NewAuthService(client, store)

	_, err := svc.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)

	require.NotNil(t, saved)
	want := time.Now().Add(time.Hour).Unix()
	assert.InDelta(t, want, saved.ExpiresAt, 5)
}

func TestAuthService_Login_Validation(t *testing.T) {
	svc := NewAuthService(&fakeLoginClient{}, &storage.AuthStorageMock{})

	_, err := svc.Login(context.Background(), "", "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")

	_, err = svc.Login(context.Background(), "user@example.com", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password is required")
}

func TestAuthService_Login_APIError(t *testing.T) {
	client := &fakeLoginClient{err: errors.New("invalid credentials")}
	svc := NewAuthService(client, &storage.AuthStorageMock{})

	_, err := svc.Login(context.Background(), "user@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")
}

func TestAuthService_Logout(t *testing.T) {
	store := &storage.AuthStorageMock{
		DeleteAuthFunc: func(ctx context.Context) error {
			return nil
		},
	}
	svc := NewAuthService(&fakeLoginClient{}, store)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Len(t, store.DeleteAuthCalls(), 1)
}

func TestAuthService_Logout_NoSessionIsNotAnError(t *testing.T) {
	store := &storage.AuthStorageMock{
		DeleteAuthFunc: func(ctx context.Context) error {
			return storage.ErrAuthNotFound
		},
	}
	svc := NewAuthService(&fakeLoginClient{}, store)

	require.NoError(t, svc.Logout(context.Background()))
}

func TestAuthService_IsAuthenticated(t *testing.T) {
	tests := []struct {
		name string
		auth *storage.AuthData
		err  error
		want bool
	}{
		{
			name: "valid session",
			auth: &storage.AuthData{ExpiresAt: time.Now().Add(time.Hour).Unix()},
			want: true,
		},
		{
			name: "expired session",
			auth: &storage.AuthData{ExpiresAt: time.Now().Add(-time.Hour).Unix()},
			want: false,
		},
		{
			name: "no session",
			err:  storage.ErrAuthNotFound,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &storage.AuthStorageMock{
				GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
					return tt.auth, tt.err
				},
			}
			svc := NewAuthService(&fakeLoginClient{}, store)

			got, err := svc.IsAuthenticated(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthService_AccessToken(t *testing.T) {
	store := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{
				AccessToken: "token-abc",
				ExpiresAt:   time.Now().Add(time.Hour).Unix(),
			}, nil
		},
	}
	svc := NewAuthService(&fakeLoginClient{}, store)

	token, err := svc.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
}

func TestAuthService_AccessToken_Expired(t *testing.T) {
	store := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return &storage.AuthData{
				AccessToken: "token-abc",
				ExpiresAt:   time.Now().Add(-time.Minute).Unix(),
			}, nil
		},
	}
	svc := NewAuthService(&fakeLoginClient{}, store)

	_, err := svc.AccessToken(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, clientapi.ErrAuthExpired)
}

func TestAuthService_AccessToken_NotLoggedIn(t *testing.T) {
	store := &storage.AuthStorageMock{
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			return nil, storage.ErrAuthNotFound
		},
	}
	svc := NewAuthService(&fakeLoginClient{}, store)

	_, err := svc.AccessToken(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, clientapi.ErrAuthExpired)
}
