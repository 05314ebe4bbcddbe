package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/notesync/internal/models"
	"github.com/iudanet/notesync/pkg/api"
)

// TokenProvider supplies the current access token for authenticated calls.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client is the HTTP client for the sync backend. All entity calls are
// scoped to the authenticated user by the bearer token.
type Client struct {
	httpClient *http.Client
	tokens     TokenProvider
	baseURL    string
}

// NewClient creates a new API client.
// tokens may be nil for clients that only perform Login and Ping.
func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Login authenticates the user and returns the session tokens
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", false, req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Create inserts a new record and returns it with its server-assigned id
func (c *Client) Create(ctx context.Context, table models.EntityTable, fields api.Fields) (*api.Record, error) {
	var record api.Record
	path := fmt.Sprintf("/api/v1/%s", table)
	if err := c.doRequest(ctx, http.MethodPost, path, true, fields, &record); err != nil {
		return nil, fmt.Errorf("create %s request failed: %w", table, err)
	}
	return &record, nil
}

// Update applies partial fields to an existing record by remote id
func (c *Client) Update(ctx context.Context, table models.EntityTable, remoteID string, fields api.Fields) (*api.Record, error) {
	var record api.Record
	path := fmt.Sprintf("/api/v1/%s/%s", table, remoteID)
	if err := c.doRequest(ctx, http.MethodPatch, path, true, fields, &record); err != nil {
		return nil, fmt.Errorf("update %s request failed: %w", table, err)
	}
	return &record, nil
}

// SoftDelete marks a record deleted on the server by remote id
func (c *Client) SoftDelete(ctx context.Context, table models.EntityTable, remoteID string) error {
	path := fmt.Sprintf("/api/v1/%s/%s", table, remoteID)
	if err := c.doRequest(ctx, http.MethodDelete, path, true, nil, nil); err != nil {
		return fmt.Errorf("delete %s request failed: %w", table, err)
	}
	return nil
}

// List returns all of the user's records in the table, soft-deleted included
func (c *Client) List(ctx context.Context, table models.EntityTable) ([]api.Record, error) {
	var records []api.Record
	path := fmt.Sprintf("/api/v1/%s", table)
	if err := c.doRequest(ctx, http.MethodGet, path, true, nil, &records); err != nil {
		return nil, fmt.Errorf("list %s request failed: %w", table, err)
	}
	return records, nil
}

// Ping probes server reachability without authentication
func (c *Client) Ping(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", false, nil, nil); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// doRequest performs one HTTP round trip and classifies failures into the
// transport error taxonomy.
func (c *Client) doRequest(ctx context.Context, method, path string, authed bool, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authed {
		if c.tokens == nil {
			return fmt.Errorf("%w: no token provider", ErrAuthExpired)
		}
		token, err := c.tokens.AccessToken(ctx)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrAuthExpired, err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failure, DNS error or timeout
		return fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", ErrNetworkUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classifyStatus(resp.StatusCode, respBody)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func classifyStatus(status int, body []byte) error {
	message := string(body)
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		message = errResp.Error
	}

	switch {
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: server returned 401: %s", ErrAuthExpired, message)
	case status == http.StatusRequestTimeout || status == http.StatusTooManyRequests || status >= 500:
		return fmt.Errorf("%w: server returned %d: %s", ErrNetworkUnavailable, status, message)
	default:
		return fmt.Errorf("%w: server returned %d: %s", ErrRemoteRejected, status, message)
	}
}
