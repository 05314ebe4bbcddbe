package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/iudanet/notesync/internal/models"
	"github.com/iudanet/notesync/pkg/api"
)

// Subscribe opens a websocket to the change feed and invokes onEvent for
// every incoming change until the connection drops or stop is called.
// onEvent is called from a single goroutine, one event at a time.
func (c *Client) Subscribe(ctx context.Context, deviceID string, onEvent func(api.ChangeEvent)) (func(), error) {
	if c.tokens == nil {
		return nil, fmt.Errorf("%w: no token provider", ErrAuthExpired)
	}
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthExpired, err)
	}

	wsURL := toWebsocketURL(c.baseURL) + "/api/v1/subscribe"
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: subscribe rejected with 401", ErrAuthExpired)
		}
		return nil, fmt.Errorf("%w: websocket dial failed: %v", ErrNetworkUnavailable, err)
	}

	sub := api.SubscribeRequest{
		Tables:   []string{string(models.TableGroups), string(models.TableNotes)},
		DeviceID: deviceID,
	}
	if err := conn.WriteJSON(sub); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: failed to send subscribe request: %v", ErrNetworkUnavailable, err)
	}

	var once sync.Once
	stop := func() {
		once.Do(func() {
			// Attempt a clean close; the read loop exits on the close error.
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			_ = conn.Close()
		})
	}

	go func() {
		defer stop()
		for {
			var event api.ChangeEvent
			if err := conn.ReadJSON(&event); err != nil {
				return
			}
			// Events originating from this device are applied locally
			// already; delivering them again would fight the queue.
			if event.DeviceID == deviceID {
				continue
			}
			onEvent(event)
		}
	}()

	return stop, nil
}

func toWebsocketURL(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		return "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		return "ws://" + strings.TrimPrefix(baseURL, "http://")
	default:
		return baseURL
	}
}
