package api

import "errors"

// Transport-level error classes. The retry/backoff controller keys off
// these: network problems are retryable, rejections are not retried
// beyond the queue's normal backoff, expired auth needs a new login.
var (
	// ErrNetworkUnavailable indicates the server could not be reached or
	// answered with a transient failure (timeout, 5xx, rate limit)
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrAuthExpired indicates the access token was rejected
	ErrAuthExpired = errors.New("authentication expired")

	// ErrRemoteRejected indicates the server rejected the request itself
	ErrRemoteRejected = errors.New("remote rejected request")
)
