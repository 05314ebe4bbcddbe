// Package sync implements the offline synchronization engine: queue
// discovery, dependency-aware dispatch, conflict resolution, realtime
// merge, retry backoff and the scheduling loop.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/iudanet/notesync/internal/client/storage"
)

// ConflictPolicy selects how the resolver treats a remote version that
// collides with unconfirmed local edits.
type ConflictPolicy string

const (
	// PolicyPreserveLocal keeps the local version and records the remote
	// one in the conflict log. The default.
	PolicyPreserveLocal ConflictPolicy = "preserve-local"

	// PolicyLastWriterWins lets a strictly newer remote version overwrite
	// local edits, backing the discarded local snapshot up first.
	PolicyLastWriterWins ConflictPolicy = "last-writer-wins"
)

// Config carries the engine tunables.
type Config struct {
	// Interval between periodic sync passes
	Interval time.Duration

	// BaseRetryDelay is the unit of the linear retry backoff
	BaseRetryDelay time.Duration

	// MaxRetries is the retry budget before an operation is evicted
	MaxRetries int

	// Policy selects the conflict resolution behavior
	Policy ConflictPolicy
}

func (c *Config) applyDefaults() {
	if c.Interval <= 0 {
		c.Interval = 5 * time.Minute
	}
	if c.BaseRetryDelay <= 0 {
		c.BaseRetryDelay = 30 * time.Second
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 5
	}
	if c.Policy == "" {
		c.Policy = PolicyPreserveLocal
	}
}

// Engine is the synchronization engine for one authenticated session.
// Construct with New, start with Run, tear down with Close. A session
// switch means closing this instance and constructing a new one.
type Engine struct {
	entities  storage.EntityStorage
	queue     storage.QueueStorage
	conflicts storage.ConflictStorage
	metadata  storage.MetadataStorage
	remote    RemoteClient
	logger    *slog.Logger
	cfg       Config

	// syncing is the single-flight guard: one pass at a time, losing
	// triggers are dropped.
	syncing atomic.Bool

	trigger   chan struct{}
	reconnect chan struct{}
	closed    chan struct{}
	closeOnce sync.Once

	cbMu       sync.Mutex
	onStatus   func(bool)
	onError    func(string)
	onLastSync func(time.Time)
	lastError  string
}

// New creates a sync engine. Zero Config fields fall back to defaults
// (5m interval, 30s base delay, 5 retries, preserve-local policy).
func New(
	entities storage.EntityStorage,
	queue storage.QueueStorage,
	conflicts storage.ConflictStorage,
	metadata storage.MetadataStorage,
	remote RemoteClient,
	cfg Config,
	logger *slog.Logger,
) *Engine {
	cfg.applyDefaults()
	return &Engine{
		entities:  entities,
		queue:     queue,
		conflicts: conflicts,
		metadata:  metadata,
		remote:    remote,
		logger:    logger,
		cfg:       cfg,
		trigger:   make(chan struct{}, 1),
		reconnect: make(chan struct{}, 1),
		closed:    make(chan struct{}),
	}
}

// Run starts the scheduling loop: an immediate pass, the realtime
// subscription, and the periodic ticker. Blocks until ctx is cancelled
// or Close is called; an in-flight pass finishes naturally.
func (e *Engine) Run(ctx context.Context) error {
	deviceID, err := e.metadata.GetOrCreateDeviceID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get device id: %w", err)
	}

	stop := e.subscribe(ctx, deviceID)
	defer func() {
		if stop != nil {
			stop()
		}
	}()

	ticker := time.NewTicker(e.cfg.Interval)
	defer ticker.Stop()

	_ = e.ForceSync(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-e.closed:
			return nil
		case <-ticker.C:
			_ = e.ForceSync(ctx)
		case <-e.trigger:
			_ = e.ForceSync(ctx)
		case <-e.reconnect:
			if stop != nil {
				stop()
			}
			stop = e.subscribe(ctx, deviceID)
			_ = e.ForceSync(ctx)
		}
	}
}

// Close stops the scheduling loop. Safe to call more than once.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		close(e.closed)
	})
}

// ForceSync runs one sync pass now. If a pass is already in progress the
// call is a no-op and returns nil; the next trigger picks up any work
// that arrived meanwhile.
func (e *Engine) ForceSync(ctx context.Context) error {
	if !e.syncing.CompareAndSwap(false, true) {
		e.logger.Debug("sync pass already in progress, trigger dropped")
		return nil
	}
	defer e.syncing.Store(false)

	e.setStatus(true)
	defer e.setStatus(false)

	start := time.Now()
	if err := e.runPass(ctx); err != nil {
		e.logger.Error("sync pass failed", "error", err, "elapsed", time.Since(start))
		e.setError(err.Error())
		return err
	}

	now := time.Now()
	if err := e.metadata.SaveLastSyncTime(ctx, now); err != nil {
		e.logger.Warn("failed to save last sync time", "error", err)
	}
	e.notifyLastSync(now)
	e.logger.Info("sync pass completed", "elapsed", time.Since(start))
	return nil
}

// runPass executes one full pass: discovery, dispatch, pull-and-merge.
func (e *Engine) runPass(ctx context.Context) error {
	if err := e.discoverOperations(ctx); err != nil {
		return fmt.Errorf("queue discovery failed: %w", err)
	}

	stats, err := e.dispatch(ctx)
	if err != nil {
		return fmt.Errorf("dispatch failed: %w", err)
	}

	if err := e.pullAndMerge(ctx); err != nil {
		return fmt.Errorf("pull failed: %w", err)
	}

	if stats.failed > 0 || stats.evicted > 0 {
		e.setError(fmt.Sprintf("%d operations failed, %d abandoned", stats.failed, stats.evicted))
	} else {
		e.setError("")
	}
	return nil
}

// NotifyLocalChange requests an immediate pass after a local mutation
// enqueued work. Non-blocking; coalesces with a pending trigger.
func (e *Engine) NotifyLocalChange() {
	select {
	case e.trigger <- struct{}{}:
	default:
	}
}

// NotifyConnectivityRestored requests a pass and a fresh realtime
// subscription after the network came back.
func (e *Engine) NotifyConnectivityRestored() {
	select {
	case e.reconnect <- struct{}{}:
	default:
	}
}

// OnStatusChanged registers the callback invoked when a pass starts
// (true) and finishes (false).
func (e *Engine) OnStatusChanged(fn func(bool)) {
	e.cbMu.Lock()
	defer e.cbMu.Unlock()
	e.onStatus = fn
}

// OnErrorChanged registers the callback invoked when the aggregate sync
// error changes. An empty string means the last pass was clean.
func (e *Engine) OnErrorChanged(fn func(string)) {
	e.cbMu.Lock()
	defer e.cbMu.Unlock()
	e.onError = fn
}

// OnLastSyncChanged registers the callback invoked after each
// successful pass with its completion time.
func (e *Engine) OnLastSyncChanged(fn func(time.Time)) {
	e.cbMu.Lock()
	defer e.cbMu.Unlock()
	e.onLastSync = fn
}

func (e *Engine) subscribe(ctx context.Context, deviceID string) func() {
	stop, err := e.remote.Subscribe(ctx, deviceID, e.handleRealtimeEvent)
	if err != nil {
		e.logger.Warn("realtime subscription unavailable", "error", err)
		return nil
	}
	e.logger.Info("realtime subscription established", "device_id", deviceID)
	return stop
}

func (e *Engine) setStatus(syncing bool) {
	e.cbMu.Lock()
	fn := e.onStatus
	e.cbMu.Unlock()
	if fn != nil {
		fn(syncing)
	}
}

func (e *Engine) setError(msg string) {
	e.cbMu.Lock()
	changed := e.lastError != msg
	e.lastError = msg
	fn := e.onError
	e.cbMu.Unlock()
	if changed && fn != nil {
		fn(msg)
	}
}

func (e *Engine) notifyLastSync(t time.Time) {
	e.cbMu.Lock()
	fn := e.onLastSync
	e.cbMu.Unlock()
	if fn != nil {
		fn(t)
	}
}
