package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	isAuth, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}
	if !isAuth {
		return fmt.Errorf("not authenticated. Please run 'notesync login' first")
	}

	c.io.Println("Starting synchronization with server...")

	if err := c.engine.ForceSync(ctx); err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	info, err := c.engine.DebugInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect sync queue: %w", err)
	}

	c.io.Println()
	if info.QueueDepth == 0 && info.UnsyncedGroups == 0 && info.UnsyncedNotes == 0 {
		c.io.Println("✓ Synchronization completed successfully!")
		c.io.Println("Your data is now synchronized with the server.")
	} else {
		c.io.Println("Synchronization pass finished with work remaining:")
		c.io.Printf("Queued operations: %d\n", info.QueueDepth)
		c.io.Printf("Unsynced groups:   %d\n", info.UnsyncedGroups)
		c.io.Printf("Unsynced notes:    %d\n", info.UnsyncedNotes)
		c.io.Println()
		c.io.Println("Failed operations retry on the next pass.")
	}

	return nil
}

// runWatch runs the engine loop until the context is cancelled,
// reporting status transitions as they happen.
func (c *Cli) runWatch(ctx context.Context) error {
	c.io.Println("=== Watch ===")
	c.io.Println()

	isAuth, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}
	if !isAuth {
		return fmt.Errorf("not authenticated. Please run 'notesync login' first")
	}

	c.engine.OnStatusChanged(func(syncing bool) {
		if syncing {
			c.io.Println("… syncing")
		}
	})
	c.engine.OnLastSyncChanged(func(t time.Time) {
		c.io.Printf("✓ synced at %s\n", t.Format(time.RFC3339))
	})
	c.engine.OnErrorChanged(func(msg string) {
		if msg != "" {
			c.io.Printf("⚠️  %s\n", msg)
		}
	})

	c.io.Println("Watching for changes. Press Ctrl+C to stop.")
	defer c.engine.Close()

	if err := c.engine.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("sync loop failed: %w", err)
	}

	c.io.Println()
	c.io.Println("Watch stopped.")

	return nil
}
