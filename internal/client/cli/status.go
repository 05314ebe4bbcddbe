package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	isAuth, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !isAuth {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'notesync login' to authenticate.")
		return nil
	}

	session, err := c.authService.Session(ctx)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	expiresAt := time.Unix(session.ExpiresAt, 0)
	remaining := time.Until(expiresAt)

	c.io.Println("Status: Authenticated")
	c.io.Printf("Email: %s\n", session.Email)
	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
	if remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. Please login again.")
	}

	c.io.Println()
	if err := c.remote.Ping(ctx); err != nil {
		c.io.Printf("Server: unreachable (%v)\n", err)
		c.io.Println("Edits are saved locally and sync when the server is back.")
	} else {
		c.io.Println("Server: reachable")
	}

	lastSync, err := c.metadata.GetLastSyncTime(ctx)
	if err != nil {
		return fmt.Errorf("failed to get last sync time: %w", err)
	}
	if lastSync.IsZero() {
		c.io.Println("Last sync: never")
	} else {
		c.io.Printf("Last sync: %s\n", lastSync.Format(time.RFC3339))
	}

	info, err := c.engine.DebugInfo(ctx)
	if err != nil {
		// Keep the command useful even when the queue cannot be read.
		c.io.Printf("\nWarning: failed to inspect sync queue: %v\n", err)
		return nil
	}

	c.io.Println()
	pending := info.QueueDepth + info.UnsyncedGroups + info.UnsyncedNotes
	if pending > 0 {
		c.io.Printf("⚠️  Pending sync: %d operation(s) queued, %d group(s) and %d note(s) unsynced\n",
			info.QueueDepth, info.UnsyncedGroups, info.UnsyncedNotes)
		c.io.Println("Run 'notesync sync' to synchronize with server.")
	} else {
		c.io.Println("✓ All data synchronized with server")
	}

	return nil
}
