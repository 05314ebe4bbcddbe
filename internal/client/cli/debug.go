package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runDebug(ctx context.Context) error {
	c.io.Println("=== Sync Queue ===")
	c.io.Println()

	info, err := c.engine.DebugInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect sync queue: %w", err)
	}

	c.io.Printf("Queue depth:     %d\n", info.QueueDepth)
	c.io.Printf("Ready now:       %d\n", info.ReadyCount)
	c.io.Printf("Unsynced groups: %d\n", info.UnsyncedGroups)
	c.io.Printf("Unsynced notes:  %d\n", info.UnsyncedNotes)

	if len(info.Operations) == 0 {
		c.io.Println()
		c.io.Println("✓ Queue is empty")
		return nil
	}

	c.io.Println()
	for _, op := range info.Operations {
		c.io.Printf("#%d %s %s local_id=%d\n", op.ID, op.Kind, op.Table, op.LocalID)
		c.io.Printf("   created: %s\n", op.CreatedAt.Format(time.RFC3339))
		if op.RetryCount > 0 {
			c.io.Printf("   retries: %d\n", op.RetryCount)
		}
		if op.NextRetryAt != nil {
			c.io.Printf("   next retry: %s\n", op.NextRetryAt.Format(time.RFC3339))
		}
	}

	return nil
}
