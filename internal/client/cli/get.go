package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing note id. Usage: notesync get <note-id>")
	}
	localID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid note id: %s", args[0])
	}

	note, err := c.noteService.GetNote(ctx, localID)
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}

	c.io.Println("=== Note Details ===")
	c.io.Println()
	c.io.Printf("ID:      %d\n", note.LocalID)
	c.io.Printf("Title:   %s\n", note.Title)
	c.io.Printf("Group:   %d\n", note.GroupID)
	c.io.Printf("Synced:  %s\n", syncedLabel(note.NeedsSync))
	c.io.Printf("Updated: %s\n", note.UpdatedAt.Format(time.RFC3339))
	c.io.Println()
	c.io.Println(string(note.Content))

	return nil
}
