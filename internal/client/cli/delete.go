package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: notesync delete <group|note> <id>")
	}

	localID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id: %s", args[1])
	}

	switch args[0] {
	case "group":
		if err := c.noteService.DeleteGroup(ctx, localID); err != nil {
			return fmt.Errorf("failed to delete group: %w", err)
		}
		c.io.Printf("✓ Group %d deleted (soft delete).\n", localID)
	case "note":
		if err := c.noteService.DeleteNote(ctx, localID); err != nil {
			return fmt.Errorf("failed to delete note: %w", err)
		}
		c.io.Printf("✓ Note %d deleted (soft delete).\n", localID)
	default:
		return fmt.Errorf("unknown entity type: %s. Use: group or note", args[0])
	}

	c.io.Println("The deletion syncs to the server on the next pass.")

	return nil
}
