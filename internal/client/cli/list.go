package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing entity type. Usage: notesync list <groups|notes>")
	}

	switch args[0] {
	case "groups", "group":
		return c.runListGroups(ctx)
	case "notes", "note":
		return c.runListNotes(ctx)
	default:
		return fmt.Errorf("unknown entity type: %s. Use: groups or notes", args[0])
	}
}

func (c *Cli) runListGroups(ctx context.Context) error {
	c.io.Println("=== Groups ===")
	c.io.Println()

	groups, err := c.noteService.ListGroups(ctx)
	if err != nil {
		return fmt.Errorf("failed to list groups: %w", err)
	}

	if len(groups) == 0 {
		c.io.Println("No groups found.")
		c.io.Println()
		c.io.Println("Use 'notesync add group <name>' to create your first group.")
		return nil
	}

	c.io.Printf("Found %d group(s):\n", len(groups))
	c.io.Println()

	for _, group := range groups {
		c.io.Printf("%d. %s\n", group.LocalID, group.Name)
		if group.Color != "" {
			c.io.Printf("   Color: %s\n", group.Color)
		}
		c.io.Printf("   Synced: %s\n", syncedLabel(group.NeedsSync))
		c.io.Println()
	}

	return nil
}

func (c *Cli) runListNotes(ctx context.Context) error {
	c.io.Println("=== Notes ===")
	c.io.Println()

	notes, err := c.noteService.ListNotes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}

	if len(notes) == 0 {
		c.io.Println("No notes found.")
		c.io.Println()
		c.io.Println("Use 'notesync add note <group-id> <title>' to create your first note.")
		return nil
	}

	c.io.Printf("Found %d note(s):\n", len(notes))
	c.io.Println()

	for _, note := range notes {
		c.io.Printf("%d. %s\n", note.LocalID, note.Title)
		c.io.Printf("   Group:  %d\n", note.GroupID)
		c.io.Printf("   Synced: %s\n", syncedLabel(note.NeedsSync))
		c.io.Println()
	}

	c.io.Println("Use 'notesync get <note-id>' to view full details.")

	return nil
}

func syncedLabel(needsSync bool) string {
	if needsSync {
		return "pending"
	}
	return "yes"
}
