package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing entity type. Usage: notesync add <group|note> ...")
	}

	switch args[0] {
	case "group":
		return c.runAddGroup(ctx, args[1:])
	case "note":
		return c.runAddNote(ctx, args[1:])
	default:
		return fmt.Errorf("unknown entity type: %s. Use: group or note", args[0])
	}
}

func (c *Cli) runAddGroup(ctx context.Context, args []string) error {
	c.io.Println("=== New Group ===")

	if len(args) == 0 {
		return fmt.Errorf("missing group name. Usage: notesync add group <name> [color]")
	}
	name := args[0]
	color := ""
	if len(args) > 1 {
		color = args[1]
	}

	group, err := c.noteService.CreateGroup(ctx, name, color)
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Group created!")
	c.io.Printf("ID:   %d\n", group.LocalID)
	c.io.Printf("Name: %s\n", group.Name)
	if group.Color != "" {
		c.io.Printf("Color: %s\n", group.Color)
	}

	return nil
}

func (c *Cli) runAddNote(ctx context.Context, args []string) error {
	c.io.Println("=== New Note ===")

	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: notesync add note <group-id> <title>")
	}
	groupID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid group id: %s", args[0])
	}
	title := args[1]

	content, err := c.io.ReadInput("Content: ")
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}

	note, err := c.noteService.CreateNote(ctx, groupID, title, []byte(content))
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Note created!")
	c.io.Printf("ID:    %d\n", note.LocalID)
	c.io.Printf("Title: %s\n", note.Title)
	c.io.Printf("Group: %d\n", note.GroupID)

	return nil
}
