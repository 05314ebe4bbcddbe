// Package cli implements the notesync command line interface.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/notesync/internal/client/auth"
	"github.com/iudanet/notesync/internal/client/iocli"
	"github.com/iudanet/notesync/internal/client/notes"
	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/client/sync"
)

// SyncEngine is the part of the sync engine the commands drive.
type SyncEngine interface {
	ForceSync(ctx context.Context) error
	Run(ctx context.Context) error
	Close()
	DebugInfo(ctx context.Context) (*sync.DebugInfo, error)
	OnStatusChanged(fn func(bool))
	OnErrorChanged(fn func(string))
	OnLastSyncChanged(fn func(time.Time))
}

// Pinger checks server reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Cli struct {
	io          iocli.IO
	authService auth.Service
	noteService notes.Service
	engine      SyncEngine
	metadata    storage.MetadataStorage
	remote      Pinger
}

func New(
	io iocli.IO,
	authService auth.Service,
	noteService notes.Service,
	engine SyncEngine,
	metadata storage.MetadataStorage,
	remote Pinger,
) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		noteService: noteService,
		engine:      engine,
		metadata:    metadata,
		remote:      remote,
	}
}

// Run dispatches a single command invocation.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "add":
		return c.runAdd(ctx, args)
	case "list":
		return c.runList(ctx, args)
	case "get":
		return c.runGet(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "watch":
		return c.runWatch(ctx)
	case "debug":
		return c.runDebug(ctx)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

func PrintUsage() {
	fmt.Println("NoteSync Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  notesync [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version            Show version information")
	fmt.Println("  --server URL         Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH            Path to local database (default: notesync.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                   Login to server")
	fmt.Println("  logout                  Logout from server")
	fmt.Println("  status                  Show session and sync status")
	fmt.Println("  add group <name> [color]        Create a group")
	fmt.Println("  add note <group-id> <title>     Create a note (content is prompted)")
	fmt.Println("  list groups             List groups")
	fmt.Println("  list notes              List notes")
	fmt.Println("  get <note-id>           Show full note details")
	fmt.Println("  delete group <id>       Delete a group")
	fmt.Println("  delete note <id>        Delete a note")
	fmt.Println("  sync                    Run one synchronization pass")
	fmt.Println("  watch                   Keep syncing until interrupted")
	fmt.Println("  debug                   Show the pending operation queue")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  notesync login")
	fmt.Println("  notesync add group Work blue")
	fmt.Println("  notesync add note 1 'Meeting notes'")
	fmt.Println("  notesync list notes")
	fmt.Println("  notesync sync")
	fmt.Println("  notesync --server https://example.com watch")
}
