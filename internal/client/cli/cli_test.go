package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notesync/internal/client/auth"
	"github.com/iudanet/notesync/internal/client/iocli"
	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/client/sync"
	"github.com/iudanet/notesync/internal/models"
)

// testIO captures command output and feeds scripted inputs.
type testIO struct {
	*iocli.IOMock
	out    strings.Builder
	inputs []string
}

func newTestIO(inputs ...string) *testIO {
	io := &testIO{inputs: inputs}
	io.IOMock = &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			io.out.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(&io.out, format, a...)
		},
		ReadInputFunc: func(prompt string) (string, error) {
			return io.nextInput()
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			return io.nextInput()
		},
	}
	return io
}

func (io *testIO) nextInput() (string, error) {
	if len(io.inputs) == 0 {
		return "", fmt.Errorf("no scripted input left")
	}
	next := io.inputs[0]
	io.inputs = io.inputs[1:]
	return next, nil
}

// fakeNotes implements notes.Service with overridable behavior.
type fakeNotes struct {
	createGroupFunc func(ctx context.Context, name, color string) (*models.Group, error)
	createNoteFunc  func(ctx context.Context, groupID int64, title string, content []byte) (*models.Note, error)
	listGroupsFunc  func(ctx context.Context) ([]*models.Group, error)
	listNotesFunc   func(ctx context.Context) ([]*models.Note, error)
	getNoteFunc     func(ctx context.Context, localID int64) (*models.Note, error)
	deletedGroups   []int64
	deletedNotes    []int64
}

func (f *fakeNotes) CreateGroup(ctx context.Context, name, color string) (*models.Group, error) {
	return f.createGroupFunc(ctx, name, color)
}

func (f *fakeNotes) UpdateGroup(ctx context.Context, localID int64, name, color string) (*models.Group, error) {
	return nil, fmt.Errorf("not used")
}

func (f *fakeNotes) DeleteGroup(ctx context.Context, localID int64) error {
	f.deletedGroups = append(f.deletedGroups, localID)
	return nil
}

func (f *fakeNotes) ListGroups(ctx context.Context) ([]*models.Group, error) {
	return f.listGroupsFunc(ctx)
}

func (f *fakeNotes) CreateNote(ctx context.Context, groupID int64, title string, content []byte) (*models.Note, error) {
	return f.createNoteFunc(ctx, groupID, title, content)
}

func (f *fakeNotes) UpdateNote(ctx context.Context, localID int64, title string, content []byte) (*models.Note, error) {
	return nil, fmt.Errorf("not used")
}

func (f *fakeNotes) DeleteNote(ctx context.Context, localID int64) error {
	f.deletedNotes = append(f.deletedNotes, localID)
	return nil
}

func (f *fakeNotes) ListNotes(ctx context.Context) ([]*models.Note, error) {
	return f.listNotesFunc(ctx)
}

func (f *fakeNotes) GetNote(ctx context.Context, localID int64) (*models.Note, error) {
	return f.getNoteFunc(ctx, localID)
}

// fakeEngine implements SyncEngine.
type fakeEngine struct {
	forceSyncErr error
	forceSyncs   int
	info         *sync.DebugInfo
	infoErr      error
}

func (f *fakeEngine) ForceSync(ctx context.Context) error {
	f.forceSyncs++
	return f.forceSyncErr
}

func (f *fakeEngine) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func (f *fakeEngine) Close() {}

func (f *fakeEngine) DebugInfo(ctx context.Context) (*sync.DebugInfo, error) {
	if f.infoErr != nil {
		return nil, f.infoErr
	}
	if f.info == nil {
		return &sync.DebugInfo{}, nil
	}
	return f.info, nil
}

func (f *fakeEngine) OnStatusChanged(fn func(bool))          {}
func (f *fakeEngine) OnErrorChanged(fn func(string))         {}
func (f *fakeEngine) OnLastSyncChanged(fn func(t time.Time)) {}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error { return f.err }

type cliFixture struct {
	io     *testIO
	auth   *auth.ServiceMock
	notes  *fakeNotes
	engine *fakeEngine
	meta   *storage.MetadataStorageMock
	ping   *fakePinger
	cli    *Cli
}

func newFixture(inputs ...string) *cliFixture {
	f := &cliFixture{
		io: newTestIO(inputs...),
		auth: &auth.ServiceMock{
			IsAuthenticatedFunc: func(ctx context.Context) (bool, error) { return true, nil },
		},
		notes:  &fakeNotes{},
		engine: &fakeEngine{},
		meta: &storage.MetadataStorageMock{
			GetLastSyncTimeFunc: func(ctx context.Context) (time.Time, error) {
				return time.Time{}, nil
			},
		},
		ping: &fakePinger{},
	}
	f.cli = New(f.io.IOMock, f.auth, f.notes, f.engine, f.meta, f.ping)
	return f
}

func TestRun_UnknownCommand(t *testing.T) {
	f := newFixture()

	err := f.cli.Run(context.Background(), "frobnicate", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRunLogin(t *testing.T) {
	f := newFixture("user@example.com", "secret")
	f.auth.LoginFunc = func(ctx context.Context, email, password string) (*auth.LoginResult, error) {
		assert.Equal(t, "user@example.com", email)
		assert.Equal(t, "secret", password)
		return &auth.LoginResult{UserID: "u1", Email: email}, nil
	}

	err := f.cli.Run(context.Background(), "login", nil)
	require.NoError(t, err)

	require.Len(t, f.auth.LoginCalls(), 1)
	assert.Contains(t, f.io.out.String(), "✓ Login successful!")
	assert.Contains(t, f.io.out.String(), "user@example.com")
}

func TestRunLogin_Error(t *testing.T) {
	f := newFixture("user@example.com", "wrong")
	f.auth.LoginFunc = func(ctx context.Context, email, password string) (*auth.LoginResult, error) {
		return nil, fmt.Errorf("invalid credentials")
	}

	err := f.cli.Run(context.Background(), "login", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")
}

func TestRunLogout(t *testing.T) {
	f := newFixture()
	f.auth.LogoutFunc = func(ctx context.Context) error { return nil }

	err := f.cli.Run(context.Background(), "logout", nil)
	require.NoError(t, err)

	require.Len(t, f.auth.LogoutCalls(), 1)
	assert.Contains(t, f.io.out.String(), "✓ Logout successful!")
}

func TestRunStatus_NotAuthenticated(t *testing.T) {
	f := newFixture()
	f.auth.IsAuthenticatedFunc = func(ctx context.Context) (bool, error) { return false, nil }

	err := f.cli.Run(context.Background(), "status", nil)
	require.NoError(t, err)
	assert.Contains(t, f.io.out.String(), "Not authenticated")
}

func TestRunStatus_AllSynced(t *testing.T) {
	f := newFixture()
	f.auth.SessionFunc = func(ctx context.Context) (*storage.AuthData, error) {
		return &storage.AuthData{
			Email:     "user@example.com",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		}, nil
	}
	lastSync := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	f.meta.GetLastSyncTimeFunc = func(ctx context.Context) (time.Time, error) {
		return lastSync, nil
	}

	err := f.cli.Run(context.Background(), "status", nil)
	require.NoError(t, err)

	out := f.io.out.String()
	assert.Contains(t, out, "Status: Authenticated")
	assert.Contains(t, out, "user@example.com")
	assert.Contains(t, out, "Server: reachable")
	assert.Contains(t, out, "2026-05-01T12:00:00Z")
	assert.Contains(t, out, "✓ All data synchronized with server")
}

func TestRunStatus_PendingAndUnreachable(t *testing.T) {
	f := newFixture()
	f.auth.SessionFunc = func(ctx context.Context) (*storage.AuthData, error) {
		return &storage.AuthData{
			Email:     "user@example.com",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		}, nil
	}
	f.ping.err = fmt.Errorf("connection refused")
	f.engine.info = &sync.DebugInfo{QueueDepth: 3, UnsyncedNotes: 2}

	err := f.cli.Run(context.Background(), "status", nil)
	require.NoError(t, err)

	out := f.io.out.String()
	assert.Contains(t, out, "Server: unreachable")
	assert.Contains(t, out, "Last sync: never")
	assert.Contains(t, out, "3 operation(s) queued")
	assert.Contains(t, out, "2 note(s) unsynced")
}
