// Package notes implements the user-facing editing operations. Every
// mutation marks the entity dirty, enqueues a sync operation with a
// payload snapshot, and nudges the engine for an immediate pass.
package notes

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/notesync/internal/client/storage"
	"github.com/iudanet/notesync/internal/models"
)

// Notifier receives the post-mutation trigger. Satisfied by the sync
// engine; nil disables notification.
type Notifier interface {
	NotifyLocalChange()
}

// Service defines the editing surface consumed by the CLI.
type Service interface {
	CreateGroup(ctx context.Context, name, color string) (*models.Group, error)
	UpdateGroup(ctx context.Context, localID int64, name, color string) (*models.Group, error)
	DeleteGroup(ctx context.Context, localID int64) error
	ListGroups(ctx context.Context) ([]*models.Group, error)

	CreateNote(ctx context.Context, groupID int64, title string, content []byte) (*models.Note, error)
	UpdateNote(ctx context.Context, localID int64, title string, content []byte) (*models.Note, error)
	DeleteNote(ctx context.Context, localID int64) error
	ListNotes(ctx context.Context) ([]*models.Note, error)
	GetNote(ctx context.Context, localID int64) (*models.Note, error)
}

type service struct {
	entities storage.EntityStorage
	queue    storage.QueueStorage
	notifier Notifier
}

// NewService creates the editing service. notifier may be nil.
func NewService(entities storage.EntityStorage, queue storage.QueueStorage, notifier Notifier) Service {
	return &service{
		entities: entities,
		queue:    queue,
		notifier: notifier,
	}
}

func (s *service) CreateGroup(ctx context.Context, name, color string) (*models.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("group name is required")
	}

	now := time.Now()
	group := &models.Group{
		Name:      name,
		Color:     color,
		Version:   1,
		NeedsSync: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	localID, err := s.entities.InsertGroup(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("failed to insert group: %w", err)
	}
	group.LocalID = localID

	if err := s.enqueueGroup(ctx, group, models.OpCreate); err != nil {
		return nil, err
	}
	s.notify()
	return group, nil
}

func (s *service) UpdateGroup(ctx context.Context, localID int64, name, color string) (*models.Group, error) {
	group, err := s.entities.GetGroupByID(ctx, localID)
	if err != nil {
		return nil, fmt.Errorf("failed to load group: %w", err)
	}

	if name != "" {
		group.Name = name
	}
	if color != "" {
		group.Color = color
	}
	group.NeedsSync = true
	group.UpdatedAt = time.Now()
	if err := s.entities.UpdateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	kind := models.OpUpdate
	if !group.HasRemoteID() {
		kind = models.OpCreate
	}
	if err := s.enqueueGroup(ctx, group, kind); err != nil {
		return nil, err
	}
	s.notify()
	return group, nil
}

func (s *service) DeleteGroup(ctx context.Context, localID int64) error {
	group, err := s.entities.GetGroupByID(ctx, localID)
	if err != nil {
		return fmt.Errorf("failed to load group: %w", err)
	}

	if err := s.entities.SoftDeleteGroup(ctx, localID); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	group.Deleted = true
	group.NeedsSync = true
	group.UpdatedAt = time.Now()
	if err := s.entities.UpdateGroup(ctx, group); err != nil {
		return fmt.Errorf("failed to mark group for sync: %w", err)
	}

	if err := s.enqueueDelete(ctx, models.TableGroups, localID); err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *service) ListGroups(ctx context.Context) ([]*models.Group, error) {
	groups, err := s.entities.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

func (s *service) CreateNote(ctx context.Context, groupID int64, title string, content []byte) (*models.Note, error) {
	if _, err := s.entities.GetGroupByID(ctx, groupID); err != nil {
		return nil, fmt.Errorf("failed to load group %d: %w", groupID, err)
	}

	now := time.Now()
	note := &models.Note{
		Title:     title,
		Content:   content,
		GroupID:   groupID,
		Version:   1,
		NeedsSync: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	localID, err := s.entities.InsertNote(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}
	note.LocalID = localID

	if err := s.enqueueNote(ctx, note, models.OpCreate); err != nil {
		return nil, err
	}
	s.notify()
	return note, nil
}

func (s *service) UpdateNote(ctx context.Context, localID int64, title string, content []byte) (*models.Note, error) {
	note, err := s.entities.GetNoteByID(ctx, localID)
	if err != nil {
		return nil, fmt.Errorf("failed to load note: %w", err)
	}

	if title != "" {
		note.Title = title
	}
	if content != nil {
		note.Content = content
	}
	note.NeedsSync = true
	note.UpdatedAt = time.Now()
	if err := s.entities.UpdateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	kind := models.OpUpdate
	if !note.HasRemoteID() {
		kind = models.OpCreate
	}
	if err := s.enqueueNote(ctx, note, kind); err != nil {
		return nil, err
	}
	s.notify()
	return note, nil
}

func (s *service) DeleteNote(ctx context.Context, localID int64) error {
	note, err := s.entities.GetNoteByID(ctx, localID)
	if err != nil {
		return fmt.Errorf("failed to load note: %w", err)
	}

	if err := s.entities.SoftDeleteNote(ctx, localID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	note.Deleted = true
	note.NeedsSync = true
	note.UpdatedAt = time.Now()
	if err := s.entities.UpdateNote(ctx, note); err != nil {
		return fmt.Errorf("failed to mark note for sync: %w", err)
	}

	if err := s.enqueueDelete(ctx, models.TableNotes, localID); err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *service) ListNotes(ctx context.Context) ([]*models.Note, error) {
	notes, err := s.entities.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

func (s *service) GetNote(ctx context.Context, localID int64) (*models.Note, error) {
	note, err := s.entities.GetNoteByID(ctx, localID)
	if err != nil {
		return nil, fmt.Errorf("failed to load note: %w", err)
	}
	return note, nil
}

func (s *service) enqueueGroup(ctx context.Context, group *models.Group, kind models.OperationKind) error {
	snapshot := models.GroupSnapshot(group)
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal group snapshot: %w", err)
	}
	return s.enqueue(ctx, &models.SyncOperation{
		Kind:      kind,
		Table:     models.TableGroups,
		LocalID:   group.LocalID,
		Payload:   payload,
		CreatedAt: time.Now(),
	})
}

func (s *service) enqueueNote(ctx context.Context, note *models.Note, kind models.OperationKind) error {
	snapshot := models.NoteSnapshot(note)
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal note snapshot: %w", err)
	}
	return s.enqueue(ctx, &models.SyncOperation{
		Kind:      kind,
		Table:     models.TableNotes,
		LocalID:   note.LocalID,
		Payload:   payload,
		CreatedAt: time.Now(),
	})
}

func (s *service) enqueueDelete(ctx context.Context, table models.EntityTable, localID int64) error {
	return s.enqueue(ctx, &models.SyncOperation{
		Kind:      models.OpDelete,
		Table:     table,
		LocalID:   localID,
		Payload:   json.RawMessage(`{}`),
		CreatedAt: time.Now(),
	})
}

func (s *service) enqueue(ctx context.Context, op *models.SyncOperation) error {
	if _, err := s.queue.EnqueueOperation(ctx, op); err != nil {
		return fmt.Errorf("failed to enqueue operation: %w", err)
	}
	return nil
}

func (s *service) notify() {
	if s.notifier != nil {
		s.notifier.NotifyLocalChange()
	}
}
