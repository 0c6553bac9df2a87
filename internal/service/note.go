package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_note_store.go -package=mocks notevault/internal/service NoteStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_note_service.go -package=mocks -mock_names=NoteService=MockNoteService notevault/internal/service NoteService

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"notevault/internal/contextutil"
	"notevault/internal/storage"
)

// NoteStore is the storage surface the note service depends on.
// Defined here, consumer-first.
type NoteStore interface {
	Save(ctx context.Context, note *storage.Note) error
	Get(ctx context.Context, id string) (*storage.Note, error)
	List(ctx context.Context) ([]*storage.Note, error)
	Search(ctx context.Context, query string) ([]*storage.Note, error)
	Delete(ctx context.Context, id string) error
}

// NoteService provides the note operations exposed to the host.
type NoteService interface {
	// Save upserts a note and returns its id, generating one when the
	// host omits it.
	Save(ctx context.Context, note *storage.Note) (string, error)
	// Get loads a note with its tags.
	Get(ctx context.Context, id string) (*storage.Note, error)
	// List returns every note, most recently updated first.
	List(ctx context.Context) ([]*storage.Note, error)
	// Search runs a ranked full-text query.
	Search(ctx context.Context, query string) ([]*storage.Note, error)
	// Delete permanently removes a note.
	Delete(ctx context.Context, id string) error
}

type noteService struct {
	store  NoteStore
	logger *slog.Logger
}

// NewNoteService creates a new NoteService.
func NewNoteService(store NoteStore) NoteService {
	return &noteService{
		store:  store,
		logger: slog.Default(),
	}
}

func (s *noteService) Save(ctx context.Context, note *storage.Note) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if note == nil {
		return "", &ValidationError{Field: "note", Message: "cannot be empty"}
	}

	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if note.CreatedAt == "" {
		note.CreatedAt = now
	}
	if note.UpdatedAt == "" {
		note.UpdatedAt = now
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}

	logger.DebugContext(ctx, "saving note",
		"id", note.ID, "title", note.Title, "content_length", len(note.Content), "tags", len(note.Tags))

	if err := s.store.Save(ctx, note); err != nil {
		logger.WarnContext(ctx, "note save rejected", "id", note.ID, "error", err)
		return "", WrapError(err, "save note")
	}
	return note.ID, nil
}

func (s *noteService) Get(ctx context.Context, id string) (*storage.Note, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Message: "cannot be empty"}
	}

	note, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, WrapError(err, "load note")
	}
	return note, nil
}

func (s *noteService) List(ctx context.Context) ([]*storage.Note, error) {
	notes, err := s.store.List(ctx)
	if err != nil {
		return nil, WrapError(err, "load notes")
	}
	return notes, nil
}

func (s *noteService) Search(ctx context.Context, query string) ([]*storage.Note, error) {
	if query == "" {
		return nil, &ValidationError{Field: "query", Message: "cannot be empty"}
	}

	notes, err := s.store.Search(ctx, query)
	if err != nil {
		return nil, WrapError(err, "search notes")
	}
	return notes, nil
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	logger := contextutil.LoggerFromContext(ctx)

	if id == "" {
		return &ValidationError{Field: "id", Message: "cannot be empty"}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return WrapError(err, "delete note")
	}
	logger.InfoContext(ctx, "note permanently deleted", "id", id)
	return nil
}
