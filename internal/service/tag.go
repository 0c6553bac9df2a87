package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_tag_store.go -package=mocks notevault/internal/service TagStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_tag_service.go -package=mocks -mock_names=TagService=MockTagService notevault/internal/service TagService

import (
	"context"
	"log/slog"
	"time"

	"notevault/internal/contextutil"
	"notevault/internal/storage"
)

// TagStore is the storage surface the tag service depends on.
type TagStore interface {
	Save(ctx context.Context, tag *storage.Tag) error
	List(ctx context.Context) ([]*storage.Tag, error)
	Delete(ctx context.Context, name string) error
}

// TagService provides the tag operations exposed to the host. Tags
// are keyed by name; there is no surrogate id anywhere in this path.
type TagService interface {
	Save(ctx context.Context, tag *storage.Tag) error
	List(ctx context.Context) ([]*storage.Tag, error)
	Delete(ctx context.Context, name string) error
}

type tagService struct {
	store  TagStore
	logger *slog.Logger
}

// NewTagService creates a new TagService.
func NewTagService(store TagStore) TagService {
	return &tagService{
		store:  store,
		logger: slog.Default(),
	}
}

func (s *tagService) Save(ctx context.Context, tag *storage.Tag) error {
	if tag == nil || tag.Name == "" {
		return &ValidationError{Field: "name", Message: "cannot be empty"}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if tag.CreatedAt == "" {
		tag.CreatedAt = now
	}
	if tag.UpdatedAt == "" {
		tag.UpdatedAt = now
	}

	if err := s.store.Save(ctx, tag); err != nil {
		return WrapError(err, "save tag")
	}
	return nil
}

func (s *tagService) List(ctx context.Context) ([]*storage.Tag, error) {
	tags, err := s.store.List(ctx)
	if err != nil {
		return nil, WrapError(err, "load tags")
	}
	return tags, nil
}

func (s *tagService) Delete(ctx context.Context, name string) error {
	logger := contextutil.LoggerFromContext(ctx)

	if name == "" {
		return &ValidationError{Field: "name", Message: "cannot be empty"}
	}

	if err := s.store.Delete(ctx, name); err != nil {
		return WrapError(err, "delete tag")
	}
	logger.InfoContext(ctx, "tag deleted", "name", name)
	return nil
}
