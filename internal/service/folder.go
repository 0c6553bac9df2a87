package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_folder_store.go -package=mocks notevault/internal/service FolderStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_folder_service.go -package=mocks -mock_names=FolderService=MockFolderService notevault/internal/service FolderService

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"notevault/internal/contextutil"
	"notevault/internal/storage"
)

// FolderStore is the storage surface the folder service depends on.
type FolderStore interface {
	Save(ctx context.Context, folder *storage.Folder) error
	List(ctx context.Context) ([]*storage.Folder, error)
	Delete(ctx context.Context, id string) error
}

// FolderService provides the folder operations exposed to the host.
type FolderService interface {
	Save(ctx context.Context, folder *storage.Folder) (string, error)
	List(ctx context.Context) ([]*storage.Folder, error)
	Delete(ctx context.Context, id string) error
}

type folderService struct {
	store  FolderStore
	logger *slog.Logger
}

// NewFolderService creates a new FolderService.
func NewFolderService(store FolderStore) FolderService {
	return &folderService{
		store:  store,
		logger: slog.Default(),
	}
}

func (s *folderService) Save(ctx context.Context, folder *storage.Folder) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if folder == nil {
		return "", &ValidationError{Field: "folder", Message: "cannot be empty"}
	}
	if folder.Name == "" {
		return "", &ValidationError{Field: "name", Message: "cannot be empty"}
	}

	if folder.ID == "" {
		folder.ID = uuid.New().String()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if folder.CreatedAt == "" {
		folder.CreatedAt = now
	}
	if folder.UpdatedAt == "" {
		folder.UpdatedAt = now
	}
	if folder.Tags == nil {
		folder.Tags = []string{}
	}

	logger.DebugContext(ctx, "saving folder", "id", folder.ID, "name", folder.Name)

	if err := s.store.Save(ctx, folder); err != nil {
		return "", WrapError(err, "save folder")
	}
	return folder.ID, nil
}

func (s *folderService) List(ctx context.Context) ([]*storage.Folder, error) {
	folders, err := s.store.List(ctx)
	if err != nil {
		return nil, WrapError(err, "load folders")
	}
	return folders, nil
}

func (s *folderService) Delete(ctx context.Context, id string) error {
	logger := contextutil.LoggerFromContext(ctx)

	if id == "" {
		return &ValidationError{Field: "id", Message: "cannot be empty"}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return WrapError(err, "delete folder")
	}
	logger.InfoContext(ctx, "folder permanently deleted", "id", id)
	return nil
}
