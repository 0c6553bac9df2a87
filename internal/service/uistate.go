package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_settings_store.go -package=mocks notevault/internal/service SettingsStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_uistate_service.go -package=mocks -mock_names=UIStateService=MockUIStateService notevault/internal/service UIStateService

import (
	"context"
	"log/slog"
)

// UIStatePrefix is the reserved settings namespace for UI state keys.
const UIStatePrefix = "ui."

// SettingsStore is the storage surface the UI-state service depends on.
type SettingsStore interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, bool, error)
	LoadPrefix(ctx context.Context, prefix string) (map[string]string, error)
}

// UIStateService provides flat key-value persistence for the host UI.
type UIStateService interface {
	Set(ctx context.Context, key, value string) error
	// Get returns the value and whether the key was set. A missing key
	// is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	// LoadAll returns every key in the reserved "ui." namespace.
	LoadAll(ctx context.Context) (map[string]string, error)
}

type uiStateService struct {
	store  SettingsStore
	logger *slog.Logger
}

// NewUIStateService creates a new UIStateService.
func NewUIStateService(store SettingsStore) UIStateService {
	return &uiStateService{
		store:  store,
		logger: slog.Default(),
	}
}

func (s *uiStateService) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return &ValidationError{Field: "key", Message: "cannot be empty"}
	}

	if err := s.store.Set(ctx, key, value); err != nil {
		return WrapError(err, "save ui state")
	}
	return nil
}

func (s *uiStateService) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, &ValidationError{Field: "key", Message: "cannot be empty"}
	}

	value, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return "", false, WrapError(err, "load ui state")
	}
	return value, ok, nil
}

func (s *uiStateService) LoadAll(ctx context.Context) (map[string]string, error) {
	settings, err := s.store.LoadPrefix(ctx, UIStatePrefix)
	if err != nil {
		return nil, WrapError(err, "load ui state")
	}
	return settings, nil
}
