package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"notevault/internal/service"
	"notevault/internal/service/mocks"
	"notevault/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewNoteService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewNoteService(mocks.NewMockNoteStore(ctrl))
	if svc == nil {
		t.Fatal("NewNoteService() returned nil")
	}
}

func TestNoteService_Save(t *testing.T) {
	tests := []struct {
		name         string
		note         *storage.Note
		mockSetup    func(store *mocks.MockNoteStore)
		wantErr      bool
		checkErrType func(error) bool
		checkNote    func(*testing.T, *storage.Note, string)
	}{
		{
			name: "generates id and timestamps when absent",
			note: &storage.Note{Title: "New note", Content: "body"},
			mockSetup: func(store *mocks.MockNoteStore) {
				store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			checkNote: func(t *testing.T, note *storage.Note, id string) {
				if id == "" {
					t.Error("Save() returned empty id")
				}
				if _, err := uuid.Parse(id); err != nil {
					t.Errorf("Save() id %q is not a UUID: %v", id, err)
				}
				if note.CreatedAt == "" || note.UpdatedAt == "" {
					t.Error("Save() left timestamps empty")
				}
				if note.Tags == nil {
					t.Error("Save() left tags nil")
				}
			},
		},
		{
			name: "keeps caller-supplied id and timestamps",
			note: &storage.Note{
				ID:        "fixed-id",
				Title:     "Existing",
				Content:   "body",
				Tags:      []string{"a"},
				CreatedAt: "2026-01-01T00:00:00Z",
				UpdatedAt: "2026-01-02T00:00:00Z",
			},
			mockSetup: func(store *mocks.MockNoteStore) {
				store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			checkNote: func(t *testing.T, note *storage.Note, id string) {
				if id != "fixed-id" {
					t.Errorf("Save() id = %q, want fixed-id", id)
				}
				if note.CreatedAt != "2026-01-01T00:00:00Z" || note.UpdatedAt != "2026-01-02T00:00:00Z" {
					t.Errorf("Save() rewrote timestamps: %s / %s", note.CreatedAt, note.UpdatedAt)
				}
			},
		},
		{
			name:      "nil note",
			note:      nil,
			mockSetup: func(store *mocks.MockNoteStore) {},
			wantErr:   true,
			checkErrType: func(err error) bool {
				var validationErr *service.ValidationError
				return errors.As(err, &validationErr) && validationErr.Field == "note"
			},
		},
		{
			name: "guard rejection passes through for errors.As",
			note: &storage.Note{ID: "n1", Title: "Guarded", Content: ""},
			mockSetup: func(store *mocks.MockNoteStore) {
				store.EXPECT().Save(gomock.Any(), gomock.Any()).
					Return(&storage.GuardedOverwriteError{NoteID: "n1", Title: "Guarded", ExistingLen: 900})
			},
			wantErr: true,
			checkErrType: func(err error) bool {
				var guardErr *storage.GuardedOverwriteError
				return errors.As(err, &guardErr) && guardErr.ExistingLen == 900
			},
		},
		{
			name: "store failure is wrapped",
			note: &storage.Note{Title: "Doomed", Content: "body"},
			mockSetup: func(store *mocks.MockNoteStore) {
				store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockNoteStore(ctrl)
			tt.mockSetup(store)
			svc := service.NewNoteService(store)

			id, err := svc.Save(context.Background(), tt.note)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Save() expected error, got nil")
				}
				if tt.checkErrType != nil && !tt.checkErrType(err) {
					t.Errorf("Save() error = %v, wrong type", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Save() unexpected error: %v", err)
			}
			if tt.checkNote != nil {
				tt.checkNote(t, tt.note, id)
			}
		})
	}
}

func TestNoteService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockNoteStore(ctrl)
	svc := service.NewNoteService(store)
	ctx := context.Background()

	want := &storage.Note{ID: "n1", Title: "Found"}
	store.EXPECT().Get(gomock.Any(), "n1").Return(want, nil)

	got, err := svc.Get(ctx, "n1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}

	// Empty id never reaches the store.
	if _, err := svc.Get(ctx, ""); err == nil {
		t.Error("Get() with empty id expected error")
	}

	// Miss keeps the sentinel visible through the wrap.
	store.EXPECT().Get(gomock.Any(), "missing").
		Return(nil, storage.ErrNotFound)
	if _, err := svc.Get(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get() miss error = %v, want ErrNotFound in chain", err)
	}
}

func TestNoteService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockNoteStore(ctrl)
	svc := service.NewNoteService(store)
	ctx := context.Background()

	want := []*storage.Note{{ID: "n1"}}
	store.EXPECT().Search(gomock.Any(), "hello").Return(want, nil)

	got, err := svc.Search(ctx, "hello")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "n1" {
		t.Errorf("Search() = %+v, want %+v", got, want)
	}

	var validationErr *service.ValidationError
	if _, err := svc.Search(ctx, ""); !errors.As(err, &validationErr) {
		t.Errorf("Search() empty query error = %v, want ValidationError", err)
	}
}

func TestNoteService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockNoteStore(ctrl)
	svc := service.NewNoteService(store)
	ctx := context.Background()

	store.EXPECT().Delete(gomock.Any(), "n1").Return(nil)
	if err := svc.Delete(ctx, "n1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var validationErr *service.ValidationError
	if err := svc.Delete(ctx, ""); !errors.As(err, &validationErr) {
		t.Errorf("Delete() empty id error = %v, want ValidationError", err)
	}
}
