package service_test

import (
	"context"
	"errors"
	"testing"

	"notevault/internal/service"
	"notevault/internal/service/mocks"
	"notevault/internal/storage"

	"go.uber.org/mock/gomock"
)

func TestTagService_Save(t *testing.T) {
	tests := []struct {
		name      string
		tag       *storage.Tag
		mockSetup func(store *mocks.MockTagStore)
		wantErr   bool
	}{
		{
			name: "fills timestamps",
			tag:  &storage.Tag{Name: "research"},
			mockSetup: func(store *mocks.MockTagStore) {
				store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "nil tag",
			tag:       nil,
			mockSetup: func(store *mocks.MockTagStore) {},
			wantErr:   true,
		},
		{
			name:      "empty name",
			tag:       &storage.Tag{},
			mockSetup: func(store *mocks.MockTagStore) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockTagStore(ctrl)
			tt.mockSetup(store)
			svc := service.NewTagService(store)

			err := svc.Save(context.Background(), tt.tag)

			if tt.wantErr {
				var validationErr *service.ValidationError
				if !errors.As(err, &validationErr) {
					t.Errorf("Save() error = %v, want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Save() unexpected error: %v", err)
			}
			if tt.tag.CreatedAt == "" || tt.tag.UpdatedAt == "" {
				t.Error("Save() left timestamps empty")
			}
		})
	}
}

func TestTagService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockTagStore(ctrl)
	svc := service.NewTagService(store)

	want := []*storage.Tag{{Name: "research"}}
	store.EXPECT().List(gomock.Any()).Return(want, nil)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "research" {
		t.Errorf("List() = %+v, want %+v", got, want)
	}
}

func TestTagService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockTagStore(ctrl)
	svc := service.NewTagService(store)
	ctx := context.Background()

	store.EXPECT().Delete(gomock.Any(), "research").Return(nil)
	if err := svc.Delete(ctx, "research"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var validationErr *service.ValidationError
	if err := svc.Delete(ctx, ""); !errors.As(err, &validationErr) {
		t.Errorf("Delete() empty name error = %v, want ValidationError", err)
	}
}
