package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"notevault/internal/service"
	"notevault/internal/service/mocks"
	"notevault/internal/storage"

	"go.uber.org/mock/gomock"
)

func TestFoldersHandler_Save(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(*mocks.MockFolderService)
		wantStatus int
	}{
		{
			name: "successful save",
			body: `{"name":"Projects"}`,
			mockSetup: func(m *mocks.MockFolderService) {
				m.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return("f1", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid JSON body",
			body: "not json",
			mockSetup: func(m *mocks.MockFolderService) {
				// No calls expected
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing name",
			body: `{}`,
			mockSetup: func(m *mocks.MockFolderService) {
				m.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return("", &service.ValidationError{Field: "name", Message: "cannot be empty"})
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFolderService := mocks.NewMockFolderService(ctrl)
			tt.mockSetup(mockFolderService)
			handler := NewFoldersHandler(mockFolderService)

			req := httptest.NewRequest(http.MethodPost, "/api/folders", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Save(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Save() status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestFoldersHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFolderService := mocks.NewMockFolderService(ctrl)
	mockFolderService.EXPECT().
		List(gomock.Any()).
		Return([]*storage.Folder{{ID: "f1", Name: "Projects", Tags: []string{}}}, nil)
	handler := NewFoldersHandler(mockFolderService)

	req := httptest.NewRequest(http.MethodGet, "/api/folders", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("List() status = %d, want %d", w.Code, http.StatusOK)
	}

	var folders []*storage.Folder
	if err := json.NewDecoder(w.Body).Decode(&folders); err != nil {
		t.Fatalf("List() response decode error = %v", err)
	}
	if len(folders) != 1 || folders[0].ID != "f1" {
		t.Errorf("List() = %+v, want folder f1", folders)
	}
}

func TestFoldersHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFolderService := mocks.NewMockFolderService(ctrl)
	mockFolderService.EXPECT().Delete(gomock.Any(), "f1").Return(nil)
	handler := NewFoldersHandler(mockFolderService)

	req := httptest.NewRequest(http.MethodDelete, "/api/folders/f1", nil)
	req = requestWithParam(req, "id", "f1")
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Delete() status = %d, want %d", w.Code, http.StatusOK)
	}
}
