package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"notevault/internal/service"
	"notevault/internal/storage"
)

// FoldersHandler handles HTTP requests for folder operations.
type FoldersHandler struct {
	folders service.FolderService
}

// NewFoldersHandler creates a new FoldersHandler.
func NewFoldersHandler(folders service.FolderService) *FoldersHandler {
	return &FoldersHandler{folders: folders}
}

// SaveFolderResponse identifies the saved folder.
type SaveFolderResponse struct {
	ID string `json:"id"`
}

// Save handles POST /api/folders.
func (h *FoldersHandler) Save(w http.ResponseWriter, r *http.Request) {
	var folder storage.Folder
	if err := json.NewDecoder(r.Body).Decode(&folder); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.folders.Save(r.Context(), &folder)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SaveFolderResponse{ID: id})
}

// List handles GET /api/folders.
func (h *FoldersHandler) List(w http.ResponseWriter, r *http.Request) {
	folders, err := h.folders.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if folders == nil {
		folders = []*storage.Folder{}
	}
	writeJSON(w, http.StatusOK, folders)
}

// Delete handles DELETE /api/folders/{id}.
func (h *FoldersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.folders.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SaveFolderResponse{ID: id})
}
