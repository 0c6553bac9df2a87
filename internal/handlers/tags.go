package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"notevault/internal/service"
	"notevault/internal/storage"
)

// TagsHandler handles HTTP requests for tag operations.
type TagsHandler struct {
	tags service.TagService
}

// NewTagsHandler creates a new TagsHandler.
func NewTagsHandler(tags service.TagService) *TagsHandler {
	return &TagsHandler{tags: tags}
}

// SaveTagResponse identifies the saved or deleted tag.
type SaveTagResponse struct {
	Name string `json:"name"`
}

// Save handles POST /api/tags.
func (h *TagsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var tag storage.Tag
	if err := json.NewDecoder(r.Body).Decode(&tag); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.tags.Save(r.Context(), &tag); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SaveTagResponse{Name: tag.Name})
}

// List handles GET /api/tags.
func (h *TagsHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tags.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if tags == nil {
		tags = []*storage.Tag{}
	}
	writeJSON(w, http.StatusOK, tags)
}

// Delete handles DELETE /api/tags/{name}.
func (h *TagsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.tags.Delete(r.Context(), name); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SaveTagResponse{Name: name})
}
