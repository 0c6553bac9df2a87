package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"notevault/internal/service"
	"notevault/internal/storage"
)

// NotesHandler handles HTTP requests for note operations.
type NotesHandler struct {
	notes service.NoteService
}

// NewNotesHandler creates a new NotesHandler.
func NewNotesHandler(notes service.NoteService) *NotesHandler {
	return &NotesHandler{notes: notes}
}

// SaveNoteResponse identifies the saved note.
type SaveNoteResponse struct {
	ID string `json:"id"`
}

// Save handles POST /api/notes.
func (h *NotesHandler) Save(w http.ResponseWriter, r *http.Request) {
	var note storage.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.notes.Save(r.Context(), &note)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SaveNoteResponse{ID: id})
}

// Get handles GET /api/notes/{id}.
func (h *NotesHandler) Get(w http.ResponseWriter, r *http.Request) {
	note, err := h.notes.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// List handles GET /api/notes.
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if notes == nil {
		notes = []*storage.Note{}
	}
	writeJSON(w, http.StatusOK, notes)
}

// Search handles GET /api/notes/search?q=.
func (h *NotesHandler) Search(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if notes == nil {
		notes = []*storage.Note{}
	}
	writeJSON(w, http.StatusOK, notes)
}

// Delete handles DELETE /api/notes/{id}.
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.notes.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SaveNoteResponse{ID: id})
}
