package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"notevault/internal/service"
)

// UIStateHandler handles HTTP requests for UI-state key/value pairs.
type UIStateHandler struct {
	uiState service.UIStateService
}

// NewUIStateHandler creates a new UIStateHandler.
func NewUIStateHandler(uiState service.UIStateService) *UIStateHandler {
	return &UIStateHandler{uiState: uiState}
}

// SetUIStateRequest carries the value to store under a key.
type SetUIStateRequest struct {
	Value string `json:"value"`
}

// UIStateResponse returns a key and its value. Value is null when the
// key is unset, which is a normal outcome rather than an error.
type UIStateResponse struct {
	Key   string  `json:"key"`
	Value *string `json:"value"`
}

// Set handles PUT /api/ui-state/{key}.
func (h *UIStateHandler) Set(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req SetUIStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.uiState.Set(r.Context(), key, req.Value); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, UIStateResponse{Key: key, Value: &req.Value})
}

// Get handles GET /api/ui-state/{key}.
func (h *UIStateHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	value, ok, err := h.uiState.Get(r.Context(), key)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := UIStateResponse{Key: key}
	if ok {
		resp.Value = &value
	}
	writeJSON(w, http.StatusOK, resp)
}

// LoadAll handles GET /api/ui-state.
func (h *UIStateHandler) LoadAll(w http.ResponseWriter, r *http.Request) {
	settings, err := h.uiState.LoadAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
