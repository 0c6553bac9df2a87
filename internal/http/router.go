package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"notevault/internal/handlers"
	"notevault/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Notes   service.NoteService
	Folders service.FolderService
	Tags    service.TagService
	UIState service.UIStateService
	DB      handlers.Pinger
}

// NewRouter creates the host-facing API: one synchronous endpoint per
// storage operation.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	notes := handlers.NewNotesHandler(deps.Notes)
	preview := handlers.NewPreviewHandler(deps.Notes)
	folders := handlers.NewFoldersHandler(deps.Folders)
	tags := handlers.NewTagsHandler(deps.Tags)
	uiState := handlers.NewUIStateHandler(deps.UIState)
	health := handlers.NewHealthHandler(deps.DB)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health.Check)

		r.Route("/notes", func(r chi.Router) {
			r.Post("/", notes.Save)
			r.Get("/", notes.List)
			r.Get("/search", notes.Search)
			r.Get("/{id}", notes.Get)
			r.Get("/{id}/preview", preview.Preview)
			r.Delete("/{id}", notes.Delete)
		})

		r.Route("/folders", func(r chi.Router) {
			r.Post("/", folders.Save)
			r.Get("/", folders.List)
			r.Delete("/{id}", folders.Delete)
		})

		r.Route("/tags", func(r chi.Router) {
			r.Post("/", tags.Save)
			r.Get("/", tags.List)
			r.Delete("/{name}", tags.Delete)
		})

		r.Route("/ui-state", func(r chi.Router) {
			r.Get("/", uiState.LoadAll)
			r.Get("/{key}", uiState.Get)
			r.Put("/{key}", uiState.Set)
		})
	})

	return r
}
