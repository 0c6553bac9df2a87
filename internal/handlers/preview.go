package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghhtml "github.com/yuin/goldmark/renderer/html"

	"notevault/internal/contextutil"
	"notevault/internal/service"
)

// PreviewHandler renders a stored note's markdown content as an HTML
// page, for hosts that want a read-only view without an editor.
type PreviewHandler struct {
	notes    service.NoteService
	markdown goldmark.Markdown
	template *template.Template
}

type previewPageData struct {
	Title   string
	Updated string
	Content template.HTML
}

// NewPreviewHandler creates a new PreviewHandler.
func NewPreviewHandler(notes service.NoteService) *PreviewHandler {
	tmpl := template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 800px;
      line-height: 1.7;
    }
    header {
      margin-bottom: 2rem;
      border-bottom: 1px solid #ddd;
      padding-bottom: 1rem;
    }
    h1 { margin-top: 0; }
    .meta { color: #777; font-size: 0.9rem; }
    pre {
      background: #f4f4f4;
      padding: 1rem;
      overflow-x: auto;
      border-radius: 6px;
    }
    code { font-family: Consolas, Menlo, monospace; }
    blockquote {
      border-left: 4px solid #ccc;
      padding-left: 1rem;
      margin-left: 0;
      color: #555;
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    <p class="meta">Updated: {{.Updated}}</p>
  </header>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &PreviewHandler{
		notes: notes,
		markdown: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Strikethrough,
				extension.TaskList,
			),
			goldmark.WithRendererOptions(
				ghhtml.WithHardWraps(),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		template: tmpl,
	}
}

// Preview handles GET /api/notes/{id}/preview.
func (h *PreviewHandler) Preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	note, err := h.notes.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(note.Content), &buf); err != nil {
		logger.ErrorContext(ctx, "failed to render note preview", "id", note.ID, "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("render note %s: %v", note.ID, err))
		return
	}

	title := note.Title
	if title == "" {
		title = "Untitled note"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, previewPageData{
		Title:   title,
		Updated: note.UpdatedAt,
		Content: template.HTML(buf.String()),
	}); err != nil {
		logger.ErrorContext(ctx, "failed to execute preview template", "id", note.ID, "error", err)
	}
}
