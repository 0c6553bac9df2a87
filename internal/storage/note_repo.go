package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

const noteColumns = `id, title, description, description_visible, emoji, content,
	tags_visible, is_favorite, folder_id, daily_note_date, created_at, updated_at, deleted_at`

// searchLimit caps full-text search results.
const searchLimit = 50

// bootGuardThreshold is the stored content length above which a
// boot-state save is treated as accidental destruction.
const bootGuardThreshold = 200

// isBootStateContent reports whether content looks like an
// uninitialized editor rather than a deliberate clear. Structured
// empty documents are allowed through; only these exact literals are
// suspicious.
func isBootStateContent(content string) bool {
	switch content {
	case "", `""`, "{}":
		return true
	}
	return false
}

// NoteRepo provides note persistence over the shared connection.
type NoteRepo struct {
	db *DB
}

// NewNoteRepo creates a new NoteRepo.
func NewNoteRepo(db *DB) *NoteRepo {
	return &NoteRepo{db: db}
}

// Save inserts the note or updates it in place on id conflict. The
// whole sequence (guard probe, row upsert, tag ensure, association
// replace) runs in one transaction so a mid-sequence failure cannot
// leave associations inconsistent with the row.
//
// Boot-state guard: if the incoming content matches an uninitialized
// editor literal and the stored content for this id exceeds
// bootGuardThreshold characters, the save fails with
// *GuardedOverwriteError and the row is left untouched.
func (r *NoteRepo) Save(ctx context.Context, note *Note) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	conn, err := r.db.conn()
	if err != nil {
		return err
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin note save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if isBootStateContent(note.Content) {
		var existingLen int
		err := tx.QueryRowContext(ctx,
			"SELECT LENGTH(content) FROM notes WHERE id = ?", note.ID,
		).Scan(&existingLen)
		switch {
		case err == sql.ErrNoRows:
			// First save under this id, nothing to destroy.
		case err != nil:
			return fmt.Errorf("probe existing content for note %s: %w", note.ID, err)
		case existingLen > bootGuardThreshold:
			return &GuardedOverwriteError{NoteID: note.ID, Title: note.Title, ExistingLen: existingLen}
		}
	}

	// ON CONFLICT keeps row identity and the original created_at.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO notes
			(id, title, description, description_visible, emoji, content, tags_visible,
			 is_favorite, folder_id, daily_note_date, created_at, updated_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			description_visible = excluded.description_visible,
			emoji = excluded.emoji,
			content = excluded.content,
			tags_visible = excluded.tags_visible,
			is_favorite = excluded.is_favorite,
			folder_id = excluded.folder_id,
			daily_note_date = excluded.daily_note_date,
			updated_at = excluded.updated_at,
			deleted_at = excluded.deleted_at`,
		note.ID, note.Title, note.Description, boolToInt(note.DescriptionVisible),
		note.Emoji, note.Content, boolToInt(note.TagsVisible), boolToInt(note.IsFavorite),
		note.FolderID, note.DailyNoteDate, note.CreatedAt, note.UpdatedAt, note.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert note %s: %w", note.ID, err)
	}

	// Tags must exist before the junction rows reference them.
	if err := ensureTags(ctx, tx, note.Tags, note.UpdatedAt); err != nil {
		return err
	}

	// Full replacement of the association set.
	if _, err := tx.ExecContext(ctx, "DELETE FROM note_tags WHERE note_id = ?", note.ID); err != nil {
		return fmt.Errorf("clear tags for note %s: %w", note.ID, err)
	}
	for _, tag := range note.Tags {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO note_tags (note_id, tag_name) VALUES (?, ?)", note.ID, tag,
		); err != nil {
			return fmt.Errorf("attach tag %q to note %s: %w", tag, note.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit note save %s: %w", note.ID, err)
	}
	return nil
}

// Get loads a single note with its tags. Returns ErrNotFound when the
// id does not exist.
func (r *NoteRepo) Get(ctx context.Context, id string) (*Note, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	conn, err := r.db.conn()
	if err != nil {
		return nil, err
	}

	note, err := scanNote(conn.QueryRowContext(ctx,
		"SELECT "+noteColumns+" FROM notes WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("note %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load note %s: %w", id, err)
	}

	rows, err := conn.QueryContext(ctx,
		"SELECT tag_name FROM note_tags WHERE note_id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("load tags for note %s: %w", id, err)
	}
	defer rows.Close()

	note.Tags = []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		note.Tags = append(note.Tags, tag)
	}
	return note, rows.Err()
}

// List returns every note, soft-deleted ones included; filtering by
// deletion state is the caller's concern. Ordered most recently
// updated first. Tags are attached from a single junction query
// grouped in memory, not one query per note.
func (r *NoteRepo) List(ctx context.Context) ([]*Note, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	conn, err := r.db.conn()
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx,
		"SELECT "+noteColumns+" FROM notes ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	defer rows.Close()

	var notes []*Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tagRows, err := conn.QueryContext(ctx, "SELECT note_id, tag_name FROM note_tags")
	if err != nil {
		return nil, fmt.Errorf("load note tags: %w", err)
	}
	defer tagRows.Close()

	if err := attachNoteTags(tagRows, notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Search runs a full-text query over note titles and content,
// excluding soft-deleted notes, ranked by FTS relevance and capped at
// searchLimit results.
func (r *NoteRepo) Search(ctx context.Context, query string) ([]*Note, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	conn, err := r.db.conn()
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, `
		SELECT notes.id, notes.title, notes.description, notes.description_visible,
			notes.emoji, notes.content, notes.tags_visible, notes.is_favorite,
			notes.folder_id, notes.daily_note_date, notes.created_at, notes.updated_at,
			notes.deleted_at
		FROM notes
		JOIN notes_fts ON notes.id = notes_fts.note_id
		WHERE notes_fts MATCH ? AND notes.deleted_at IS NULL
		ORDER BY rank
		LIMIT ?`, query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	defer rows.Close()

	var notes []*Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return notes, nil
	}

	// Batch tag load keyed on the matched ids only.
	ids := make([]any, len(notes))
	placeholders := make([]string, len(notes))
	for i, note := range notes {
		ids[i] = note.ID
		placeholders[i] = "?"
	}
	tagRows, err := conn.QueryContext(ctx,
		"SELECT note_id, tag_name FROM note_tags WHERE note_id IN ("+strings.Join(placeholders, ",")+")",
		ids...)
	if err != nil {
		return nil, fmt.Errorf("load tags for search results: %w", err)
	}
	defer tagRows.Close()

	if err := attachNoteTags(tagRows, notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Delete permanently removes a note; note_tags rows cascade. Deleting
// an id that does not exist is not an error.
func (r *NoteRepo) Delete(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	conn, err := r.db.conn()
	if err != nil {
		return err
	}

	if _, err := conn.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*Note, error) {
	var note Note
	var descriptionVisible, tagsVisible, isFavorite int

	err := row.Scan(
		&note.ID, &note.Title, &note.Description, &descriptionVisible,
		&note.Emoji, &note.Content, &tagsVisible, &isFavorite,
		&note.FolderID, &note.DailyNoteDate,
		&note.CreatedAt, &note.UpdatedAt, &note.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	note.DescriptionVisible = descriptionVisible != 0
	note.TagsVisible = tagsVisible != 0
	note.IsFavorite = isFavorite != 0
	return &note, nil
}

// attachNoteTags drains (note_id, tag_name) rows, groups them by note
// id, and assigns the groups to the given notes. Notes without rows
// get an empty, non-nil slice.
func attachNoteTags(rows *sql.Rows, notes []*Note) error {
	tagsByNote := make(map[string][]string)
	for rows.Next() {
		var noteID, tag string
		if err := rows.Scan(&noteID, &tag); err != nil {
			return err
		}
		tagsByNote[noteID] = append(tagsByNote[noteID], tag)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, note := range notes {
		if tags, ok := tagsByNote[note.ID]; ok {
			note.Tags = tags
		} else {
			note.Tags = []string{}
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
