package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const tagColumns = `name, description, description_visible, is_favorite, color,
	created_at, updated_at, deleted_at`

// TagRepo provides tag persistence over the shared connection.
type TagRepo struct {
	db *DB
}

// NewTagRepo creates a new TagRepo.
func NewTagRepo(db *DB) *TagRepo {
	return &TagRepo{db: db}
}

// Save upserts tag metadata by name. On conflict every field except
// name and created_at is overwritten.
func (r *TagRepo) Save(ctx context.Context, tag *Tag) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	conn, err := r.db.conn()
	if err != nil {
		return err
	}

	_, err = conn.ExecContext(ctx, `
		INSERT INTO tags (name, description, description_visible, is_favorite, color,
			created_at, updated_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			description = excluded.description,
			description_visible = excluded.description_visible,
			is_favorite = excluded.is_favorite,
			color = excluded.color,
			updated_at = excluded.updated_at,
			deleted_at = excluded.deleted_at`,
		tag.Name, tag.Description, boolToInt(tag.DescriptionVisible),
		boolToInt(tag.IsFavorite), tag.Color, tag.CreatedAt, tag.UpdatedAt, tag.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert tag %q: %w", tag.Name, err)
	}
	return nil
}

// Ensure creates each named tag with default metadata if it does not
// exist yet, and does nothing for tags that do. It never overwrites
// metadata a user has set.
func (r *TagRepo) Ensure(ctx context.Context, names []string, now string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	conn, err := r.db.conn()
	if err != nil {
		return err
	}
	return ensureTags(ctx, conn, names, now)
}

// List returns every tag, soft-deleted ones included.
func (r *TagRepo) List(ctx context.Context) ([]*Tag, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	conn, err := r.db.conn()
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, "SELECT "+tagColumns+" FROM tags")
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	defer rows.Close()

	var tags []*Tag
	for rows.Next() {
		var t Tag
		var descriptionVisible, isFavorite int
		if err := rows.Scan(
			&t.Name, &t.Description, &descriptionVisible, &isFavorite,
			&t.Color, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
		); err != nil {
			return nil, err
		}
		t.DescriptionVisible = descriptionVisible != 0
		t.IsFavorite = isFavorite != 0
		tags = append(tags, &t)
	}
	return tags, rows.Err()
}

// Delete physically removes a tag by name; both junction tables
// cascade-delete their rows referencing it. Deleting a name that does
// not exist is not an error.
func (r *TagRepo) Delete(ctx context.Context, name string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	conn, err := r.db.conn()
	if err != nil {
		return err
	}

	if _, err := conn.ExecContext(ctx, "DELETE FROM tags WHERE name = ?", name); err != nil {
		return fmt.Errorf("delete tag %q: %w", name, err)
	}
	return nil
}

// execer is satisfied by *sql.DB and *sql.Tx, so tag creation can run
// inside the note/folder save transactions.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ensureTags is the insert-if-absent behind Ensure. Defaults (empty
// description, visible, non-favorite, no color) apply on first
// creation only; DO NOTHING leaves existing metadata alone.
// Callers must hold the DB mutex.
func ensureTags(ctx context.Context, e execer, names []string, now string) error {
	for _, name := range names {
		_, err := e.ExecContext(ctx, `
			INSERT INTO tags (name, description, description_visible, is_favorite, color,
				created_at, updated_at)
			VALUES (?, '', 1, 0, NULL, ?, ?)
			ON CONFLICT(name) DO NOTHING`,
			name, now, now,
		)
		if err != nil {
			return fmt.Errorf("ensure tag %q: %w", name, err)
		}
	}
	return nil
}
