package storage

import (
	"context"
	"fmt"
)

const folderColumns = `id, name, parent_id, description, description_visible, color, emoji,
	tags_visible, is_favorite, is_expanded, created_at, updated_at, deleted_at`

// FolderRepo provides folder persistence over the shared connection.
// Folders follow the same save shape as notes minus the boot-state
// guard: there is no "empty editor" failure mode for a folder.
type FolderRepo struct {
	db *DB
}

// NewFolderRepo creates a new FolderRepo.
func NewFolderRepo(db *DB) *FolderRepo {
	return &FolderRepo{db: db}
}

// Save upserts the folder by id and replaces its tag associations,
// all in one transaction. Parent linkage is stored as given; the
// engine does not detect cycles.
func (r *FolderRepo) Save(ctx context.Context, folder *Folder) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	conn, err := r.db.conn()
	if err != nil {
		return err
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin folder save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO folders
			(id, name, parent_id, description, description_visible, color, emoji,
			 tags_visible, is_favorite, is_expanded, created_at, updated_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			parent_id = excluded.parent_id,
			description = excluded.description,
			description_visible = excluded.description_visible,
			color = excluded.color,
			emoji = excluded.emoji,
			tags_visible = excluded.tags_visible,
			is_favorite = excluded.is_favorite,
			is_expanded = excluded.is_expanded,
			updated_at = excluded.updated_at,
			deleted_at = excluded.deleted_at`,
		folder.ID, folder.Name, folder.ParentID, folder.Description,
		boolToInt(folder.DescriptionVisible), folder.Color, folder.Emoji,
		boolToInt(folder.TagsVisible), boolToInt(folder.IsFavorite), boolToInt(folder.IsExpanded),
		folder.CreatedAt, folder.UpdatedAt, folder.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert folder %s: %w", folder.ID, err)
	}

	if err := ensureTags(ctx, tx, folder.Tags, folder.UpdatedAt); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM folder_tags WHERE folder_id = ?", folder.ID); err != nil {
		return fmt.Errorf("clear tags for folder %s: %w", folder.ID, err)
	}
	for _, tag := range folder.Tags {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO folder_tags (folder_id, tag_name) VALUES (?, ?)", folder.ID, tag,
		); err != nil {
			return fmt.Errorf("attach tag %q to folder %s: %w", tag, folder.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit folder save %s: %w", folder.ID, err)
	}
	return nil
}

// List returns every folder, soft-deleted ones included, with tags
// attached from a single batched junction query.
func (r *FolderRepo) List(ctx context.Context) ([]*Folder, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	conn, err := r.db.conn()
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, "SELECT "+folderColumns+" FROM folders")
	if err != nil {
		return nil, fmt.Errorf("load folders: %w", err)
	}
	defer rows.Close()

	var folders []*Folder
	for rows.Next() {
		var f Folder
		var descriptionVisible, tagsVisible, isFavorite, isExpanded int
		if err := rows.Scan(
			&f.ID, &f.Name, &f.ParentID, &f.Description, &descriptionVisible,
			&f.Color, &f.Emoji, &tagsVisible, &isFavorite, &isExpanded,
			&f.CreatedAt, &f.UpdatedAt, &f.DeletedAt,
		); err != nil {
			return nil, err
		}
		f.DescriptionVisible = descriptionVisible != 0
		f.TagsVisible = tagsVisible != 0
		f.IsFavorite = isFavorite != 0
		f.IsExpanded = isExpanded != 0
		folders = append(folders, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tagRows, err := conn.QueryContext(ctx, "SELECT folder_id, tag_name FROM folder_tags")
	if err != nil {
		return nil, fmt.Errorf("load folder tags: %w", err)
	}
	defer tagRows.Close()

	tagsByFolder := make(map[string][]string)
	for tagRows.Next() {
		var folderID, tag string
		if err := tagRows.Scan(&folderID, &tag); err != nil {
			return nil, err
		}
		tagsByFolder[folderID] = append(tagsByFolder[folderID], tag)
	}
	if err := tagRows.Err(); err != nil {
		return nil, err
	}

	for _, f := range folders {
		if tags, ok := tagsByFolder[f.ID]; ok {
			f.Tags = tags
		} else {
			f.Tags = []string{}
		}
	}
	return folders, nil
}

// Delete permanently removes a folder; folder_tags rows cascade.
// Deleting an id that does not exist is not an error.
func (r *FolderRepo) Delete(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	conn, err := r.db.conn()
	if err != nil {
		return err
	}

	if _, err := conn.ExecContext(ctx, "DELETE FROM folders WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete folder %s: %w", id, err)
	}
	return nil
}
