package storage

import (
	"context"
	"reflect"
	"sort"
	"testing"
)

func TestTagRepo_SaveAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepo(db)
	ctx := context.Background()

	tag := &Tag{
		Name:               "research",
		Description:        "papers to read",
		DescriptionVisible: true,
		IsFavorite:         true,
		Color:              strPtr("#00ff00"),
		CreatedAt:          "2026-01-01T00:00:00Z",
		UpdatedAt:          "2026-01-01T00:00:00Z",
	}
	if err := repo.Save(ctx, tag); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	tags, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tags) != 1 {
		t.Fatalf("List() = %d tags, want 1", len(tags))
	}
	if !reflect.DeepEqual(tags[0], tag) {
		t.Errorf("List() = %+v, want %+v", tags[0], tag)
	}
}

func TestTagRepo_SavePreservesCreatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepo(db)
	ctx := context.Background()

	tag := &Tag{
		Name:      "stable",
		CreatedAt: "2026-01-01T00:00:00Z",
		UpdatedAt: "2026-01-01T00:00:00Z",
	}
	if err := repo.Save(ctx, tag); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	tag.Description = "now described"
	tag.Color = strPtr("#123456")
	tag.CreatedAt = "2099-01-01T00:00:00Z" // must be ignored on conflict
	tag.UpdatedAt = "2026-01-02T00:00:00Z"
	if err := repo.Save(ctx, tag); err != nil {
		t.Fatalf("Save() update error = %v", err)
	}

	tags, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tags) != 1 {
		t.Fatalf("List() = %d tags, want 1", len(tags))
	}
	got := tags[0]
	if got.CreatedAt != "2026-01-01T00:00:00Z" {
		t.Errorf("List() created_at = %q, must survive update", got.CreatedAt)
	}
	if got.Description != "now described" || got.UpdatedAt != "2026-01-02T00:00:00Z" {
		t.Errorf("List() = %+v, metadata update not applied", got)
	}
}

func TestTagRepo_Ensure(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepo(db)
	ctx := context.Background()

	custom := &Tag{
		Name:        "curated",
		Description: "hand-written description",
		IsFavorite:  true,
		Color:       strPtr("#abcdef"),
		CreatedAt:   "2026-01-01T00:00:00Z",
		UpdatedAt:   "2026-01-01T00:00:00Z",
	}
	if err := repo.Save(ctx, custom); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := repo.Ensure(ctx, []string{"curated", "fresh"}, "2026-02-01T00:00:00Z"); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	tags, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	byName := make(map[string]*Tag)
	for _, tag := range tags {
		byName[tag.Name] = tag
	}
	if len(byName) != 2 {
		t.Fatalf("List() = %d tags, want 2", len(byName))
	}

	// Existing metadata untouched.
	if !reflect.DeepEqual(byName["curated"], custom) {
		t.Errorf("Ensure() overwrote existing tag: %+v", byName["curated"])
	}

	// New tag gets the defaults.
	fresh := byName["fresh"]
	if fresh == nil {
		t.Fatal("Ensure() did not create tag fresh")
	}
	if fresh.Description != "" || !fresh.DescriptionVisible || fresh.IsFavorite || fresh.Color != nil {
		t.Errorf("Ensure() defaults = %+v, want empty description, visible, non-favorite, no color", fresh)
	}
	if fresh.CreatedAt != "2026-02-01T00:00:00Z" || fresh.UpdatedAt != "2026-02-01T00:00:00Z" {
		t.Errorf("Ensure() timestamps = %s/%s, want supplied timestamp", fresh.CreatedAt, fresh.UpdatedAt)
	}

	// Ensure is idempotent across repeated saves of the same set.
	if err := repo.Ensure(ctx, []string{"fresh"}, "2026-03-01T00:00:00Z"); err != nil {
		t.Fatalf("Ensure() second run error = %v", err)
	}
	tags, _ = repo.List(ctx)
	for _, tag := range tags {
		if tag.Name == "fresh" && tag.CreatedAt != "2026-02-01T00:00:00Z" {
			t.Errorf("Ensure() second run changed created_at to %q", tag.CreatedAt)
		}
	}
}

func TestTagRepo_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	notes := NewNoteRepo(db)
	folders := NewFolderRepo(db)
	tags := NewTagRepo(db)

	err := notes.Save(ctx, &Note{
		ID:        "n1",
		Title:     "Tagged note",
		Content:   "content",
		Tags:      []string{"doomed", "kept"},
		CreatedAt: "2026-01-01T00:00:00Z",
		UpdatedAt: "2026-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("Save() note error = %v", err)
	}
	err = folders.Save(ctx, &Folder{
		ID:        "f1",
		Name:      "Tagged folder",
		Tags:      []string{"doomed"},
		CreatedAt: "2026-01-01T00:00:00Z",
		UpdatedAt: "2026-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("Save() folder error = %v", err)
	}

	if err := tags.Delete(ctx, "doomed"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Associations on both junction tables are gone; the entities stay.
	note, err := notes.Get(ctx, "n1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !reflect.DeepEqual(note.Tags, []string{"kept"}) {
		t.Errorf("note tags after tag delete = %v, want [kept]", note.Tags)
	}

	folderList, err := folders.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(folderList) != 1 || len(folderList[0].Tags) != 0 {
		t.Errorf("folder after tag delete = %+v, want folder kept with no tags", folderList)
	}

	remaining, err := tags.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	names := make([]string, 0, len(remaining))
	for _, tag := range remaining {
		names = append(names, tag.Name)
	}
	sort.Strings(names)
	if !reflect.DeepEqual(names, []string{"kept"}) {
		t.Errorf("tags after delete = %v, want [kept]", names)
	}

	// Deleting an absent name is a no-op.
	if err := tags.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("Delete() missing name error = %v, want nil", err)
	}
}
