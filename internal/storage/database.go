// Package storage is the persistence engine for notevault. It owns the
// on-disk SQLite schema and performs all reads and writes over a single
// connection serialized by a mutex, which is the concurrency model the
// rest of the application relies on.
package storage

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB wraps the single SQLite connection shared by every repository.
// All operations take the mutex for their full duration, so no two
// storage operations ever execute concurrently.
type DB struct {
	mu   sync.Mutex
	sql  *sql.DB
	path string
}

// Open opens (or creates) the database file at path and applies the
// connection-level pragmas. Foreign-key enforcement is mandatory:
// without it the cascading deletes on the junction tables silently
// become no-ops. The WAL/synchronous/cache pragmas are performance
// tuning only and are applied best-effort.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	// One connection, always. WAL readers on the same connection see
	// writes without checkpointing, and the mutex in DB assumes there
	// is exactly one connection to guard.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Local single-writer tuning. Failures here are non-fatal.
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA cache_size = -8000",
	} {
		_, _ = db.Exec(pragma)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database %s: %w", path, err)
	}

	return &DB{sql: db, path: path}, nil
}

// Path returns the filesystem path the database was opened at.
func (d *DB) Path() string {
	return d.path
}

// conn returns the underlying connection. Callers must hold d.mu.
func (d *DB) conn() (*sql.DB, error) {
	if d == nil || d.sql == nil {
		return nil, ErrNotInitialized
	}
	return d.sql, nil
}

// Ping verifies the connection is open and usable.
func (d *DB) Ping() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	conn, err := d.conn()
	if err != nil {
		return err
	}
	return conn.Ping()
}

// Checkpoint flushes the write-ahead log into the main database file.
// It is best-effort housekeeping: PASSIVE mode does not block, and
// failures are swallowed because a missed checkpoint is never a
// correctness problem.
func (d *DB) Checkpoint() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.sql == nil {
		return
	}
	_, _ = d.sql.Exec("PRAGMA wal_checkpoint(PASSIVE)")
}

// Close closes the connection. Any operation afterwards fails with
// ErrNotInitialized.
func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.sql == nil {
		return nil
	}
	err := d.sql.Close()
	d.sql = nil
	return err
}

// schema is the durable on-disk contract: table, column, index, and
// trigger names must not change, or existing data files stop being
// readable by the application.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS notes (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		description_visible INTEGER NOT NULL,
		emoji TEXT,
		content TEXT NOT NULL,
		tags_visible INTEGER NOT NULL,
		is_favorite INTEGER NOT NULL,
		folder_id TEXT,
		daily_note_date TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		deleted_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS folders (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		parent_id TEXT,
		description TEXT NOT NULL,
		description_visible INTEGER NOT NULL,
		color TEXT,
		emoji TEXT,
		tags_visible INTEGER NOT NULL,
		is_favorite INTEGER NOT NULL,
		is_expanded INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		deleted_at TEXT,
		FOREIGN KEY (parent_id) REFERENCES folders(id)
	)`,
	`CREATE TABLE IF NOT EXISTS tags (
		name TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		description_visible INTEGER NOT NULL,
		is_favorite INTEGER NOT NULL,
		color TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		deleted_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS note_tags (
		note_id TEXT NOT NULL,
		tag_name TEXT NOT NULL,
		PRIMARY KEY (note_id, tag_name),
		FOREIGN KEY (note_id) REFERENCES notes(id) ON DELETE CASCADE,
		FOREIGN KEY (tag_name) REFERENCES tags(name) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS folder_tags (
		folder_id TEXT NOT NULL,
		tag_name TEXT NOT NULL,
		PRIMARY KEY (folder_id, tag_name),
		FOREIGN KEY (folder_id) REFERENCES folders(id) ON DELETE CASCADE,
		FOREIGN KEY (tag_name) REFERENCES tags(name) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notes_folder ON notes(folder_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_daily_date ON notes(daily_note_date)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_deleted ON notes(deleted_at)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_favorite ON notes(is_favorite)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_updated ON notes(updated_at)`,
	`CREATE INDEX IF NOT EXISTS idx_folders_parent ON folders(parent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_folders_deleted ON folders(deleted_at)`,
	`CREATE INDEX IF NOT EXISTS idx_note_tags_note ON note_tags(note_id)`,
	`CREATE INDEX IF NOT EXISTS idx_note_tags_tag ON note_tags(tag_name)`,
	`CREATE INDEX IF NOT EXISTS idx_folder_tags_folder ON folder_tags(folder_id)`,
	`CREATE INDEX IF NOT EXISTS idx_folder_tags_tag ON folder_tags(tag_name)`,

	// Full-text index over note title and content, tokenized on
	// Unicode word boundaries. The triggers below keep it in lockstep
	// with the notes table so no write path ever re-indexes by hand.
	`CREATE VIRTUAL TABLE IF NOT EXISTS notes_fts USING fts5(
		note_id UNINDEXED,
		title,
		content,
		tokenize='unicode61'
	)`,
	`CREATE TRIGGER IF NOT EXISTS notes_fts_insert AFTER INSERT ON notes BEGIN
		INSERT INTO notes_fts(note_id, title, content)
		VALUES (new.id, new.title, new.content);
	END`,
	`CREATE TRIGGER IF NOT EXISTS notes_fts_update AFTER UPDATE ON notes BEGIN
		UPDATE notes_fts
		SET title = new.title, content = new.content
		WHERE note_id = old.id;
	END`,
	`CREATE TRIGGER IF NOT EXISTS notes_fts_delete AFTER DELETE ON notes BEGIN
		DELETE FROM notes_fts WHERE note_id = old.id;
	END`,
}

// Migrate brings the schema to the current version. It is idempotent
// and safe to run on every startup against existing data files.
func Migrate(d *DB) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	conn, err := d.conn()
	if err != nil {
		return err
	}

	for _, stmt := range schema {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	// Additive migration for tags tables created before soft delete
	// existed. Fails harmlessly when the column is already present.
	_, _ = conn.Exec("ALTER TABLE tags ADD COLUMN deleted_at TEXT")

	return nil
}
