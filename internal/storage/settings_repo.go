package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SettingsRepo is the flat key-value store for UI state. No
// relationships, no cascades.
type SettingsRepo struct {
	db *DB
}

// NewSettingsRepo creates a new SettingsRepo.
func NewSettingsRepo(db *DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Set upserts a key with a freshly generated timestamp.
func (r *SettingsRepo) Set(ctx context.Context, key, value string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	conn, err := r.db.conn()
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = conn.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, value, now,
	)
	if err != nil {
		return fmt.Errorf("set ui state %q: %w", key, err)
	}
	return nil
}

// Get returns the value for key. An unset key is reported through the
// boolean, not as an error.
func (r *SettingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	conn, err := r.db.conn()
	if err != nil {
		return "", false, err
	}

	var value string
	err = conn.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load ui state %q: %w", key, err)
	}
	return value, true, nil
}

// LoadPrefix returns every key under the given namespace prefix as a
// map.
func (r *SettingsRepo) LoadPrefix(ctx context.Context, prefix string) (map[string]string, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	conn, err := r.db.conn()
	if err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx,
		"SELECT key, value FROM settings WHERE key LIKE ? || '%'", prefix)
	if err != nil {
		return nil, fmt.Errorf("load ui state by prefix %q: %w", prefix, err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}
	return settings, rows.Err()
}
