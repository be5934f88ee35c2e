package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/zeusync/basalt/internal/core/observability/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id         TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);`

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore persists records in a SQLite database. The data bag is
// stored as a JSON document per row.
type SQLiteStore struct {
	db     *sql.DB
	logger log.Log
}

// OpenSQLite opens (or creates) the database at dsn and bootstraps the
// schema. Use ":memory:" for an ephemeral store.
func OpenSQLite(ctx context.Context, dsn string, logger log.Log) (*SQLiteStore, error) {
	if logger == nil {
		logger = log.NewNop()
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: open %q: %w", dsn, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: bootstrap schema: %w", err)
	}

	logger.Info("sqlite store opened", log.String("dsn", dsn))
	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Load(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT data, updated_at FROM profiles WHERE id = ?`, id)

	var raw string
	var updatedAt int64
	if err := row.Scan(&raw, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: load %q: %w", id, err)
	}

	data := make(map[string]any)
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("storage: decode %q: %w", id, err)
	}
	return &Record{
		ID:        id,
		Data:      data,
		UpdatedAt: time.Unix(updatedAt, 0).UTC(),
	}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, rec *Record) error {
	data := rec.Data
	if data == nil {
		data = map[string]any{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("storage: encode %q: %w", rec.ID, err)
	}

	updatedAt := rec.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO profiles (id, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		rec.ID, string(raw), updatedAt.Unix())
	if err != nil {
		return fmt.Errorf("storage: save %q: %w", rec.ID, err)
	}

	s.logger.Debug("profile saved", log.String("id", rec.ID))
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id); err != nil {
		return fmt.Errorf("storage: delete %q: %w", id, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
