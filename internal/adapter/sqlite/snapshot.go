package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/haakonunderbakke/haakon-dev/internal/domain/model"
	"github.com/haakonunderbakke/haakon-dev/internal/domain/ports"
)

// SnapshotStore keeps the last fetched article collection in a sqlite database.
type SnapshotStore struct {
	db *sql.DB
}

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// Open opens (creating if needed) the database at dbPath.
func Open(dbPath string) (*SnapshotStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &SnapshotStore{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SnapshotStore) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS articles (
			position INTEGER PRIMARY KEY,
			id       INTEGER NOT NULL,
			slug     TEXT NOT NULL,
			payload  TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// SaveSnapshot replaces the stored collection, keeping the fetch order.
func (s *SnapshotStore) SaveSnapshot(ctx context.Context, articles []model.Article, fetchedAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM articles`); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO articles (position, id, slug, payload) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, a := range articles {
		payload, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("encoding article %d: %w", a.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, i, a.ID, a.Slug, string(payload)); err != nil {
			return fmt.Errorf("storing article %d: %w", a.ID, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO meta (key, value) VALUES ('fetched_at', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, fetchedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("storing fetch time: %w", err)
	}

	return tx.Commit()
}

// LoadSnapshot returns the stored collection in fetch order and when it was fetched.
func (s *SnapshotStore) LoadSnapshot(ctx context.Context) ([]model.Article, time.Time, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'fetched_at'`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, ports.ErrNoSnapshot
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("reading fetch time: %w", err)
	}
	fetchedAt, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("parsing fetch time %q: %w", raw, err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM articles ORDER BY position`)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("querying snapshot: %w", err)
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, time.Time{}, fmt.Errorf("scanning article: %w", err)
		}
		var a model.Article
		if err := json.Unmarshal([]byte(payload), &a); err != nil {
			return nil, time.Time{}, fmt.Errorf("decoding article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, fetchedAt, rows.Err()
}
