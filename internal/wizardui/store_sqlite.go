// File: internal/wizardui/store_sqlite.go
// Brief: SQLite-backed download history for the wizard server.

package wizardui

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const historySchema = `
CREATE TABLE IF NOT EXISTS downloads (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  created_at TEXT NOT NULL,
  query TEXT NOT NULL,
  bytes INTEGER NOT NULL,
  sha256 TEXT NOT NULL
);`

// downloadRecord is one generated archive: when it was produced, the query
// string that selected it, and the resulting size and digest. Equal queries
// should keep producing equal digests for a given server process; the
// history makes that auditable.
type downloadRecord struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Query     string    `json:"query"`
	Bytes     int64     `json:"bytes"`
	SHA256    string    `json:"sha256"`
}

type historyStore struct {
	db   *sql.DB
	path string
}

func openHistoryStore(path string) (*historyStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("history db path is required")
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create history db dir")
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open history db")
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec(historySchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init history schema")
	}
	return &historyStore{db: db, path: path}, nil
}

func (s *historyStore) Record(ctx context.Context, rec downloadRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO downloads(created_at, query, bytes, sha256) VALUES(?,?,?,?)`,
		rec.CreatedAt.UTC().Format(time.RFC3339), rec.Query, rec.Bytes, rec.SHA256)
	return errors.Wrap(err, "insert download")
}

func (s *historyStore) Recent(ctx context.Context, limit int) ([]downloadRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, query, bytes, sha256 FROM downloads ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query downloads")
	}
	defer rows.Close()

	var out []downloadRecord
	for rows.Next() {
		var rec downloadRecord
		var createdAt string
		if err := rows.Scan(&rec.ID, &createdAt, &rec.Query, &rec.Bytes, &rec.SHA256); err != nil {
			return nil, errors.Wrap(err, "scan download")
		}
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.CreatedAt = ts
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *historyStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
