package sharecard

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SlugStats is one row of per-slug share-hit stats.
type SlugStats struct {
	Slug     string
	Language string
	Hits     int64
	LastHit  string // UTC, "2006-01-02 15:04:05"
}

// Store wraps a SQLite database that counts share-page hits per slug.
// It feeds the admin dashboard; the share handler treats it as best-effort.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the dashboard read while hits are being written; the busy
	// timeout makes writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS share_hits (
    slug TEXT PRIMARY KEY,
    language TEXT NOT NULL,
    hits INTEGER NOT NULL DEFAULT 0,
    last_hit TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_share_hits_hits ON share_hits(hits DESC);
`)
	return err
}

// RecordHit increments the hit counter for a slug, creating the row on the
// first hit.
func (s *Store) RecordHit(slug, language string) error {
	now := time.Now().UTC().Format("2006-01-02 15:04:05")
	_, err := s.db.Exec(`
INSERT INTO share_hits (slug, language, hits, last_hit) VALUES (?, ?, 1, ?)
ON CONFLICT(slug) DO UPDATE SET hits = hits + 1, last_hit = excluded.last_hit
`, slug, language, now)
	return err
}

// TopSlugs returns up to limit slugs ordered by hit count, most shared first.
func (s *Store) TopSlugs(limit int) ([]SlugStats, error) {
	rows, err := s.db.Query(`
SELECT slug, language, hits, last_hit FROM share_hits
ORDER BY hits DESC, slug ASC LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []SlugStats
	for rows.Next() {
		var st SlugStats
		if err := rows.Scan(&st.Slug, &st.Language, &st.Hits, &st.LastHit); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// TotalHits returns the total number of recorded share-page hits.
func (s *Store) TotalHits() (int64, error) {
	var total sql.NullInt64
	if err := s.db.QueryRow(`SELECT SUM(hits) FROM share_hits`).Scan(&total); err != nil {
		return 0, err
	}
	return total.Int64, nil
}
