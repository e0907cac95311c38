package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"newsCrawler/domain/model"
)

// ErrRunNotFound is returned for an unknown run id.
var ErrRunNotFound = errors.New("run not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	seed_url    TEXT NOT NULL,
	started_at  TEXT NOT NULL,
	finished_at TEXT,
	accepted    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS articles (
	run_id    TEXT NOT NULL REFERENCES runs(id),
	n         INTEGER NOT NULL,
	url       TEXT NOT NULL,
	title     TEXT NOT NULL,
	published TEXT NOT NULL,
	author    TEXT NOT NULL,
	content   TEXT NOT NULL,
	PRIMARY KEY (run_id, url)
);

CREATE INDEX IF NOT EXISTS articles_run_n ON articles (run_id, n);
`

var _ ArticleDAO = (*SQLiteStore)(nil)

// SQLiteStore archives crawl runs in a single SQLite file.
type SQLiteStore struct {
	db  *sqlx.DB
	now func() time.Time
}

// Open opens (creating if needed) the archive at path and applies the schema.
func Open(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", path, err)
	}
	// One writer; also keeps ":memory:" databases on a single connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure archive: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply archive schema: %w", err)
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

func (s *SQLiteStore) StartRun(ctx context.Context, seedURL string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, seed_url, started_at) VALUES (?, ?, ?)`,
		id, seedURL, s.timestamp(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to start run: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) AddArticle(ctx context.Context, runID string, n int, article model.ArticleRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO articles (run_id, n, url, title, published, author, content)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (run_id, url) DO NOTHING`,
		runID, n, article.URL, article.Title, article.Published, article.Author, article.Content,
	)
	if err != nil {
		return fmt.Errorf("failed to add article %s: %w", article.URL, err)
	}
	return nil
}

func (s *SQLiteStore) FinishRun(ctx context.Context, runID string, accepted int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, accepted = ? WHERE id = ?`,
		s.timestamp(), accepted, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to finish run %s: %w", runID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return nil
}

func (s *SQLiteStore) Articles(ctx context.Context, runID string) ([]model.ArticleRecord, error) {
	var articles []model.ArticleRecord
	err := s.db.SelectContext(ctx, &articles,
		`SELECT url, title, published, author, content FROM articles WHERE run_id = ? ORDER BY n`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles for run %s: %w", runID, err)
	}
	return articles, nil
}

func (s *SQLiteStore) Run(ctx context.Context, runID string) (Run, error) {
	var run Run
	err := s.db.GetContext(ctx, &run,
		`SELECT id, seed_url, started_at, finished_at, accepted FROM runs WHERE id = ?`,
		runID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to get run %s: %w", runID, err)
	}
	return run, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}
