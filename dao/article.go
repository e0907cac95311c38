package dao

import (
	"context"

	"newsCrawler/domain/model"
)

// Run is one crawl as recorded in the archive.
type Run struct {
	ID         string  `db:"id"`
	SeedURL    string  `db:"seed_url"`
	StartedAt  string  `db:"started_at"`  // RFC 3339, UTC
	FinishedAt *string `db:"finished_at"` // nil while running or after a crash
	Accepted   int     `db:"accepted"`
}

type ArticleDAO interface {
	// StartRun records a new crawl and returns its id.
	StartRun(ctx context.Context, seedURL string) (string, error)

	// AddArticle stores the n-th accepted article of a run. Adding the same
	// url twice to a run is a no-op.
	AddArticle(ctx context.Context, runID string, n int, article model.ArticleRecord) error

	// FinishRun marks a run complete.
	FinishRun(ctx context.Context, runID string, accepted int) error

	// Articles returns a run's articles in acceptance order.
	Articles(ctx context.Context, runID string) ([]model.ArticleRecord, error)

	// Run looks up a single run.
	Run(ctx context.Context, runID string) (Run, error)
}
