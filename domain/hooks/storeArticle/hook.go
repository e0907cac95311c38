package storeHook

import (
	"context"

	"newsCrawler/domain/model"
)

type (
	Store interface {
		AddArticle(ctx context.Context, runID string, n int, article model.ArticleRecord) error
	}

	Logger interface {
		Errorw(msg string, keysAndValues ...interface{})
	}
)

// StoreHook archives accepted articles under a single crawl run.
type StoreHook struct {
	logger Logger
	store  Store
	runID  string
}

func New(logger Logger, store Store, runID string) *StoreHook {
	return &StoreHook{
		logger: logger,
		store:  store,
		runID:  runID,
	}
}

// Store is a crawlerPool.ArticleAcceptedHook. A failed write is logged and the
// crawl carries on; the text output does not depend on the archive.
func (h *StoreHook) Store(ctx context.Context, n int, article model.ArticleRecord) {
	if err := h.store.AddArticle(ctx, h.runID, n, article); err != nil {
		h.logger.Errorw("error storing article", "run", h.runID, "n", n, "url", article.URL, "error", err)
	}
}
