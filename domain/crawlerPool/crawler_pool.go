//go:generate moq -out internal/mocks/page_crawler_moq.go -pkg mocks . PageCrawler
//go:generate moq -out internal/mocks/job_filter_moq.go -pkg mocks . JobFilter

package crawlerPool

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"newsCrawler/domain/frontier"
	"newsCrawler/domain/model"
)

// ErrSeedFetch is returned when the seed page cannot be fetched.
var ErrSeedFetch = errors.New("seed fetch failed")

type (
	Logger interface {
		Debugw(msg string, keysAndValues ...interface{})
		Infow(msg string, keysAndValues ...interface{})
	}

	// PageCrawler crawls single urls.
	PageCrawler interface {
		Seed(ctx context.Context, seedURL string) ([]string, error)
		Crawl(ctx context.Context, job model.CrawlJob) model.CrawlResult
	}

	// JobFilter returns false if the job should be skipped without fetching.
	JobFilter interface {
		Name() string
		ShouldCrawl(ctx context.Context, job model.CrawlJob) bool
	}
)

// ArticleAcceptedHook is called, in acceptance order, with the 1-based index
// of every accepted article.
type ArticleAcceptedHook func(ctx context.Context, n int, article model.ArticleRecord)

func NoOpAcceptedHook(context.Context, int, model.ArticleRecord) {}

// ChainHooks calls hooks in order.
func ChainHooks(hooks ...ArticleAcceptedHook) ArticleAcceptedHook {
	return func(ctx context.Context, n int, article model.ArticleRecord) {
		for _, h := range hooks {
			if h != nil {
				h(ctx, n, article)
			}
		}
	}
}

// Config bounds a crawl.
type Config struct {
	Size        int           // urls crawled concurrently per batch; 1 is fully sequential
	MaxArticles int           // stop once this many articles are accepted
	Delay       time.Duration // politeness wait after every successful fetch
}

// Stats counts what happened during a crawl.
type Stats struct {
	Seeded     int // links found on the seed page
	Fetched    int
	Failed     int
	Duplicates int // dequeued but already visited
	Filtered   int // dropped by a job filter
	Hubs       int
	Accepted   int
	Salvaged   int // article pages that failed the quality gate
	Enqueued   int // links added to the frontier after seeding
}

// CrawlerPool owns the frontier and drives the crawl breadth first.
type CrawlerPool struct {
	logger Logger

	size        int
	maxArticles int
	delay       time.Duration

	crawler    PageCrawler
	frontier   *frontier.Frontier
	jobFilters []JobFilter // applied in order

	acceptedHook ArticleAcceptedHook

	stats Stats

	sleep func(d time.Duration) <-chan time.Time
}

// New creates a new CrawlerPool.
// Filters are applied in the order they are specified.
func New(logger Logger, cfg Config, crawler PageCrawler, jobFilters []JobFilter, acceptedHook ArticleAcceptedHook) *CrawlerPool {
	if cfg.Size < 1 {
		cfg.Size = 1
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	if acceptedHook == nil {
		acceptedHook = NoOpAcceptedHook
	}
	return &CrawlerPool{
		logger: logger,

		size:        cfg.Size,
		maxArticles: cfg.MaxArticles,
		delay:       cfg.Delay,

		crawler:    crawler,
		frontier:   frontier.New(),
		jobFilters: jobFilters,

		acceptedHook: acceptedHook,

		sleep: time.After,
	}
}

// Start crawls from seedURL until maxArticles articles are accepted or the
// frontier runs dry, and returns the accepted articles in acceptance order.
// Only a seed fetch failure is fatal. When ctx is cancelled the articles
// accepted so far are returned along with ctx.Err().
func (cp *CrawlerPool) Start(ctx context.Context, seedURL string) ([]model.ArticleRecord, error) {
	links, err := cp.crawler.Seed(ctx, seedURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSeedFetch, seedURL, err)
	}

	// The seed was just fetched.
	cp.frontier.Visit(model.NormalizeRawURL(seedURL))
	cp.stats.Seeded = cp.frontier.PushAll(links)
	cp.logger.Infow("frontier seeded", "seed", seedURL, "links", cp.stats.Seeded)

	articles := make([]model.ArticleRecord, 0, max(cp.maxArticles, 0))
	for len(articles) < cp.maxArticles {
		if err := ctx.Err(); err != nil {
			return articles, err
		}

		batch := cp.nextBatch(ctx)
		if len(batch) == 0 {
			cp.logger.Infow("frontier exhausted",
				"accepted", len(articles),
				"max", cp.maxArticles,
				"visited", cp.frontier.VisitedCount(),
			)
			break
		}

		for _, result := range cp.crawlBatch(ctx, batch) {
			if !result.Fetched {
				cp.stats.Failed++
				continue
			}
			cp.stats.Fetched++

			if result.Article != nil {
				articles = append(articles, *result.Article)
				cp.stats.Accepted++
				cp.logger.Infow("article accepted",
					"n", len(articles),
					"url", result.Article.URL,
					"title", result.Article.Title,
				)
				cp.acceptedHook(ctx, len(articles), *result.Article)
				if len(articles) >= cp.maxArticles {
					return articles, nil
				}
			} else {
				cp.harvest(result)
			}

			if err := cp.wait(ctx); err != nil {
				return articles, err
			}
		}
	}

	return articles, nil
}

// Stats is meaningful once Start has returned.
func (cp *CrawlerPool) Stats() Stats {
	return cp.stats
}

// nextBatch pops up to size fetchable jobs, marking each visited. Visited
// urls are dropped; filtered urls are marked visited and dropped.
func (cp *CrawlerPool) nextBatch(ctx context.Context) []model.CrawlJob {
	batch := make([]model.CrawlJob, 0, cp.size)
	for len(batch) < cp.size {
		url, ok := cp.frontier.Pop()
		if !ok {
			break
		}
		if !cp.frontier.Visit(url) {
			cp.stats.Duplicates++
			continue
		}

		job := model.CrawlJob{URL: url}
		if filter := cp.rejectedBy(ctx, job); filter != "" {
			cp.stats.Filtered++
			cp.logger.Debugw("job filtered", "url", url, "filter", filter)
			continue
		}
		batch = append(batch, job)
	}
	return batch
}

func (cp *CrawlerPool) rejectedBy(ctx context.Context, job model.CrawlJob) string {
	for _, filter := range cp.jobFilters {
		if !filter.ShouldCrawl(ctx, job) {
			return filter.Name()
		}
	}
	return ""
}

// crawlBatch crawls the batch with up to size jobs in flight and returns the
// results in batch order.
func (cp *CrawlerPool) crawlBatch(ctx context.Context, batch []model.CrawlJob) []model.CrawlResult {
	results := make([]model.CrawlResult, len(batch))
	if len(batch) == 1 {
		results[0] = cp.crawler.Crawl(ctx, batch[0])
		return results
	}

	var g errgroup.Group
	g.SetLimit(cp.size)
	for i, job := range batch {
		g.Go(func() error {
			results[i] = cp.crawler.Crawl(ctx, job)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (cp *CrawlerPool) harvest(result model.CrawlResult) {
	if result.Salvaged {
		cp.stats.Salvaged++
	} else {
		cp.stats.Hubs++
	}
	added := cp.frontier.PushAll(result.Links)
	cp.stats.Enqueued += added
	cp.logger.Debugw("links harvested",
		"url", result.Job.URL,
		"kind", result.Kind.String(),
		"salvaged", result.Salvaged,
		"found", len(result.Links),
		"new", added,
		"pending", cp.frontier.Len(),
	)
}

func (cp *CrawlerPool) wait(ctx context.Context) error {
	if cp.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-cp.sleep(cp.delay):
		return nil
	}
}
