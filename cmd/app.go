package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"newsCrawler/dao"
	"newsCrawler/domain/adapters/articleWriter"
	"newsCrawler/domain/adapters/progressTracker"
	"newsCrawler/domain/adapters/resourceFilter"
	"newsCrawler/domain/adapters/robotsFilter"
	"newsCrawler/domain/adapters/sameDomainFilter"
	"newsCrawler/domain/adapters/urlFetcherExtractor"
	"newsCrawler/domain/classifier"
	"newsCrawler/domain/crawler"
	"newsCrawler/domain/crawlerPool"
	"newsCrawler/domain/extractor"
	storeHook "newsCrawler/domain/hooks/storeArticle"
	"newsCrawler/domain/model"
	"newsCrawler/domain/rules"
)

// App is one configured crawl.
type App struct {
	cfg    AppConfig
	logger *zap.SugaredLogger

	crawlerPool *crawlerPool.CrawlerPool

	archive *dao.SQLiteStore // nil when disabled
	runID   string
	tracker *progressTracker.Tracker // nil when disabled
}

// RunReport summarises a finished crawl.
type RunReport struct {
	StartURL    string
	Output      string
	RunID       string
	Articles    int
	Stats       crawlerPool.Stats
	Elapsed     time.Duration
	Interrupted bool
}

func NewApp(ctx context.Context, cfg AppConfig, logger *zap.SugaredLogger, progressOut io.Writer) (*App, error) {
	ruleSet := rules.Default()
	if cfg.RulesFile != "" {
		loaded, err := rules.Load(cfg.RulesFile)
		if err != nil {
			return nil, err
		}
		ruleSet = loaded
	}

	domainFilter := sameDomainFilter.New(cfg.StartURL)
	logger.Debugw("same-site domain", "domain", domainFilter.Domain())

	fetcherExtractor := urlFetcherExtractor.NewHTTPFetcherExtractor(logger, domainFilter, urlFetcherExtractor.Options{
		Timeout:          cfg.Timeout,
		MaxRetries:       cfg.Retries,
		BackoffBase:      cfg.BackoffBase,
		BackoffIncrement: cfg.BackoffIncrement,
		UserAgent:        cfg.UserAgent,
		MaxBodyBytes:     cfg.MaxBodyBytes,
	})

	pageCrawler := crawler.New(
		logger,
		fetcherExtractor,
		classifier.New(ruleSet.Article),
		extractor.New(ruleSet),
		model.MinContentChars,
	)

	jobFilters := []crawlerPool.JobFilter{resourceFilter.New(cfg.SkipExtensions)}
	if cfg.RespectRobots {
		jobFilters = append(jobFilters, robotsFilter.New(logger, fetcherExtractor.Client(), cfg.UserAgent))
	}

	app := &App{cfg: cfg, logger: logger}

	var hooks []crawlerPool.ArticleAcceptedHook
	if cfg.DB != "" {
		archive, err := dao.Open(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		runID, err := archive.StartRun(ctx, cfg.StartURL)
		if err != nil {
			_ = archive.Close()
			return nil, err
		}
		app.archive, app.runID = archive, runID
		hooks = append(hooks, storeHook.New(logger, archive, runID).Store)
	}
	if cfg.Progress {
		app.tracker = progressTracker.New(progressOut, cfg.Max)
		hooks = append(hooks, app.tracker.Hook)
	}

	app.crawlerPool = crawlerPool.New(
		logger,
		crawlerPool.Config{Size: cfg.Workers, MaxArticles: cfg.Max, Delay: cfg.Delay},
		pageCrawler,
		jobFilters,
		crawlerPool.ChainHooks(hooks...),
	)
	return app, nil
}

// Run crawls, then writes whatever was accepted, including after an
// interrupt. Only a seed failure or an output error is returned.
func (a *App) Run(ctx context.Context) (RunReport, error) {
	report := RunReport{StartURL: a.cfg.StartURL, Output: a.cfg.Output, RunID: a.runID}

	a.logger.Infow("crawl started",
		"start_url", a.cfg.StartURL,
		"max", a.cfg.Max,
		"delay", a.cfg.Delay,
		"workers", a.cfg.Workers,
	)
	if a.tracker != nil {
		a.tracker.Start()
	}

	start := time.Now()
	articles, err := a.crawlerPool.Start(ctx, a.cfg.StartURL)
	report.Elapsed = time.Since(start)
	report.Stats = a.crawlerPool.Stats()
	report.Articles = len(articles)

	if a.tracker != nil {
		a.tracker.Stop()
	}

	switch {
	case errors.Is(err, crawlerPool.ErrSeedFetch):
		a.logger.Errorw("seed fetch failed, nothing written", "start_url", a.cfg.StartURL, "error", err)
		a.finishRun(ctx, 0)
		return report, err
	case err != nil:
		report.Interrupted = true
		a.logger.Warnw("crawl interrupted, writing partial results", "articles", len(articles), "error", err)
	}

	a.finishRun(ctx, len(articles))

	if err := articleWriter.WriteFile(a.cfg.Output, articles); err != nil {
		return report, fmt.Errorf("failed to write output: %w", err)
	}
	a.logger.Infow("crawl finished",
		"articles", len(articles),
		"output", a.cfg.Output,
		"elapsed", report.Elapsed.Round(time.Millisecond),
	)
	return report, nil
}

// finishRun closes the archive run, if any, whatever the crawl outcome.
func (a *App) finishRun(ctx context.Context, accepted int) {
	if a.archive == nil {
		return
	}
	// The run context may already be cancelled.
	if err := a.archive.FinishRun(context.WithoutCancel(ctx), a.runID, accepted); err != nil {
		a.logger.Errorw("failed to finish archive run", "run", a.runID, "error", err)
	}
}

func (a *App) Close() error {
	if a.archive == nil {
		return nil
	}
	return a.archive.Close()
}
