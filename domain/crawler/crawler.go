//go:generate moq -out internal/mocks/fetcher_extractor_moq.go -pkg mocks . FetcherExtractor
//go:generate moq -out internal/mocks/classifier_moq.go -pkg mocks . Classifier
//go:generate moq -out internal/mocks/article_extractor_moq.go -pkg mocks . ArticleExtractor

package crawler

import (
	"context"
	"fmt"

	"newsCrawler/domain/model"
)

type (
	// FetcherExtractor retrieves a page and extracts the links worth following from it.
	FetcherExtractor interface {
		Fetch(ctx context.Context, url string) (model.FetchResult, error)
		Extract(pageURL, body string) []string
	}

	// Classifier tells article pages from hubs.
	Classifier interface {
		IsArticle(html string) bool
	}

	// ArticleExtractor pulls the article fields out of a page.
	ArticleExtractor interface {
		Extract(html, pageURL string) model.ArticleRecord
	}

	Logger interface {
		Debugw(msg string, keysAndValues ...interface{})
		Errorw(msg string, keysAndValues ...interface{})
	}
)

// Crawler runs a single url through fetch, classification and extraction.
type Crawler struct {
	logger Logger

	fetcherExtractor FetcherExtractor
	classifier       Classifier
	extractor        ArticleExtractor

	minContentChars int // quality gate
}

func New(logger Logger, fetcherExtractor FetcherExtractor, classifier Classifier, extractor ArticleExtractor, minContentChars int) *Crawler {
	return &Crawler{
		logger:           logger,
		fetcherExtractor: fetcherExtractor,
		classifier:       classifier,
		extractor:        extractor,
		minContentChars:  minContentChars,
	}
}

// Seed fetches the seed page and returns its links. A failure here is fatal
// to the crawl, so the error is returned rather than absorbed.
func (c *Crawler) Seed(ctx context.Context, seedURL string) ([]string, error) {
	res, err := c.fetcherExtractor.Fetch(ctx, seedURL)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, fmt.Errorf("fetch %s: unsuccessful", seedURL)
	}
	return c.fetcherExtractor.Extract(seedURL, res.Body), nil
}

// Crawl crawls job. Pages classified as hubs, and article pages failing the
// quality gate, come back with their links; accepted articles come back with
// the record and no links.
func (c *Crawler) Crawl(ctx context.Context, job model.CrawlJob) model.CrawlResult {
	result := model.CrawlResult{Job: job}

	res, err := c.fetcherExtractor.Fetch(ctx, job.URL)
	if err != nil || !res.Success {
		c.logger.Errorw("fetch abandoned", "url", job.URL, "attempts", res.Attempts, "error", err)
		return result
	}
	result.Fetched = true

	if !c.classifier.IsArticle(res.Body) {
		result.Kind = model.KindHub
		result.Links = c.fetcherExtractor.Extract(job.URL, res.Body)
		c.logger.Debugw("hub page", "url", job.URL, "links", len(result.Links))
		return result
	}
	result.Kind = model.KindArticle

	article := c.extractor.Extract(res.Body, job.URL)
	if article.Acceptable(c.minContentChars) {
		result.Article = &article
		return result
	}

	result.Salvaged = true
	result.Links = c.fetcherExtractor.Extract(job.URL, res.Body)
	c.logger.Debugw("article failed quality gate, harvesting links",
		"url", job.URL,
		"title", article.Title,
		"content_chars", len([]rune(article.Content)),
		"links", len(result.Links),
	)
	return result
}
