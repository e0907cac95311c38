package crawler_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"newsCrawler/domain/crawler"
	"newsCrawler/domain/crawler/internal/mocks"
	"newsCrawler/domain/model"
)

const pageURL = "https://tuoitre.vn/a.htm"

var longContent = strings.Repeat("Nội dung bài viết. ", 5)

func fetcher(body string, err error) *mocks.FetcherExtractorMock {
	return &mocks.FetcherExtractorMock{
		FetchFunc: func(ctx context.Context, url string) (model.FetchResult, error) {
			if err != nil {
				return model.FetchResult{URL: url, Attempts: 3}, err
			}
			return model.FetchResult{URL: url, Body: body, Success: true, Attempts: 1}, nil
		},
		ExtractFunc: func(pageURL string, body string) []string {
			return []string{"https://tuoitre.vn/b.htm", "https://tuoitre.vn/c.htm"}
		},
	}
}

func classifier(isArticle bool) *mocks.ClassifierMock {
	return &mocks.ClassifierMock{
		IsArticleFunc: func(html string) bool { return isArticle },
	}
}

func extractor(record model.ArticleRecord) *mocks.ArticleExtractorMock {
	return &mocks.ArticleExtractorMock{
		ExtractFunc: func(html string, url string) model.ArticleRecord {
			record.URL = url
			return record
		},
	}
}

func TestCrawler_Crawl(t *testing.T) {
	logger := zap.NewNop().Sugar()
	job := model.CrawlJob{URL: pageURL}

	t.Run("failed fetch is not classified", func(t *testing.T) {
		t.Parallel()

		fe := fetcher("", errors.New("connection reset"))
		cl := classifier(true)
		ex := extractor(model.ArticleRecord{})

		res := crawler.New(logger, fe, cl, ex, model.MinContentChars).Crawl(context.Background(), job)

		assert.False(t, res.Fetched)
		assert.Equal(t, model.KindUnknown, res.Kind)
		assert.Nil(t, res.Article)
		assert.Empty(t, res.Links)
		assert.Empty(t, cl.IsArticleCalls())
		assert.Empty(t, fe.ExtractCalls())
	})

	t.Run("hub page yields its links", func(t *testing.T) {
		t.Parallel()

		fe := fetcher("<ul>...</ul>", nil)
		ex := extractor(model.ArticleRecord{})

		res := crawler.New(logger, fe, classifier(false), ex, model.MinContentChars).Crawl(context.Background(), job)

		assert.True(t, res.Fetched)
		assert.Equal(t, model.KindHub, res.Kind)
		assert.Nil(t, res.Article)
		assert.Len(t, res.Links, 2)
		assert.Empty(t, ex.ExtractCalls(), "hubs are not extracted")
		require.Len(t, fe.ExtractCalls(), 1)
		assert.Equal(t, pageURL, fe.ExtractCalls()[0].PageURL)
	})

	t.Run("article passing the quality gate is returned without links", func(t *testing.T) {
		t.Parallel()

		fe := fetcher("<h1>x</h1>", nil)
		ex := extractor(model.ArticleRecord{Title: "Tiêu đề", Content: longContent})

		res := crawler.New(logger, fe, classifier(true), ex, model.MinContentChars).Crawl(context.Background(), job)

		assert.True(t, res.Fetched)
		assert.Equal(t, model.KindArticle, res.Kind)
		require.NotNil(t, res.Article)
		assert.Equal(t, pageURL, res.Article.URL)
		assert.Equal(t, "Tiêu đề", res.Article.Title)
		assert.False(t, res.Salvaged)
		assert.Empty(t, res.Links)
		assert.Empty(t, fe.ExtractCalls())
	})

	t.Run("article without title is salvaged for links", func(t *testing.T) {
		t.Parallel()

		fe := fetcher("<h1></h1>", nil)
		ex := extractor(model.ArticleRecord{Content: longContent})

		res := crawler.New(logger, fe, classifier(true), ex, model.MinContentChars).Crawl(context.Background(), job)

		assert.Nil(t, res.Article)
		assert.True(t, res.Salvaged)
		assert.Len(t, res.Links, 2)
	})

	t.Run("article with short content is salvaged for links", func(t *testing.T) {
		t.Parallel()

		fe := fetcher("<h1>x</h1>", nil)
		ex := extractor(model.ArticleRecord{Title: "T", Content: strings.Repeat("a", model.MinContentChars)})

		res := crawler.New(logger, fe, classifier(true), ex, model.MinContentChars).Crawl(context.Background(), job)

		assert.Nil(t, res.Article)
		assert.True(t, res.Salvaged)
		assert.Len(t, res.Links, 2)
	})
}

func TestCrawler_Seed(t *testing.T) {
	logger := zap.NewNop().Sugar()

	t.Run("returns the seed page links", func(t *testing.T) {
		fe := fetcher("<a>", nil)
		links, err := crawler.New(logger, fe, classifier(false), extractor(model.ArticleRecord{}), 50).
			Seed(context.Background(), "https://tuoitre.vn/")

		require.NoError(t, err)
		assert.Len(t, links, 2)
		assert.Equal(t, "https://tuoitre.vn/", fe.ExtractCalls()[0].PageURL)
	})

	t.Run("propagates fetch failure", func(t *testing.T) {
		fe := fetcher("", errors.New("dns"))
		_, err := crawler.New(logger, fe, classifier(false), extractor(model.ArticleRecord{}), 50).
			Seed(context.Background(), "https://tuoitre.vn/")

		assert.Error(t, err)
		assert.Empty(t, fe.ExtractCalls())
	})
}
