package cmd

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"newsCrawler/dao"
	"newsCrawler/domain/crawlerPool"
)

const longBody = "Đây là một đoạn văn đủ dài để vượt qua ngưỡng năm mươi ký tự của bộ lọc chất lượng."

func articlePage(title, author string, paragraphs ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<html><head><meta name="author" content="%s">
<meta property="article:published_time" content="2024-05-01T08:00:00+07:00"></head><body>
<h1>%s</h1><div class="fck_detail">`, author, title)
	for _, p := range paragraphs {
		fmt.Fprintf(&b, "<p>%s</p>", p)
	}
	b.WriteString(`</div><a href="/">Trang chủ</a></body></html>`)
	return b.String()
}

func newsSite(t *testing.T, robots ...string) *httptest.Server {
	t.Helper()
	pages := map[string]string{
		"/":             `<html><body><a href="/a1.htm">Một</a><a href="/hub">Thời sự</a><a href="/logo.png">logo</a><a href="https://elsewhere.example/x">x</a></body></html>`,
		"/hub":          `<html><body><a href="/a2.htm?utm=1">Hai</a><a href="/a3-short.htm#top">Ba</a></body></html>`,
		"/a1.htm":       articlePage("Bài một", "Minh Anh", longBody),
		"/a2.htm":       articlePage("Bài hai", "Thu Hà", longBody, "Đoạn thứ hai."),
		"/a3-short.htm": articlePage("Bài ngắn", "", "Ngắn."),
	}
	if len(robots) > 0 {
		pages["/robots.txt"] = robots[0]
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(t *testing.T, startURL string) AppConfig {
	t.Helper()
	v := viper.New()
	setDefaults(v)
	cfg, err := loadConfig(v)
	require.NoError(t, err)

	cfg.StartURL = startURL
	cfg.Output = filepath.Join(t.TempDir(), "articles.txt")
	cfg.Delay = 0
	cfg.Retries = 1
	cfg.Timeout = 5 * time.Second
	cfg.Progress = false
	return cfg
}

func TestApp_Run(t *testing.T) {
	t.Run("crawls the site and writes accepted articles in order", func(t *testing.T) {
		srv := newsSite(t)
		cfg := testConfig(t, srv.URL+"/")
		cfg.DB = filepath.Join(t.TempDir(), "archive.db")

		app, err := NewApp(context.Background(), cfg, zap.NewNop().Sugar(), &bytes.Buffer{})
		require.NoError(t, err)

		report, err := app.Run(context.Background())
		require.NoError(t, err)
		require.NoError(t, app.Close())

		assert.Equal(t, 2, report.Articles)
		assert.False(t, report.Interrupted)
		assert.Equal(t, 1, report.Stats.Salvaged)
		assert.Equal(t, 1, report.Stats.Hubs)
		assert.Equal(t, 1, report.Stats.Filtered)

		out, err := os.ReadFile(cfg.Output)
		require.NoError(t, err)
		sep := strings.Repeat("=", 100)
		want := "ARTICLE #1\n" +
			"URL: " + srv.URL + "/a1.htm\n" +
			"Title: Bài một\n" +
			"Published: 2024-05-01T08:00:00+07:00\n" +
			"Author: Minh Anh\n\n" +
			longBody + "\n\n" + sep + "\n\n" +
			"ARTICLE #2\n" +
			"URL: " + srv.URL + "/a2.htm\n" +
			"Title: Bài hai\n" +
			"Published: 2024-05-01T08:00:00+07:00\n" +
			"Author: Thu Hà\n\n" +
			longBody + "\n\nĐoạn thứ hai.\n\n" + sep + "\n\n"
		assert.Equal(t, want, string(out))

		archive, err := dao.Open(context.Background(), cfg.DB)
		require.NoError(t, err)
		defer archive.Close()
		archived, err := archive.Articles(context.Background(), report.RunID)
		require.NoError(t, err)
		assert.Len(t, archived, 2)
		run, err := archive.Run(context.Background(), report.RunID)
		require.NoError(t, err)
		assert.Equal(t, 2, run.Accepted)
	})

	t.Run("stops at the quota", func(t *testing.T) {
		srv := newsSite(t)
		cfg := testConfig(t, srv.URL+"/")
		cfg.Max = 1

		app, err := NewApp(context.Background(), cfg, zap.NewNop().Sugar(), &bytes.Buffer{})
		require.NoError(t, err)

		report, err := app.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, report.Articles)
		out, err := os.ReadFile(cfg.Output)
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(string(out), "ARTICLE #"))
	})

	t.Run("robots.txt is honoured when enabled", func(t *testing.T) {
		srv := newsSite(t, "User-agent: *\nDisallow: /a1.htm\n")
		cfg := testConfig(t, srv.URL+"/")
		cfg.RespectRobots = true

		app, err := NewApp(context.Background(), cfg, zap.NewNop().Sugar(), &bytes.Buffer{})
		require.NoError(t, err)

		report, err := app.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, report.Articles)
		assert.Equal(t, 2, report.Stats.Filtered)
		out, err := os.ReadFile(cfg.Output)
		require.NoError(t, err)
		assert.NotContains(t, string(out), "/a1.htm")
		assert.Contains(t, string(out), "/a2.htm")
	})

	t.Run("seed failure writes nothing", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()
		cfg := testConfig(t, srv.URL+"/")
		cfg.DB = filepath.Join(t.TempDir(), "archive.db")

		app, err := NewApp(context.Background(), cfg, zap.NewNop().Sugar(), &bytes.Buffer{})
		require.NoError(t, err)

		report, err := app.Run(context.Background())
		require.NoError(t, app.Close())

		assert.ErrorIs(t, err, crawlerPool.ErrSeedFetch)
		assert.NoFileExists(t, cfg.Output)

		archive, err := dao.Open(context.Background(), cfg.DB)
		require.NoError(t, err)
		defer archive.Close()
		run, err := archive.Run(context.Background(), report.RunID)
		require.NoError(t, err)
		assert.NotNil(t, run.FinishedAt, "failed runs are closed")
		assert.Equal(t, 0, run.Accepted)
	})

	t.Run("bad rules file is reported", func(t *testing.T) {
		cfg := testConfig(t, "https://tuoitre.vn/")
		cfg.RulesFile = filepath.Join(t.TempDir(), "missing.yaml")

		_, err := NewApp(context.Background(), cfg, zap.NewNop().Sugar(), &bytes.Buffer{})

		assert.Error(t, err)
	})
}

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer
	renderReport(&buf, RunReport{
		StartURL:    "https://tuoitre.vn/",
		Output:      "articles.txt",
		Articles:    4,
		Stats:       crawlerPool.Stats{Fetched: 9, Failed: 1},
		Elapsed:     1500 * time.Millisecond,
		Interrupted: true,
	})

	out := buf.String()
	assert.Contains(t, out, "Crawl summary")
	assert.Contains(t, out, "https://tuoitre.vn/")
	assert.Contains(t, out, "Articles accepted")
	assert.Contains(t, out, "1.5s")
	assert.Contains(t, out, "interrupted")
}

func TestRootCommand(t *testing.T) {
	t.Run("rules prints the defaults as yaml", func(t *testing.T) {
		var buf bytes.Buffer
		root := newRootCmd(viper.New())
		root.SetOut(&buf)
		root.SetArgs([]string{"rules"})

		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "fck_detail")
		assert.Contains(t, buf.String(), "twitter:title")
	})

	t.Run("version", func(t *testing.T) {
		var buf bytes.Buffer
		root := newRootCmd(viper.New())
		root.SetOut(&buf)
		root.SetArgs([]string{"version"})

		require.NoError(t, root.Execute())
		assert.Equal(t, "newscrawler version dev\n", buf.String())
	})

	t.Run("invalid configuration is rejected before crawling", func(t *testing.T) {
		root := newRootCmd(viper.New())
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs([]string{"crawl", "--max", "0"})

		assert.ErrorIs(t, root.Execute(), ErrInvalidConfig)
	})
}
