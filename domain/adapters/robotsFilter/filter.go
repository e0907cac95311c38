package robotsFilter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/temoto/robotstxt"

	"newsCrawler/domain/model"
)

// maxRobotsBodyBytes limits how much of a robots.txt we read.
const maxRobotsBodyBytes = 512 * 1024

type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
}

// Filter checks jobs against the robots.txt of their host. Rules are fetched
// once per host and kept for the lifetime of the filter.
type Filter struct {
	logger    Logger
	client    *http.Client
	userAgent string

	mu    sync.Mutex
	hosts map[string]*robotstxt.RobotsData // nil entry means allow all
}

func New(logger Logger, client *http.Client, userAgent string) *Filter {
	return &Filter{
		logger:    logger,
		client:    client,
		userAgent: userAgent,
		hosts:     make(map[string]*robotstxt.RobotsData),
	}
}

func (f *Filter) Name() string {
	return "robots"
}

// ShouldCrawl is false only when robots.txt explicitly disallows the path.
// A missing or unreachable robots.txt allows everything.
func (f *Filter) ShouldCrawl(ctx context.Context, job model.CrawlJob) bool {
	u, err := url.Parse(job.URL)
	if err != nil || u.Host == "" {
		return false
	}

	data := f.rulesFor(ctx, u)
	if data == nil {
		return true
	}

	p := u.EscapedPath()
	if p == "" {
		p = "/"
	}
	return data.TestAgent(p, f.userAgent)
}

func (f *Filter) rulesFor(ctx context.Context, u *url.URL) *robotstxt.RobotsData {
	host := strings.ToLower(u.Host)

	// Held across the fetch so concurrent jobs for a new host wait for one download.
	f.mu.Lock()
	defer f.mu.Unlock()

	if data, ok := f.hosts[host]; ok {
		return data
	}

	data, err := f.fetch(ctx, u.Scheme, host)
	if err != nil {
		f.logger.Warnw("robots.txt unavailable, allowing all", "host", host, "error", err)
		data = nil
	}
	f.hosts[host] = data
	return data
}

func (f *Filter) fetch(ctx context.Context, scheme, host string) (*robotstxt.RobotsData, error) {
	robotsURL := (&url.URL{Scheme: scheme, Host: host, Path: "/robots.txt"}).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", robotsURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRobotsBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", robotsURL, err)
	}

	data, err := robotstxt.FromStatusAndBytes(resp.StatusCode, body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", robotsURL, err)
	}
	f.logger.Debugw("robots.txt loaded", "host", host, "status", resp.StatusCode)
	return data, nil
}
