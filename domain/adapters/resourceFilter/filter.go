package resourceFilter

import (
	"context"
	"net/url"
	"path"
	"strings"

	"newsCrawler/domain/model"
)

// DefaultExtensions are path suffixes that never hold an html page.
var DefaultExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".svg", ".webp", ".ico", ".css", ".js"}

// Filter drops jobs whose path ends in a known non-html extension.
type Filter struct {
	extensions map[string]struct{}
}

func New(extensions []string) *Filter {
	f := &Filter{extensions: make(map[string]struct{}, len(extensions))}
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		f.extensions[ext] = struct{}{}
	}
	return f
}

func (f *Filter) Name() string {
	return "resource"
}

func (f *Filter) ShouldCrawl(_ context.Context, job model.CrawlJob) bool {
	u, err := url.Parse(job.URL)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if ext == "" {
		return true
	}
	_, skip := f.extensions[ext]
	return !skip
}
