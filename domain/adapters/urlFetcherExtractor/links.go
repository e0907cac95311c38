package urlFetcherExtractor

import (
	"net/url"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"newsCrawler/domain/model"
)

// Extract collects the same-site links of an html document fetched from
// pageURL. Links are resolved against pageURL, normalized, deduplicated and
// returned sorted.
func (fe *HTTPFetcherExtractor) Extract(pageURL, body string) []string {
	base, err := url.Parse(pageURL)
	if err != nil {
		fe.logger.Debugw("unparseable page url, no links extracted", "url", pageURL, "error", err)
		return nil
	}

	seen := make(map[string]struct{})
	z := html.NewTokenizer(strings.NewReader(body))
	for {
		tt := z.Next()

		switch tt {
		case html.ErrorToken:
			links := make([]string, 0, len(seen))
			for link := range seen {
				links = append(links, link)
			}
			sort.Strings(links)
			return links
		case html.StartTagToken, html.SelfClosingTagToken:
			token := z.Token()
			if token.Data != "a" {
				continue
			}
			for _, attr := range token.Attr {
				if attr.Key != "href" {
					continue
				}
				if link, ok := fe.resolve(base, attr.Val); ok {
					seen[link] = struct{}{}
				}
			}
		}
	}
}

func (fe *HTTPFetcherExtractor) resolve(base *url.URL, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(strings.ToLower(href), "javascript:") {
		return "", false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	target := base.ResolveReference(ref)

	if target.Scheme != "http" && target.Scheme != "https" {
		return "", false
	}
	if !fe.filter.ShouldCrawl(target) {
		return "", false
	}
	return model.NormalizeURL(target), true
}
