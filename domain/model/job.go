package model

// CrawlJob represents an url to work on.
type CrawlJob struct {
	URL string // normalized absolute url
}

// PageKind is what the classifier decided a fetched page is.
type PageKind int

const (
	KindUnknown PageKind = iota
	KindHub
	KindArticle
)

func (k PageKind) String() string {
	switch k {
	case KindHub:
		return "hub"
	case KindArticle:
		return "article"
	default:
		return "unknown"
	}
}

// CrawlResult is the outcome of crawling a single job.
type CrawlResult struct {
	Job     CrawlJob
	Fetched bool     // false when every fetch attempt failed
	Kind    PageKind // zero when not fetched

	Article  *ArticleRecord // set only when the page passed the quality gate
	Salvaged bool           // classified as article but failed the quality gate

	Links []string // harvested from hubs and salvaged pages
}
