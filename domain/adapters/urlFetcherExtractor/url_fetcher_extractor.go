// Package urlFetcherExtractor retrieves pages over HTTP and extracts the
// same-site links they contain.
package urlFetcherExtractor

import (
	"net/http"
	"time"

	"newsCrawler/domain/adapters/sameDomainFilter"
)

const (
	DefaultTimeout          = 15 * time.Second
	DefaultMaxRetries       = 3
	DefaultBackoffBase      = time.Second
	DefaultBackoffIncrement = 2 * time.Second
	DefaultMaxBodyBytes     = 10 * 1024 * 1024
	DefaultUserAgent        = "Mozilla/5.0 (compatible; NewsCrawler/1.0; +https://example.com/bot)"
)

type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
}

// Options configures an HTTPFetcherExtractor. A zero Timeout, MaxRetries,
// UserAgent or MaxBodyBytes takes the default above; zero backoff means no wait.
type Options struct {
	Timeout          time.Duration // per attempt
	MaxRetries       int           // total attempts per url
	BackoffBase      time.Duration
	BackoffIncrement time.Duration
	UserAgent        string
	MaxBodyBytes     int64
	Client           *http.Client // overrides Timeout when set
}

type HTTPFetcherExtractor struct {
	logger Logger
	client *http.Client
	filter *sameDomainFilter.Filter

	userAgent        string
	maxRetries       int
	backoffBase      time.Duration
	backoffIncrement time.Duration
	maxBodyBytes     int64

	sleep func(d time.Duration) <-chan time.Time
}

// NewHTTPFetcherExtractor builds a fetcher whose Extract keeps links inside
// the site filter's domain.
func NewHTTPFetcherExtractor(logger Logger, filter *sameDomainFilter.Filter, opts Options) *HTTPFetcherExtractor {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxRetries < 1 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.BackoffBase < 0 {
		opts.BackoffBase = 0
	}
	if opts.BackoffIncrement < 0 {
		opts.BackoffIncrement = 0
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	return &HTTPFetcherExtractor{
		logger: logger,
		client: client,
		filter: filter,

		userAgent:        opts.UserAgent,
		maxRetries:       opts.MaxRetries,
		backoffBase:      opts.BackoffBase,
		backoffIncrement: opts.BackoffIncrement,
		maxBodyBytes:     opts.MaxBodyBytes,

		sleep: time.After,
	}
}

// Client exposes the underlying client so other adapters share its transport.
func (fe *HTTPFetcherExtractor) Client() *http.Client {
	return fe.client
}
