package sameDomainFilter

import (
	"net/url"
	"strings"
)

// Filter keeps urls on the seed host or one of its subdomains.
type Filter struct {
	domain string
}

// New builds a filter for the host of seedURL. A bare host is accepted too.
func New(seedURL string) *Filter {
	host := seedURL
	if u, err := url.Parse(seedURL); err == nil && u.Host != "" {
		host = u.Hostname()
	}
	return &Filter{domain: normalizeHost(host)}
}

func (f *Filter) Domain() string {
	return f.domain
}

func (f *Filter) ShouldCrawl(u *url.URL) bool {
	if u == nil {
		return false
	}
	return f.AllowsHost(u.Hostname())
}

// AllowsHost reports whether host equals the domain or is a subdomain of it.
func (f *Filter) AllowsHost(host string) bool {
	host = normalizeHost(host)
	if host == "" || f.domain == "" {
		return false
	}
	return host == f.domain || strings.HasSuffix(host, "."+f.domain)
}

func normalizeHost(host string) string {
	return strings.TrimSuffix(strings.ToLower(host), ".")
}
