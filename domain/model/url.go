package model

import (
	"net/url"
	"strings"
)

// NormalizeURL drops the fragment and query of u, lowercases the host and
// gives an empty path as "/". Applying it twice gives the same string as
// applying it once.
func NormalizeURL(u *url.URL) string {
	clean := *u
	clean.Host = strings.ToLower(clean.Host)
	if clean.Host != "" && clean.Path == "" && clean.Opaque == "" {
		clean.Path = "/"
		clean.RawPath = ""
	}
	clean.Fragment = ""
	clean.RawFragment = ""
	clean.RawQuery = ""
	clean.ForceQuery = false
	return clean.String()
}

// NormalizeRawURL is NormalizeURL for a string. Unparseable input is cut at
// the first '#' or '?'.
func NormalizeRawURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		if i := strings.IndexAny(rawURL, "#?"); i >= 0 {
			return rawURL[:i]
		}
		return rawURL
	}
	return NormalizeURL(u)
}
