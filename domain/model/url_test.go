package model_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsCrawler/domain/model"
)

func TestNormalizeRawURL_Idempotent(t *testing.T) {
	inputs := []string{
		"https://tuoitre.vn/a.htm",
		"https://tuoitre.vn/a.htm?x=1",
		"https://tuoitre.vn/a.htm#frag",
		"https://tuoitre.vn/a.htm?x=1#frag",
		"https://tuoitre.vn/a.htm?",
		"https://tuoitre.vn/tìm kiếm.htm",
		"https://tuoitre.vn/%7Euser/?q=%20",
		"://broken?x#y",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			once := model.NormalizeRawURL(in)
			assert.Equal(t, once, model.NormalizeRawURL(once))
			assert.NotContains(t, once, "?")
			assert.NotContains(t, once, "#")
		})
	}
}

func TestNormalizeURL_StripsQueryAndFragment(t *testing.T) {
	u, err := url.Parse("https://tuoitre.vn/a.htm?x=1#frag")
	require.NoError(t, err)

	assert.Equal(t, "https://tuoitre.vn/a.htm", model.NormalizeURL(u))
	assert.Equal(t, "x=1", u.RawQuery, "input is not modified")
}

func TestNormalizeURL_EquivalentForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty path becomes root", "https://news.example", "https://news.example/"},
		{"empty path with query", "https://news.example?ref=home", "https://news.example/"},
		{"host is lowercased", "https://News.Example/Thoi-Su.htm", "https://news.example/Thoi-Su.htm"},
		{"port is kept", "http://LOCALHOST:8080", "http://localhost:8080/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.in)
			require.NoError(t, err)

			got := model.NormalizeURL(u)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, model.NormalizeRawURL(got))
		})
	}
}
