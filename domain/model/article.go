package model

import "unicode/utf8"

// MinContentChars is the content length an article must exceed to be kept.
const MinContentChars = 50

// FetchResult holds the decoded body of a fetched page.
type FetchResult struct {
	URL      string
	Body     string
	Success  bool
	Attempts int
}

// ArticleRecord is a single extracted article.
type ArticleRecord struct {
	URL       string `db:"url"`
	Title     string `db:"title"`
	Published string `db:"published"`
	Author    string `db:"author"`
	Content   string `db:"content"`
}

// Acceptable reports whether the record has a title and more than minChars
// characters of content.
func (a ArticleRecord) Acceptable(minChars int) bool {
	return a.Title != "" && utf8.RuneCountInString(a.Content) > minChars
}
