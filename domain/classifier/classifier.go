// Package classifier decides whether a page is an article or a hub.
package classifier

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"newsCrawler/domain/rules"
)

// Classifier treats a page as an article when any of its signals is present.
type Classifier struct {
	signals []rules.Rule
}

// New builds a classifier from compiled signal rules.
func New(signals []rules.Rule) *Classifier {
	return &Classifier{signals: signals}
}

// IsArticle reports whether html carries at least one article signal.
// Unparseable input is a hub.
func (c *Classifier) IsArticle(html string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}
	return c.isArticleDocument(doc)
}

func (c *Classifier) isArticleDocument(doc *goquery.Document) bool {
	for _, signal := range c.signals {
		if signal.First(doc.Selection).Length() > 0 {
			return true
		}
	}
	return false
}
