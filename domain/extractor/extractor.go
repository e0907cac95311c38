// Package extractor pulls article fields out of semi-structured news html.
package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"newsCrawler/domain/model"
	"newsCrawler/domain/rules"
)

// Extractor applies a rule set to article pages. It never fails: a field
// none of its rules can find is left empty.
type Extractor struct {
	rules rules.Set
}

// New builds an extractor from a compiled rule set.
func New(set rules.Set) *Extractor {
	return &Extractor{rules: set}
}

func (e *Extractor) Extract(html, pageURL string) model.ArticleRecord {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return model.ArticleRecord{URL: pageURL}
	}
	return e.extractDocument(doc, pageURL)
}

// extractDocument removes non-content elements from doc while reading it.
func (e *Extractor) extractDocument(doc *goquery.Document, pageURL string) model.ArticleRecord {
	return model.ArticleRecord{
		URL:       pageURL,
		Title:     firstValue(doc.Selection, e.rules.Title),
		Published: firstValue(doc.Selection, e.rules.Published),
		Author:    firstValue(doc.Selection, e.rules.Author),
		Content:   e.content(doc),
	}
}

// firstValue returns the value of the first rule that yields non-empty text.
// Only the first element a rule matches is looked at.
func firstValue(root *goquery.Selection, fieldRules []rules.Rule) string {
	for _, r := range fieldRules {
		sel := r.First(root)
		if sel.Length() == 0 {
			continue
		}
		for _, src := range r.Sources() {
			if v := read(sel, src); v != "" {
				return v
			}
		}
	}
	return ""
}

func read(sel *goquery.Selection, src string) string {
	if src == rules.ReadText {
		return clean(visibleText(sel, ""))
	}
	v, _ := sel.Attr(strings.TrimPrefix(src, "@"))
	return clean(v)
}

func (e *Extractor) content(doc *goquery.Document) string {
	c := e.rules.Content

	for _, r := range c.Containers {
		container := r.First(doc.Selection)
		if container.Length() == 0 {
			continue
		}
		if len(c.Strip) > 0 {
			container.Find(strings.Join(c.Strip, ", ")).Remove()
		}
		if len(c.Blocks) == 0 {
			continue
		}
		if paragraphs := blocks(container.Find(strings.Join(c.Blocks, ", ")), 0); len(paragraphs) > 0 {
			return strings.Join(paragraphs, "\n\n")
		}
	}

	if c.Fallback == "" {
		return ""
	}
	return strings.Join(blocks(doc.Find(c.Fallback), c.FallbackLimit), "\n\n")
}

// blocks returns the non-empty text of each element, at most limit of them
// when limit is positive.
func blocks(sel *goquery.Selection, limit int) []string {
	var out []string
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := clean(visibleText(s, " ")); text != "" {
			out = append(out, text)
		}
		return limit <= 0 || len(out) < limit
	})
	return out
}
