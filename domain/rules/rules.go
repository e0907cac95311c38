// Package rules describes, as data, how pages are classified and how article
// fields are located. Each field is an ordered list of rules; the first rule
// that yields text wins.
package rules

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrInvalidRule is returned when a rule cannot be compiled.
var ErrInvalidRule = errors.New("invalid rule")

// ReadText reads the stripped visible text of the matched element.
const ReadText = "text"

var tagName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)

// Rule selects the first element named Tag whose attribute Attr equals Equals
// or contains a case-insensitive match of Pattern. With no Attr any element
// named Tag matches; with Attr alone the attribute only has to be present.
//
// Read lists where the value comes from, tried in order: "text" or "@name"
// for an attribute. Meta tags default to "@content", everything else to text.
type Rule struct {
	Tag     string   `yaml:"tag"`
	Attr    string   `yaml:"attr,omitempty"`
	Equals  string   `yaml:"equals,omitempty"`
	Pattern string   `yaml:"pattern,omitempty"`
	Read    []string `yaml:"read,omitempty"`

	re *regexp.Regexp
}

// Compile validates the rule and prepares its pattern.
func (r *Rule) Compile() error {
	if !tagName.MatchString(r.Tag) {
		return fmt.Errorf("%w: tag %q", ErrInvalidRule, r.Tag)
	}
	if r.Equals != "" && r.Pattern != "" {
		return fmt.Errorf("%w: %s sets both equals and pattern", ErrInvalidRule, r)
	}
	if (r.Equals != "" || r.Pattern != "") && r.Attr == "" {
		return fmt.Errorf("%w: %s needs an attr to match against", ErrInvalidRule, r)
	}
	for _, src := range r.Read {
		if src != ReadText && (!strings.HasPrefix(src, "@") || len(src) == 1) {
			return fmt.Errorf("%w: %s read source %q", ErrInvalidRule, r, src)
		}
	}

	r.re = nil
	if r.Pattern != "" {
		re, err := regexp.Compile("(?i)" + r.Pattern)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidRule, r, err)
		}
		r.re = re
	}
	return nil
}

// Sources returns Read or the default for the tag.
func (r Rule) Sources() []string {
	if len(r.Read) > 0 {
		return r.Read
	}
	if strings.EqualFold(r.Tag, "meta") {
		return []string{"@content"}
	}
	return []string{ReadText}
}

// First returns the first element under root matched by the rule. The
// selection is empty when nothing matches.
func (r Rule) First(root *goquery.Selection) *goquery.Selection {
	return root.Find(strings.ToLower(r.Tag)).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return r.matches(s)
	}).First()
}

func (r Rule) matches(s *goquery.Selection) bool {
	if r.Attr == "" {
		return true
	}
	v, ok := s.Attr(r.Attr)
	if !ok {
		return false
	}
	switch {
	case r.Equals != "":
		return v == r.Equals
	case r.re != nil:
		return r.re.MatchString(v)
	case r.Pattern != "":
		// Not compiled; fall back to a plain substring test.
		return strings.Contains(strings.ToLower(v), strings.ToLower(r.Pattern))
	default:
		return true
	}
}

func (r Rule) String() string {
	switch {
	case r.Equals != "":
		return fmt.Sprintf("%s[%s=%q]", r.Tag, r.Attr, r.Equals)
	case r.Pattern != "":
		return fmt.Sprintf("%s[%s~/%s/i]", r.Tag, r.Attr, r.Pattern)
	case r.Attr != "":
		return fmt.Sprintf("%s[%s]", r.Tag, r.Attr)
	default:
		return r.Tag
	}
}

// Content describes where article body text lives.
type Content struct {
	// Containers are tried in order; the first one present is used.
	Containers []Rule `yaml:"containers"`
	// Strip is removed from the container before reading it.
	Strip []string `yaml:"strip"`
	// Blocks are the descendants whose text makes up the body.
	Blocks []string `yaml:"blocks"`
	// Fallback selects paragraphs anywhere in the page when no container
	// yields text, keeping at most FallbackLimit of them.
	Fallback      string `yaml:"fallback"`
	FallbackLimit int    `yaml:"fallback_limit"`
}

// Set is the full rule configuration.
type Set struct {
	Article   []Rule  `yaml:"article"`
	Title     []Rule  `yaml:"title"`
	Published []Rule  `yaml:"published"`
	Author    []Rule  `yaml:"author"`
	Content   Content `yaml:"content"`
}

// Compile compiles every rule of the set.
func (s *Set) Compile() error {
	groups := []struct {
		name  string
		rules []Rule
	}{
		{"article", s.Article},
		{"title", s.Title},
		{"published", s.Published},
		{"author", s.Author},
		{"content.containers", s.Content.Containers},
	}
	for _, g := range groups {
		for i := range g.rules {
			if err := g.rules[i].Compile(); err != nil {
				return fmt.Errorf("%s[%d]: %w", g.name, i, err)
			}
		}
	}
	if s.Content.FallbackLimit < 0 {
		return fmt.Errorf("%w: content.fallback_limit %d", ErrInvalidRule, s.Content.FallbackLimit)
	}
	return nil
}
