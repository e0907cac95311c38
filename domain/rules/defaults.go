package rules

// DefaultFallbackLimit caps how many page-wide paragraphs form a fallback body.
const DefaultFallbackLimit = 50

// Default returns the built-in rule set, tuned for Vietnamese news templates.
// It is compiled and safe to modify.
func Default() Set {
	s := Set{
		Article: []Rule{
			{Tag: "h1"},
			{Tag: "meta", Attr: "property", Equals: "article:published_time"},
			{Tag: "div", Attr: "class", Pattern: "fck_detail|article-body|detail"},
		},
		Title: []Rule{
			{Tag: "meta", Attr: "property", Equals: "og:title"},
			{Tag: "meta", Attr: "name", Equals: "twitter:title"},
			{Tag: "h1"},
			{Tag: "title"},
		},
		Published: []Rule{
			{Tag: "meta", Attr: "property", Equals: "article:published_time"},
			{Tag: "meta", Attr: "name", Equals: "article:published_time"},
			{Tag: "meta", Attr: "property", Equals: "og:article:published_time"},
			{Tag: "meta", Attr: "name", Equals: "og:article:published_time"},
			{Tag: "meta", Attr: "property", Equals: "og:pubdate"},
			{Tag: "meta", Attr: "name", Equals: "og:pubdate"},
			{Tag: "time", Read: []string{"@datetime", ReadText}},
		},
		Author: []Rule{
			{Tag: "meta", Attr: "name", Equals: "author"},
			{Tag: "meta", Attr: "property", Equals: "article:author"},
			{Tag: "span", Attr: "class", Pattern: "author|tacgia|name"},
			{Tag: "p", Attr: "class", Pattern: "author|tacgia"},
			{Tag: "div", Attr: "class", Pattern: "author|tacgia"},
		},
		Content: Content{
			Containers: []Rule{
				{Tag: "div", Attr: "class", Pattern: "fck_detail|content|detail|article-body|main-article"},
				{Tag: "article"},
				{Tag: "div", Attr: "itemprop", Equals: "articleBody"},
				{Tag: "div", Attr: "id", Pattern: "main-content|content"},
			},
			Strip:         []string{"script", "style", "aside", "figure", "figcaption", "iframe", "noscript"},
			Blocks:        []string{"p", "h2", "h3", "li"},
			Fallback:      "p",
			FallbackLimit: DefaultFallbackLimit,
		},
	}
	if err := s.Compile(); err != nil {
		panic("rules: default set does not compile: " + err.Error())
	}
	return s
}
