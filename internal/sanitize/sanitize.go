// Package sanitize filters model output down to a small set of HTML tags and
// flattens it to plain text for display.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// AllowedTags is the element allow-list. Links may carry href, target and
// rel; any allowed element may carry style.
var AllowedTags = []string{
	"p", "strong", "em", "ul", "li", "br", "a", "span", "div",
	"h1", "h2", "h3", "h4", "h5", "h6",
}

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// Policy returns the shared allow-list policy. A bluemonday policy is safe
// for concurrent use once built.
func Policy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements(AllowedTags...)
		p.AllowAttrs("href", "target", "rel").OnElements("a")
		p.AllowAttrs("style").Globally()
		p.RequireParseableURLs(true)
		p.AllowRelativeURLs(true)
		p.AllowURLSchemes("http", "https", "mailto")
		policy = p
	})
	return policy
}

// HTML strips every tag and attribute outside the allow-list. Script and
// style bodies are dropped with their tags.
func HTML(raw string) string {
	return Policy().Sanitize(raw)
}

// PlainText removes all tags from s and decodes entities, leaving the text a
// reader would see.
func PlainText(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a read error; either way the text so far is all there is
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
