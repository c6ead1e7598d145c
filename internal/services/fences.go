package services

import (
	"regexp"
	"strings"
)

// fenceMarker matches a ``` or ```html marker plus the line break right after it.
var fenceMarker = regexp.MustCompile("(?i)```(?:html)?(?:[ \\t]*\\r?\\n)?")

// StripCodeFences removes every fence marker the model wrapped around its
// HTML, however deeply nested, and trims the result.
func StripCodeFences(text string) string {
	return strings.TrimSpace(fenceMarker.ReplaceAllString(text, ""))
}
