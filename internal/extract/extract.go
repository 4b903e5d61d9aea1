// Package extract holds the per-file extractors. Each extractor is a pure
// function of (content, filePath) over the markdown primitives; none of them
// perform I/O. Classification heuristics live in explicit ordered tables so
// new entries can be added and tested in isolation.
package extract

import "strings"

// conceptKeywords marks a heading as concept-bearing when its lowercased
// text contains any entry.
var conceptKeywords = []string{
	"overview", "architecture", "design", "concepts", "introduction", "about", "what is",
}

// setupKeywords marks a heading as setup-bearing. Disjoint from
// conceptKeywords.
var setupKeywords = []string{
	"install", "setup", "configuration", "getting started", "prerequisites", "requirements", "dependencies",
}

// keyTerms boost a concept's importance when present in its heading.
var keyTerms = []string{
	"architecture", "overview", "getting started", "introduction",
}

// IsConceptHeading reports whether a heading introduces a concept section.
func IsConceptHeading(text string) bool {
	return containsAny(strings.ToLower(text), conceptKeywords)
}

// IsSetupHeading reports whether a heading introduces a setup section.
func IsSetupHeading(text string) bool {
	return containsAny(strings.ToLower(text), setupKeywords)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
