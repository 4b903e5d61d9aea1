package extract

import (
	"log"
	"strings"

	"github.com/docweave/docweave/internal/markdown"
	"github.com/docweave/docweave/internal/model"
)

const noDescription = "No description available"

// Concepts extracts one Concept per concept-bearing heading in content.
// Records that fail validation are logged and dropped, never returned.
func Concepts(content, filePath string) []model.Concept {
	outline := markdown.ParseOutline(content)

	var concepts []model.Concept
	for i, h := range outline.Headings {
		if !IsConceptHeading(h.Text) {
			continue
		}
		section := outline.Section(i)

		var related []string
		if filePath != "" {
			related = []string{filePath}
		}

		c, err := model.NewConcept(
			h.Text,
			conceptDescription(section),
			conceptImportance(h.Level, h.Text, section),
			related,
			Prerequisites(section),
		)
		if err != nil {
			log.Printf("WARNING: dropping concept from %s: %v", filePath, err)
			continue
		}
		concepts = append(concepts, c)
	}
	return concepts
}

// conceptImportance scores a concept 1..10 from its heading level, key terms
// in the heading, and the length of its section.
func conceptImportance(level int, heading, section string) int {
	importance := 7 - level
	if importance < 1 {
		importance = 1
	}
	if containsAny(strings.ToLower(heading), keyTerms) {
		importance += 2
	}
	if len(section) > 500 {
		importance++
	}
	if importance > 10 {
		importance = 10
	}
	return importance
}

// conceptDescription takes the first non-blank paragraph of the section,
// strips emphasis and links, and truncates to ~200 characters.
func conceptDescription(section string) string {
	for _, para := range strings.Split(section, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		return markdown.Truncate(markdown.StripEmphasis(para), 200)
	}
	return noDescription
}
