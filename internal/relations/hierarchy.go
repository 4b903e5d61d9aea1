package relations

import (
	"path"
	"strings"

	"github.com/docweave/docweave/internal/extract"
)

// contentHierarchy annotates each file's heading outline with classification
// flags and an importance score.
func contentHierarchy(infos []*fileInfo) map[string]FileOutline {
	hierarchy := make(map[string]FileOutline, len(infos))
	for _, info := range infos {
		headings := []HeadingInfo{}
		for _, h := range info.outline.Headings {
			headings = append(headings, HeadingInfo{
				Level:     h.Level,
				Title:     h.Text,
				IsConcept: extract.IsConceptHeading(h.Text),
				IsSetup:   extract.IsSetupHeading(h.Text),
			})
		}

		hierarchy[info.path] = FileOutline{
			Headings:        headings,
			Importance:      fileImportance(info),
			WordCount:       len(strings.Fields(info.content)),
			HasCodeExamples: info.codeNum > 0,
		}
	}
	return hierarchy
}

// fileImportance scores a file 1..10 from its name, content length, code
// block count and heading count.
func fileImportance(info *fileInfo) int {
	importance := 1

	name := strings.ToLower(path.Base(info.path))
	switch {
	case strings.Contains(name, "readme"):
		importance += 5
	case strings.Contains(name, "getting") && strings.Contains(name, "started"):
		importance += 4
	case containsAnyOf(name, "setup", "install", "guide"):
		importance += 3
	case containsAnyOf(name, "api", "reference", "docs"):
		importance += 2
	}

	switch {
	case len(info.content) > 2000:
		importance += 2
	case len(info.content) > 1000:
		importance++
	}

	switch {
	case info.codeNum > 3:
		importance += 2
	case info.codeNum > 0:
		importance++
	}

	if len(info.outline.Headings) > 5 {
		importance++
	}

	if importance > 10 {
		importance = 10
	}
	return importance
}

func containsAnyOf(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
