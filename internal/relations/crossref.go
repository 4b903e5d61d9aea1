package relations

import (
	"strings"

	"github.com/docweave/docweave/internal/markdown"
)

// contextWindow is the number of characters kept on each side of a link when
// extracting its surrounding context.
const contextWindow = 50

// crossReferences collects every Markdown link and textual reference per
// file, each annotated with surrounding context.
func crossReferences(infos []*fileInfo) map[string][]CrossReference {
	refs := make(map[string][]CrossReference, len(infos))
	for _, info := range infos {
		fileRefs := []CrossReference{}

		for _, link := range info.links {
			fileRefs = append(fileRefs, CrossReference{
				Type:    "link",
				Text:    link.Text,
				Target:  link.Target,
				Context: linkContext(info.content, link),
			})
		}

		for _, ref := range info.refs {
			fileRefs = append(fileRefs, CrossReference{
				Type:    "textual_reference",
				Text:    ref.Target,
				Target:  ref.Target,
				Context: referenceContext(info.content, ref.Target),
			})
		}

		refs[info.path] = fileRefs
	}
	return refs
}

// linkContext returns a ~100-character window of text around the link,
// whitespace collapsed.
func linkContext(content string, link markdown.Link) string {
	// The display text starts one byte past the opening bracket.
	textStart := link.Start + 1

	start := textStart - contextWindow
	if start < 0 {
		start = 0
	}
	end := textStart + len(link.Text) + contextWindow
	if end > len(content) {
		end = len(content)
	}
	return markdown.CollapseSpace(content[start:end])
}

// referenceContext returns the sentence containing the reference target, or
// an empty string when it cannot be located.
func referenceContext(content, target string) string {
	for _, sentence := range markdown.Sentences(content) {
		if strings.Contains(sentence, target) {
			return strings.TrimSpace(sentence)
		}
	}
	return ""
}
