package output

import (
	"fmt"
	"strings"

	"github.com/docweave/docweave/internal/model"
)

// MarkdownFormatter outputs an analysis as a human-readable Markdown digest.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format renders the analysis as Markdown. Empty sections are omitted.
func (f *MarkdownFormatter) Format(analysis *model.RepositoryAnalysis) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Repository Analysis\n")

	if len(analysis.Concepts) > 0 {
		b.WriteString("\n## Concepts\n\n")
		for _, c := range analysis.Concepts {
			b.WriteString(fmt.Sprintf("- **%s** (importance %d): %s\n", c.Name, c.Importance, c.Description))
		}
	}

	if len(analysis.SetupSteps) > 0 {
		b.WriteString("\n## Setup\n\n")
		for i, s := range analysis.SetupSteps {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, s.Title))
			for _, cmd := range s.Commands {
				b.WriteString(fmt.Sprintf("   - `%s`\n", cmd))
			}
		}
	}

	if len(analysis.CodeExamples) > 0 {
		b.WriteString("\n## Code Examples\n\n")
		for _, e := range analysis.CodeExamples {
			b.WriteString(fmt.Sprintf("- %s (%s, from %s)\n", e.Title, e.Language, e.FilePath))
		}
	}

	if len(analysis.Dependencies) > 0 {
		b.WriteString("\n## Dependencies\n\n")
		for _, d := range analysis.Dependencies {
			if d.Version != "" {
				b.WriteString(fmt.Sprintf("- %s %s (%s)\n", d.Name, d.Version, d.Type))
				continue
			}
			b.WriteString(fmt.Sprintf("- %s (%s)\n", d.Name, d.Type))
		}
	}

	return []byte(b.String()), nil
}
