// Package output renders a repository analysis for consumers: indented JSON
// for machines, a Markdown digest for humans.
package output

import "github.com/docweave/docweave/internal/model"

// Formatter renders a RepositoryAnalysis into output bytes.
type Formatter interface {
	Format(analysis *model.RepositoryAnalysis) ([]byte, error)
}
