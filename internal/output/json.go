package output

import (
	"encoding/json"

	"github.com/docweave/docweave/internal/model"
)

// JSONFormatter outputs an analysis as indented JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format marshals the analysis as indented JSON.
func (f *JSONFormatter) Format(analysis *model.RepositoryAnalysis) ([]byte, error) {
	return json.MarshalIndent(analysis, "", "  ")
}
