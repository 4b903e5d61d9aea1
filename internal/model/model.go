// Package model defines the typed records produced by repository analysis:
// concepts, setup steps, code examples, dependencies, and the aggregate
// RepositoryAnalysis. Every record is validated at construction; invalid
// input fails fast with a *ValidationError rather than silently coercing.
package model

import (
	"fmt"
	"regexp"
)

// ValidationError reports a record that failed construction-time validation.
// It is distinct from I/O errors so callers can drop the offending record
// while keeping the rest of the batch.
type ValidationError struct {
	Record string // record kind, e.g. "concept"
	Field  string // offending field
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Record, e.Field, e.Reason)
}

// versionPattern accepts an optional comparator prefix followed by the
// version characters themselves. Comparators are preserved by extraction
// ("==2.28.0"), so they must be accepted here too.
var versionPattern = regexp.MustCompile(`^(==|>=|<=|>|<|~|\^)?[\w.+\-]+$`)

// ValidVersion reports whether s is an acceptable Dependency version string.
func ValidVersion(s string) bool {
	return versionPattern.MatchString(s)
}

// DependencyType classifies how a dependency is used by a project.
type DependencyType string

const (
	Runtime  DependencyType = "runtime"
	Dev      DependencyType = "dev"
	Optional DependencyType = "optional"
	Peer     DependencyType = "peer"
	Build    DependencyType = "build"
)

func validDependencyType(t DependencyType) bool {
	switch t {
	case Runtime, Dev, Optional, Peer, Build:
		return true
	}
	return false
}

// Concept is a named idea extracted from a documentation heading judged to
// explain project structure or intent. Identity is the lowercase-trimmed
// name; RelatedFiles and Prerequisites carry set semantics.
type Concept struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Importance    int      `json:"importance"`
	RelatedFiles  []string `json:"related_files"`
	Prerequisites []string `json:"prerequisites"`
}

// NewConcept validates and builds a Concept.
func NewConcept(name, description string, importance int, relatedFiles, prerequisites []string) (Concept, error) {
	c := Concept{
		Name:          name,
		Description:   description,
		Importance:    importance,
		RelatedFiles:  relatedFiles,
		Prerequisites: prerequisites,
	}
	if err := c.Validate(); err != nil {
		return Concept{}, err
	}
	return c, nil
}

// Validate checks the concept's construction invariants.
func (c Concept) Validate() error {
	if c.Name == "" {
		return &ValidationError{Record: "concept", Field: "name", Reason: "must be non-empty"}
	}
	if c.Description == "" {
		return &ValidationError{Record: "concept", Field: "description", Reason: "must be non-empty"}
	}
	if c.Importance < 1 || c.Importance > 10 {
		return &ValidationError{Record: "concept", Field: "importance", Reason: "must be between 1 and 10"}
	}
	return nil
}

// SetupStep is an orderable instruction toward getting a project running.
// Order is a non-negative counter used as the primary sort key; ties are
// broken by keyword priority (see the merge package).
type SetupStep struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Commands      []string `json:"commands"`
	Prerequisites []string `json:"prerequisites"`
	Order         int      `json:"order"`
}

// NewSetupStep validates and builds a SetupStep.
func NewSetupStep(title, description string, commands, prerequisites []string, order int) (SetupStep, error) {
	s := SetupStep{
		Title:         title,
		Description:   description,
		Commands:      commands,
		Prerequisites: prerequisites,
		Order:         order,
	}
	if err := s.Validate(); err != nil {
		return SetupStep{}, err
	}
	return s, nil
}

// Validate checks the setup step's construction invariants.
func (s SetupStep) Validate() error {
	if s.Title == "" {
		return &ValidationError{Record: "setup step", Field: "title", Reason: "must be non-empty"}
	}
	if s.Description == "" {
		return &ValidationError{Record: "setup step", Field: "description", Reason: "must be non-empty"}
	}
	if s.Order < 0 {
		return &ValidationError{Record: "setup step", Field: "order", Reason: "must be non-negative"}
	}
	return nil
}

// CodeExample is a fenced code block recovered from documentation together
// with its nearest preceding title and description.
type CodeExample struct {
	Title       string `json:"title"`
	Code        string `json:"code"`
	Language    string `json:"language"`
	Description string `json:"description"`
	FilePath    string `json:"file_path"`
}

// NewCodeExample validates and builds a CodeExample.
func NewCodeExample(title, code, language, description, filePath string) (CodeExample, error) {
	e := CodeExample{
		Title:       title,
		Code:        code,
		Language:    language,
		Description: description,
		FilePath:    filePath,
	}
	if err := e.Validate(); err != nil {
		return CodeExample{}, err
	}
	return e, nil
}

// Validate checks the code example's construction invariants.
func (e CodeExample) Validate() error {
	if e.Title == "" {
		return &ValidationError{Record: "code example", Field: "title", Reason: "must be non-empty"}
	}
	if e.Code == "" {
		return &ValidationError{Record: "code example", Field: "code", Reason: "must be non-empty"}
	}
	if e.Language == "" {
		return &ValidationError{Record: "code example", Field: "language", Reason: "must be non-empty"}
	}
	if e.Description == "" {
		return &ValidationError{Record: "code example", Field: "description", Reason: "must be non-empty"}
	}
	if e.FilePath == "" {
		return &ValidationError{Record: "code example", Field: "file_path", Reason: "must be non-empty"}
	}
	return nil
}

// Dependency is a project dependency mined from documentation or a manifest
// file. Identity is the lowercase-trimmed name; Version is optional and may
// carry a comparator prefix.
type Dependency struct {
	Name        string         `json:"name"`
	Version     string         `json:"version,omitempty"`
	Type        DependencyType `json:"type"`
	Description string         `json:"description"`
}

// NewDependency validates and builds a Dependency.
func NewDependency(name, version string, depType DependencyType, description string) (Dependency, error) {
	d := Dependency{
		Name:        name,
		Version:     version,
		Type:        depType,
		Description: description,
	}
	if err := d.Validate(); err != nil {
		return Dependency{}, err
	}
	return d, nil
}

// Validate checks the dependency's construction invariants.
func (d Dependency) Validate() error {
	if d.Name == "" {
		return &ValidationError{Record: "dependency", Field: "name", Reason: "must be non-empty"}
	}
	if !validDependencyType(d.Type) {
		return &ValidationError{Record: "dependency", Field: "type", Reason: "must be one of runtime, dev, optional, peer, build"}
	}
	if d.Version != "" && !versionPattern.MatchString(d.Version) {
		return &ValidationError{Record: "dependency", Field: "version", Reason: "invalid version format"}
	}
	return nil
}

// FileTree is the nested file_structure representation: each key is a
// directory name mapping to another FileTree, except the "_files" key which
// maps to a []string of file names in that directory.
type FileTree map[string]any

// RepositoryAnalysis aggregates everything extracted from a repository's
// documentation: deduplicated concepts (sorted by importance descending),
// ordered setup steps, code examples, dependencies, and the file tree.
type RepositoryAnalysis struct {
	Concepts      []Concept     `json:"concepts"`
	SetupSteps    []SetupStep   `json:"setup_steps"`
	CodeExamples  []CodeExample `json:"code_examples"`
	FileStructure FileTree      `json:"file_structure"`
	Dependencies  []Dependency  `json:"dependencies"`
}

// Empty returns a RepositoryAnalysis with all collections initialized, used
// when the root path does not exist.
func Empty() *RepositoryAnalysis {
	return &RepositoryAnalysis{
		Concepts:      []Concept{},
		SetupSteps:    []SetupStep{},
		CodeExamples:  []CodeExample{},
		FileStructure: FileTree{},
		Dependencies:  []Dependency{},
	}
}
