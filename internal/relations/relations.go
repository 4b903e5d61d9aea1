// Package relations builds the cross-file relationship report for a
// repository: the file-dependency graph, concept-relationship graph, content
// hierarchy, cross-reference index, and prerequisite chains. It operates on
// the full {path: content} map, never on single files.
package relations

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/docweave/docweave/internal/extract"
	"github.com/docweave/docweave/internal/markdown"
	"github.com/docweave/docweave/internal/model"
)

// Config controls the engine.
type Config struct {
	Concurrency int // parallel per-file outline pre-pass; defaults to 4
	// MinResolveLen is the minimum length a humanized file stem or concept
	// name needs before it can resolve a prerequisite. Guards against
	// false positives on short common words.
	MinResolveLen int
}

// DefaultConfig returns sensible engine defaults.
func DefaultConfig() Config {
	return Config{
		Concurrency:   4,
		MinResolveLen: 3,
	}
}

// Report is the full relationship analysis for one repository.
type Report struct {
	FileDependencies     map[string][]string         `json:"file_dependencies"`
	ConceptRelationships map[string]ConceptLinks     `json:"concept_relationships"`
	ContentHierarchy     map[string]FileOutline      `json:"content_hierarchy"`
	CrossReferences      map[string][]CrossReference `json:"cross_references"`
	PrerequisiteChains   map[string][]string         `json:"prerequisite_chains"`
}

// ConceptLinks describes how one concept relates to the rest of the
// repository.
type ConceptLinks struct {
	MentionsInOtherFiles []string `json:"mentions_in_other_files"`
	RelatedConcepts      []string `json:"related_concepts"`
	PrerequisiteFor      []string `json:"prerequisite_for"`
	DependsOn            []string `json:"depends_on"`
}

// FileOutline annotates one file's heading structure with classification
// flags and an importance score.
type FileOutline struct {
	Headings        []HeadingInfo `json:"headings"`
	Importance      int           `json:"importance"`
	WordCount       int           `json:"word_count"`
	HasCodeExamples bool          `json:"has_code_examples"`
}

// HeadingInfo is one heading in a file's outline.
type HeadingInfo struct {
	Level     int    `json:"level"`
	Title     string `json:"title"`
	IsConcept bool   `json:"is_concept"`
	IsSetup   bool   `json:"is_setup"`
}

// CrossReference is a detected link or textual pointer from one document.
type CrossReference struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	Target  string `json:"target"`
	Context string `json:"context"`
}

// fileInfo caches everything the sequential passes need about one file, so
// each file is parsed exactly once.
type fileInfo struct {
	path     string
	content  string
	lower    string
	outline  *markdown.Outline
	links    []markdown.Link
	refs     []markdown.Reference
	codeNum  int
	concepts []model.Concept
}

// Analyze runs all relationship passes over the content map. The per-file
// pre-pass runs concurrently; the cross-file passes run sequentially over a
// sorted path order so results are deterministic.
func Analyze(ctx context.Context, contents map[string]string, cfg Config) (*Report, error) {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}

	paths := sortedPaths(contents)
	infos, err := buildFileInfos(ctx, paths, contents, cfg.Concurrency)
	if err != nil {
		return nil, err
	}

	report := &Report{
		FileDependencies:     fileDependencies(infos),
		ConceptRelationships: conceptRelationships(infos),
		ContentHierarchy:     contentHierarchy(infos),
		CrossReferences:      crossReferences(infos),
		PrerequisiteChains:   prerequisiteChains(infos, cfg.MinResolveLen),
	}
	return report, nil
}

// buildFileInfos parses every file concurrently. Results come back in the
// given path order regardless of completion order.
func buildFileInfos(ctx context.Context, paths []string, contents map[string]string, concurrency int) ([]*fileInfo, error) {
	infos := make([]*fileInfo, len(paths))
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(concurrency)
	for i, path := range paths {
		i, path := i, path
		p.Go(func() {
			if ctx.Err() != nil {
				return
			}
			info := parseFile(path, contents[path])
			mu.Lock()
			infos[i] = info
			mu.Unlock()
		})
	}
	p.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return infos, nil
}

// parseFile runs all single-file parsing once.
func parseFile(path, content string) *fileInfo {
	return &fileInfo{
		path:     path,
		content:  content,
		lower:    lowered(content),
		outline:  markdown.ParseOutline(content),
		links:    markdown.Links(content),
		refs:     markdown.References(content),
		codeNum:  len(markdown.CodeBlocks(content)),
		concepts: extract.Concepts(content, path),
	}
}

func lowered(s string) string {
	return strings.ToLower(s)
}

func sortedPaths(contents map[string]string) []string {
	paths := make([]string, 0, len(contents))
	for p := range contents {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
