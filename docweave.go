// Package docweave analyzes a repository's Markdown documentation and turns
// it into a typed, deduplicated, cross-referenced model: concepts, setup
// steps, code examples and dependencies, plus a relationship report linking
// files and concepts to each other. The engine is read-only on the
// filesystem and performs no network I/O.
package docweave

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/docweave/docweave/internal/cache"
	"github.com/docweave/docweave/internal/discover"
	"github.com/docweave/docweave/internal/extract"
	"github.com/docweave/docweave/internal/manifest"
	"github.com/docweave/docweave/internal/merge"
	"github.com/docweave/docweave/internal/model"
	"github.com/docweave/docweave/internal/output"
	"github.com/docweave/docweave/internal/relations"
)

// relationshipsAnalysis is the analysis type tag used in cache keys.
const relationshipsAnalysis = "relationships"

// SourceReader abstracts file reading for testability.
type SourceReader interface {
	ReadFile(path string) ([]byte, error)
}

// osReader reads files from the real filesystem.
type osReader struct{}

func (osReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Config controls an Analyzer. The zero value is usable; unset fields take
// defaults.
type Config struct {
	// SkipDirs are directory names pruned during discovery. Nil means
	// discover.DefaultSkipDirs.
	SkipDirs map[string]bool
	// Concurrency bounds the parallel per-file extraction stage.
	Concurrency int
	// MinResolveLen is the minimum humanized-stem or concept-name length
	// for prerequisite-chain resolution.
	MinResolveLen int
}

// DefaultConfig returns the stock analyzer configuration.
func DefaultConfig() Config {
	return Config{
		Concurrency:   4,
		MinResolveLen: relations.DefaultConfig().MinResolveLen,
	}
}

// Analyzer is the public entry point. It is safe for concurrent use; the
// relationship cache is shared across calls and serialized internally.
type Analyzer struct {
	cfg    Config
	reader SourceReader
	cache  *cache.Cache
}

// New builds an Analyzer with the default filesystem reader and an in-memory
// relationship cache.
func New(cfg Config) *Analyzer {
	return NewWith(cfg, osReader{}, nil)
}

// NewWith builds an Analyzer with an injected reader and cache store, used
// by callers that need read counting or per-test cache isolation. A nil
// store gets a fresh in-memory store.
func NewWith(cfg Config, reader SourceReader, store cache.Store) *Analyzer {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConfig().Concurrency
	}
	if cfg.MinResolveLen <= 0 {
		cfg.MinResolveLen = DefaultConfig().MinResolveLen
	}
	if reader == nil {
		reader = osReader{}
	}
	return &Analyzer{cfg: cfg, reader: reader, cache: cache.New(store)}
}

// fileExtraction is one file's extraction output, kept per file so the
// parallel map can reduce deterministically afterwards.
type fileExtraction struct {
	concepts []model.Concept
	steps    []model.SetupStep
	examples []model.CodeExample
	deps     []model.Dependency
}

// AnalyzeRepository walks root, extracts structured records from every
// Markdown file, deduplicates them, and assembles the aggregate analysis. A
// non-existent root yields an empty analysis, not an error; unreadable files
// are logged and skipped.
func (a *Analyzer) AnalyzeRepository(ctx context.Context, root string) (*model.RepositoryAnalysis, error) {
	paths, err := discover.Markdown(root, a.cfg.SkipDirs)
	if err != nil {
		return nil, fmt.Errorf("discover markdown files: %w", err)
	}
	if len(paths) == 0 {
		if _, statErr := os.Stat(root); statErr != nil {
			return model.Empty(), nil
		}
	}

	extractions, err := a.extractAll(ctx, root, paths)
	if err != nil {
		return nil, err
	}

	// Reduce in discovery order. Step orders are rebased so steps across
	// files interleave by discovery order.
	var (
		concepts []model.Concept
		steps    []model.SetupStep
		examples []model.CodeExample
		deps     []model.Dependency
	)
	for _, ex := range extractions {
		if ex == nil {
			continue
		}
		concepts = append(concepts, ex.concepts...)
		offset := len(steps)
		for _, s := range ex.steps {
			s.Order += offset
			steps = append(steps, s)
		}
		examples = append(examples, ex.examples...)
		deps = append(deps, ex.deps...)
	}

	tree, err := a.fileStructure(root)
	if err != nil {
		log.Printf("WARNING: could not build file structure for %s: %v", root, err)
		tree = model.FileTree{}
	}

	return &model.RepositoryAnalysis{
		Concepts:      merge.Concepts(concepts),
		SetupSteps:    merge.OrderSteps(steps),
		CodeExamples:  examples,
		FileStructure: tree,
		Dependencies:  merge.Dependencies(deps),
	}, nil
}

// extractAll runs the per-file extractors concurrently. Results are indexed
// by discovery position so the reduce stage stays deterministic.
func (a *Analyzer) extractAll(ctx context.Context, root string, paths []string) ([]*fileExtraction, error) {
	extractions := make([]*fileExtraction, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Concurrency)
	for i, rel := range paths {
		i, rel := i, rel
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := a.reader.ReadFile(filepath.Join(root, rel))
			if err != nil {
				log.Printf("WARNING: could not read file %s: %v", rel, err)
				return nil
			}
			content := string(data)
			extractions[i] = &fileExtraction{
				concepts: extract.Concepts(content, rel),
				steps:    extract.SetupSteps(content, rel, 0),
				examples: extract.CodeExamples(content, rel),
				deps:     extract.Dependencies(content, rel),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return extractions, nil
}

// AnalyzeContentRelationships builds (or returns the cached) relationship
// report for root. On a clean cache hit no file is re-read or re-parsed.
func (a *Analyzer) AnalyzeContentRelationships(ctx context.Context, root string) (*relations.Report, error) {
	paths, err := discover.Markdown(root, a.cfg.SkipDirs)

	key := cache.Key(relationshipsAnalysis, root, paths)
	if err != nil {
		log.Printf("WARNING: error computing cache key for %s: %v", root, err)
		key = cache.FallbackKey(relationshipsAnalysis, root)
	}

	report, hit, err := a.cache.GetOrCompute(key, func() (*relations.Report, error) {
		contents := a.readAll(root, paths)
		return relations.Analyze(ctx, contents, relations.Config{
			Concurrency:   a.cfg.Concurrency,
			MinResolveLen: a.cfg.MinResolveLen,
		})
	})
	if err != nil {
		return nil, err
	}
	if hit {
		log.Printf("using cached relationship analysis for %s", root)
	}
	return report, nil
}

// readAll builds the {path: content} map, skipping unreadable files.
func (a *Analyzer) readAll(root string, paths []string) map[string]string {
	contents := make(map[string]string, len(paths))
	for _, rel := range paths {
		data, err := a.reader.ReadFile(filepath.Join(root, rel))
		if err != nil {
			log.Printf("WARNING: could not read file %s: %v", rel, err)
			continue
		}
		contents[rel] = string(data)
	}
	return contents
}

// AnalyzeDependencyFiles extracts dependencies from well-known manifest
// files at root (requirements.txt, package.json, go.mod, ...) and returns
// them deduplicated.
func (a *Analyzer) AnalyzeDependencyFiles(root string) ([]model.Dependency, error) {
	deps, err := manifest.Analyze(root)
	if err != nil {
		return nil, fmt.Errorf("analyze dependency files: %w", err)
	}
	return merge.Dependencies(deps), nil
}

// ClearCache drops every cached relationship report.
func (a *Analyzer) ClearCache() {
	a.cache.Clear()
	log.Printf("cleared content analysis cache")
}

// CacheStats reports cache usage.
type CacheStats struct {
	RelationshipEntries int `json:"relationship_cache_size"`
}

// Stats returns current cache statistics.
func (a *Analyzer) Stats() CacheStats {
	return CacheStats{RelationshipEntries: a.cache.Len()}
}

// FormatJSON renders an analysis as indented JSON, preserving the snake_case
// field names downstream tooling depends on.
func FormatJSON(analysis *model.RepositoryAnalysis) ([]byte, error) {
	return output.NewJSONFormatter().Format(analysis)
}

// FormatMarkdown renders an analysis as a human-readable Markdown digest.
func FormatMarkdown(analysis *model.RepositoryAnalysis) ([]byte, error) {
	return output.NewMarkdownFormatter().Format(analysis)
}

// fileStructure renders the repository tree as nested maps with "_files"
// leaves.
func (a *Analyzer) fileStructure(root string) (model.FileTree, error) {
	entries, err := discover.Tree(root, a.cfg.SkipDirs)
	if err != nil {
		return nil, err
	}

	structure := model.FileTree{}
	for _, entry := range entries {
		node := structure
		if entry.Dir != "." {
			for _, part := range strings.Split(entry.Dir, "/") {
				child, ok := node[part].(model.FileTree)
				if !ok {
					child = model.FileTree{}
					node[part] = child
				}
				node = child
			}
		}
		node["_files"] = entry.Files
	}
	return structure, nil
}
