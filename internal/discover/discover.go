// Package discover walks a repository root and yields its Markdown files.
package discover

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSkipDirs are directory names excluded from every walk: VCS
// metadata, dependency caches, and tool caches.
func DefaultSkipDirs() map[string]bool {
	return map[string]bool{
		".git":          true,
		".hg":           true,
		".svn":          true,
		"node_modules":  true,
		"vendor":        true,
		"__pycache__":   true,
		".pytest_cache": true,
		"build":         true,
		"dist":          true,
	}
}

// MarkdownExtensions are the file extensions treated as Markdown.
var MarkdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
	".mkd":      true,
}

// Markdown returns the slash-separated paths, relative to root, of every
// Markdown file under root in lexical walk order. Directories in skipDirs
// are pruned. Symlinked directories are not followed, so link cycles cannot
// recurse. A non-existent root logs a warning and returns an empty result
// rather than an error.
func Markdown(root string, skipDirs map[string]bool) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		log.Printf("WARNING: repository path does not exist: %s", root)
		return nil, nil
	}
	if skipDirs == nil {
		skipDirs = DefaultSkipDirs()
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("WARNING: skipping path %q: %v", path, err)
			return nil
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsMarkdown(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	return paths, err
}

// IsMarkdown reports whether name has a Markdown extension,
// case-insensitively.
func IsMarkdown(name string) bool {
	return MarkdownExtensions[strings.ToLower(filepath.Ext(name))]
}

// FileTreeEntry pairs a directory's relative path with the file names inside
// it, used to assemble the nested file_structure.
type FileTreeEntry struct {
	Dir   string // slash-separated, "." for root
	Files []string
}

// Tree walks root and returns one entry per directory that contains files,
// pruning skipDirs. Entries come back in lexical walk order.
func Tree(root string, skipDirs map[string]bool) ([]FileTreeEntry, error) {
	if skipDirs == nil {
		skipDirs = DefaultSkipDirs()
	}

	byDir := make(map[string][]string)
	var order []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("WARNING: skipping path %q: %v", path, err)
			return nil
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil {
			return err
		}
		dir := filepath.ToSlash(rel)
		if _, ok := byDir[dir]; !ok {
			order = append(order, dir)
		}
		byDir[dir] = append(byDir[dir], d.Name())
		return nil
	})
	if err != nil {
		return nil, err
	}

	entries := make([]FileTreeEntry, 0, len(order))
	for _, dir := range order {
		entries = append(entries, FileTreeEntry{Dir: dir, Files: byDir[dir]})
	}
	return entries, nil
}
