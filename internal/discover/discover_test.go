package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("# Title\n"), 0o644))
}

func TestMarkdownFindsAllExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README.md")
	writeFile(t, root, "docs/guide.markdown")
	writeFile(t, root, "docs/old.mdown")
	writeFile(t, root, "notes.mkd")
	writeFile(t, root, "main.go")

	paths, err := Markdown(root, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"README.md",
		"docs/guide.markdown",
		"docs/old.mdown",
		"notes.mkd",
	}, paths)
}

func TestMarkdownSkipsDefaultDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README.md")
	writeFile(t, root, "node_modules/pkg/README.md")
	writeFile(t, root, ".git/info.md")
	writeFile(t, root, "vendor/lib/doc.md")

	paths, err := Markdown(root, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"README.md"}, paths)
}

func TestMarkdownCustomSkipDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "keep/doc.md")
	writeFile(t, root, "drop/doc.md")

	paths, err := Markdown(root, map[string]bool{"drop": true})
	require.NoError(t, err)

	assert.Equal(t, []string{"keep/doc.md"}, paths)
}

func TestMarkdownMissingRoot(t *testing.T) {
	paths, err := Markdown(filepath.Join(t.TempDir(), "nope"), nil)

	assert.NoError(t, err)
	assert.Empty(t, paths)
}

func TestMarkdownPathsAreRelativeAndSlashed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/b/c.md")

	paths, err := Markdown(root, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a/b/c.md"}, paths)
}

func TestIsMarkdown(t *testing.T) {
	assert.True(t, IsMarkdown("README.md"))
	assert.True(t, IsMarkdown("README.MD"))
	assert.True(t, IsMarkdown("guide.markdown"))
	assert.False(t, IsMarkdown("main.go"))
	assert.False(t, IsMarkdown("Makefile"))
}

func TestTreeGroupsFilesByDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README.md")
	writeFile(t, root, "main.go")
	writeFile(t, root, "docs/guide.md")
	writeFile(t, root, "node_modules/pkg/index.js")

	entries, err := Tree(root, nil)
	require.NoError(t, err)

	byDir := make(map[string][]string)
	for _, e := range entries {
		byDir[e.Dir] = e.Files
	}
	assert.ElementsMatch(t, []string{"README.md", "main.go"}, byDir["."])
	assert.Equal(t, []string{"guide.md"}, byDir["docs"])
	assert.NotContains(t, byDir, "node_modules/pkg")
}
