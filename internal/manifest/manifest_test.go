package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docweave/docweave/internal/model"
)

func writeManifest(t *testing.T, root, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
}

func depNames(deps []model.Dependency) []string {
	names := make([]string, 0, len(deps))
	for _, d := range deps {
		names = append(names, d.Name)
	}
	return names
}

func TestAnalyzeEmptyRoot(t *testing.T) {
	deps, err := Analyze(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, deps)
}

func TestRequirementsTxt(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "requirements.txt", `# web stack
requests>=2.28.0
flask==2.0.1

click
`)

	deps, err := Analyze(root)
	require.NoError(t, err)
	require.Len(t, deps, 3)

	assert.Equal(t, "requests", deps[0].Name)
	assert.Equal(t, ">=2.28.0", deps[0].Version)
	assert.Equal(t, model.Runtime, deps[0].Type)

	assert.Equal(t, "flask", deps[1].Name)
	assert.Equal(t, "==2.0.1", deps[1].Version)

	assert.Equal(t, "click", deps[2].Name)
	assert.Empty(t, deps[2].Version)
}

func TestSetupPy(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "setup.py", `from setuptools import setup

setup(
    name="demo",
    install_requires=[
        "requests>=2.28.0",
        "pyyaml",
    ],
)
`)

	deps, err := Analyze(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"requests", "pyyaml"}, depNames(deps))
	assert.Equal(t, ">=2.28.0", deps[0].Version)
}

func TestPyprojectToml(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "pyproject.toml", `[project]
dependencies = ["httpx>=0.24"]

[build-system]
requires = ["setuptools>=61"]

[tool.poetry.dependencies]
python = "^3.10"
requests = "^2.28"
`)

	deps, err := Analyze(root)
	require.NoError(t, err)
	require.Len(t, deps, 3)

	assert.Equal(t, "httpx", deps[0].Name)
	assert.Equal(t, model.Runtime, deps[0].Type)

	assert.Equal(t, "requests", deps[1].Name)
	assert.Equal(t, "^2.28", deps[1].Version)
	assert.NotContains(t, depNames(deps), "python")

	assert.Equal(t, "setuptools", deps[2].Name)
	assert.Equal(t, model.Build, deps[2].Type)
}

func TestPipfile(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "Pipfile", `[packages]
requests = "*"
flask = "2.0.1"

[dev-packages]
pytest = "7.1.0"
`)

	deps, err := Analyze(root)
	require.NoError(t, err)
	require.Len(t, deps, 3)

	assert.Equal(t, "flask", deps[0].Name)
	assert.Equal(t, "2.0.1", deps[0].Version)

	assert.Equal(t, "requests", deps[1].Name)
	assert.Empty(t, deps[1].Version)

	assert.Equal(t, "pytest", deps[2].Name)
	assert.Equal(t, model.Dev, deps[2].Type)
}

func TestPackageJSON(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "package.json", `{
  "dependencies": {"express": "^4.18.2"},
  "devDependencies": {"jest": "^29.0.0"},
  "peerDependencies": {"react": ">=17"},
  "optionalDependencies": {"fsevents": "2.3.2"}
}`)

	deps, err := Analyze(root)
	require.NoError(t, err)
	require.Len(t, deps, 4)

	assert.Equal(t, "express", deps[0].Name)
	assert.Equal(t, "^4.18.2", deps[0].Version)
	assert.Equal(t, model.Runtime, deps[0].Type)
	assert.Equal(t, model.Dev, deps[1].Type)
	assert.Equal(t, model.Peer, deps[2].Type)
	assert.Equal(t, model.Optional, deps[3].Type)
}

func TestGemfile(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "Gemfile", `source "https://rubygems.org"

gem 'rails', '7.0.4'
gem "puma"
`)

	deps, err := Analyze(root)
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.Equal(t, "rails", deps[0].Name)
	assert.Equal(t, "7.0.4", deps[0].Version)
	assert.Equal(t, "puma", deps[1].Name)
	assert.Empty(t, deps[1].Version)
}

func TestCargoToml(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "Cargo.toml", `[package]
name = "demo"

[dependencies]
serde = "1.0"
tokio = { version = "1.28", features = ["full"] }

[dev-dependencies]
criterion = "0.5"
`)

	deps, err := Analyze(root)
	require.NoError(t, err)
	require.Len(t, deps, 3)

	assert.Equal(t, "serde", deps[0].Name)
	assert.Equal(t, "1.0", deps[0].Version)
	assert.Equal(t, "tokio", deps[1].Name)
	assert.Equal(t, "1.28", deps[1].Version)
	assert.Equal(t, "criterion", deps[2].Name)
	assert.Equal(t, model.Dev, deps[2].Type)
}

func TestGoMod(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "go.mod", `module example.com/demo

go 1.22

require (
	github.com/stretchr/testify v1.8.0
	golang.org/x/sys v0.1.0 // indirect
)

require gopkg.in/yaml.v3 v3.0.1
`)

	deps, err := Analyze(root)
	require.NoError(t, err)
	require.Len(t, deps, 3)

	assert.Equal(t, "github.com/stretchr/testify", deps[0].Name)
	assert.Equal(t, "v1.8.0", deps[0].Version)
	assert.Equal(t, model.Runtime, deps[0].Type)

	assert.Equal(t, "golang.org/x/sys", deps[1].Name)
	assert.Equal(t, model.Build, deps[1].Type)

	assert.Equal(t, "gopkg.in/yaml.v3", deps[2].Name)
}

func TestComposerJSON(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "composer.json", `{
  "require": {"monolog/monolog": "2.8.0"},
  "require-dev": {"phpunit/phpunit": "9.5.0"}
}`)

	deps, err := Analyze(root)
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.Equal(t, "monolog/monolog", deps[0].Name)
	assert.Equal(t, model.Runtime, deps[0].Type)
	assert.Equal(t, "phpunit/phpunit", deps[1].Name)
	assert.Equal(t, model.Dev, deps[1].Type)
}

func TestCondaEnvironment(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "environment.yml", `name: demo
dependencies:
  - numpy=1.24
  - pandas==2.0.1
  - pip:
      - requests
`)

	deps, err := Analyze(root)
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.Equal(t, "numpy", deps[0].Name)
	assert.Equal(t, "1.24", deps[0].Version)
	assert.Equal(t, "pandas", deps[1].Name)
	assert.Equal(t, "2.0.1", deps[1].Version)
}

func TestPubspecYaml(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "pubspec.yaml", `name: demo
dependencies:
  http: ^0.13.5
dev_dependencies:
  test: ^1.21.0
`)

	deps, err := Analyze(root)
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.Equal(t, "http", deps[0].Name)
	assert.Equal(t, "^0.13.5", deps[0].Version)
	assert.Equal(t, "test", deps[1].Name)
	assert.Equal(t, model.Dev, deps[1].Type)
}

func TestRangeConstraintMovedToDescription(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "package.json", `{"dependencies": {"lodash": ">=4.0, <5.0"}}`)

	deps, err := Analyze(root)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Empty(t, deps[0].Version)
	assert.Contains(t, deps[0].Description, "constraint >=4.0, <5.0")
}

func TestMalformedManifestSkipped(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "package.json", `{not json`)
	writeManifest(t, root, "requirements.txt", "requests>=2.28.0\n")

	deps, err := Analyze(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"requests"}, depNames(deps))
}

func TestIsRange(t *testing.T) {
	assert.True(t, IsRange("^1.0.0"))
	assert.True(t, IsRange(">=1.0, <2.0"))
	assert.False(t, IsRange(""))
	assert.False(t, IsRange("latest"))
	assert.False(t, IsRange("1.2.3"))
}

func TestExactVersion(t *testing.T) {
	v, ok := ExactVersion("v1.8.0")
	require.True(t, ok)
	assert.Equal(t, "1.8.0", v.String())

	_, ok = ExactVersion("not a version")
	assert.False(t, ok)
}
