// Package manifest extracts typed dependencies from well-known dependency
// files at a repository root: requirements.txt, setup.py, pyproject.toml,
// Pipfile, package.json, Gemfile, Cargo.toml, go.mod, composer.json,
// environment.yml and pubspec.yaml. Unreadable or malformed files are logged
// and skipped; the analysis never fails because one manifest is broken.
package manifest

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/docweave/docweave/internal/model"
)

// parser reads one manifest file format.
type parser struct {
	file  string
	parse func(data []byte, file string) []model.Dependency
}

// parsers is the ordered table of supported manifest files.
var parsers = []parser{
	{"requirements.txt", parseRequirementsTxt},
	{"setup.py", parseSetupPy},
	{"pyproject.toml", parsePyprojectToml},
	{"Pipfile", parsePipfile},
	{"package.json", parsePackageJSON},
	{"Gemfile", parseGemfile},
	{"Cargo.toml", parseCargoToml},
	{"go.mod", parseGoMod},
	{"composer.json", parseComposerJSON},
	{"environment.yml", parseCondaEnv},
	{"pubspec.yaml", parsePubspec},
}

// Analyze inspects every known dependency file under root and returns the
// typed dependencies found. Missing files are not an error.
func Analyze(root string) ([]model.Dependency, error) {
	var deps []model.Dependency
	for _, p := range parsers {
		path := filepath.Join(root, p.file)
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Printf("WARNING: could not read %s: %v", path, err)
			}
			continue
		}
		deps = append(deps, p.parse(data, p.file)...)
	}
	return deps, nil
}

// IsRange reports whether a version string is a SemVer range constraint
// ("^1.0.0", ">=1.0, <2.0") rather than an exact version.
func IsRange(version string) bool {
	if version == "" || version == "latest" {
		return false
	}
	if !strings.ContainsAny(version, "^~><!=, *") {
		return false
	}
	_, err := semver.NewConstraint(version)
	return err == nil
}

// ExactVersion parses an exact version string, tolerating a leading "v".
func ExactVersion(version string) (*semver.Version, bool) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return nil, false
	}
	return v, true
}

// sortedKeys returns a map's keys in sorted order so manifest output is
// deterministic run to run.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// newDependency builds a validated dependency. Versions that would fail
// record validation (range constraints with spaces or commas) are moved into
// the description so the dependency itself survives.
func newDependency(name, version string, typ model.DependencyType, file string) (model.Dependency, bool) {
	desc := fmt.Sprintf("Dependency from %s", file)
	if version != "" && !model.ValidVersion(version) {
		if IsRange(version) {
			desc = fmt.Sprintf("%s (constraint %s)", desc, version)
		}
		version = ""
	}

	dep, err := model.NewDependency(strings.TrimSpace(name), version, typ, desc)
	if err != nil {
		log.Printf("WARNING: dropping dependency from %s: %v", file, err)
		return model.Dependency{}, false
	}
	return dep, true
}
