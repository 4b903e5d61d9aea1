package manifest

import (
	"log"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/docweave/docweave/internal/model"
)

var (
	requirementRe     = regexp.MustCompile(`^([a-zA-Z0-9_\-.]+)\s*([><=!~]+)\s*(.+)$`)
	installRequiresRe = regexp.MustCompile(`(?s)install_requires\s*=\s*\[(.*?)\]`)
	quotedRe          = regexp.MustCompile(`["']([^"']+)["']`)
)

// parseRequirementsTxt handles pip's requirements.txt: one spec per line,
// "#" comments ignored.
func parseRequirementsTxt(data []byte, file string) []model.Dependency {
	var deps []model.Dependency
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if dep, ok := parseRequirementSpec(line, file); ok {
			deps = append(deps, dep)
		}
	}
	return deps
}

// parseSetupPy scrapes the install_requires list from setup.py.
func parseSetupPy(data []byte, file string) []model.Dependency {
	m := installRequiresRe.FindSubmatch(data)
	if m == nil {
		return nil
	}
	var deps []model.Dependency
	for _, q := range quotedRe.FindAllStringSubmatch(string(m[1]), -1) {
		if dep, ok := parseRequirementSpec(q[1], file); ok {
			deps = append(deps, dep)
		}
	}
	return deps
}

// parseRequirementSpec splits a pip-style spec ("requests>=2.28.0") into a
// dependency, keeping the comparator on the version.
func parseRequirementSpec(spec, file string) (model.Dependency, bool) {
	if m := requirementRe.FindStringSubmatch(spec); m != nil {
		return newDependency(m[1], m[2]+strings.TrimSpace(m[3]), model.Runtime, file)
	}
	return newDependency(spec, "", model.Runtime, file)
}

// pyproject mirrors the pyproject.toml sections that can declare
// dependencies.
type pyproject struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
	BuildSystem struct {
		Requires []string `toml:"requires"`
	} `toml:"build-system"`
}

// parsePyprojectToml handles PEP 621 and poetry dependency sections plus
// build-system requirements.
func parsePyprojectToml(data []byte, file string) []model.Dependency {
	var doc pyproject
	if err := toml.Unmarshal(data, &doc); err != nil {
		log.Printf("WARNING: could not parse %s: %v", file, err)
		return nil
	}

	var deps []model.Dependency
	for _, spec := range doc.Project.Dependencies {
		if dep, ok := parseRequirementSpec(spec, file); ok {
			deps = append(deps, dep)
		}
	}
	for _, name := range sortedKeys(doc.Tool.Poetry.Dependencies) {
		if strings.EqualFold(name, "python") {
			continue
		}
		if dep, ok := newDependency(name, versionString(doc.Tool.Poetry.Dependencies[name]), model.Runtime, file); ok {
			deps = append(deps, dep)
		}
	}
	for _, spec := range doc.BuildSystem.Requires {
		if dep, ok := parseRequirementSpec(spec, file); ok {
			dep.Type = model.Build
			deps = append(deps, dep)
		}
	}
	return deps
}

// pipfileDoc mirrors the Pipfile package tables.
type pipfileDoc struct {
	Packages    map[string]any `toml:"packages"`
	DevPackages map[string]any `toml:"dev-packages"`
}

// parsePipfile handles Pipfile's packages and dev-packages tables.
func parsePipfile(data []byte, file string) []model.Dependency {
	var doc pipfileDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		log.Printf("WARNING: could not parse %s: %v", file, err)
		return nil
	}

	var deps []model.Dependency
	deps = append(deps, pipfileSection(doc.Packages, model.Runtime, file)...)
	deps = append(deps, pipfileSection(doc.DevPackages, model.Dev, file)...)
	return deps
}

func pipfileSection(packages map[string]any, typ model.DependencyType, file string) []model.Dependency {
	var deps []model.Dependency
	for _, name := range sortedKeys(packages) {
		v := versionString(packages[name])
		if v == "*" {
			v = ""
		}
		if dep, ok := newDependency(name, v, typ, file); ok {
			deps = append(deps, dep)
		}
	}
	return deps
}

// versionString renders a decoded manifest value ("1.0", {"version": "1.0"})
// as a plain version string.
func versionString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if s, ok := val["version"].(string); ok {
			return s
		}
	}
	return ""
}
