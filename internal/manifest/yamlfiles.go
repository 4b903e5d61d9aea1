package manifest

import (
	"log"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/docweave/docweave/internal/model"
)

// condaEnv mirrors a conda environment.yml. Dependencies are usually
// "name=version" strings; pip sub-lists appear as nested maps.
type condaEnv struct {
	Dependencies []any `yaml:"dependencies"`
}

// parseCondaEnv handles conda's environment.yml.
func parseCondaEnv(data []byte, file string) []model.Dependency {
	var doc condaEnv
	if err := yaml.Unmarshal(data, &doc); err != nil {
		log.Printf("WARNING: could not parse %s: %v", file, err)
		return nil
	}

	var deps []model.Dependency
	for _, entry := range doc.Dependencies {
		spec, ok := entry.(string)
		if !ok {
			continue // nested pip sections are out of scope
		}
		name, version := splitCondaSpec(spec)
		if dep, ok := newDependency(name, version, model.Runtime, file); ok {
			deps = append(deps, dep)
		}
	}
	return deps
}

// splitCondaSpec splits "numpy=1.24" or "numpy==1.24.0" into name and
// version.
func splitCondaSpec(spec string) (name, version string) {
	if idx := strings.Index(spec, "="); idx >= 0 {
		return spec[:idx], strings.TrimLeft(spec[idx:], "=")
	}
	return spec, ""
}

// pubspec mirrors the dependency sections of Dart's pubspec.yaml. Values may
// be version strings or nested source maps.
type pubspec struct {
	Dependencies    map[string]any `yaml:"dependencies"`
	DevDependencies map[string]any `yaml:"dev_dependencies"`
}

// parsePubspec handles Dart's pubspec.yaml.
func parsePubspec(data []byte, file string) []model.Dependency {
	var doc pubspec
	if err := yaml.Unmarshal(data, &doc); err != nil {
		log.Printf("WARNING: could not parse %s: %v", file, err)
		return nil
	}

	var deps []model.Dependency
	deps = append(deps, anySection(doc.Dependencies, model.Runtime, file)...)
	deps = append(deps, anySection(doc.DevDependencies, model.Dev, file)...)
	return deps
}
