package manifest

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/docweave/docweave/internal/model"
)

// cargoToml mirrors the dependency tables of Cargo.toml. Values may be plain
// version strings or inline tables with a "version" key.
type cargoToml struct {
	Dependencies    map[string]any `toml:"dependencies"`
	DevDependencies map[string]any `toml:"dev-dependencies"`
	BuildDeps       map[string]any `toml:"build-dependencies"`
}

// parseCargoToml handles Rust's Cargo.toml.
func parseCargoToml(data []byte, file string) []model.Dependency {
	var doc cargoToml
	if err := toml.Unmarshal(data, &doc); err != nil {
		log.Printf("WARNING: could not parse %s: %v", file, err)
		return nil
	}

	var deps []model.Dependency
	deps = append(deps, anySection(doc.Dependencies, model.Runtime, file)...)
	deps = append(deps, anySection(doc.DevDependencies, model.Dev, file)...)
	deps = append(deps, anySection(doc.BuildDeps, model.Build, file)...)
	return deps
}

// anySection converts a name->value map with mixed value shapes into
// dependencies in sorted name order.
func anySection(section map[string]any, typ model.DependencyType, file string) []model.Dependency {
	var deps []model.Dependency
	for _, name := range sortedKeys(section) {
		if dep, ok := newDependency(name, versionString(section[name]), typ, file); ok {
			deps = append(deps, dep)
		}
	}
	return deps
}
