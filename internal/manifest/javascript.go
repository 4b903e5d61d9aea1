package manifest

import (
	"encoding/json"
	"log"

	"github.com/docweave/docweave/internal/model"
)

// packageJSON mirrors the dependency sections of package.json.
type packageJSON struct {
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
	OptionalDeps     map[string]string `json:"optionalDependencies"`
}

// parsePackageJSON handles npm's package.json, mapping each section to the
// matching dependency type.
func parsePackageJSON(data []byte, file string) []model.Dependency {
	var doc packageJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("WARNING: could not parse %s: %v", file, err)
		return nil
	}

	var deps []model.Dependency
	deps = append(deps, stringSection(doc.Dependencies, model.Runtime, file)...)
	deps = append(deps, stringSection(doc.DevDependencies, model.Dev, file)...)
	deps = append(deps, stringSection(doc.PeerDependencies, model.Peer, file)...)
	deps = append(deps, stringSection(doc.OptionalDeps, model.Optional, file)...)
	return deps
}

// composerJSON mirrors the dependency sections of composer.json.
type composerJSON struct {
	Require    map[string]string `json:"require"`
	RequireDev map[string]string `json:"require-dev"`
}

// parseComposerJSON handles PHP's composer.json.
func parseComposerJSON(data []byte, file string) []model.Dependency {
	var doc composerJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("WARNING: could not parse %s: %v", file, err)
		return nil
	}

	var deps []model.Dependency
	deps = append(deps, stringSection(doc.Require, model.Runtime, file)...)
	deps = append(deps, stringSection(doc.RequireDev, model.Dev, file)...)
	return deps
}

// stringSection converts a name->version map into dependencies in sorted
// name order.
func stringSection(section map[string]string, typ model.DependencyType, file string) []model.Dependency {
	var deps []model.Dependency
	for _, name := range sortedKeys(section) {
		if dep, ok := newDependency(name, section[name], typ, file); ok {
			deps = append(deps, dep)
		}
	}
	return deps
}
