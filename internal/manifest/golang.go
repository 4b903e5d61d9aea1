package manifest

import (
	"strings"

	"github.com/docweave/docweave/internal/model"
)

// parseGoMod handles go.mod require blocks and single-line requires.
// Modules marked "// indirect" are build-type dependencies.
func parseGoMod(data []byte, file string) []model.Dependency {
	var deps []model.Dependency
	inRequire := false
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "require (":
			inRequire = true
			continue
		case line == ")" && inRequire:
			inRequire = false
			continue
		case !inRequire && !strings.HasPrefix(line, "require "):
			continue
		}

		line = strings.TrimPrefix(line, "require ")
		indirect := strings.Contains(line, "// indirect")
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		typ := model.Runtime
		if indirect {
			typ = model.Build
		}
		version := fields[1]
		if _, ok := ExactVersion(version); !ok {
			// Pseudo-versions and malformed entries still record the module.
			version = strings.TrimSpace(version)
		}
		if dep, ok := newDependency(fields[0], version, typ, file); ok {
			deps = append(deps, dep)
		}
	}
	return deps
}
