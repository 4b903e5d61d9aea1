package manifest

import (
	"regexp"
	"strings"

	"github.com/docweave/docweave/internal/model"
)

var gemLineRe = regexp.MustCompile(`^gem\s+['"]([^'"]+)['"](?:\s*,\s*['"]([^'"]+)['"])?`)

// parseGemfile handles Ruby Gemfiles line by line.
func parseGemfile(data []byte, file string) []model.Dependency {
	var deps []model.Dependency
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		m := gemLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if dep, ok := newDependency(m[1], m[2], model.Runtime, file); ok {
			deps = append(deps, dep)
		}
	}
	return deps
}
