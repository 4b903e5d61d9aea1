package extract

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/docweave/docweave/internal/model"
)

// installerPatterns is the ordered table of (installer-command pattern,
// dependency type) pairs applied against raw documentation text.
var installerPatterns = []struct {
	re  *regexp.Regexp
	typ model.DependencyType
}{
	{regexp.MustCompile(`(?i)pip install\s+([^\s\n]+)`), model.Runtime},
	{regexp.MustCompile(`(?i)npm install\s+([^\s\n]+)`), model.Runtime},
	{regexp.MustCompile(`(?i)yarn add\s+([^\s\n]+)`), model.Runtime},
	{regexp.MustCompile(`(?i)gem install\s+([^\s\n]+)`), model.Runtime},
	{regexp.MustCompile(`(?i)apt-get install\s+([^\s\n]+)`), model.Runtime},
	{regexp.MustCompile(`(?i)brew install\s+([^\s\n]+)`), model.Runtime},
}

// comparators that separate a package name from its version constraint. The
// comparator is preserved in the version string.
var comparators = []string{"==", ">=", "<="}

// Dependencies extracts dependencies from installer commands mentioned in
// content. Flag arguments (e.g. the "-r" in "pip install -r file") are not
// packages and are skipped.
func Dependencies(content, filePath string) []model.Dependency {
	var deps []model.Dependency
	for _, p := range installerPatterns {
		for _, m := range p.re.FindAllStringSubmatch(content, -1) {
			spec := strings.TrimSpace(m[1])
			if spec == "" || strings.HasPrefix(spec, "-") {
				continue
			}
			name, version := SplitVersion(spec)
			dep, err := model.NewDependency(name, version, p.typ,
				fmt.Sprintf("Dependency found in %s", filePath))
			if err != nil {
				log.Printf("WARNING: dropping dependency from %s: %v", filePath, err)
				continue
			}
			deps = append(deps, dep)
		}
	}
	return deps
}

// SplitVersion splits a package spec like "requests==2.28.0" into its name
// and version, keeping the comparator on the version ("==2.28.0").
func SplitVersion(spec string) (name, version string) {
	cut := -1
	for _, cmp := range comparators {
		if idx := strings.Index(spec, cmp); idx >= 0 && (cut < 0 || idx < cut) {
			cut = idx
		}
	}
	if cut < 0 {
		return spec, ""
	}
	return spec[:cut], spec[cut:]
}
