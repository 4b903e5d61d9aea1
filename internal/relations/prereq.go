package relations

import (
	"path"
	"strings"

	"github.com/docweave/docweave/internal/extract"
)

// prerequisiteChains resolves each file's stated prerequisites to other
// files (by humanized file stem) or to concepts defined elsewhere. A
// prerequisite resolves to at most one file and one concept; unresolved
// prerequisites are dropped.
func prerequisiteChains(infos []*fileInfo, minResolveLen int) map[string][]string {
	if minResolveLen <= 0 {
		minResolveLen = DefaultConfig().MinResolveLen
	}

	chains := make(map[string][]string, len(infos))
	for _, info := range infos {
		chain := []string{}
		for _, prereq := range extract.Prerequisites(info.content) {
			lowerPrereq := strings.ToLower(prereq)

			if file, ok := resolveToFile(info, infos, lowerPrereq, minResolveLen); ok {
				chain = append(chain, file)
			}
			if concept, ok := resolveToConcept(info, infos, lowerPrereq, minResolveLen); ok {
				chain = append(chain, "concept:"+concept)
			}
		}
		chains[info.path] = chain
	}
	return chains
}

// resolveToFile matches the prerequisite text against the humanized stem of
// every other file and returns the first hit.
func resolveToFile(info *fileInfo, infos []*fileInfo, lowerPrereq string, minLen int) (string, bool) {
	for _, other := range infos {
		if other.path == info.path {
			continue
		}
		stem := humanizeStem(other.path)
		if len(stem) >= minLen && containsWord(lowerPrereq, stem) {
			return other.path, true
		}
	}
	return "", false
}

// resolveToConcept matches the prerequisite text against concepts defined in
// other files and returns the first hit.
func resolveToConcept(info *fileInfo, infos []*fileInfo, lowerPrereq string, minLen int) (string, bool) {
	for _, other := range infos {
		if other.path == info.path {
			continue
		}
		for _, c := range other.concepts {
			name := strings.ToLower(c.Name)
			if len(name) >= minLen && containsWord(lowerPrereq, name) {
				return c.Name, true
			}
		}
	}
	return "", false
}

// humanizeStem turns "docs/getting_started.md" into "getting started".
func humanizeStem(p string) string {
	stem := strings.TrimSuffix(path.Base(p), path.Ext(p))
	stem = strings.ReplaceAll(stem, "_", " ")
	stem = strings.ReplaceAll(stem, "-", " ")
	return strings.ToLower(stem)
}

// containsWord reports whether needle occurs in haystack on word boundaries.
// Boundary-checking keeps short stems like "api" from matching inside
// unrelated words ("rapid").
func containsWord(haystack, needle string) bool {
	for start := 0; ; {
		idx := strings.Index(haystack[start:], needle)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(needle)
		leftOK := idx == 0 || !isWordByte(haystack[idx-1])
		rightOK := end == len(haystack) || !isWordByte(haystack[end])
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}
