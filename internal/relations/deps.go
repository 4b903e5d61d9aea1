package relations

import (
	"path"
	"sort"
	"strings"
)

// fileDependencies maps each file to the other files it references, either
// by mentioning their name literally or by linking to them. Self-references
// are excluded.
func fileDependencies(infos []*fileInfo) map[string][]string {
	byPath := make(map[string]*fileInfo, len(infos))
	for _, info := range infos {
		byPath[info.path] = info
	}

	deps := make(map[string][]string, len(infos))
	for _, info := range infos {
		found := make(map[string]struct{})

		for _, other := range infos {
			if other.path == info.path {
				continue
			}
			name := strings.ToLower(path.Base(other.path))
			if strings.Contains(info.lower, name) {
				found[other.path] = struct{}{}
			}
			if strings.Contains(info.content, other.path) {
				found[other.path] = struct{}{}
			}
		}

		for _, link := range info.links {
			target, ok := resolveLink(info.path, link.Target, byPath)
			if ok && target != info.path {
				found[target] = struct{}{}
			}
		}

		deps[info.path] = sortedKeys(found)
	}
	return deps
}

// resolveLink normalizes a Markdown link target against the linking file's
// directory and reports whether it lands on a known file.
func resolveLink(from, target string, byPath map[string]*fileInfo) (string, bool) {
	if !strings.HasSuffix(target, ".md") && !strings.HasSuffix(target, ".markdown") {
		return "", false
	}
	var resolved string
	if strings.HasPrefix(target, "/") {
		resolved = strings.TrimPrefix(target, "/")
	} else {
		resolved = path.Join(path.Dir(from), target)
	}
	if _, ok := byPath[resolved]; ok {
		return resolved, true
	}
	return "", false
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
