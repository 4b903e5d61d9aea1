package relations

import (
	"regexp"
	"sort"
	"strings"

	"github.com/docweave/docweave/internal/merge"
)

// dependencyKeywords are the phrases that introduce a dependency relation
// between concepts when found in the same sentence-ish window.
var dependencyKeywords = []string{
	"depends on", "requires", "needs", "prerequisite", "before", "after", "following",
}

// dependencyPhraseRes matches each keyword followed by the rest of its
// sentence-ish window (up to terminating punctuation or a newline).
var dependencyPhraseRes = buildDependencyRes()

func buildDependencyRes() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(dependencyKeywords))
	for _, kw := range dependencyKeywords {
		res = append(res, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(kw)+`\s+([^.!?\n]+)`))
	}
	return res
}

// conceptGroup collects every definition of one canonical concept.
type conceptGroup struct {
	name  string   // display name from the first definition encountered
	files []string // defining files, in sorted path order
}

// conceptRelationships re-extracts concepts per file, groups them by
// canonical name, and computes cross-file mention, relation and dependency
// edges for each concept.
func conceptRelationships(infos []*fileInfo) map[string]ConceptLinks {
	groups, order := groupConcepts(infos)

	links := make(map[string]ConceptLinks, len(order))
	for _, key := range order {
		g := groups[key]
		definedIn := make(map[string]struct{}, len(g.files))
		for _, f := range g.files {
			definedIn[f] = struct{}{}
		}

		cl := ConceptLinks{
			MentionsInOtherFiles: []string{},
			RelatedConcepts:      []string{},
			PrerequisiteFor:      []string{},
			DependsOn:            []string{},
		}
		lowerName := strings.ToLower(g.name)

		for _, info := range infos {
			if _, ok := definedIn[info.path]; ok {
				continue
			}
			if strings.Contains(info.lower, lowerName) {
				cl.MentionsInOtherFiles = append(cl.MentionsInOtherFiles, info.path)
			}
		}

		cl.RelatedConcepts = relatedConcepts(g, key, groups, order, infos)
		cl.DependsOn = conceptDependencies(g, key, groups, order, infos)

		links[g.name] = cl
	}

	fillPrerequisiteFor(links)
	return links
}

// groupConcepts indexes concepts by canonical name. The returned order is
// sorted by canonical key so iteration is deterministic.
func groupConcepts(infos []*fileInfo) (map[string]*conceptGroup, []string) {
	groups := make(map[string]*conceptGroup)
	for _, info := range infos {
		for _, c := range info.concepts {
			key := merge.Key(c.Name)
			g, ok := groups[key]
			if !ok {
				g = &conceptGroup{name: c.Name}
				groups[key] = g
			}
			if !containsString(g.files, info.path) {
				g.files = append(g.files, info.path)
			}
		}
	}
	order := make([]string, 0, len(groups))
	for key := range groups {
		order = append(order, key)
	}
	sort.Strings(order)
	return groups, order
}

// relatedConcepts returns the names of other concepts mentioned anywhere in
// this concept's defining files.
func relatedConcepts(g *conceptGroup, key string, groups map[string]*conceptGroup, order []string, infos []*fileInfo) []string {
	byPath := infoIndex(infos)

	related := []string{}
	seen := make(map[string]struct{})
	for _, file := range g.files {
		info := byPath[file]
		for _, otherKey := range order {
			if otherKey == key {
				continue
			}
			other := groups[otherKey]
			if _, ok := seen[other.name]; ok {
				continue
			}
			if strings.Contains(info.lower, strings.ToLower(other.name)) {
				seen[other.name] = struct{}{}
				related = append(related, other.name)
			}
		}
	}
	sort.Strings(related)
	return related
}

// conceptDependencies returns the names of concepts that appear after a
// dependency keyword within the same sentence-ish window in any of this
// concept's defining files.
func conceptDependencies(g *conceptGroup, key string, groups map[string]*conceptGroup, order []string, infos []*fileInfo) []string {
	byPath := infoIndex(infos)

	dependsOn := []string{}
	seen := make(map[string]struct{})
	for _, file := range g.files {
		info := byPath[file]
		for _, re := range dependencyPhraseRes {
			for _, m := range re.FindAllStringSubmatch(info.content, -1) {
				window := strings.ToLower(m[1])
				for _, otherKey := range order {
					if otherKey == key {
						continue
					}
					other := groups[otherKey]
					if _, ok := seen[other.name]; ok {
						continue
					}
					if strings.Contains(window, strings.ToLower(other.name)) {
						seen[other.name] = struct{}{}
						dependsOn = append(dependsOn, other.name)
					}
				}
			}
		}
	}
	sort.Strings(dependsOn)
	return dependsOn
}

// fillPrerequisiteFor populates each concept's prerequisite_for edge as the
// inverse of depends_on.
func fillPrerequisiteFor(links map[string]ConceptLinks) {
	names := make([]string, 0, len(links))
	for name := range links {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, dep := range links[name].DependsOn {
			target, ok := links[dep]
			if !ok {
				continue
			}
			if !containsString(target.PrerequisiteFor, name) {
				target.PrerequisiteFor = append(target.PrerequisiteFor, name)
				links[dep] = target
			}
		}
	}
}

func infoIndex(infos []*fileInfo) map[string]*fileInfo {
	byPath := make(map[string]*fileInfo, len(infos))
	for _, info := range infos {
		byPath[info.path] = info
	}
	return byPath
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
