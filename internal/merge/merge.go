// Package merge collapses duplicate records found across files into
// canonical ones and orders setup steps into an onboarding-plausible
// sequence. All merges are pure: they return new records and never alias the
// inputs' slices.
package merge

import (
	"sort"
	"strings"

	"github.com/docweave/docweave/internal/model"
)

// stepPriorities maps setup keywords to an ordering weight; earlier entries
// win when a title matches several. Unmatched titles get priority 10.
var stepPriorities = []struct {
	keyword  string
	priority int
}{
	{"install", 1},
	{"download", 2},
	{"setup", 3},
	{"configure", 4},
	{"run", 5},
	{"test", 6},
}

// Key canonicalizes a record name for identity comparison.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Concepts collapses concepts sharing a canonical name. The merged concept
// unions related files and prerequisites, keeps the longer description, and
// keeps the maximum importance. The result is sorted by importance
// descending, stable on ties.
func Concepts(concepts []model.Concept) []model.Concept {
	index := make(map[string]int)
	var merged []model.Concept

	for _, c := range concepts {
		key := Key(c.Name)
		i, ok := index[key]
		if !ok {
			index[key] = len(merged)
			merged = append(merged, cloneConcept(c))
			continue
		}
		merged[i] = mergeConcept(merged[i], c)
	}

	for i := range merged {
		sort.Strings(merged[i].RelatedFiles)
		sort.Strings(merged[i].Prerequisites)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Importance > merged[j].Importance
	})
	return merged
}

// mergeConcept combines two concepts with the same canonical name into a new
// record.
func mergeConcept(a, b model.Concept) model.Concept {
	out := cloneConcept(a)
	out.RelatedFiles = unionStrings(a.RelatedFiles, b.RelatedFiles)
	out.Prerequisites = unionStrings(a.Prerequisites, b.Prerequisites)
	if len(b.Description) > len(a.Description) {
		out.Description = b.Description
	}
	if b.Importance > a.Importance {
		out.Importance = b.Importance
	}
	return out
}

// Dependencies collapses dependencies sharing a canonical name. The incumbent
// wins unless it lacks a version and the newcomer has one. Input order is
// preserved.
func Dependencies(deps []model.Dependency) []model.Dependency {
	index := make(map[string]int)
	var merged []model.Dependency

	for _, d := range deps {
		key := Key(d.Name)
		i, ok := index[key]
		if !ok {
			index[key] = len(merged)
			merged = append(merged, d)
			continue
		}
		if merged[i].Version == "" && d.Version != "" {
			merged[i] = d
		}
	}
	return merged
}

// OrderSteps stable-sorts setup steps by (order, keyword priority). Steps
// are never deduplicated, only reordered.
func OrderSteps(steps []model.SetupStep) []model.SetupStep {
	out := make([]model.SetupStep, len(steps))
	copy(out, steps)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return stepPriority(out[i].Title) < stepPriority(out[j].Title)
	})
	return out
}

// stepPriority looks a step title up in the priority table; first match
// wins.
func stepPriority(title string) int {
	lower := strings.ToLower(title)
	for _, p := range stepPriorities {
		if strings.Contains(lower, p.keyword) {
			return p.priority
		}
	}
	return 10
}

func cloneConcept(c model.Concept) model.Concept {
	out := c
	out.RelatedFiles = append([]string(nil), c.RelatedFiles...)
	out.Prerequisites = append([]string(nil), c.Prerequisites...)
	return out
}

// unionStrings returns the set union of two string slices, preserving first
// appearance order of a then b.
func unionStrings(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	var out []string
	for _, s := range append(append([]string(nil), a...), b...) {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
