package extract

import (
	"regexp"
	"sort"
	"strings"
)

// prerequisitePatterns is an ordered table of prerequisite-phrase matchers.
// Group 1, when present, captures the prerequisite text; patterns without a
// capture group contribute their whole match.
var prerequisitePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:prerequisite|requirement|need|require)s?:?\s*(.+)`),
	regexp.MustCompile(`(?i)before\s+(?:you\s+)?(?:can\s+)?(?:start|begin|use)`),
	regexp.MustCompile(`(?i)make sure\s+(?:you\s+)?(?:have|install)`),
}

var prereqSplitRe = regexp.MustCompile(`[,;]|\sand\s`)

// Prerequisites mines prerequisite phrases from content. The result carries
// set semantics; it is sorted only so repeated runs are deterministic.
func Prerequisites(content string) []string {
	seen := make(map[string]struct{})
	for _, re := range prerequisitePatterns {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			phrase := m[0]
			if len(m) > 1 && m[1] != "" {
				phrase = m[1]
			}
			for _, item := range prereqSplitRe.Split(phrase, -1) {
				item = strings.TrimRight(strings.TrimSpace(item), ".")
				if item != "" && len(item) < 100 {
					seen[item] = struct{}{}
				}
			}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for item := range seen {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}
