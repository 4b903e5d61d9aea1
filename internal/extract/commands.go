package extract

import (
	"regexp"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// commandIndicators are substrings that mark a snippet as a shell command
// rather than prose.
var commandIndicators = []string{
	"pip install", "npm install", "git clone", "cd ", "mkdir",
	"python ", "node ", "java ", "make", "cmake", "docker",
	"apt-get", "yum install", "brew install",
}

var (
	backtickRe = regexp.MustCompile("`([^`]+)`")

	// commandPatterns is the ordered table of prose patterns that introduce
	// a command: "run ...", "$ ..." and "> ...". The colon after the verb is
	// optional so instructions like "Run pip install -r file" still match.
	commandPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:run|execute|type):?\s+(.+)`),
		regexp.MustCompile(`\$\s*(.+)`),
		regexp.MustCompile(`>\s*(.+)`),
	}
)

// Commands extracts shell-like commands from text: inline code spans first,
// then prose patterns. Candidates must contain a command indicator and parse
// as valid shell; snippets that fail the shell parser (prose wrapped in
// backticks, broken fragments) are discarded.
func Commands(text string) []string {
	var commands []string

	for _, m := range backtickRe.FindAllStringSubmatch(text, -1) {
		if cmd := strings.TrimSpace(m[1]); acceptCommand(cmd) {
			commands = append(commands, cmd)
		}
	}

	for _, re := range commandPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if cmd := strings.TrimSpace(m[1]); acceptCommand(cmd) {
				commands = append(commands, cmd)
			}
		}
	}
	return commands
}

func acceptCommand(cmd string) bool {
	if cmd == "" || !looksLikeCommand(cmd) {
		return false
	}
	return parsesAsShell(cmd)
}

func looksLikeCommand(text string) bool {
	lower := strings.ToLower(text)
	for _, indicator := range commandIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// parsesAsShell reports whether snippet is syntactically valid shell. A new
// parser per call keeps extraction safe under the concurrent file map.
func parsesAsShell(snippet string) bool {
	_, err := syntax.NewParser().Parse(strings.NewReader(snippet), "")
	return err == nil
}
