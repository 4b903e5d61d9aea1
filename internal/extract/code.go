package extract

import (
	"log"
	"regexp"
	"strings"

	"github.com/docweave/docweave/internal/markdown"
	"github.com/docweave/docweave/internal/model"
)

const (
	defaultTitle       = "Code Example"
	defaultDescription = "Code example from documentation"
)

var headingLineRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// languageHints is the ordered heuristic table used when a fence carries no
// language tag. First match wins.
var languageHints = []struct {
	lang  string
	match func(code string) bool
}{
	{"python", func(c string) bool { return strings.Contains(c, "def ") && strings.Contains(c, "import ") }},
	{"javascript", func(c string) bool {
		return strings.Contains(c, "function ") || strings.Contains(c, "const ") || strings.Contains(c, "let ")
	}},
	{"java", func(c string) bool { return strings.Contains(c, "public class ") || strings.Contains(c, "import java") }},
	{"c", func(c string) bool { return strings.Contains(c, "#include") || strings.Contains(c, "int main(") }},
	{"bash", func(c string) bool {
		return strings.Contains(c, "echo ") || strings.Contains(c, "ls ") || strings.Contains(c, "cd ")
	}},
	{"sql", func(c string) bool {
		u := strings.ToUpper(c)
		return strings.Contains(u, "SELECT ") || strings.Contains(u, "FROM ")
	}},
}

// CodeExamples extracts one example per non-empty fenced code block. The
// title and description come from the nearest preceding heading or short
// prose line; the language is the fence tag or a heuristic guess.
func CodeExamples(content, filePath string) []model.CodeExample {
	var examples []model.CodeExample
	for _, block := range markdown.CodeBlocks(content) {
		code := strings.TrimSpace(block.Code)
		if code == "" {
			continue
		}

		lang := strings.ToLower(block.Lang)
		if lang == "" {
			lang = DetectLanguage(code)
		}

		title, description := codeContext(content, block.Start)
		example, err := model.NewCodeExample(title, code, lang, description, filePath)
		if err != nil {
			log.Printf("WARNING: dropping code example from %s: %v", filePath, err)
			continue
		}
		examples = append(examples, example)
	}
	return examples
}

// codeContext scans backward from the block's opening fence for the nearest
// preceding heading (title) or short non-heading, non-fence line
// (description).
func codeContext(content string, blockStart int) (title, description string) {
	title, description = defaultTitle, defaultDescription

	lines := strings.Split(content[:blockStart], "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if m := headingLineRe.FindStringSubmatch(line); m != nil {
			title = m[2]
			return title, description
		}
		if len(line) < 100 && !strings.HasPrefix(line, "```") {
			description = line
			title = truncateAt(line, 50)
			return title, description
		}
	}
	return title, description
}

// DetectLanguage guesses a language tag from code content, defaulting to
// "text".
func DetectLanguage(code string) string {
	for _, hint := range languageHints {
		if hint.match(code) {
			return hint.lang
		}
	}
	return "text"
}
