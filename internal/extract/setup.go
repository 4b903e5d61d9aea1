package extract

import (
	"log"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/docweave/docweave/internal/markdown"
	"github.com/docweave/docweave/internal/model"
)

// stepMarkers is the ordered table of line patterns that start a new setup
// step within a section. Group 1 captures the step text.
var stepMarkers = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\.\s+(.+)$`),
	regexp.MustCompile(`^[-*]\s+(.+)$`),
	regexp.MustCompile(`(?i)^Step\s+\d+:?\s+(.+)$`),
}

// SetupSteps extracts setup steps from every setup-bearing section in
// content. startOrder seeds the step counter so steps across files interleave
// by discovery order.
func SetupSteps(content, filePath string, startOrder int) []model.SetupStep {
	outline := markdown.ParseOutline(content)

	var steps []model.SetupStep
	for i, h := range outline.Headings {
		if !IsSetupHeading(h.Text) {
			continue
		}
		section := outline.Section(i)
		steps = append(steps, sectionSteps(h.Text, section, filePath, startOrder+len(steps))...)
	}
	return steps
}

// sectionSteps scans a section's lines for step markers. Lines after a
// marker that match no marker themselves extend the current step's
// description and commands. A section with content but no markers yields a
// single step synthesized from the heading.
func sectionSteps(heading, section, filePath string, startOrder int) []model.SetupStep {
	var steps []model.SetupStep
	order := startOrder

	flush := func(s *model.SetupStep) {
		if s == nil {
			return
		}
		if err := s.Validate(); err != nil {
			log.Printf("WARNING: dropping setup step from %s: %v", filePath, err)
			return
		}
		steps = append(steps, *s)
	}

	var current *model.SetupStep
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		text, matched := matchStepMarker(line)
		if matched {
			flush(current)
			current = &model.SetupStep{
				Title:       stepTitle(text),
				Description: text,
				Commands:    Commands(text),
				Order:       order,
			}
			order++
			continue
		}
		if current != nil {
			current.Description += " " + line
			current.Commands = append(current.Commands, Commands(line)...)
		}
	}

	if current != nil {
		flush(current)
	} else if strings.TrimSpace(section) != "" {
		flush(&model.SetupStep{
			Title:       heading,
			Description: truncateAt(section, 200),
			Commands:    Commands(section),
			Order:       startOrder,
		})
	}
	return steps
}

func matchStepMarker(line string) (string, bool) {
	for _, re := range stepMarkers {
		if m := re.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func stepTitle(text string) string {
	return truncateAt(text, 50)
}

// truncateAt cuts s at max bytes and marks the cut with an ellipsis. The cut
// backs up to a rune boundary so titles stay valid UTF-8.
func truncateAt(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
