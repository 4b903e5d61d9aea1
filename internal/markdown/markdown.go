// Package markdown provides the stateless primitives shared by all
// extractors: heading, fenced-code-block, inline-link and textual-reference
// matchers, plus an Outline tree that maps each heading to the byte span of
// its section. The outline is built once per file and reused, so no two
// extractors need to keep split indices in lockstep.
package markdown

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	headingRe = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	fenceRe   = regexp.MustCompile("(?s)```(\\w+)?\n(.*?)\n```")
	linkRe    = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	refRe     = regexp.MustCompile(`(?i)(?:see|refer to|check|read|visit)\s+([^\s\n.]+)`)

	emphasisRe   = regexp.MustCompile("[*_`]")
	linkUnwrapRe = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	sentenceRe   = regexp.MustCompile(`[.!?]+`)
	spaceRe      = regexp.MustCompile(`\s+`)
)

// Heading is a single heading node in a file's outline. SectionStart and
// SectionEnd delimit the text between this heading and the next heading of
// any level.
type Heading struct {
	Level        int
	Text         string
	Start        int // byte offset of the heading line
	SectionStart int
	SectionEnd   int
}

// Outline is the parsed heading structure of one Markdown file.
type Outline struct {
	Headings []Heading
	src      string
}

// ParseOutline builds the outline tree for content. Headings are matched
// line-anchored (`#` through `######`); each heading's section runs to the
// start of the next heading or the end of the file.
func ParseOutline(content string) *Outline {
	idx := headingRe.FindAllStringSubmatchIndex(content, -1)
	o := &Outline{src: content}
	for i, m := range idx {
		sectionStart := m[1] // end of the heading line
		sectionEnd := len(content)
		if i+1 < len(idx) {
			sectionEnd = idx[i+1][0]
		}
		o.Headings = append(o.Headings, Heading{
			Level:        m[3] - m[2],
			Text:         strings.TrimSpace(content[m[4]:m[5]]),
			Start:        m[0],
			SectionStart: sectionStart,
			SectionEnd:   sectionEnd,
		})
	}
	return o
}

// Section returns the raw text of the i-th heading's section.
func (o *Outline) Section(i int) string {
	if i < 0 || i >= len(o.Headings) {
		return ""
	}
	h := o.Headings[i]
	return o.src[h.SectionStart:h.SectionEnd]
}

// CodeBlock is one fenced code block. Start is the byte offset of the
// opening fence, used to correlate the block back to preceding text.
type CodeBlock struct {
	Lang  string
	Code  string
	Start int
}

// CodeBlocks returns every fenced code block in content in source order.
func CodeBlocks(content string) []CodeBlock {
	idx := fenceRe.FindAllStringSubmatchIndex(content, -1)
	var blocks []CodeBlock
	for _, m := range idx {
		var lang string
		if m[2] >= 0 {
			lang = content[m[2]:m[3]]
		}
		blocks = append(blocks, CodeBlock{
			Lang:  lang,
			Code:  content[m[4]:m[5]],
			Start: m[0],
		})
	}
	return blocks
}

// Link is one inline Markdown link.
type Link struct {
	Text   string
	Target string
	Start  int
}

// Links returns every inline link in content in source order.
func Links(content string) []Link {
	idx := linkRe.FindAllStringSubmatchIndex(content, -1)
	var links []Link
	for _, m := range idx {
		links = append(links, Link{
			Text:   content[m[2]:m[3]],
			Target: content[m[4]:m[5]],
			Start:  m[0],
		})
	}
	return links
}

// Reference is a textual pointer such as "see INSTALL.md".
type Reference struct {
	Target string
	Start  int
}

// References returns every textual reference (see/refer to/check/read/visit
// followed by a token) in content.
func References(content string) []Reference {
	idx := refRe.FindAllStringSubmatchIndex(content, -1)
	var refs []Reference
	for _, m := range idx {
		refs = append(refs, Reference{
			Target: content[m[2]:m[3]],
			Start:  m[0],
		})
	}
	return refs
}

// StripEmphasis removes Markdown emphasis markers and unwraps inline links
// to their display text.
func StripEmphasis(s string) string {
	s = linkUnwrapRe.ReplaceAllString(s, "$1")
	return emphasisRe.ReplaceAllString(s, "")
}

// Sentences splits content on sentence-terminating punctuation.
func Sentences(content string) []string {
	return sentenceRe.Split(content, -1)
}

// CollapseSpace trims s and collapses internal whitespace runs to single
// spaces, used when extracting context windows.
func CollapseSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// Truncate shortens s to at most max bytes, appending an ellipsis when
// truncation happened. The cut never lands inside a multi-byte rune, so the
// result is always valid UTF-8.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
