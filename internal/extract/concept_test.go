package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConceptsBasic(t *testing.T) {
	content := `# Project

## Overview

This project rocks.

## Usage

Not a concept heading.
`
	concepts := Concepts(content, "README.md")
	require.Len(t, concepts, 1)

	c := concepts[0]
	assert.Equal(t, "Overview", c.Name)
	assert.Equal(t, "This project rocks.", c.Description)
	assert.Equal(t, []string{"README.md"}, c.RelatedFiles)
	// 7 - level 2 = 5, +2 for the "overview" key term.
	assert.Equal(t, 7, c.Importance)
}

func TestConceptsHeadingClassification(t *testing.T) {
	cases := []struct {
		heading string
		want    bool
	}{
		{"Overview", true},
		{"System Architecture", true},
		{"What is this?", true},
		{"About", true},
		{"Usage", false},
		{"Changelog", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsConceptHeading(tc.heading), tc.heading)
	}
}

func TestConceptImportanceBounds(t *testing.T) {
	long := strings.Repeat("x", 600)

	// Level 1 "Architecture Overview": 7-1=6, +2 key term, +1 long section.
	content := "# Architecture Overview\n\n" + long + "\n"
	concepts := Concepts(content, "doc.md")
	require.Len(t, concepts, 1)
	assert.Equal(t, 9, concepts[0].Importance)

	// Deep heading floors at 1 before bonuses.
	content = "###### A note about things\n\nShort.\n"
	concepts = Concepts(content, "doc.md")
	require.Len(t, concepts, 1)
	assert.Equal(t, 1, concepts[0].Importance)
}

func TestConceptDescriptionStripping(t *testing.T) {
	content := "## Overview\n\n**Bold** start with a [link](x.md) and `code`.\n"
	concepts := Concepts(content, "doc.md")
	require.Len(t, concepts, 1)
	assert.Equal(t, "Bold start with a link and code.", concepts[0].Description)
}

func TestConceptDescriptionTruncation(t *testing.T) {
	para := strings.Repeat("word ", 60) // 300 chars
	content := "## Overview\n\n" + para + "\n"
	concepts := Concepts(content, "doc.md")
	require.Len(t, concepts, 1)
	assert.Len(t, concepts[0].Description, 200)
	assert.True(t, strings.HasSuffix(concepts[0].Description, "..."))
}

func TestConceptNoParagraphSentinel(t *testing.T) {
	concepts := Concepts("## Overview\n", "doc.md")
	require.Len(t, concepts, 1)
	assert.Equal(t, "No description available", concepts[0].Description)
}

func TestConceptPrerequisitesMined(t *testing.T) {
	content := "## Overview\n\nPrerequisites: Go 1.22, Docker and Make.\n"
	concepts := Concepts(content, "doc.md")
	require.Len(t, concepts, 1)
	assert.Contains(t, concepts[0].Prerequisites, "Go 1.22")
	assert.Contains(t, concepts[0].Prerequisites, "Docker")
	assert.Contains(t, concepts[0].Prerequisites, "Make")
}
