package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docweave/docweave/internal/model"
)

func TestConceptsDeduplicateByCanonicalName(t *testing.T) {
	concepts := []model.Concept{
		{Name: "Overview", Description: "short", Importance: 5, RelatedFiles: []string{"README.md"}},
		{Name: "  overview ", Description: "a much longer description", Importance: 7, RelatedFiles: []string{"docs/intro.md"}, Prerequisites: []string{"Git"}},
	}

	merged := Concepts(concepts)

	assert.Len(t, merged, 1)
	c := merged[0]
	assert.Equal(t, "Overview", c.Name)
	assert.Equal(t, "a much longer description", c.Description)
	assert.Equal(t, 7, c.Importance)
	assert.Equal(t, []string{"README.md", "docs/intro.md"}, c.RelatedFiles)
	assert.Equal(t, []string{"Git"}, c.Prerequisites)
}

func TestConceptsSortedByImportanceDescending(t *testing.T) {
	merged := Concepts([]model.Concept{
		{Name: "Minor", Description: "d", Importance: 2},
		{Name: "Major", Description: "d", Importance: 9},
		{Name: "Middle", Description: "d", Importance: 5},
	})

	var names []string
	for _, c := range merged {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Major", "Middle", "Minor"}, names)
}

func TestConceptsDoesNotAliasInputs(t *testing.T) {
	in := []model.Concept{
		{Name: "A", Description: "d", Importance: 3, RelatedFiles: []string{"a.md"}},
		{Name: "A", Description: "d", Importance: 3, RelatedFiles: []string{"b.md"}},
	}
	merged := Concepts(in)

	merged[0].RelatedFiles[0] = "mutated"
	assert.Equal(t, "a.md", in[0].RelatedFiles[0])
}

func TestDependenciesIncumbentWins(t *testing.T) {
	merged := Dependencies([]model.Dependency{
		{Name: "requests", Version: "==2.28.0", Type: model.Runtime, Description: "first"},
		{Name: "Requests", Version: "==2.31.0", Type: model.Runtime, Description: "second"},
	})

	assert.Len(t, merged, 1)
	assert.Equal(t, "==2.28.0", merged[0].Version)
}

func TestDependenciesVersionlessIncumbentReplaced(t *testing.T) {
	merged := Dependencies([]model.Dependency{
		{Name: "flask", Type: model.Runtime, Description: "first"},
		{Name: "flask", Version: "2.0.1", Type: model.Runtime, Description: "second"},
	})

	assert.Len(t, merged, 1)
	assert.Equal(t, "2.0.1", merged[0].Version)
	assert.Equal(t, "second", merged[0].Description)
}

func TestOrderStepsInstallBeforeTest(t *testing.T) {
	steps := []model.SetupStep{
		{Title: "Run the test suite", Description: "d", Order: 1},
		{Title: "Install dependencies", Description: "d", Order: 1},
		{Title: "Configure the app", Description: "d", Order: 1},
	}

	ordered := OrderSteps(steps)

	var titles []string
	for _, s := range ordered {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{
		"Install dependencies",
		"Configure the app",
		"Run the test suite",
	}, titles)
}

func TestOrderStepsPrimaryKeyIsOrder(t *testing.T) {
	steps := []model.SetupStep{
		{Title: "Run the server", Description: "d", Order: 2},
		{Title: "Clone the repository", Description: "d", Order: 0},
		{Title: "Install dependencies", Description: "d", Order: 1},
	}

	ordered := OrderSteps(steps)

	assert.Equal(t, "Clone the repository", ordered[0].Title)
	assert.Equal(t, "Install dependencies", ordered[1].Title)
	assert.Equal(t, "Run the server", ordered[2].Title)
}

func TestOrderStepsIsStableForUnmatchedTitles(t *testing.T) {
	steps := []model.SetupStep{
		{Title: "First thing", Description: "d", Order: 1},
		{Title: "Second thing", Description: "d", Order: 1},
	}

	ordered := OrderSteps(steps)

	assert.Equal(t, "First thing", ordered[0].Title)
	assert.Equal(t, "Second thing", ordered[1].Title)
}
