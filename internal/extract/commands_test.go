package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandsFromBackticks(t *testing.T) {
	cmds := Commands("First `git clone https://example.com/x.git` then `cd x`")
	assert.Equal(t, []string{"git clone https://example.com/x.git", "cd x"}, cmds)
}

func TestCommandsFromProsePatterns(t *testing.T) {
	cmds := Commands("Run pip install requests to get started")
	assert.Contains(t, cmds, "pip install requests to get started")

	cmds = Commands("$ docker compose up")
	assert.Contains(t, cmds, "docker compose up")
}

func TestCommandsRejectsProse(t *testing.T) {
	// No command indicator present.
	assert.Empty(t, Commands("`the quick brown fox`"))
	// Indicator present but not valid shell.
	assert.Empty(t, Commands("`pip install (the good stuff`"))
}

func TestLooksLikeCommand(t *testing.T) {
	assert.True(t, looksLikeCommand("pip install requests"))
	assert.True(t, looksLikeCommand("mkdir build"))
	assert.False(t, looksLikeCommand("read the documentation"))
}

func TestParsesAsShell(t *testing.T) {
	assert.True(t, parsesAsShell("make all && make test"))
	assert.False(t, parsesAsShell("if then fi ((("))
}
