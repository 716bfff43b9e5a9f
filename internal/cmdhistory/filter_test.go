package cmdhistory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAddDedup(t *testing.T) {
	h := New(0)
	h.Add("git status")
	h.Add("ls")
	h.Add("git status")
	require.Equal(t, []string{"ls", "git status"}, h.Lines())
}

func TestHistoryMaxCap(t *testing.T) {
	h := New(2)
	h.Add("a")
	h.Add("b")
	h.Add("c")
	assert.Equal(t, []string{"b", "c"}, h.Lines())
}

func TestFilterExactBeatsLoose(t *testing.T) {
	lines := []string{"git commit -m wip", "git commit", "commit git other"}
	matches := Filter(lines, "git commit")
	require.NotEmpty(t, matches)
	assert.Equal(t, "git commit", matches[0].Line)
}

func TestFilterSingleWordFallback(t *testing.T) {
	lines := []string{"ls -la", "git status"}
	matches := Filter(lines, "status")
	require.Len(t, matches, 1)
	assert.Equal(t, "git status", matches[0].Line)
}

func TestFilterAcronymPrefixMatch(t *testing.T) {
	lines := []string{"ls -la", "git checkout master", "git commit -m fix"}
	matches := Filter(lines, "g c")
	require.Len(t, matches, 2)
	lines2 := []string{matches[0].Line, matches[1].Line}
	assert.Contains(t, lines2, "git checkout master")
	assert.Contains(t, lines2, "git commit -m fix")
	assert.NotContains(t, lines2, "ls -la")
}

func TestTrailUpDown(t *testing.T) {
	trail := NewTrail([]Match{{Line: "new"}, {Line: "mid"}, {Line: "old"}})
	line, ok := trail.Up()
	require.True(t, ok)
	assert.Equal(t, "new", line)

	line, ok = trail.Up()
	require.True(t, ok)
	assert.Equal(t, "mid", line)

	line, ok = trail.Down()
	require.True(t, ok)
	assert.Equal(t, "new", line)
}
