package selectwin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + i))
	}
	return out
}

func TestFilterNarrowsVisible(t *testing.T) {
	w := New([]string{"status", "stash", "commit"}, 80, 10, 5)
	w.SetQuery("st")
	assert.ElementsMatch(t, []string{"status", "stash"}, w.Visible())
}

func TestMoveClampsAndScrolls(t *testing.T) {
	w := New(entries(20), 40, 3, 3)
	require.Equal(t, 8, w.Columns)
	w.Move(0, 10)
	rows := w.ViewportRows()
	assert.LessOrEqual(t, len(rows), 3)
}

func TestSelectedTracksCursor(t *testing.T) {
	w := New([]string{"x", "y", "z"}, 80, 1, 3)
	assert.Equal(t, "x", w.Selected())
	w.Move(1, 0)
	assert.Equal(t, "y", w.Selected())
}
