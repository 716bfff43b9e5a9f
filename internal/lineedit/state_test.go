package lineedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndNavigate(t *testing.T) {
	l := New()
	l.Handle(ActionInsertText, "hello")
	assert.Equal(t, "hello", l.Text())
	assert.Equal(t, 5, l.CursorPos())

	l.Handle(ActionMoveLeft, "")
	l.Handle(ActionMoveLeft, "")
	assert.Equal(t, 3, l.CursorPos())

	l.Handle(ActionInsertRune, "X")
	assert.Equal(t, "helXlo", l.Text())
}

func TestDeleteWord(t *testing.T) {
	l := New()
	l.Handle(ActionInsertText, "git commit")
	l.Handle(ActionDeleteWordLeft, "")
	assert.Equal(t, "git ", l.Text())
}

func TestUndoRedoClassic(t *testing.T) {
	l := New()
	l.Handle(ActionInsertText, "abc")
	l.Handle(ActionDeleteWordLeft, "")
	require.Equal(t, "", l.Text())

	l.Handle(ActionUndo, "")
	assert.Equal(t, "abc", l.Text())

	l.Handle(ActionRedo, "")
	assert.Equal(t, "", l.Text())
}

func TestUndoEmacsRotatesIndependently(t *testing.T) {
	l := New()
	l.Handle(ActionInsertText, "one")
	l.Handle(ActionInsertText, " two")
	l.Handle(ActionUndoEmacs, "")
	assert.Equal(t, "one", l.Text())
	l.Handle(ActionUndoEmacs, "")
	assert.Equal(t, "", l.Text())
}

func TestSelectionExtendShrink(t *testing.T) {
	l := New()
	l.Handle(ActionInsertText, "foo bar")
	l.Handle(ActionExtendSelection, "")
	start, end := l.SelectionRange()
	assert.True(t, start < end)

	l.Handle(ActionExtendSelection, "")
	start2, end2 := l.SelectionRange()
	assert.True(t, start2 <= start && end2 >= end)

	l.Handle(ActionShrinkSelection, "")
	assert.True(t, l.HasSelection())
}

func TestExpandClearedByOtherAction(t *testing.T) {
	l := New()
	l.Handle(ActionInsertText, "confirm con")
	l.Expand([]string{"confirm", "contains"})
	assert.Equal(t, "confirm contains", l.Text())

	l.Handle(ActionMoveLeft, "")
	assert.False(t, l.expand.active)
}

func TestExpandContextPreference(t *testing.T) {
	l := New()
	l.Handle(ActionInsertText, "git c")
	history := []string{"git checkout master", "git commit -m fix"}

	l.Expand(history)
	first := l.Text()
	l.Expand(history)
	second := l.Text()
	l.Expand(history)
	third := l.Text()

	assert.Equal(t, "git commit", first)
	assert.Equal(t, "git checkout", second)
	assert.Equal(t, "git c", third)
}

func TestExpandCaseInsensitivePrefix(t *testing.T) {
	l := New()
	l.Handle(ActionInsertText, "GIT CHE")
	l.Expand([]string{"git checkout master"})
	assert.Equal(t, "GIT checkout", l.Text())
}

func TestIncrementalSearch(t *testing.T) {
	l := New()
	history := []string{"git status", "git commit -m x", "ls -la"}
	l.BeginSearch(false)
	match, ok := l.SearchChar('g', history)
	require.True(t, ok)
	assert.Equal(t, "git commit -m x", match)

	match, ok = l.SearchAdvance(history)
	require.True(t, ok)
	assert.Equal(t, "git status", match)
}
