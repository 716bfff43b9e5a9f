package lineedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompleteReplacesBeforeCursor(t *testing.T) {
	l := New()
	l.Handle(ActionInsertText, "cd src")
	l.Handle(ActionMoveWordLeft, "")

	l.Complete(`cd "Program Files"\`)
	assert.Equal(t, `cd "Program Files"\`, string(l.Before()))
	assert.Equal(t, "src", string(l.After()))
	assert.Equal(t, len(l.Before()), l.CursorPos())
}

func TestCompleteDropsDuplicateTrailingSpace(t *testing.T) {
	l := New()
	l.Handle(ActionInsertText, "a  b")
	l.Handle(ActionMoveLeft, "")
	l.Handle(ActionMoveLeft, "")

	l.Complete("a ")
	assert.Equal(t, "a b", l.Text())
}

func TestCompleteDropsDuplicateTrailingBackslash(t *testing.T) {
	l := New()
	l.Handle(ActionInsertText, `a\\b`)
	l.Handle(ActionMoveLeft, "")
	l.Handle(ActionMoveLeft, "")

	l.Complete(`a\`)
	assert.Equal(t, `a\b`, l.Text())
}

func TestCompleteOverwriteModeConsumesAfter(t *testing.T) {
	l := New()
	l.Handle(ActionInsertText, "ab12")
	l.Handle(ActionMoveLeft, "")
	l.Handle(ActionMoveLeft, "")
	l.Handle(ActionToggleOverwrite, "")

	l.Complete("abXY")
	assert.Equal(t, "abXY", l.Text())
}

func TestCompleteSetsLastActionForUndoCoalescing(t *testing.T) {
	l := New()
	l.Handle(ActionInsertText, "f")
	l.Complete("foo")
	l.Complete("foobar")
	assert.Equal(t, "foobar", l.Text())

	l.Handle(ActionUndo, "")
	assert.Equal(t, "f", l.Text())
}
