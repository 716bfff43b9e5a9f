package shell

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosh-shell/gosh/internal/keybindings"
	"github.com/gosh-shell/gosh/internal/termio"
)

func withNoPendingInput(t *testing.T) {
	t.Helper()
	restore := termio.SetPendingInputFunc(func(uintptr) (int, error) { return 0, nil })
	t.Cleanup(restore)
}

func TestReadKeyEventPrintableRune(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("x"))
	ev, err := ReadKeyEvent(r, 0)
	require.NoError(t, err)
	assert.Equal(t, 'x', ev.Rune)
	assert.False(t, ev.IsControl)
	assert.True(t, ev.Stroke.Equals(keybindings.NewCharKeyStroke('x')))
}

func TestReadKeyEventCtrlLetter(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(string(rune(23)))) // Ctrl+W
	ev, err := ReadKeyEvent(r, 0)
	require.NoError(t, err)
	assert.True(t, ev.IsControl)
	assert.True(t, ev.Stroke.Equals(keybindings.NewCtrlKeyStroke('w')))
}

func TestReadKeyEventBareEscape(t *testing.T) {
	withNoPendingInput(t)
	r := bufio.NewReader(strings.NewReader("\x1b"))
	ev, err := ReadKeyEvent(r, 0)
	require.NoError(t, err)
	assert.True(t, ev.Stroke.Equals(keybindings.NewEscapeKeyStroke()))
}

func TestReadKeyEventUpArrowCSI(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\x1b[A"))
	ev, err := ReadKeyEvent(r, 0)
	require.NoError(t, err)
	assert.True(t, ev.Stroke.Equals(keybindings.NewUpArrowKeyStroke()))
}

func TestReadKeyEventParametrizedCSISurvivesIntact(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\x1b[1;5C")) // Ctrl+Right
	ev, err := ReadKeyEvent(r, 0)
	require.NoError(t, err)
	assert.False(t, ev.Stroke.Equals(keybindings.NewRightArrowKeyStroke()))
	assert.True(t, ev.Stroke.Equals(keybindings.NewRawKeyStroke([]byte("\x1b[1;5C"))))
}

func TestReadKeyEventApplicationModeArrow(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\x1bOC"))
	ev, err := ReadKeyEvent(r, 0)
	require.NoError(t, err)
	assert.True(t, ev.Stroke.Equals(keybindings.NewRawKeyStroke([]byte{27, 'O', 'C'})))
}

func TestReadKeyEventAltLetter(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\x1bb")) // Alt+b, moveWordLeft in the teacher
	ev, err := ReadKeyEvent(r, 0)
	require.NoError(t, err)
	assert.True(t, ev.Stroke.Equals(keybindings.NewAltKeyStroke('b', "")))
}
