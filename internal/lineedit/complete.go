package lineedit

import "strings"

// Complete replaces before with completed, the caller-supplied text a
// completion engine (internal/completion) produced for the whole
// before-cursor portion of the line (already quoted, already carrying
// any trailing path separator). The overlap between the two halves is
// resolved the same way key_complete does in InputState.py: a single
// trailing separator that completed ends with and after begins with is
// dropped from after so it isn't duplicated, checking the two-rune
// quoted-separator forms before the one-rune forms.
func (l *Line) Complete(completed string) {
	l.pushUndo(ActionComplete)

	afterStr := string(l.after)
	switch {
	case strings.HasSuffix(completed, `"\`) && strings.HasPrefix(afterStr, `"\`):
		l.after = l.after[2:]
	case strings.HasSuffix(completed, `" `) && strings.HasPrefix(afterStr, `" `):
		l.after = l.after[2:]
	case strings.HasSuffix(completed, " ") && strings.HasPrefix(afterStr, " "):
		l.after = l.after[1:]
	case strings.HasSuffix(completed, `\`) && strings.HasPrefix(afterStr, `\`):
		l.after = l.after[1:]
	}

	oldLen := len(l.before)
	newBefore := []rune(completed)
	charsAdded := len(newBefore) - oldLen
	l.before = newBefore
	if l.overwrite {
		n := charsAdded
		if n < 0 {
			n = 0
		}
		if n > len(l.after) {
			n = len(l.after)
		}
		l.after = l.after[n:]
	}
	l.selectionStart = len(l.before)
	l.expand = ExpandState{}
	l.lastAction = ActionComplete
}
