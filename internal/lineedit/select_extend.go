package lineedit

// selectFrame is a snapshotted pre-expansion state pushed by each
// SELECT_UP zoom step, so SELECT_DOWN can restore it verbatim —
// InputState.py's selection_history entries.
type selectFrame struct {
	before         []rune
	after          []rune
	selectionStart int
	separators     []rune
}

// extendSeparatorsOutsideQuotes and extendSeparatorsInsideQuotes are
// the two separator lists InputState.py's key_extend_selection cycles
// through, outside vs. inside a `"…` run. NUL stands in for the
// original's '\0' sentinel, a character that cannot appear in typed
// input so it never actually stops an expansion.
var (
	extendSeparatorsOutsideQuotes = []rune{'-', '.', '=', '\\', ';', ' ', '>', '<', '&', '|', 0}
	extendSeparatorsInsideQuotes  = []rune{'-', ' ', '.', '&', '|', '\\', '"'}
)

// extendSelection grows the active selection lexically outward from
// the cursor, a direct port of InputState.py's key_extend_selection /
// extend_selection: the first press anchors to one side of the cursor
// and picks a separator list based on quoting context, then each press
// (including this first one) greedily expands past non-separator
// characters, consuming one separator from the front of the list per
// zoom level that makes no progress.
func (l *Line) extendSelection() {
	if l.extendSeparators == nil {
		l.selectionStart = len(l.before)
		l.selectionHistory = nil

		wsLeft := countTrailingRune(l.before, ' ')
		wsRight := countLeadingRune(l.after, ' ')
		switch {
		case wsLeft == len(l.before) || (wsLeft >= wsRight && wsRight > 0):
			for i := 0; i < wsRight; i++ {
				l.stepRight()
			}
		case wsRight == len(l.after) || (wsRight >= wsLeft && wsLeft > 0):
			for i := 0; i < wsLeft; i++ {
				l.stepLeft()
			}
		}

		for len(l.before) > 0 && l.before[len(l.before)-1] == '\\' &&
			(len(l.after) == 0 || l.after[0] == ' ') {
			l.stepLeft()
		}

		if countRune(l.before, '"')%2 == 0 {
			if len(l.before) > 0 && l.before[len(l.before)-1] == '"' {
				l.stepLeft()
			} else if len(l.after) > 0 && l.after[0] == '"' {
				l.stepRight()
			}
		}

		if countRune(l.before, '"')%2 == 0 {
			l.extendSeparators = append([]rune{}, extendSeparatorsOutsideQuotes...)
		} else {
			l.extendSeparators = append([]rune{}, extendSeparatorsInsideQuotes...)
		}
	}

	l.runExtend()
}

// runExtend is InputState.py's extend_selection: greedily widen the
// cursor-anchored range past any character not in the current
// separator list, popping a separator off the front and retrying when
// a pass makes no progress, switching to the outside-quotes list once
// the inside list is exhausted while still inside an odd quote count.
func (l *Line) runExtend() {
	full := append(append([]rune{}, l.before...), l.after...)
	extendBegin := len(l.before)
	extendEnd := len(l.before)
	if l.selectionStart > extendEnd {
		extendEnd = l.selectionStart
	}
	separators := append([]rune{}, l.extendSeparators...)
	expanded := false

	for !expanded && len(separators) > 0 {
		for extendBegin >= 1 && !containsRune(separators, full[extendBegin-1]) {
			extendBegin--
			expanded = true
		}
		for extendEnd < len(full) && !containsRune(separators, full[extendEnd]) {
			extendEnd++
			expanded = true
		}
		separators = separators[1:]
		if len(separators) == 0 && countRune(l.before, '"')%2 == 1 {
			separators = append([]rune{}, extendSeparatorsOutsideQuotes...)
		}
	}

	if !expanded {
		return
	}

	l.selectionHistory = append(l.selectionHistory, selectFrame{
		before:         append([]rune{}, l.before...),
		after:          append([]rune{}, l.after...),
		selectionStart: l.selectionStart,
		separators:     append([]rune{}, l.extendSeparators...),
	})
	l.before = full[:extendBegin]
	l.after = full[extendBegin:]
	l.selectionStart = extendEnd
	l.extendSeparators = separators
}

// shrinkSelection reverses the most recent SELECT_UP step by popping
// its pre-expansion frame, InputState.py's key_shrink_selection. Once
// the frame stack empties — back at the pre-anchor state — the
// selection and separator progression are cleared entirely so the
// next SELECT_UP re-anchors from scratch.
func (l *Line) shrinkSelection() {
	n := len(l.selectionHistory) - 1
	if n < 0 {
		return
	}
	frame := l.selectionHistory[n]
	l.selectionHistory = l.selectionHistory[:n]
	l.before = frame.before
	l.after = frame.after
	l.selectionStart = frame.selectionStart
	l.extendSeparators = frame.separators

	if len(l.selectionHistory) == 0 {
		l.selectionStart = len(l.before)
		l.extendSeparators = nil
	}
}

// stepLeft and stepRight move the cursor one character without
// pushing undo history, collapsing the selection anchor onto the new
// cursor position — InputState.py's key_left(False)/key_right(False)
// used during extendSelection's anchor setup.
func (l *Line) stepLeft() {
	l.moveLeft()
	l.selectionStart = len(l.before)
}

func (l *Line) stepRight() {
	l.moveRight()
	l.selectionStart = len(l.before)
}

func containsRune(set []rune, r rune) bool {
	for _, s := range set {
		if s == r {
			return true
		}
	}
	return false
}

func countRune(runes []rune, r rune) int {
	n := 0
	for _, c := range runes {
		if c == r {
			n++
		}
	}
	return n
}

func countTrailingRune(runes []rune, r rune) int {
	n := 0
	for i := len(runes) - 1; i >= 0 && runes[i] == r; i-- {
		n++
	}
	return n
}

func countLeadingRune(runes []rune, r rune) int {
	n := 0
	for n < len(runes) && runes[n] == r {
		n++
	}
	return n
}
