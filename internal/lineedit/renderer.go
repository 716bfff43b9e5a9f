package lineedit

import (
	"fmt"
	"io"
	"unicode"

	"golang.org/x/text/width"
)

// isCombining reports whether r is a combining mark (zero display width).
func isCombining(r rune) bool {
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Mc, r)
}

// isVariationSelector reports whether r is a variation selector (zero width).
func isVariationSelector(r rune) bool {
	return (r >= 0xFE00 && r <= 0xFE0F) || (r >= 0xE0100 && r <= 0xE01EF)
}

// isRegionalIndicator reports whether r is a regional indicator rune (flags).
func isRegionalIndicator(r rune) bool { return r >= 0x1F1E6 && r <= 0x1F1FF }

// isZWJ reports whether r is ZERO WIDTH JOINER.
func isZWJ(r rune) bool { return r == 0x200D }

func isEmoji(r rune) bool {
	return (r >= 0x1F300 && r <= 0x1F5FF) ||
		(r >= 0x1F600 && r <= 0x1F64F) ||
		(r >= 0x1F680 && r <= 0x1F6FF) ||
		(r >= 0x1F700 && r <= 0x1F77F) ||
		(r >= 0x1F780 && r <= 0x1F7FF) ||
		(r >= 0x1F800 && r <= 0x1F8FF) ||
		(r >= 0x1F900 && r <= 0x1F9FF) ||
		(r >= 0x1FA00 && r <= 0x1FAFF) ||
		(r >= 0x2600 && r <= 0x26FF) ||
		(r >= 0x2700 && r <= 0x27BF)
}

// RuneWidth returns the number of terminal columns r occupies: zero for
// combining marks/variation selectors/ZWJ, two for East-Asian wide
// characters and common emoji, one otherwise.
func RuneWidth(r rune) int {
	if isCombining(r) || isVariationSelector(r) || isZWJ(r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return 2
	}
	if isEmoji(r) {
		return 2
	}
	return 1
}

// ColsBetween sums the display width of runes[from:to].
func ColsBetween(runes []rune, from, to int) int {
	if from < 0 {
		from = 0
	}
	if to > len(runes) {
		to = len(runes)
	}
	cols := 0
	for i := from; i < to; i++ {
		cols += RuneWidth(runes[i])
	}
	return cols
}

// GraphemeStart walks backward from the cursor position pos (a rune
// index) to the start of the grapheme cluster that ends just before
// pos, absorbing trailing combining
// marks/variation selectors, paired regional indicators (flag emoji)
// and ZWJ-joined sequences — the same three-pass walk the teacher's
// real-time editor uses before deleting or stepping the cursor by one
// visual character instead of one rune.
func GraphemeStart(runes []rune, pos int) int {
	start := pos
	for start > 0 && (isCombining(runes[start-1]) || isVariationSelector(runes[start-1])) {
		start--
	}
	if start > 0 && isRegionalIndicator(runes[start-1]) && start > 1 && isRegionalIndicator(runes[start-2]) {
		start--
	}
	for start > 1 && isZWJ(runes[start-2]) {
		start -= 2
		for start > 0 && (isCombining(runes[start-1]) || isVariationSelector(runes[start-1])) {
			start--
		}
	}
	if start > 0 {
		start-- // the base rune the absorbed runes attach to
	}
	return start
}

// Renderer redraws a Line in place on an ANSI terminal: every Draw
// returns to column 0 and repaints the prompt and the whole line,
// blanks any columns left over from a longer previous draw (tracked in
// lastCols), then moves the cursor right from column 0 to its display
// column.
type Renderer struct {
	out        io.Writer
	prompt     string
	promptCols int
	lastCols   int // total columns of the last rendered line
}

// NewRenderer creates a renderer that writes escape sequences to out.
func NewRenderer(out io.Writer, prompt string) *Renderer {
	cols := 0
	for _, r := range prompt {
		cols += RuneWidth(r)
	}
	return &Renderer{out: out, prompt: prompt, promptCols: cols}
}

// Draw redraws the prompt and line, placing the terminal cursor at
// the rune offset cursorPos within l.Text().
func (r *Renderer) Draw(l *Line, cursorPos int) {
	text := []rune(l.Text())
	fmt.Fprintf(r.out, "\r%s", r.prompt)
	fmt.Fprint(r.out, string(text))

	total := r.promptCols + ColsBetween(text, 0, len(text))
	if total < r.lastCols {
		fmt.Fprint(r.out, spaces(r.lastCols-total))
	}
	r.lastCols = total

	fmt.Fprintf(r.out, "\r\033[%dC", r.promptCols+ColsBetween(text, 0, cursorPos))
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
