// Package selectwin implements the selection window: a scrollable
// grid picker over an arbitrary list of entries with incremental
// fuzzy filtering (every whitespace-separated word of the query must
// appear in an entry, in order, ignoring case), grounded on the
// teacher's internal/ui.SelectionResult
// contract and internal/interactive's column/viewport math, generalized
// from a fixed git-command list to any []string.
package selectwin

import "strings"

// Result mirrors spec.md §4.5's three return values: a selected
// entry, a zap (delete-from-history) request, or a plain cancel.
type Result int

// Result values.
const (
	ResultCancel Result = iota
	ResultSelect
	ResultZap
)

// Window is a grid/viewport picker over Entries, laid out
// left-to-right then top-to-bottom across as many Columns as fit the
// terminal width.
type Window struct {
	Entries  []string
	filtered []int // indices into Entries surviving the current query
	cursor   int   // index into filtered
	query    string

	Columns int
	Rows    int // visible rows in the viewport
	offset  int // first visible row
}

// New builds a selection window over entries, sized to fit a terminal
// termWidth columns wide, each entry padded to entryWidth+2 columns.
func New(entries []string, termWidth, entryWidth, visibleRows int) *Window {
	cols := termWidth / (entryWidth + 2)
	if cols < 1 {
		cols = 1
	}
	w := &Window{Entries: entries, Columns: cols, Rows: visibleRows}
	w.refilter()
	return w
}

func (w *Window) refilter() {
	w.filtered = w.filtered[:0]
	words := strings.Fields(strings.ToLower(w.query))
	for i, e := range w.Entries {
		rest := strings.ToLower(e)
		matched := true
		for _, word := range words {
			pos := strings.Index(rest, word)
			if pos < 0 {
				matched = false
				break
			}
			rest = rest[pos+len(word):]
		}
		if matched {
			w.filtered = append(w.filtered, i)
		}
	}
	if w.cursor >= len(w.filtered) {
		w.cursor = len(w.filtered) - 1
	}
	if w.cursor < 0 {
		w.cursor = 0
	}
	w.offset = 0
}

// SetQuery updates the fuzzy filter text and re-evaluates which
// entries are visible, clamping the cursor to the surviving entries and
// scrolling the viewport back to the top.
func (w *Window) SetQuery(q string) {
	w.query = q
	w.refilter()
}

// Visible returns the entries currently surviving the filter, in
// original order.
func (w *Window) Visible() []string {
	out := make([]string, len(w.filtered))
	for i, idx := range w.filtered {
		out[i] = w.Entries[idx]
	}
	return out
}

// Move shifts the cursor by (dcol, drow) grid steps, clamped to the
// filtered entry count, and scrolls the viewport to keep the cursor
// visible — centered when possible, the way a fixed-height picker
// should behave rather than always anchoring to the top or bottom.
func (w *Window) Move(dcol, drow int) {
	if len(w.filtered) == 0 {
		return
	}
	row := w.cursor / w.Columns
	col := w.cursor % w.Columns
	row = clamp(row+drow, 0, (len(w.filtered)-1)/w.Columns)
	col = clamp(col+dcol, 0, w.Columns-1)

	idx := row*w.Columns + col
	if idx >= len(w.filtered) {
		idx = len(w.filtered) - 1
	}
	w.cursor = idx
	w.scrollToCursor()
}

func (w *Window) scrollToCursor() {
	row := w.cursor / w.Columns
	if w.Rows <= 0 {
		return
	}
	half := w.Rows / 2
	want := row - half
	maxOffset := maxInt(0, (len(w.filtered)-1)/w.Columns-w.Rows+1)
	w.offset = clamp(want, 0, maxOffset)
}

// ViewportRows returns the rows of entries currently scrolled into
// view, for rendering.
func (w *Window) ViewportRows() [][]string {
	totalRows := (len(w.filtered) + w.Columns - 1) / w.Columns
	lastRow := minInt(totalRows, w.offset+w.Rows)
	rows := make([][]string, 0, lastRow-w.offset)
	for r := w.offset; r < lastRow; r++ {
		var row []string
		for c := 0; c < w.Columns; c++ {
			idx := r*w.Columns + c
			if idx >= len(w.filtered) {
				break
			}
			row = append(row, w.Entries[w.filtered[idx]])
		}
		rows = append(rows, row)
	}
	return rows
}

// Selected returns the entry currently under the cursor, or "" if the
// filtered list is empty.
func (w *Window) Selected() string {
	if w.cursor < 0 || w.cursor >= len(w.filtered) {
		return ""
	}
	return w.Entries[w.filtered[w.cursor]]
}

func clamp(n, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
