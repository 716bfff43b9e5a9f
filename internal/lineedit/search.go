package lineedit

import "strings"

// SearchState holds the cursor of an incremental backward/forward
// search through a list of candidate strings (command history lines),
// keyed by the query typed so far.
type SearchState struct {
	active  bool
	forward bool
	query   []rune
	pos     int // index into the last candidates slice searched
}

// Active reports whether an incremental search is in progress.
func (l *Line) Active() bool { return l.search.active }

// Query returns the characters typed into the current search so far.
func (l *Line) Query() string { return string(l.search.query) }

// BeginSearch starts an incremental search in the given direction.
// Ctrl-R-style "search left" looks toward older (earlier-index)
// entries, "search right" toward newer ones, matching key_search_left
// / key_search_right.
func (l *Line) BeginSearch(forward bool) {
	l.search = SearchState{active: true, forward: forward, query: []rune(l.Text()), pos: -1}
}

// SearchChar appends one rune to the running query and returns the
// next matching candidate, if any.
func (l *Line) SearchChar(r rune, candidates []string) (string, bool) {
	l.search.query = append(l.search.query, r)
	return l.advanceSearch(candidates)
}

// SearchBackspace removes the last query rune.
func (l *Line) SearchBackspace(candidates []string) (string, bool) {
	if len(l.search.query) > 0 {
		l.search.query = l.search.query[:len(l.search.query)-1]
	}
	l.search.pos = -1
	return l.advanceSearch(candidates)
}

// SearchAdvance repeats the search for the next match further in the
// configured direction (key_search_right/_left when pressed again
// without changing the query — "find the next older/newer match").
func (l *Line) SearchAdvance(candidates []string) (string, bool) {
	return l.advanceSearch(candidates)
}

func (l *Line) advanceSearch(candidates []string) (string, bool) {
	if len(l.search.query) == 0 {
		return "", false
	}
	q := string(l.search.query)

	if l.search.forward {
		for i := l.search.pos + 1; i < len(candidates); i++ {
			if strings.Contains(candidates[i], q) {
				l.search.pos = i
				return candidates[i], true
			}
		}
	} else {
		start := l.search.pos - 1
		if l.search.pos < 0 {
			start = len(candidates) - 1
		}
		for i := start; i >= 0; i-- {
			if strings.Contains(candidates[i], q) {
				l.search.pos = i
				return candidates[i], true
			}
		}
	}
	return "", false
}

// EndSearch stops the incremental search. If accept is true the
// current buffer is left as-is (the match becomes the line); if false
// the search is simply abandoned without restoring prior text — the
// caller is expected to have kept its own pre-search snapshot when it
// wants cancel semantics.
func (l *Line) EndSearch(accept bool) {
	l.search = SearchState{}
	_ = accept
}
