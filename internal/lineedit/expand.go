package lineedit

import "strings"

// ExpandState tracks a dynamic-abbreviation cycle: the partial word
// being completed, the set of matches found on the first Alt-/ press,
// and which one is currently substituted in.
type ExpandState struct {
	active     bool
	prefixStart int // rune offset in Before() where the partial word begins
	original   string
	matches    []string
	index      int
}

// Expand implements dynamic abbreviation expansion (Emacs Alt-/),
// grounded on InputState.py's key_expand: on the first call, split
// before at the last literal space into stub (the partial word) and
// context (the word preceding it), then scan history newest-first,
// and within each line right-to-left, for tokens that case-
// insensitively prefix-match stub without equalling it. A token whose
// own left neighbour case-insensitively equals context is a context
// match and ranks ahead of every non-context match, regardless of
// which history line either came from. Each subsequent call (while
// the dispatched action keeps being ActionExpand) cycles to the next
// match in that order, wrapping back to the original stub after the
// last one.
func (l *Line) Expand(history []string) {
	if !l.expand.active {
		lastSpace := -1
		for i := len(l.before) - 1; i >= 0; i-- {
			if l.before[i] == ' ' {
				lastSpace = i
				break
			}
		}
		start := lastSpace + 1
		stub := string(l.before[start:])
		if stub == "" {
			return
		}
		context := ""
		if lastSpace >= 0 {
			prevSpace := -1
			for i := lastSpace - 1; i >= 0; i-- {
				if l.before[i] == ' ' {
					prevSpace = i
					break
				}
			}
			context = string(l.before[prevSpace+1 : lastSpace])
		}

		lowerStub := strings.ToLower(stub)
		lowerContext := strings.ToLower(context)

		var contextMatches, noContextMatches []string
		for i := len(history) - 1; i >= 0; i-- {
			tokens := append([]string{""}, strings.Split(history[i], " ")...)
			for j := len(tokens) - 1; j >= 1; j-- {
				word := tokens[j]
				lowerWord := strings.ToLower(word)
				if lowerWord == lowerStub || !strings.HasPrefix(lowerWord, lowerStub) {
					continue
				}
				if strings.ToLower(tokens[j-1]) == lowerContext {
					contextMatches = append(contextMatches, word)
				} else {
					noContextMatches = append(noContextMatches, word)
				}
			}
		}

		seen := map[string]bool{}
		var matches []string
		for _, word := range append(contextMatches, noContextMatches...) {
			if !seen[word] {
				seen[word] = true
				matches = append(matches, word)
			}
		}
		l.expand = ExpandState{active: true, prefixStart: start, original: stub, matches: matches, index: -1}
	}

	if len(l.expand.matches) == 0 {
		return
	}
	l.expand.index++
	var replacement string
	if l.expand.index >= len(l.expand.matches) {
		l.expand.index = -1
		replacement = l.expand.original
	} else {
		replacement = l.expand.matches[l.expand.index]
	}

	l.before = append(append([]rune{}, l.before[:l.expand.prefixStart]...), []rune(replacement)...)
}
