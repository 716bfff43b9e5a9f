package cmdhistory

import (
	"regexp"
	"sort"
	"strings"
)

// Match is one history line surviving the filter, together with the
// byte spans (into the line) that matched, so a selection window can
// highlight them.
type Match struct {
	Line  string
	Spans [][2]int
}

// alnumWord splits a filter on anything that isn't a letter or digit,
// the wider word boundary CommandHistory.start()'s second pass uses
// (separators: whitespace, '.', '-', '_', '\').
var alnumWord = regexp.MustCompile(`[a-zA-Z0-9]+`)

// patternRank builds, in decreasing order of strictness, the six regex
// patterns CommandHistory.start() cascades through for a multi-word
// query: a prefix-of-each-word match anchored to the whole line, the
// same unanchored, both repeated against the wider alphanumeric word
// split, a literal-substring fallback, and a final word-substring
// catch-all. Each word group in the four prefix patterns carries a
// trailing wildcard (`[^\s]*` / `[a-zA-Z0-9]*`) so a query like "g c"
// matches "git commit" by prefix, not just by exact word equality —
// spec.md §4.3's acronym-ranking case. When the query collapses to a
// single alphanumeric word (or none) only the literal-substring
// pattern is meaningful, mirroring the Python implementation's
// len(words) <= 1 shortcut.
func patternRank(query string) []*regexp.Regexp {
	spaceWords := strings.Fields(query)
	alnumWords := alnumWord.FindAllString(query, -1)

	if len(alnumWords) <= 1 {
		if query == "" {
			return nil
		}
		return []*regexp.Regexp{
			regexp.MustCompile(`(?i)` + regexp.QuoteMeta(query)),
		}
	}

	spacePrefixed := make([]string, len(spaceWords))
	for i, w := range spaceWords {
		spacePrefixed[i] = regexp.QuoteMeta(w) + `[^\s]*`
	}
	alnumPrefixed := make([]string, len(alnumWords))
	escapedAlnum := make([]string, len(alnumWords))
	for i, w := range alnumWords {
		escapedAlnum[i] = regexp.QuoteMeta(w)
		alnumPrefixed[i] = escapedAlnum[i] + `[a-zA-Z0-9]*`
	}

	spaceJoined := strings.Join(spacePrefixed, `\s+`)
	alnumJoined := strings.Join(alnumPrefixed, `[\s.\-_\\]+`)
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)^` + spaceJoined + `$`),
		regexp.MustCompile(`(?i)` + spaceJoined),
		regexp.MustCompile(`(?i)^` + alnumJoined + `$`),
		regexp.MustCompile(`(?i)` + alnumJoined),
		regexp.MustCompile(`(?i)` + regexp.QuoteMeta(query)),
		regexp.MustCompile(`(?i)` + strings.Join(escapedAlnum, `.*`)),
	}
}

// Filter ranks history lines against query using the cascading
// pattern list, scanning from most to least strict and, within each
// tier, newest entry first — so a highly specific query surfaces its
// best match first even though History stores oldest-first.
func Filter(lines []string, query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]Match, 0, len(lines))
		for i := len(lines) - 1; i >= 0; i-- {
			out = append(out, Match{Line: lines[i]})
		}
		return out
	}

	patterns := patternRank(query)

	seen := make(map[string]bool, len(lines))
	var out []Match

	for _, pat := range patterns {
		for i := len(lines) - 1; i >= 0; i-- {
			line := lines[i]
			if seen[line] {
				continue
			}
			if !pat.MatchString(line) {
				continue
			}
			seen[line] = true
			out = append(out, Match{Line: line, Spans: matchSpans(pat, line)})
		}
	}
	return out
}

func matchSpans(pat *regexp.Regexp, line string) [][2]int {
	locs := pat.FindAllStringIndex(line, -1)
	spans := make([][2]int, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, [2]int{loc[0], loc[1]})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i][0] < spans[j][0] })
	return spans
}
