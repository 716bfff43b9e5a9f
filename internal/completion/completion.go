// Package completion implements filename, wildcard and environment
// variable completion, grounded on original_source/completion.py's
// complete_file/complete_file_alternate/complete_wildcard/
// complete_env_var/find_common_prefix.
package completion

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Result is the outcome of a completion attempt: the list of matching
// candidates and, when they share one, their common prefix extension.
type Result struct {
	Matches      []string
	CommonPrefix string
}

// CompleteEnvVar expands a partial %NAME or $NAME token against the
// process environment, grounded on complete_env_var.
func CompleteEnvVar(partial string) Result {
	var prefix string
	var sigil string
	switch {
	case strings.HasPrefix(partial, "%"):
		sigil, prefix = "%", partial[1:]
	case strings.HasPrefix(partial, "$"):
		sigil, prefix = "$", partial[1:]
	default:
		return Result{}
	}

	var matches []string
	for _, kv := range os.Environ() {
		name := kv[:strings.IndexByte(kv, '=')]
		if strings.HasPrefix(strings.ToUpper(name), strings.ToUpper(prefix)) {
			matches = append(matches, sigil+name)
		}
	}
	sort.Strings(matches)
	return Result{Matches: matches, CommonPrefix: findCommonPrefix(matches)}
}

// hasWildcards reports whether s contains a shell glob metacharacter.
func hasWildcards(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

// wildcardToRegexp compiles a shell glob pattern (*, ?, [...]) into an
// anchored regexp, grounded on wildcard_to_regex.
func wildcardToRegexp(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteByte('^')
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			j := strings.IndexByte(pattern[i:], ']')
			if j < 0 {
				b.WriteString(regexp.QuoteMeta(string(c)))
				continue
			}
			b.WriteString(pattern[i : i+j+1])
			i += j
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteByte('$')
	return regexp.Compile("(?i)" + b.String())
}

// CompleteWildcard expands a glob pattern (relative to dir) into the
// matching directory entries, grounded on complete_wildcard.
func CompleteWildcard(dir, pattern string) (Result, error) {
	re, err := wildcardToRegexp(pattern)
	if err != nil {
		return Result{}, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Result{}, err
	}
	var matches []string
	for _, e := range entries {
		if re.MatchString(e.Name()) {
			matches = append(matches, e.Name())
		}
	}
	sort.Strings(matches)
	return Result{Matches: matches, CommonPrefix: findCommonPrefix(matches)}, nil
}

// CompleteFile performs simple prefix completion of filenames within
// dir, grounded on complete_file_simple.
func CompleteFile(dir, partial string) (Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Result{}, err
	}
	var matches []string
	lowerPartial := strings.ToLower(partial)
	for _, e := range entries {
		if strings.HasPrefix(strings.ToLower(e.Name()), lowerPartial) {
			name := e.Name()
			if e.IsDir() {
				name += string(filepath.Separator)
			}
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return Result{Matches: matches, CommonPrefix: findCommonPrefix(matches)}, nil
}

// CompleteFileAlternate performs PATH-style completion: partial names
// a bare executable, searched across every directory in pathDirs
// instead of just the current one, grounded on
// complete_file_alternate.
func CompleteFileAlternate(pathDirs []string, partial string) Result {
	seen := map[string]bool{}
	var matches []string
	lowerPartial := strings.ToLower(partial)
	for _, dir := range pathDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if !strings.HasPrefix(strings.ToLower(e.Name()), lowerPartial) {
				continue
			}
			if hasExecExtension(e.Name()) && !seen[e.Name()] {
				seen[e.Name()] = true
				matches = append(matches, e.Name())
			}
		}
	}
	sort.Strings(matches)
	return Result{Matches: matches, CommonPrefix: findCommonPrefix(matches)}
}

var execExtensions = []string{".exe", ".bat", ".cmd", ".com"}

func hasExecExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range execExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// findCommonPrefix computes the longest common prefix of matches,
// applying a majority-casing heuristic: when candidates disagree only
// on case at a position, the case used by the majority wins instead
// of bailing out of the shared prefix early, grounded on
// find_common_prefix.
func findCommonPrefix(matches []string) string {
	if len(matches) == 0 {
		return ""
	}
	if len(matches) == 1 {
		return matches[0]
	}

	shortest := matches[0]
	for _, m := range matches[1:] {
		if len(m) < len(shortest) {
			shortest = m
		}
	}

	var b strings.Builder
	for i := 0; i < len(shortest); i++ {
		counts := map[byte]int{}
		ok := true
		for _, m := range matches {
			if i >= len(m) || !strings.EqualFold(string(m[i]), string(shortest[i])) {
				ok = false
				break
			}
			counts[m[i]]++
		}
		if !ok {
			break
		}
		b.WriteByte(majorityByte(counts))
	}
	return b.String()
}

func majorityByte(counts map[byte]int) byte {
	var best byte
	bestN := -1
	// Deterministic tie-break: iterate in a fixed order over the
	// observed bytes rather than Go's randomized map order.
	keys := make([]byte, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		if counts[k] > bestN {
			bestN = counts[k]
			best = k
		}
	}
	return best
}
