package completion

import "strings"

// NeedsQuoting reports whether name must be wrapped in quotes when
// inserted into the command line — it contains whitespace or one of
// the shell-special characters PyCmd's common.contains_special_char
// checks for.
func NeedsQuoting(name string) bool {
	return strings.ContainsAny(name, " \t&|<>^()%!\"'")
}

// Quote wraps name in double quotes if NeedsQuoting reports true,
// otherwise returns it unchanged.
func Quote(name string) string {
	if !NeedsQuoting(name) {
		return name
	}
	return `"` + strings.ReplaceAll(name, `"`, `\"`) + `"`
}

// HasWildcards reports whether s contains a glob metacharacter,
// exported for callers deciding between CompleteFile and
// CompleteWildcard.
func HasWildcards(s string) bool { return hasWildcards(s) }
