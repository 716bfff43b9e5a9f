package shell

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gosh-shell/gosh/internal/ansi"
	"github.com/gosh-shell/gosh/internal/config"
	"github.com/gosh-shell/gosh/pkg/git"
)

// BuildPrompt renders the prompt string for cwd according to
// cfg.Appearance.Prompt ("abbrev_path", the default, or "git_branch"),
// grounded on example-init.py's git_prompt(): "[branch] abbrev_path> ".
// A git_branch lookup failure (not a repo, detached HEAD, no git in
// PATH) silently falls back to the bare abbrev_path form.
func BuildPrompt(cfg *config.Config, gitClient *git.Client, cwd string) string {
	abbrev := AbbrevPath(cwd)

	var b strings.Builder
	if cfg.Appearance.Prompt == "git_branch" && gitClient != nil {
		if branch, err := gitClient.GetCurrentBranch(); err == nil && branch != "" {
			b.WriteString(fgEscape("toggle_blue"))
			b.WriteByte('[')
			b.WriteString(branch)
			b.WriteByte(']')
			b.WriteString(resetFg())
			b.WriteByte(' ')
		}
	}

	b.WriteString(fgEscape(cfg.Appearance.Colors.Prompt))
	b.WriteString(abbrev)
	b.WriteString("> ")
	b.WriteString(resetFg())
	return b.String()
}

// fgEscape encodes name (e.g. "bright", "toggle_blue") as one internal
// color escape, or "" if name is empty or unrecognized.
func fgEscape(name string) string {
	op, comp, ok := parseColorName(name)
	if !ok {
		return ""
	}
	return ansi.Escape{Target: ansi.TargetForeground, Op: op, Component: comp}.Encode()
}

// resetFg clears every foreground component, the equivalent of
// color.Fore.DEFAULT in example-init.py.
func resetFg() string {
	var b strings.Builder
	for _, c := range [...]ansi.Component{ansi.ComponentRed, ansi.ComponentGreen, ansi.ComponentBlue, ansi.ComponentBright} {
		b.WriteString(ansi.Escape{Target: ansi.TargetForeground, Op: ansi.OpClear, Component: c}.Encode())
	}
	return b.String()
}

func parseColorName(name string) (ansi.Op, ansi.Component, bool) {
	op := ansi.OpSet
	if rest, ok := strings.CutPrefix(name, "toggle_"); ok {
		op = ansi.OpToggle
		name = rest
	}
	switch name {
	case "red":
		return op, ansi.ComponentRed, true
	case "green":
		return op, ansi.ComponentGreen, true
	case "blue":
		return op, ansi.ComponentBlue, true
	case "bright":
		return op, ansi.ComponentBright, true
	}
	return 0, 0, false
}

// AbbrevPath abbreviates an absolute POSIX path to the initials of
// each ancestor directory, disambiguating against sibling directories
// that collide on abbreviation by falling back to the full name —
// generalized from common.abbrev_path's Windows drive-letter root
// (`current_dir = path[:3]`) to the single-character POSIX root.
func AbbrevPath(path string) string {
	path = filepath.Clean(path)
	if path == "/" || path == "." {
		return "/"
	}

	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	currentDir := "/"
	var abbrev strings.Builder

	for i, elem := range parts {
		if i == len(parts)-1 {
			abbrev.WriteByte('/')
			abbrev.WriteString(elem)
			break
		}

		elemAbbrev := abbrevString(elem)
		if entries, err := os.ReadDir(currentDir); err == nil {
			for _, entry := range entries {
				if !entry.IsDir() {
					continue
				}
				other := entry.Name()
				if strings.EqualFold(abbrevString(other), elemAbbrev) && !strings.EqualFold(other, elem) {
					elemAbbrev = elem
					break
				}
			}
		}

		currentDir = filepath.Join(currentDir, elem)
		abbrev.WriteByte('/')
		abbrev.WriteString(elemAbbrev)
	}

	return abbrev.String()
}

// abbrevString abbreviates a single path component by keeping its
// first character, its uppercase letters (unless the whole component
// is uppercase, see stringIsUpper), its non-alphabetic characters other
// than spaces, and the letter right after a space or non-alphabetic
// character, so "go-shell" becomes "g-s" and "ABC" becomes "A" — a direct port of
// common.abbrev_string's character-at-a-time state machine.
func abbrevString(s string) string {
	allUpper := stringIsUpper(s)
	addNext := true
	var b strings.Builder

	for _, r := range s {
		addThis := addNext
		switch {
		case r == ' ':
			addThis = false
			addNext = true
		case !unicode.IsLetter(r):
			addThis = true
			addNext = true
		case unicode.IsUpper(r) && !allUpper:
			addThis = true
			addNext = false
		default:
			addNext = false
		}
		if addThis {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stringIsUpper reports whether s has at least one cased letter and no
// lowercase ones, matching Python str.isupper()'s semantics.
func stringIsUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}
