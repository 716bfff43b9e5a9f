//go:build windows

package backend

import (
	"debug/pe"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gosh-shell/gosh/internal/config"
)

// New returns the Windows execution bridge, satisfying Backend.
func New(cfg *config.Config) (Backend, error) {
	return NewWindows(cfg.Behavior.DelayedExpansion), nil
}

// pushdStack is the captured pushd stack from the last command, to be
// re-enacted at the front of the next one per spec.md §4.2's shared
// contract ("Pushd-stack re-enactment" in SPEC_FULL.md's supplemented
// features).
type pushdStack struct {
	dirs []string
}

// prefix builds the "cd /d <first> & pushd <rest> & " string to
// prepend to the next submitted command, or "" if the stack is empty.
func (p pushdStack) prefix() string {
	if len(p.dirs) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "cd /d %s & ", quoteArg(p.dirs[0]))
	for _, d := range p.dirs[1:] {
		fmt.Fprintf(&b, "pushd %s & ", quoteArg(d))
	}
	return b.String()
}

func quoteArg(s string) string {
	if strings.ContainsAny(s, " \t&|<>^()%!\"") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// Windows bridges one typed line through cmd.exe, exactly as
// spec.md §4.2's Windows strategy describes: a single assembled
// command string, `set`/CD/ERRORLEVEL/pushd dumped to a temp file,
// then parsed back into the process environment.
type Windows struct {
	DelayedExpansion bool
	pushd            pushdStack
}

// NewWindows returns a Windows bridge with delayedExpansion controlling
// whether commands run under `/V:ON` with `!VAR!` substitution.
func NewWindows(delayedExpansion bool) *Windows {
	return &Windows{DelayedExpansion: delayedExpansion}
}

// sanitizeLine applies the pre-spawn sanitization rules: tilde
// expansion, trailing-backslash stripping, unbalanced-quote closing,
// and trailing-ampersand dropping.
func sanitizeLine(line string) string {
	line = expandLeadingTilde(line)

	fields := strings.Fields(line)
	for i, f := range fields {
		if f == `\` || isDriveRoot(f) {
			continue
		}
		fields[i] = strings.TrimRight(f, `\`)
	}
	line = strings.Join(fields, " ")

	if strings.Count(line, `"`)%2 != 0 {
		line += `"`
	}
	line = strings.TrimSuffix(strings.TrimRight(line, " "), "&")
	return line
}

func isDriveRoot(s string) bool {
	return len(s) == 3 && s[1] == ':' && s[2] == '\\'
}

func expandLeadingTilde(line string) string {
	if !strings.HasPrefix(line, "~") {
		return line
	}
	home := os.Getenv("USERPROFILE")
	if home == "" {
		home = os.Getenv("HOME")
	}
	return home + line[1:]
}

// endsWithUnescapedPipeOrAnd reports whether the line, trimmed, ends
// with an unescaped `|` or `&&` — the only two forms spec.md's
// Open-Question decision says to check (faithfully reproducing the
// documented, possibly-buggy original behavior of checking `&&` but
// never `||`).
func endsWithUnescapedPipeOrAnd(line string) bool {
	trimmed := strings.TrimRight(line, " ")
	if strings.HasSuffix(trimmed, "^|") || strings.HasSuffix(trimmed, "^&&") {
		return false
	}
	return strings.HasSuffix(trimmed, "|") || strings.HasSuffix(trimmed, "&&")
}

const pushdBeginMarker = "===PUSHD STACK BEGIN==="
const pushdEndMarker = "===PUSHD STACK END==="

// Run executes line via cmd.exe, applying the sanitization and
// pushd-prefix rules, then reconstructs env/CWD/ERRORLEVEL from the
// dumped temp file.
func (w *Windows) Run(line string) (Result, error) {
	// Checked before sanitizing, which would strip one '&' off a
	// trailing "&&" and hide it.
	if endsWithUnescapedPipeOrAnd(line) {
		trimmed := strings.TrimRight(line, " ")
		return Result{}, fmt.Errorf("cmd syntax error: unexpected %q", trimmed[len(trimmed)-1:])
	}
	line = sanitizeLine(line)

	if target, ok := resolveSimpleExecutable(line); ok {
		if isGUIExecutable(target) {
			if err := spawnDetached(target, line); err == nil {
				return Result{ErrorLevel: "0"}, nil
			}
		}
	}

	tmp, err := os.CreateTemp("", "gosh-cmd-*.tmp")
	if err != nil {
		return Result{}, err
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(tmpPath)

	full := w.pushd.prefix() + line
	full += fmt.Sprintf(` & set > "%s" & echo CD="%%CD%%" >> "%s" & echo ERRORLEVEL="%%ERRORLEVEL%%" >> "%s" & echo %s >> "%s" & pushd >> "%s" & echo %s >> "%s"`,
		tmpPath, tmpPath, tmpPath, pushdBeginMarker, tmpPath, tmpPath, pushdEndMarker, tmpPath)

	comspec := os.Getenv("COMSPEC")
	if comspec == "" {
		comspec = "cmd.exe"
	}
	args := []string{"/c", full}
	if w.DelayedExpansion {
		args = append([]string{"/V:ON"}, args...)
		full = strings.ReplaceAll(full, "%CD%", "!CD!")
		full = strings.ReplaceAll(full, "%ERRORLEVEL%", "!ERRORLEVEL!")
		args[len(args)-1] = full
	}

	cmd := exec.Command(comspec, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	_ = cmd.Run()

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return Result{}, err
	}
	return w.parseDump(string(data))
}

func (w *Windows) parseDump(dump string) (Result, error) {
	beginIdx := strings.Index(dump, pushdBeginMarker)
	endIdx := strings.Index(dump, pushdEndMarker)
	envPart := dump
	var pushdPart string
	if beginIdx >= 0 && endIdx > beginIdx {
		envPart = dump[:beginIdx]
		pushdPart = dump[beginIdx+len(pushdBeginMarker) : endIdx]
	}

	env := parseEnvDump(envPart)
	w.pushd = pushdStack{dirs: splitNonEmptyLines(pushdPart)}

	res := Result{Env: env, CWD: env["CD"], ErrorLevel: env["ERRORLEVEL"]}
	if !isCrashSignature(env) {
		ApplyEnvDelta(env)
		if res.CWD != "" {
			_ = os.Chdir(res.CWD)
		}
	}
	return res, nil
}

func splitNonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// resolveSimpleExecutable resolves the first whitespace-delimited
// token of a non-compound command line to an executable path, the way
// GUI-application detection needs before it can peek at the PE
// header — compound lines (containing &, &&, |, ||) are left alone.
func resolveSimpleExecutable(line string) (string, bool) {
	if strings.ContainsAny(line, "&|") {
		return "", false
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	token := fields[0]
	if path, err := exec.LookPath(token); err == nil {
		return path, true
	}
	for _, ext := range []string{".exe", ".com", ".bat", ".cmd"} {
		if path, err := exec.LookPath(token + ext); err == nil {
			return path, true
		}
	}
	return "", false
}

// isGUIExecutable reports whether path is a PE binary whose
// optional-header subsystem is IMAGE_SUBSYSTEM_WINDOWS_GUI.
func isGUIExecutable(path string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".exe") {
		return false
	}
	f, err := pe.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	const imageSubsystemWindowsGUI = 2
	switch oh := f.OptionalHeader.(type) {
	case *pe.OptionalHeader32:
		return oh.Subsystem == imageSubsystemWindowsGUI
	case *pe.OptionalHeader64:
		return oh.Subsystem == imageSubsystemWindowsGUI
	}
	return false
}

func spawnDetached(path, fullLine string) error {
	cmd := exec.Command(path)
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil
	return cmd.Start()
}
