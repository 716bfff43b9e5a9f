// Package shell wires the line editor, command history, directory
// history and the platform backend into the interactive read-eval
// loop, grounded on the teacher's realTimeEditor/processRealTimeInput
// main loop (cmd/interactive.go) and PyCmd.py's top-level run() loop.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosh-shell/gosh/internal/backend"
	"github.com/gosh-shell/gosh/internal/cmdhistory"
	"github.com/gosh-shell/gosh/internal/config"
	"github.com/gosh-shell/gosh/internal/dirhistory"
	"github.com/gosh-shell/gosh/internal/keybindings"
	"github.com/gosh-shell/gosh/internal/lineedit"
	"github.com/gosh-shell/gosh/internal/termio"
	"github.com/gosh-shell/gosh/pkg/git"
)

const (
	maxCommandHistory   = 2000 // save_history_limit in PyCmd.py
	maxDirectoryHistory = 100
)

// Shell holds every piece of state one interactive session needs:
// the line editor and its renderer, the resolved keybinding map for
// the active profile, command/directory history with their on-disk
// backing files, the platform backend that actually runs typed
// commands, and the git client the prompt decorator shells out to.
type Shell struct {
	term   termio.Terminal
	stdinFd uintptr
	reader *bufio.Reader
	out    io.Writer

	cfg    *config.Config
	keymap *keybindings.KeyBindingMap

	line     *lineedit.Line
	renderer *lineedit.Renderer

	history      *cmdhistory.History
	historyFile  string
	trail        *cmdhistory.Trail
	historyQuery string

	searchSnapshot string
	pendingLine    string

	dirHistory *dirhistory.History
	dirHistFile string

	backend   backend.Backend
	gitClient *git.Client
}

// New builds a Shell ready to Run: it resolves the active keybinding
// profile, loads the persisted command/directory history files from
// the data directory, and opens the configured backend.
func New(cfg *config.Config, in io.Reader, out io.Writer, stdinFd uintptr) (*Shell, error) {
	be, err := backend.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("start backend: %w", err)
	}

	resolver := keybindings.NewKeyBindingResolver(cfg)
	keybindings.RegisterBuiltinProfiles(resolver)
	profile := keybindings.ProfileDefault
	if cfg.Interactive.Profile != "" {
		profile = keybindings.Profile(cfg.Interactive.Profile)
	}
	keymap, err := resolver.Resolve(profile, keybindings.ContextInput)
	if err != nil {
		return nil, fmt.Errorf("resolve keybindings: %w", err)
	}

	dataDir, err := config.DataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	historyFile := filepath.Join(dataDir, "history")
	dirHistFile := filepath.Join(dataDir, "dir_history")

	history := cmdhistory.New(maxCommandHistory)
	for _, line := range readHistoryFile(historyFile) {
		history.Add(line)
	}

	dirHist := dirhistory.New(maxDirectoryHistory)
	if cwd, err := os.Getwd(); err == nil {
		dirHist.VisitCWD(cwd, false)
	}
	for _, line := range readHistoryFile(dirHistFile) {
		dirHist.VisitCWD(line, false)
	}

	s := &Shell{
		term:        termio.DefaultTerminal{},
		stdinFd:     stdinFd,
		reader:      bufio.NewReader(in),
		out:         out,
		cfg:         cfg,
		keymap:      keymap,
		line:        lineedit.New(),
		history:     history,
		historyFile: historyFile,
		dirHistory:  dirHist,
		dirHistFile: dirHistFile,
		backend:     be,
		gitClient:   git.NewClient(),
	}
	return s, nil
}

// Run is the interactive read-eval loop: draw the prompt, read and
// dispatch one keystroke at a time until Enter or Ctrl+C, run the
// accepted line through the backend, record it in history, and repeat
// — spec.md §2's control-flow sentence translated into a loop.
func (s *Shell) Run() error {
	state, err := s.term.MakeRaw(int(s.stdinFd))
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() { _ = s.term.Restore(int(s.stdinFd), state) }()

	for {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "?"
		}
		prompt := BuildPrompt(s.cfg, s.gitClient, cwd)
		s.renderer = lineedit.NewRenderer(s.out, prompt)
		s.line.Reset()
		s.trail = nil
		if s.pendingLine != "" {
			s.line.SetText(s.pendingLine)
			s.pendingLine = ""
		}

		line, ok, err := s.readLine()
		if err != nil {
			fmt.Fprintln(s.out)
			return nil
		}
		if !ok {
			fmt.Fprintln(s.out)
			continue
		}
		fmt.Fprintln(s.out)

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if exit, code := isExitCommand(line); exit {
			s.recordLine(line)
			return exitError(code)
		}
		if strings.EqualFold(line, "history") {
			s.showHistoryPicker()
			continue
		}

		s.runLine(line)
	}
}

// readLine drives the keystroke loop for a single input line, redrawing
// after every dispatched key. ok is false when the user soft-cancelled
// (Ctrl+C) rather than submitting or hitting EOF.
func (s *Shell) readLine() (text string, ok bool, err error) {
	for {
		s.renderer.Draw(s.line, s.line.CursorPos())

		ev, readErr := ReadKeyEvent(s.reader, s.stdinFd)
		if readErr != nil {
			if readErr == io.EOF {
				return "", false, io.EOF
			}
			return "", false, readErr
		}

		result := s.handleKey(ev)
		if result.submit {
			return result.text, true, nil
		}
		if result.canceled {
			return "", false, nil
		}
	}
}

// runLine sends line to the backend and applies whatever environment
// and working-directory delta it reconstructs, printing the child's
// captured output first.
func (s *Shell) runLine(line string) {
	s.RunCommand(line)
}

// RunCommand runs line through the backend outside the interactive
// loop — the path cmd/gosh/main.go's -c/-k flags use to execute one
// command before exiting or dropping into Run. It records line in
// history exactly like a line entered interactively, and returns the
// numeric exit status the backend reconstructed.
func (s *Shell) RunCommand(line string) int {
	s.recordLine(line)

	result, err := s.backend.Run(line)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return 1
	}
	if result.Output != "" {
		fmt.Fprint(s.out, result.Output)
	}
	backend.ApplyEnvDelta(result.Env)
	if result.CWD != "" {
		if err := os.Chdir(result.CWD); err == nil {
			s.dirHistory.VisitCWD(result.CWD, false)
			appendHistoryLine(s.dirHistFile, result.CWD, maxDirectoryHistory)
		}
	}

	code := 0
	fmt.Sscanf(result.ErrorLevel, "%d", &code)
	return code
}

// recordLine adds line to the in-memory history and appends it to the
// on-disk history file, mirroring PyCmd.py's update_history calls
// around state.history.add.
func (s *Shell) recordLine(line string) {
	s.history.Add(line)
	appendHistoryLine(s.historyFile, line, maxCommandHistory)
}

// isExitCommand reports whether line is the "exit" builtin, optionally
// followed by a numeric status code.
func isExitCommand(line string) (bool, int) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.EqualFold(fields[0], "exit") {
		return false, 0
	}
	code := 0
	if len(fields) > 1 {
		fmt.Sscanf(fields[1], "%d", &code)
	}
	return true, code
}

// exitStatus carries the process exit code requested by the "exit"
// builtin back up to cmd/gosh/main.go.
type exitStatus struct{ Code int }

func (e *exitStatus) Error() string { return fmt.Sprintf("exit %d", e.Code) }

func exitError(code int) error { return &exitStatus{Code: code} }

// ExitCode extracts the status code from an error Run returned, if it
// came from the "exit" builtin; ok is false for any other error (or a
// nil error, meaning EOF).
func ExitCode(err error) (code int, ok bool) {
	if e, isExit := err.(*exitStatus); isExit {
		return e.Code, true
	}
	return 0, false
}

// readHistoryFile reads one history entry per line, grounded on
// PyCmd.py's read_history: a plain UTF-8 text file, missing file
// treated as empty history rather than an error.
func readHistoryFile(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// appendHistoryLine merges line into the on-disk history file,
// removing any earlier occurrence first so re-running a command moves
// it to the end instead of duplicating it, then truncates to the last
// limit entries — a direct port of PyCmd.py's update_history.
func appendHistoryLine(path, line string, limit int) {
	lines := readHistoryFile(path)
	for i, existing := range lines {
		if existing == line {
			lines = append(lines[:i], lines[i+1:]...)
			break
		}
	}
	lines = append(lines, line)
	if limit > 0 && len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	_ = os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600)
}

// removeHistoryLine drops every occurrence of line from the on-disk
// history file, backing the selection window's Ctrl-Alt-K zap action.
func removeHistoryLine(path, line string) {
	lines := readHistoryFile(path)
	kept := lines[:0]
	for _, existing := range lines {
		if existing != line {
			kept = append(kept, existing)
		}
	}
	_ = os.WriteFile(path, []byte(strings.Join(kept, "\n")+"\n"), 0o600)
}
