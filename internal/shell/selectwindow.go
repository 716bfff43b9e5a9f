package shell

import (
	"fmt"
	"os"

	"github.com/gosh-shell/gosh/internal/keybindings"
	"github.com/gosh-shell/gosh/internal/selectwin"
	"github.com/gosh-shell/gosh/internal/ui"
	pkgui "github.com/gosh-shell/gosh/pkg/ui"
)

// runSelectWindow drives spec.md's §4.5 selection window over entries:
// a scrollable, live-filtered grid picker grounded on PyCmd.py's
// Window() popup (instantiated at Tab with multiple completions), but
// generalized here into a shared entry point any multi-candidate
// picker in the shell can drive — Tab-completion and the history
// recall command below both use it.
func (s *Shell) runSelectWindow(header string, entries []string) (selectwin.Result, string) {
	width, height := pkgui.Dimensions(s.out, 80, 24)
	entryWidth := 8
	for _, e := range entries {
		if len(e) > entryWidth {
			entryWidth = len(e)
		}
	}
	rows := height - 3
	if rows < 1 {
		rows = 1
	}

	win := selectwin.New(entries, width, entryWidth, rows)
	f := ui.NewFormatter(s.out)
	query := ""

	pkgui.HideCursor(s.out)
	defer pkgui.ShowCursor(s.out)

	for {
		s.drawSelectWindow(f, header, query, win, entryWidth)

		ev, err := ReadKeyEvent(s.reader, s.stdinFd)
		if err != nil {
			return selectwin.ResultCancel, ""
		}

		switch {
		case ev.Stroke.Equals(keybindings.NewEscapeKeyStroke()) || isCtrlC(ev):
			return selectwin.ResultCancel, ""
		case isEnter(ev):
			return selectwin.ResultSelect, win.Selected()
		case isZapKey(ev):
			return selectwin.ResultZap, win.Selected()
		case ev.Stroke.Equals(keybindings.NewUpArrowKeyStroke()):
			win.Move(0, -1)
		case ev.Stroke.Equals(keybindings.NewDownArrowKeyStroke()):
			win.Move(0, 1)
		case ev.Stroke.Equals(keybindings.NewLeftArrowKeyStroke()):
			win.Move(-1, 0)
		case ev.Stroke.Equals(keybindings.NewRightArrowKeyStroke()):
			win.Move(1, 0)
		case isBackspace(ev):
			if len(query) > 0 {
				query = query[:len(query)-1]
				win.SetQuery(query)
			}
		case !ev.IsControl && ev.Rune != 0:
			query += string(ev.Rune)
			win.SetQuery(query)
		}
	}
}

// isZapKey reports Ctrl-Alt-K, spec.md's "delete from history" chord
// within the selection window. A terminal encodes Alt+<ctrl-byte> as a
// lone Escape followed directly by the control byte, so it arrives as
// an Alt keystroke whose Rune is Ctrl-K's control code (11).
func isZapKey(ev KeyEvent) bool {
	return ev.Stroke.Kind == keybindings.KeyStrokeAlt && ev.Stroke.Rune == 11
}

func (s *Shell) drawSelectWindow(f *ui.Formatter, header, query string, win *selectwin.Window, entryWidth int) {
	pkgui.ClearScreen(s.out)
	f.Header(header)
	for _, row := range win.ViewportRows() {
		line := ""
		for _, e := range row {
			line += fmt.Sprintf("%-*s  ", entryWidth, ui.Ellipsis(e, entryWidth))
		}
		f.Println(line)
	}
	f.Printf("Filter: %s", query)
}

// showHistoryPicker opens the selection window over every stored
// command line, most recent first, grounded on CommandHistory.zap's
// otherwise-uncalled "remove this entry" behavior: Enter recalls the
// chosen line into the prompt for editing, Ctrl-Alt-K zaps it from
// history instead.
func (s *Shell) showHistoryPicker() {
	lines := s.history.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(s.out, "history is empty")
		return
	}
	display := make([]string, len(lines))
	for i, l := range lines {
		display[len(lines)-1-i] = l
	}

	result, selected := s.runSelectWindow("Command history  (Enter: recall   Alt-Ctrl-K: zap   Esc: cancel)", display)
	switch result {
	case selectwin.ResultSelect:
		s.pendingLine = selected
	case selectwin.ResultZap:
		if selected != "" {
			s.history.Zap(selected)
			removeHistoryLine(s.historyFile, selected)
		}
	}
}

// showDirHistoryPicker opens the selection window over the visited
// directories (Alt-D in PyCmd.py), chdir-ing into whichever one the
// user selects.
func (s *Shell) showDirHistoryPicker() {
	paths, _ := s.dirHistory.Display()
	if len(paths) == 0 {
		fmt.Fprintln(s.out, "directory history is empty")
		return
	}

	result, selected := s.runSelectWindow("Directory history  (Enter: jump   Esc: cancel)", paths)
	if result == selectwin.ResultSelect && selected != "" {
		if err := os.Chdir(selected); err == nil {
			s.dirHistory.VisitCWD(selected, false)
			appendHistoryLine(s.dirHistFile, selected, maxDirectoryHistory)
		}
	}
}

// navigateDirHistory drives Alt-Left/Alt-Right on an empty line
// (DirHistory.go_left/go_right), silently stopping at either end the
// same way PyCmd.py drops a chdir failure instead of aborting.
func (s *Shell) navigateDirHistory(step int) {
	var (
		dir string
		err error
	)
	if step < 0 {
		dir, err = s.dirHistory.GoLeft()
	} else {
		dir, err = s.dirHistory.GoRight()
	}
	if err != nil {
		return
	}
	appendHistoryLine(s.dirHistFile, dir, maxDirectoryHistory)
}
