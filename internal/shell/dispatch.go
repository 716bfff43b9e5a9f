package shell

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gosh-shell/gosh/internal/cmdhistory"
	"github.com/gosh-shell/gosh/internal/completion"
	"github.com/gosh-shell/gosh/internal/keybindings"
	"github.com/gosh-shell/gosh/internal/lineedit"
	"github.com/gosh-shell/gosh/internal/selectwin"
)

// builtinNames is the hard-coded list Tab-completion adds to the PATH
// search at a command-start position, grounded on spec.md's completion
// paragraph ("a hard-coded list of built-in command names").
var builtinNames = []string{"cd", "exit", "history", "set", "cls"}

// dispatchResult tells the event loop what to do after one keystroke:
// submit the line to the backend, cancel it outright (Ctrl+C), or
// neither (the common case — just keep editing).
type dispatchResult struct {
	submit   bool
	canceled bool
	text     string
}

func isEnter(ev KeyEvent) bool     { return ev.Rune == '\r' || ev.Rune == '\n' }
func isBackspace(ev KeyEvent) bool { return ev.Rune == 127 || ev.Rune == 8 }
func isCtrlC(ev KeyEvent) bool     { return ev.IsControl && ev.Rune == 3 }

// isAltLeft and isAltRight recognize the xterm "modifier+arrow" CSI
// form (ESC [ 1 ; 3 <D|C>) terminals send for Alt+Left/Alt+Right,
// PyCmd.py's dual-purpose chord: word-move with text on the line,
// directory-history navigation on an empty one.
func isAltLeft(ev KeyEvent) bool  { return matchesModifiedArrow(ev, 'D', "1;3") }
func isAltRight(ev KeyEvent) bool { return matchesModifiedArrow(ev, 'C', "1;3") }

func matchesModifiedArrow(ev KeyEvent, final byte, params string) bool {
	seq := ev.Stroke.Seq
	if len(seq) < 4 || seq[0] != 27 || seq[1] != '[' || seq[len(seq)-1] != final {
		return false
	}
	return string(seq[2:len(seq)-1]) == params
}

// altWordOrDirHistory implements PyCmd.py's Alt-Left/Alt-Right branch:
// on an empty line it walks the directory history instead of moving
// the cursor, since there is no word to move across.
func (s *Shell) altWordOrDirHistory(step int, wordAction lineedit.Action) {
	if s.line.Text() == "" {
		s.navigateDirHistory(step)
		return
	}
	s.line.Handle(wordAction, "")
}

// handleKey decodes one KeyEvent against the active keybinding profile
// and the hardwired, non-rebindable keys (Enter, Ctrl+C, Backspace,
// Tab) that never go through the resolver, mirroring how the teacher's
// realTimeEditor.handleInput special-cases the same four before
// falling through to its general dispatch.
func (s *Shell) handleKey(ev KeyEvent) dispatchResult {
	if isEnter(ev) {
		return dispatchResult{submit: true, text: s.line.Text()}
	}
	if isCtrlC(ev) {
		if s.line.Active() {
			s.line.EndSearch(false)
			s.line.SetText(s.searchSnapshot)
			return dispatchResult{}
		}
		return dispatchResult{canceled: true}
	}

	if s.line.Active() {
		s.dispatchSearchKey(ev)
		return dispatchResult{}
	}

	switch {
	case isBackspace(ev):
		s.resetTrail()
		s.line.Handle(lineedit.ActionDeleteCharLeft, "")
		return dispatchResult{}
	case ev.Stroke.Equals(keybindings.NewTabKeyStroke()):
		s.handleTab()
		return dispatchResult{}
	case isAltLeft(ev):
		s.altWordOrDirHistory(-1, lineedit.ActionMoveWordLeft)
		return dispatchResult{}
	case isAltRight(ev):
		s.altWordOrDirHistory(1, lineedit.ActionMoveWordRight)
		return dispatchResult{}
	case ev.Stroke.Kind == keybindings.KeyStrokeAlt && (ev.Stroke.Rune == 'd' || ev.Stroke.Rune == 'D'):
		s.showDirHistoryPicker()
		return dispatchResult{}
	}

	if action, ok := s.keymap.ResolveAction(ev.Stroke); ok {
		s.dispatchAction(action)
		return dispatchResult{}
	}

	if !ev.IsControl && ev.Rune != 0 {
		s.resetTrail()
		s.line.Handle(lineedit.ActionInsertRune, string(ev.Rune))
	}
	return dispatchResult{}
}

// dispatchAction applies a resolved, rebindable action name. Most map
// straight onto a Line.Handle call; move_up/move_down, search_*,
// expand and soft_cancel carry shell-level state (the history trail,
// the pre-search snapshot) that Line itself doesn't track.
func (s *Shell) dispatchAction(action string) {
	switch action {
	case "delete_word":
		s.resetTrail()
		s.line.Handle(lineedit.ActionDeleteWordLeft, "")
	case "clear_line":
		s.resetTrail()
		s.line.Handle(lineedit.ActionClearLine, "")
	case "delete_to_end":
		s.line.Handle(lineedit.ActionDeleteToEnd, "")
	case "move_to_beginning":
		s.line.Handle(lineedit.ActionMoveHome, "")
	case "move_to_end":
		s.line.Handle(lineedit.ActionMoveEnd, "")
	case "move_left":
		s.line.Handle(lineedit.ActionMoveLeft, "")
	case "move_right":
		s.line.Handle(lineedit.ActionMoveRight, "")
	case "move_word_left":
		s.line.Handle(lineedit.ActionMoveWordLeft, "")
	case "move_word_right":
		s.line.Handle(lineedit.ActionMoveWordRight, "")
	case "extend_selection":
		s.line.Handle(lineedit.ActionExtendSelection, "")
	case "shrink_selection":
		s.line.Handle(lineedit.ActionShrinkSelection, "")
	case "undo":
		s.line.Handle(lineedit.ActionUndo, "")
	case "redo":
		s.line.Handle(lineedit.ActionRedo, "")
	case "undo_emacs":
		s.line.Handle(lineedit.ActionUndoEmacs, "")
	case "move_up":
		s.historyUp()
	case "move_down":
		s.historyDown()
	case "search_right":
		s.beginOrAdvanceSearch(true)
	case "search_left":
		s.beginOrAdvanceSearch(false)
	case "expand":
		s.line.Expand(s.history.Lines())
	case "soft_cancel":
		s.softCancel()
	}
}

// historyUp starts a history trail over the lines matching whatever
// was typed so far (the first Up press's text becomes the filter
// query, exactly like CommandHistory.start/up) and steps it back one
// entry; historyDown steps it forward, restoring the original query
// once the trail runs back off the bottom.
func (s *Shell) historyUp() {
	if s.trail == nil {
		s.historyQuery = s.line.Text()
		s.trail = cmdhistory.NewTrail(cmdhistory.Filter(s.history.Lines(), s.historyQuery))
	}
	if line, ok := s.trail.Up(); ok {
		s.line.SetText(line)
	}
}

func (s *Shell) historyDown() {
	if s.trail == nil {
		return
	}
	line, ok := s.trail.Down()
	if !ok {
		return
	}
	if line == "" {
		s.line.SetText(s.historyQuery)
	} else {
		s.line.SetText(line)
	}
}

func (s *Shell) resetTrail() { s.trail = nil }

// beginOrAdvanceSearch starts an incremental search (snapshotting the
// current line so soft-cancel can restore it) or, if one is already
// running, looks for the next match further in the same direction.
// Reversing direction mid-search isn't supported — BeginSearch is the
// only place a direction gets set, so pressing the opposite key just
// keeps searching the original way; documented as a simplification.
func (s *Shell) beginOrAdvanceSearch(forward bool) {
	if !s.line.Active() {
		s.searchSnapshot = s.line.Text()
		s.line.BeginSearch(forward)
	}
	if match, ok := s.line.SearchAdvance(s.history.Lines()); ok {
		s.line.SetText(match)
	}
}

func (s *Shell) dispatchSearchKey(ev KeyEvent) {
	if isEnter(ev) {
		s.line.EndSearch(true)
		return
	}
	if isBackspace(ev) {
		if match, ok := s.line.SearchBackspace(s.history.Lines()); ok {
			s.line.SetText(match)
		}
		return
	}
	if action, ok := s.keymap.ResolveAction(ev.Stroke); ok {
		switch action {
		case "search_right", "search_left":
			if match, ok := s.line.SearchAdvance(s.history.Lines()); ok {
				s.line.SetText(match)
			}
		case "soft_cancel":
			s.line.EndSearch(false)
			s.line.SetText(s.searchSnapshot)
		}
		return
	}
	if !ev.IsControl && ev.Rune != 0 {
		if match, ok := s.line.SearchChar(ev.Rune, s.history.Lines()); ok {
			s.line.SetText(match)
		}
	}
}

// softCancel unwinds whatever shell-level mode is active — incremental
// search, then a history trail, then finally a plain clear-line — the
// same escalating fallback InputState.py's key_escape applies.
func (s *Shell) softCancel() {
	if s.line.Active() {
		s.line.EndSearch(false)
		s.line.SetText(s.searchSnapshot)
		return
	}
	if s.trail != nil {
		s.line.SetText(s.historyQuery)
		s.trail = nil
		return
	}
	s.line.Handle(lineedit.ActionClearLine, "")
}

// handleTab runs Tab-completion against the token immediately left of
// the cursor, routing to the environment-variable, wildcard or
// filename entry point and finally feeding the assembled replacement
// through Line.Complete.
func (s *Shell) handleTab() {
	before := string(s.line.Before())
	tokenStart, rawToken := splitLastToken(before)
	token := strings.Trim(rawToken, `"`)

	var result completion.Result
	isDir := false

	switch {
	case strings.HasPrefix(token, "%") || strings.HasPrefix(token, "$"):
		result = completion.CompleteEnvVar(token)
	case hasWildcardChars(token):
		dir, pattern := splitDirPattern(token)
		r, err := completion.CompleteWildcard(dir, pattern)
		if err == nil {
			result = r
		}
	default:
		dir, pattern := splitDirPattern(token)
		r, err := completion.CompleteFile(dir, pattern)
		if err == nil && len(r.Matches) > 0 {
			result = r
		} else if isCommandStart(before[:tokenStart]) {
			result = completeCommandName(pattern)
		}
		isDir = strings.HasSuffix(result.CommonPrefix, string(filepath.Separator))
	}

	if result.CommonPrefix == "" {
		return
	}

	if picked, ok := s.pickCompletion(result); ok {
		result = completion.Result{Matches: []string{picked}, CommonPrefix: picked}
		isDir = strings.HasSuffix(picked, string(filepath.Separator))
	}

	completed := quoteCompletion(result, isDir)
	s.line.Complete(before[:tokenStart] + completed)
}

// pickCompletion opens the selection window over result's candidates
// when there is more than one, the same point PyCmd.py pops up its
// Window() widget for Tab with multiple suggestions. ok is false on
// cancel, leaving the caller to fall back to plain prefix completion.
func (s *Shell) pickCompletion(result completion.Result) (string, bool) {
	if len(result.Matches) < 2 {
		return "", false
	}
	out, selected := s.runSelectWindow("Completions  (Enter: choose   Esc: cancel)", result.Matches)
	if out == selectwin.ResultSelect && selected != "" {
		return selected, true
	}
	return "", false
}

// completeCommandName extends filename completion at a command-start
// position with PATH executables and the built-in command names, the
// two extra sources spec.md calls out for that position.
func completeCommandName(partial string) completion.Result {
	pathDirs := filepath.SplitList(os.Getenv("PATH"))
	result := completion.CompleteFileAlternate(pathDirs, partial)

	lowerPartial := strings.ToLower(partial)
	seen := make(map[string]bool, len(result.Matches))
	for _, m := range result.Matches {
		seen[m] = true
	}
	matches := result.Matches
	for _, name := range builtinNames {
		if strings.HasPrefix(strings.ToLower(name), lowerPartial) && !seen[name] {
			matches = append(matches, name)
		}
	}
	return completion.Result{Matches: matches, CommonPrefix: commonPrefixOf(matches)}
}

// commonPrefixOf recomputes a common prefix after completeCommandName
// merges two match lists that completion.Result doesn't do itself.
func commonPrefixOf(matches []string) string {
	if len(matches) == 0 {
		return ""
	}
	prefix := matches[0]
	for _, m := range matches[1:] {
		for !strings.HasPrefix(strings.ToLower(m), strings.ToLower(prefix)) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}

// quoteCompletion wraps result's common prefix in double quotes when
// it or any candidate contains whitespace or '&', closing the quote
// only once the completion is unique and placing a directory's
// trailing separator after the closing quote — spec.md's completion
// quoting policy, verbatim.
func quoteCompletion(result completion.Result, isDir bool) string {
	text := result.CommonPrefix
	needsQuote := strings.ContainsAny(text, " &")
	if !needsQuote {
		for _, m := range result.Matches {
			if strings.ContainsAny(m, " &") {
				needsQuote = true
				break
			}
		}
	}
	if !needsQuote {
		return text
	}

	sep := string(filepath.Separator)
	trailing := ""
	if isDir && strings.HasSuffix(text, sep) {
		trailing = sep
		text = strings.TrimSuffix(text, sep)
	}

	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(text)
	if len(result.Matches) == 1 {
		b.WriteByte('"')
	}
	b.WriteString(trailing)
	return b.String()
}

// splitLastToken finds the whitespace-delimited token ending at the
// cursor, treating a run of characters inside double quotes as part
// of the same token regardless of embedded spaces.
func splitLastToken(before string) (start int, token string) {
	runes := []rune(before)
	inQuote := false
	for i, r := range runes {
		switch {
		case r == '"':
			inQuote = !inQuote
		case !inQuote && (r == ' ' || r == '\t'):
			start = i + 1
		}
	}
	return start, string(runes[start:])
}

// isCommandStart reports whether prefix (everything on the line
// before the token being completed) is empty or ends in a sequencing
// operator, the position spec.md extends filename completion with
// PATH executables and built-in names.
func isCommandStart(prefix string) bool {
	trimmed := strings.TrimRight(prefix, " \t")
	if trimmed == "" {
		return true
	}
	switch trimmed[len(trimmed)-1] {
	case '&', '|', ';':
		return true
	}
	return false
}

func hasWildcardChars(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

// splitDirPattern separates a partial path into the directory to list
// and the filename pattern to match within it.
func splitDirPattern(token string) (dir, pattern string) {
	dir, pattern = filepath.Split(token)
	if dir == "" {
		dir = "."
	}
	return dir, pattern
}
