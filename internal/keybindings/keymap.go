package keybindings

// KeyBindingMap holds resolved key strokes for interactive line-editing
// actions. Supports multiple key strokes per action while maintaining
// the teacher's legacy byte-based accessor idiom.
type KeyBindingMap struct {
	DeleteWord      []KeyStroke // default: [Ctrl+W]
	ClearLine       []KeyStroke // default: [Ctrl+U]
	DeleteToEnd     []KeyStroke // default: [Ctrl+K]
	MoveToBeginning []KeyStroke // default: [Ctrl+A]
	MoveToEnd       []KeyStroke // default: [Ctrl+E]
	MoveUp          []KeyStroke // default: [Ctrl+P], can add: [up arrow]
	MoveDown        []KeyStroke // default: [Ctrl+N], can add: [down arrow]
	MoveLeft        []KeyStroke // default: [], can add: [left arrow] for cursor movement
	MoveRight       []KeyStroke // default: [], can add: [right arrow] for cursor movement
	MoveWordLeft    []KeyStroke // default: [Ctrl+B]
	MoveWordRight   []KeyStroke // default: [Ctrl+F]
	ExtendSelection []KeyStroke // default: [Ctrl+T]
	ShrinkSelection []KeyStroke // default: [T]
	SearchRight     []KeyStroke // default: [Ctrl+S]
	SearchLeft      []KeyStroke // default: [Ctrl+R]
	Expand          []KeyStroke // default: [/]
	Undo            []KeyStroke // default: [Ctrl+_]
	Redo            []KeyStroke // default: [Ctrl+Y]
	UndoEmacs       []KeyStroke // default: [Ctrl+X]
	SoftCancel      []KeyStroke // default: [Ctrl+G, Esc]
}

// DefaultKeyBindingMap returns the built-in default control bindings.
func DefaultKeyBindingMap() *KeyBindingMap {
	return &KeyBindingMap{
		DeleteWord:      []KeyStroke{NewCtrlKeyStroke('w')},
		ClearLine:       []KeyStroke{NewCtrlKeyStroke('u')},
		DeleteToEnd:     []KeyStroke{NewCtrlKeyStroke('k')},
		MoveToBeginning: []KeyStroke{NewCtrlKeyStroke('a')},
		MoveToEnd:       []KeyStroke{NewCtrlKeyStroke('e')},
		MoveUp:          []KeyStroke{NewCtrlKeyStroke('p')},
		MoveDown:        []KeyStroke{NewCtrlKeyStroke('n')},
		MoveLeft:        []KeyStroke{}, // Empty by default, users can add left arrow
		MoveRight:       []KeyStroke{}, // Empty by default, users can add right arrow
		MoveWordLeft:    []KeyStroke{NewCtrlKeyStroke('b')},
		MoveWordRight:   []KeyStroke{NewCtrlKeyStroke('f')},
		ExtendSelection: []KeyStroke{NewCtrlKeyStroke('t')},
		ShrinkSelection: []KeyStroke{NewCharKeyStroke('T')},
		SearchRight:     []KeyStroke{NewCtrlKeyStroke('s')},
		SearchLeft:      []KeyStroke{NewCtrlKeyStroke('r')},
		Expand:          []KeyStroke{NewCharKeyStroke('/')},
		Undo:            []KeyStroke{NewCtrlKeyStroke('_')},
		Redo:            []KeyStroke{NewCtrlKeyStroke('y')},
		UndoEmacs:       []KeyStroke{NewCtrlKeyStroke('x')},
		SoftCancel:      []KeyStroke{NewCtrlKeyStroke('g'), NewEscapeKeyStroke()},
	}
}

// Legacy backward-compatibility methods maintain the old byte-based API
// while internally using the new KeyStroke system.

// GetDeleteWordByte returns the primary control byte for DeleteWord (backward compatibility)
func (km *KeyBindingMap) GetDeleteWordByte() byte {
	return km.getFirstControlByte(km.DeleteWord, ctrl('w'))
}

// GetClearLineByte returns the primary control byte for ClearLine (backward compatibility)
func (km *KeyBindingMap) GetClearLineByte() byte {
	return km.getFirstControlByte(km.ClearLine, ctrl('u'))
}

// GetDeleteToEndByte returns the primary control byte for DeleteToEnd (backward compatibility)
func (km *KeyBindingMap) GetDeleteToEndByte() byte {
	return km.getFirstControlByte(km.DeleteToEnd, ctrl('k'))
}

// GetMoveToBeginningByte returns the primary control byte for MoveToBeginning (backward compatibility)
func (km *KeyBindingMap) GetMoveToBeginningByte() byte {
	return km.getFirstControlByte(km.MoveToBeginning, ctrl('a'))
}

// GetMoveToEndByte returns the primary control byte for MoveToEnd (backward compatibility)
func (km *KeyBindingMap) GetMoveToEndByte() byte {
	return km.getFirstControlByte(km.MoveToEnd, ctrl('e'))
}

// GetMoveUpByte returns the primary control byte for MoveUp (backward compatibility)
func (km *KeyBindingMap) GetMoveUpByte() byte {
	return km.getFirstControlByte(km.MoveUp, ctrl('p'))
}

// GetMoveDownByte returns the primary control byte for MoveDown (backward compatibility)
func (km *KeyBindingMap) GetMoveDownByte() byte {
	return km.getFirstControlByte(km.MoveDown, ctrl('n'))
}

// GetUndoEmacsByte returns the primary control byte for UndoEmacs (backward compatibility)
func (km *KeyBindingMap) GetUndoEmacsByte() byte {
	return km.getFirstControlByte(km.UndoEmacs, ctrl('x'))
}

// getFirstControlByte finds the first Ctrl KeyStroke and returns its control byte,
// or returns the fallback if none found
func (km *KeyBindingMap) getFirstControlByte(keyStrokes []KeyStroke, fallback byte) byte {
	for _, ks := range keyStrokes {
		if b := ks.ToControlByte(); b != 0 {
			return b
		}
	}
	return fallback
}

// MatchesKeyStroke checks if any KeyStroke in the given action matches the input
func (km *KeyBindingMap) MatchesKeyStroke(action string, input KeyStroke) bool {
	actionMap := map[string][]KeyStroke{
		"delete_word":      km.DeleteWord,
		"clear_line":       km.ClearLine,
		"delete_to_end":    km.DeleteToEnd,
		"move_to_beginning": km.MoveToBeginning,
		"move_to_end":      km.MoveToEnd,
		"move_up":          km.MoveUp,
		"move_down":        km.MoveDown,
		"move_left":        km.MoveLeft,
		"move_right":       km.MoveRight,
		"move_word_left":   km.MoveWordLeft,
		"move_word_right":  km.MoveWordRight,
		"extend_selection": km.ExtendSelection,
		"shrink_selection": km.ShrinkSelection,
		"search_right":     km.SearchRight,
		"search_left":      km.SearchLeft,
		"expand":           km.Expand,
		"undo":             km.Undo,
		"redo":             km.Redo,
		"undo_emacs":       km.UndoEmacs,
		"soft_cancel":      km.SoftCancel,
	}

	keyStrokes, exists := actionMap[action]
	if !exists {
		return false
	}

	for _, ks := range keyStrokes {
		if input.Equals(ks) {
			return true
		}
	}
	return false
}

// actionOrder lists every bindable action name, checked by ResolveAction
// in priority order (most specific navigation/selection actions before
// the generic movement ones they're layered over).
var actionOrder = []string{
	"soft_cancel",
	"undo_emacs", "undo", "redo",
	"extend_selection", "shrink_selection",
	"search_right", "search_left",
	"expand",
	"delete_word", "clear_line", "delete_to_end",
	"move_to_beginning", "move_to_end",
	"move_word_left", "move_word_right",
	"move_up", "move_down",
	"move_left", "move_right",
}

// ResolveAction returns the name of the first action bound to input,
// checked in actionOrder, so the shell's event loop can dispatch on a
// single lookup instead of calling MatchesKeyStroke per action.
func (km *KeyBindingMap) ResolveAction(input KeyStroke) (string, bool) {
	for _, action := range actionOrder {
		if km.MatchesKeyStroke(action, input) {
			return action, true
		}
	}
	return "", false
}
