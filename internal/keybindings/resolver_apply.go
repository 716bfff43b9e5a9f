package keybindings

// applyDefaults sets up default keybindings
func (r *KeyBindingResolver) applyDefaults(keyMap *KeyBindingMap) {
	// Apply hardcoded defaults (legacy compatibility)
	defaults := DefaultKeyBindingMap()
	keyMap.DeleteWord = append(keyMap.DeleteWord, defaults.DeleteWord...)
	keyMap.ClearLine = append(keyMap.ClearLine, defaults.ClearLine...)
	keyMap.DeleteToEnd = append(keyMap.DeleteToEnd, defaults.DeleteToEnd...)
	keyMap.MoveToBeginning = append(keyMap.MoveToBeginning, defaults.MoveToBeginning...)
	keyMap.MoveToEnd = append(keyMap.MoveToEnd, defaults.MoveToEnd...)
	keyMap.MoveUp = append(keyMap.MoveUp, defaults.MoveUp...)
	keyMap.MoveDown = append(keyMap.MoveDown, defaults.MoveDown...)
	keyMap.MoveWordLeft = append(keyMap.MoveWordLeft, defaults.MoveWordLeft...)
	keyMap.MoveWordRight = append(keyMap.MoveWordRight, defaults.MoveWordRight...)
	keyMap.ExtendSelection = append(keyMap.ExtendSelection, defaults.ExtendSelection...)
	keyMap.ShrinkSelection = append(keyMap.ShrinkSelection, defaults.ShrinkSelection...)
	keyMap.SearchRight = append(keyMap.SearchRight, defaults.SearchRight...)
	keyMap.SearchLeft = append(keyMap.SearchLeft, defaults.SearchLeft...)
	keyMap.Expand = append(keyMap.Expand, defaults.Expand...)
	keyMap.Undo = append(keyMap.Undo, defaults.Undo...)
	keyMap.Redo = append(keyMap.Redo, defaults.Redo...)
	keyMap.UndoEmacs = append(keyMap.UndoEmacs, defaults.UndoEmacs...)
	keyMap.SoftCancel = append(keyMap.SoftCancel, defaults.SoftCancel...)
}

func (r *KeyBindingResolver) applyProfile(keyMap *KeyBindingMap, profile *KeyBindingProfile, context Context) {
	// Helper function to apply bindings from profile
	applyBinding := func(action string, target *[]KeyStroke) {
		if keystrokes, exists := profile.GetBinding(context, action); exists {
			*target = keystrokes // Replace, don't append (profile overrides defaults)
		}
	}

	applyBinding("delete_word", &keyMap.DeleteWord)
	applyBinding("clear_line", &keyMap.ClearLine)
	applyBinding("delete_to_end", &keyMap.DeleteToEnd)
	applyBinding("move_to_beginning", &keyMap.MoveToBeginning)
	applyBinding("move_to_end", &keyMap.MoveToEnd)
	applyBinding("move_up", &keyMap.MoveUp)
	applyBinding("move_down", &keyMap.MoveDown)
	applyBinding("move_left", &keyMap.MoveLeft)
	applyBinding("move_right", &keyMap.MoveRight)
	applyBinding("move_word_left", &keyMap.MoveWordLeft)
	applyBinding("move_word_right", &keyMap.MoveWordRight)
	applyBinding("extend_selection", &keyMap.ExtendSelection)
	applyBinding("shrink_selection", &keyMap.ShrinkSelection)
	applyBinding("search_right", &keyMap.SearchRight)
	applyBinding("search_left", &keyMap.SearchLeft)
	applyBinding("expand", &keyMap.Expand)
	applyBinding("undo", &keyMap.Undo)
	applyBinding("redo", &keyMap.Redo)
	applyBinding("undo_emacs", &keyMap.UndoEmacs)
	applyBinding("soft_cancel", &keyMap.SoftCancel)
}

func (r *KeyBindingResolver) applyPlatformLayer(keyMap *KeyBindingMap) {
	platformBindings := GetPlatformSpecificKeyBindings(r.platform)

	// Apply platform-specific overrides
	if bindings, exists := platformBindings["delete_word"]; exists {
		keyMap.DeleteWord = bindings // Platform overrides profile
	}
}

func (r *KeyBindingResolver) applyTerminalLayer(keyMap *KeyBindingMap) {
	terminalBindings := GetTerminalSpecificKeyBindings(r.terminal)

	// Apply terminal-specific overrides with explicit action handling
	for action, bindings := range terminalBindings {
		r.applyTerminalBinding(keyMap, action, bindings)
	}
}

// applyTerminalBinding applies a single terminal binding to reduce cyclomatic complexity
func (r *KeyBindingResolver) applyTerminalBinding(keyMap *KeyBindingMap, action string, bindings []KeyStroke) {
	// Apply editing actions
	if r.applyEditingAction(keyMap, action, bindings) {
		return
	}

	// Apply navigation actions
	if r.applyNavigationAction(keyMap, action, bindings) {
		return
	}

	// Apply remaining actions (selection zoom, search, expand, undo, soft-cancel)
	r.applyExtendedAction(keyMap, action, bindings)
}

// applyEditingAction applies editing-related keybinding actions
func (r *KeyBindingResolver) applyEditingAction(keyMap *KeyBindingMap, action string, bindings []KeyStroke) bool {
	switch action {
	case "delete_word":
		keyMap.DeleteWord = bindings
		return true
	case "clear_line":
		keyMap.ClearLine = bindings
		return true
	case "delete_to_end":
		keyMap.DeleteToEnd = bindings
		return true
	}
	return false
}

// applyNavigationAction applies navigation-related keybinding actions
func (r *KeyBindingResolver) applyNavigationAction(keyMap *KeyBindingMap, action string, bindings []KeyStroke) bool {
	switch action {
	case "move_to_beginning":
		keyMap.MoveToBeginning = bindings
		return true
	case "move_to_end":
		keyMap.MoveToEnd = bindings
		return true
	case "move_up":
		keyMap.MoveUp = bindings
		return true
	case "move_down":
		keyMap.MoveDown = bindings
		return true
	case "move_left":
		keyMap.MoveLeft = bindings
		return true
	case "move_right":
		keyMap.MoveRight = bindings
		return true
	}
	return false
}

// applyExtendedAction applies selection-zoom, search, expand, undo and
// soft-cancel keybinding actions.
func (r *KeyBindingResolver) applyExtendedAction(keyMap *KeyBindingMap, action string, bindings []KeyStroke) {
	actionMap := map[string]*[]KeyStroke{
		"move_word_left":   &keyMap.MoveWordLeft,
		"move_word_right":  &keyMap.MoveWordRight,
		"extend_selection": &keyMap.ExtendSelection,
		"shrink_selection": &keyMap.ShrinkSelection,
		"search_right":     &keyMap.SearchRight,
		"search_left":      &keyMap.SearchLeft,
		"expand":           &keyMap.Expand,
		"undo":             &keyMap.Undo,
		"redo":             &keyMap.Redo,
		"undo_emacs":       &keyMap.UndoEmacs,
		"soft_cancel":      &keyMap.SoftCancel,
	}

	if target, exists := actionMap[action]; exists {
		*target = bindings
	}
}
