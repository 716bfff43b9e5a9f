package keybindings

// CreateDefaultProfile returns the default keybinding profile compatible with legacy behavior.
func CreateDefaultProfile() *KeyBindingProfile {
	return &KeyBindingProfile{
		Name:        "Default",
		Description: "Default keybindings compatible with legacy behavior",
		Global:      make(map[string][]KeyStroke),
		Contexts: map[Context]map[string][]KeyStroke{
			ContextGlobal: {
				"soft_cancel": {NewCtrlKeyStroke('g'), NewEscapeKeyStroke()},
			},
			ContextInput: {
				"delete_word":       {NewCtrlKeyStroke('w')},
				"clear_line":        {NewCtrlKeyStroke('u')},
				"delete_to_end":     {NewCtrlKeyStroke('k')},
				"move_to_beginning": {NewCtrlKeyStroke('a')},
				"move_to_end":       {NewCtrlKeyStroke('e')},
				"move_left":         {NewLeftArrowKeyStroke()},
				"move_right":        {NewRightArrowKeyStroke()},
				"move_up":           {NewUpArrowKeyStroke(), NewCtrlKeyStroke('p')},
				"move_down":         {NewDownArrowKeyStroke(), NewCtrlKeyStroke('n')},
			},
			ContextResults: {
				"move_up":          {NewCtrlKeyStroke('p')},
				"move_down":        {NewCtrlKeyStroke('n')},
				"extend_selection": {NewCtrlKeyStroke('t')},
				"shrink_selection": {NewCharKeyStroke('T')},
				"expand":           {NewCharKeyStroke('/')},
			},
			ContextSearch: {
				"move_up":          {NewCtrlKeyStroke('p')},
				"move_down":        {NewCtrlKeyStroke('n')},
				"search_right":     {NewCtrlKeyStroke('s')},
				"search_left":      {NewCtrlKeyStroke('r')},
				"extend_selection": {NewCtrlKeyStroke('t')},
				"shrink_selection": {NewCharKeyStroke('T')},
			},
		},
	}
}
