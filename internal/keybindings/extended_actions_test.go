package keybindings

import (
	"testing"

	"github.com/gosh-shell/gosh/internal/config"
)

func TestApplyExtendedActions(t *testing.T) {
	resolver := NewKeyBindingResolver(&config.Config{})
	keyMap := DefaultKeyBindingMap()

	extend := []KeyStroke{NewCtrlKeyStroke('n')}
	resolver.applyExtendedAction(keyMap, "extend_selection", extend)
	if len(keyMap.ExtendSelection) != 1 || keyMap.ExtendSelection[0].Kind != KeyStrokeCtrl || keyMap.ExtendSelection[0].Rune != 'n' {
		t.Fatalf("expected extend_selection to be applied, got %#v", keyMap.ExtendSelection)
	}

	expand := []KeyStroke{NewCharKeyStroke('/')}
	resolver.applyExtendedAction(keyMap, "expand", expand)
	if len(keyMap.Expand) != 1 || keyMap.Expand[0].Rune != '/' {
		t.Fatalf("expected expand to be applied, got %#v", keyMap.Expand)
	}
}
