package shell

import (
	"bufio"

	"github.com/gosh-shell/gosh/internal/keybindings"
	"github.com/gosh-shell/gosh/internal/termio"
)

// KeyEvent is one decoded keystroke. Stroke is always populated so it
// can be run through the keybinding resolver; Rune and IsControl carry
// enough of the raw input for the hardwired, non-rebindable handling
// (Enter, Ctrl+C, Backspace, literal character insertion) the event
// loop applies before ever consulting the resolver.
type KeyEvent struct {
	Stroke    keybindings.KeyStroke
	Rune      rune
	IsControl bool
}

// ReadKeyEvent decodes one logical keystroke from r, grounded on the
// teacher's realTimeEditor.handleInput/handleEscape/handleCSIEscape/
// handleApplicationEscape (cmd/interactive.go): a plain ReadRune loop
// with a control-byte switch, ESC dispatching into CSI-sequence,
// application-mode (`O`-prefixed), or Alt+letter parsing. stdinFd is
// passed straight through to termio.PendingInput, the same probe the
// teacher uses to tell a bare Escape keypress apart from the lead byte
// of a longer sequence.
func ReadKeyEvent(r *bufio.Reader, stdinFd uintptr) (KeyEvent, error) {
	ru, _, err := r.ReadRune()
	if err != nil {
		return KeyEvent{}, err
	}

	switch {
	case ru == 27:
		return readEscape(r, stdinFd)
	case ru < 32 || ru == 127:
		return KeyEvent{Stroke: ctrlOrRawStroke(ru), Rune: ru, IsControl: true}, nil
	default:
		return KeyEvent{Stroke: keybindings.NewCharKeyStroke(ru), Rune: ru}, nil
	}
}

// ctrlOrRawStroke maps a control byte onto the keybinding package's
// Ctrl+letter representation when it has one (1-26), or a raw
// single-byte sequence otherwise (e.g. Backspace/127).
func ctrlOrRawStroke(ru rune) keybindings.KeyStroke {
	if ru >= 1 && ru <= 26 {
		return keybindings.NewCtrlKeyStroke(rune('a' + ru - 1))
	}
	return keybindings.NewRawKeyStroke([]byte{byte(ru)})
}

// readEscape runs after a lone ESC byte (0x1B) has already been
// consumed, deciding between a standalone Escape keypress and the
// start of a CSI / application-mode / Alt+letter sequence.
func readEscape(r *bufio.Reader, stdinFd uintptr) (KeyEvent, error) {
	if isBareEscape(r, stdinFd) {
		return KeyEvent{Stroke: keybindings.NewEscapeKeyStroke(), Rune: 27, IsControl: true}, nil
	}

	b, err := r.ReadByte()
	if err != nil {
		return KeyEvent{Stroke: keybindings.NewEscapeKeyStroke(), Rune: 27, IsControl: true}, nil
	}

	switch b {
	case '[':
		return readCSI(r)
	case 'O':
		return readApplicationMode(r)
	default:
		return KeyEvent{Stroke: keybindings.NewAltKeyStroke(rune(b), "")}, nil
	}
}

// isBareEscape mirrors shouldSoftCancelOnEscape: nothing buffered in r
// and nothing pending on the terminal's read queue means the user
// pressed Escape on its own, not the lead byte of a longer sequence
// arriving in the same read.
func isBareEscape(r *bufio.Reader, stdinFd uintptr) bool {
	if r.Buffered() > 0 {
		return false
	}
	pending, err := termio.PendingInput(stdinFd)
	if err != nil {
		return false
	}
	return pending == 0
}

// readCSI accumulates CSI parameter bytes until a final byte (A-Z or
// '~') closes the sequence, matching handleCSIEscape's loop. The
// result is the raw [ESC '[' ...] byte sequence: plain arrow keys come
// out as exactly the 3-byte forms keybindings.NewUpArrowKeyStroke and
// friends already produce, while longer parametrized sequences
// (modifier+arrow, Home/End/Delete/PageUp/PageDown) survive intact for
// an explicit rebinding to match against.
func readCSI(r *bufio.Reader) (KeyEvent, error) {
	seq := []byte{27, '['}
	for {
		b, err := r.ReadByte()
		if err != nil {
			return KeyEvent{Stroke: keybindings.NewRawKeyStroke(seq)}, nil
		}
		seq = append(seq, b)
		if (b >= 'A' && b <= 'Z') || b == '~' {
			return KeyEvent{Stroke: keybindings.NewRawKeyStroke(seq)}, nil
		}
	}
}

// readApplicationMode handles the ESC 'O' <letter> form some
// terminals send for the arrow/Home/End keys in application cursor
// mode, matching handleApplicationEscape.
func readApplicationMode(r *bufio.Reader) (KeyEvent, error) {
	b, err := r.ReadByte()
	if err != nil {
		return KeyEvent{Stroke: keybindings.NewRawKeyStroke([]byte{27, 'O'})}, nil
	}
	return KeyEvent{Stroke: keybindings.NewRawKeyStroke([]byte{27, 'O', b})}, nil
}
