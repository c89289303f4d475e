package demo

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grindlemire/go-overlay"
)

var teaKeys = map[tea.KeyType]overlay.Key{
	tea.KeyTab:       overlay.KeyTab,
	tea.KeyEnter:     overlay.KeyEnter,
	tea.KeyEsc:       overlay.KeyEscape,
	tea.KeyBackspace: overlay.KeyBackspace,
	tea.KeyDelete:    overlay.KeyDelete,
	tea.KeyInsert:    overlay.KeyInsert,
	tea.KeyUp:        overlay.KeyUp,
	tea.KeyDown:      overlay.KeyDown,
	tea.KeyLeft:      overlay.KeyLeft,
	tea.KeyRight:     overlay.KeyRight,
	tea.KeyHome:      overlay.KeyHome,
	tea.KeyEnd:       overlay.KeyEnd,
	tea.KeyPgUp:      overlay.KeyPageUp,
	tea.KeyPgDown:    overlay.KeyPageDown,
}

var teaShiftedKeys = map[tea.KeyType]overlay.Key{
	tea.KeyShiftTab:   overlay.KeyTab,
	tea.KeyShiftUp:    overlay.KeyUp,
	tea.KeyShiftDown:  overlay.KeyDown,
	tea.KeyShiftLeft:  overlay.KeyLeft,
	tea.KeyShiftRight: overlay.KeyRight,
	tea.KeyShiftHome:  overlay.KeyHome,
	tea.KeyShiftEnd:   overlay.KeyEnd,
}

// KeyEvent converts a bubbletea key message. It reports false for keys the
// overlay core has no use for, such as control characters and pastes.
func KeyEvent(msg tea.KeyMsg) (overlay.KeyEvent, bool) {
	var mod overlay.Modifier
	if msg.Alt {
		mod |= overlay.ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 || msg.Paste {
			return overlay.KeyEvent{}, false
		}
		return overlay.KeyEvent{Key: overlay.KeyRune, Rune: msg.Runes[0], Mod: mod}, true
	case tea.KeySpace:
		return overlay.KeyEvent{Key: overlay.KeyRune, Rune: ' ', Mod: mod}, true
	}

	if k, ok := teaKeys[msg.Type]; ok {
		return overlay.KeyEvent{Key: k, Mod: mod}, true
	}
	if k, ok := teaShiftedKeys[msg.Type]; ok {
		return overlay.KeyEvent{Key: k, Mod: mod | overlay.ModShift}, true
	}
	return overlay.KeyEvent{}, false
}

// MouseEvent converts a bubbletea mouse message.
func MouseEvent(msg tea.MouseMsg) overlay.MouseEvent {
	ev := overlay.MouseEvent{X: msg.X, Y: msg.Y, Button: overlay.MouseNone}

	switch msg.Button {
	case tea.MouseButtonLeft:
		ev.Button = overlay.MouseLeft
	case tea.MouseButtonMiddle:
		ev.Button = overlay.MouseMiddle
	case tea.MouseButtonRight:
		ev.Button = overlay.MouseRight
	case tea.MouseButtonWheelUp:
		ev.Button = overlay.MouseWheelUp
	case tea.MouseButtonWheelDown:
		ev.Button = overlay.MouseWheelDown
	}

	switch msg.Action {
	case tea.MouseActionPress:
		ev.Action = overlay.MousePress
	case tea.MouseActionRelease:
		ev.Action = overlay.MouseRelease
	default:
		ev.Action = overlay.MouseDrag
	}

	if msg.Shift {
		ev.Mod |= overlay.ModShift
	}
	if msg.Alt {
		ev.Mod |= overlay.ModAlt
	}
	if msg.Ctrl {
		ev.Mod |= overlay.ModCtrl
	}
	return ev
}
