package overlay

// KeyboardModeDetector tracks whether the user is currently driving the
// interface with the keyboard or with a pointer. Navigation keys switch it
// to keyboard mode; a pointer press switches it back.
//
// The chain consults it when a trap is entered: focus only scrolls into
// view for keyboard-initiated interaction, so clicking a trigger does not
// make the page jump.
type KeyboardModeDetector struct {
	keyboard bool
}

// NewKeyboardModeDetector creates a detector in pointer mode.
func NewKeyboardModeDetector() *KeyboardModeDetector {
	return &KeyboardModeDetector{}
}

// Observe updates the mode from an input event. Other event types are ignored.
func (d *KeyboardModeDetector) Observe(ev Event) {
	switch e := ev.(type) {
	case KeyEvent:
		if e.Key.isNavigation() {
			d.keyboard = true
		}
	case MouseEvent:
		if e.isPointerDown() {
			d.keyboard = false
		}
	}
}

// IsKeyboardInteraction reports whether the most recent interaction was
// keyboard-driven.
func (d *KeyboardModeDetector) IsKeyboardInteraction() bool {
	return d.keyboard
}
