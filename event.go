package overlay

import "strings"

// Event is an input the chain and the keyboard-mode detector react to:
// KeyEvent, MouseEvent or FocusEvent.
type Event interface {
	event()
}

// KeyEvent is a key press. Printable characters arrive as KeyRune with the
// character in Rune.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

func (KeyEvent) event() {}

// Is reports whether the event is key. When mods are given the event must
// carry exactly their union.
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var want Modifier
	for _, m := range mods {
		want |= m
	}
	return e.Mod == want
}

// String formats the event the way ParseKeyPattern reads it, e.g.
// "shift+tab" or "ctrl+n".
func (e KeyEvent) String() string {
	name := strings.ToLower(e.Key.String())
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		name = "space"
	case e.Key == KeyRune:
		name = string(e.Rune)
	}
	if e.Mod == ModNone {
		return name
	}
	return strings.ToLower(e.Mod.String()) + "+" + name
}

// MouseButton identifies the button of a MouseEvent.
type MouseButton uint8

const (
	// MouseNone is motion without a button.
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// MouseAction is what happened to the button.
type MouseAction uint8

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseDrag
)

// MouseEvent is a pointer event at cell (X, Y).
type MouseEvent struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
	Mod    Modifier
}

func (MouseEvent) event() {}

// isPointerDown reports a press of a real button; wheel ticks and motion
// do not count.
func (e MouseEvent) isPointerDown() bool {
	switch e.Button {
	case MouseLeft, MouseMiddle, MouseRight:
		return e.Action == MousePress
	}
	return false
}

// FocusEvent reports that the host moved real focus to Target, for example
// after a click. The chain uses it to keep focus inside an active dialog.
type FocusEvent struct {
	Target Element
}

func (FocusEvent) event() {}
