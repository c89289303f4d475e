package overlay

import "strings"

// Key is a non-printable key, or KeyRune for characters.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

var keyStrings = [...]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
}

func (k Key) String() string {
	if int(k) < len(keyStrings) {
		return keyStrings[k]
	}
	return "Unknown"
}

// isNavigation reports whether the key moves focus: arrows, Tab, Home/End
// and the paging keys.
func (k Key) isNavigation() bool {
	return k == KeyTab || k >= KeyUp && k <= KeyPageDown
}

func (k Key) isHorizontal() bool {
	return k == KeyLeft || k == KeyRight
}

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	ModNone Modifier = 0
	ModCtrl Modifier = 1 << (iota - 1)
	ModAlt
	ModShift
)

// Has reports whether mod is held.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// String joins the held modifiers, e.g. "Ctrl+Shift".
func (m Modifier) String() string {
	if m == ModNone {
		return "None"
	}
	var parts []string
	for _, mod := range []struct {
		bit  Modifier
		name string
	}{{ModCtrl, "Ctrl"}, {ModAlt, "Alt"}, {ModShift, "Shift"}} {
		if m.Has(mod.bit) {
			parts = append(parts, mod.name)
		}
	}
	return strings.Join(parts, "+")
}
