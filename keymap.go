package overlay

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Action is a navigation intent produced by a key binding. What an action
// does depends on the mode of the active trap.
type Action uint8

const (
	// ActionNone is the zero value; it never matches.
	ActionNone Action = iota
	// ActionNext moves to the next item.
	ActionNext
	// ActionPrev moves to the previous item.
	ActionPrev
	// ActionFirst moves to the first item.
	ActionFirst
	// ActionLast moves to the last item.
	ActionLast
	// ActionStepForward is the forward step key (Tab by default).
	ActionStepForward
	// ActionStepBackward is the backward step key (Shift+Tab by default).
	ActionStepBackward
	// ActionCommit confirms the active item of a selection menu.
	ActionCommit
)

var actionNames = map[Action]string{
	ActionNext:         "next",
	ActionPrev:         "prev",
	ActionFirst:        "first",
	ActionLast:         "last",
	ActionStepForward:  "step-forward",
	ActionStepBackward: "step-backward",
	ActionCommit:       "commit",
}

// String returns the configuration name of the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction parses an action name such as "next" or "step-forward".
func ParseAction(s string) (Action, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for a, name := range actionNames {
		if name == key {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", s)
}

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key           Key      // Specific key (KeyTab, KeyDown, etc.), or 0
	Rune          rune     // Specific rune, or 0
	Mod           Modifier // Required modifiers (when non-zero, event must have exactly these mods)
	RequireNoMods bool     // When true, event must have no modifiers (Mod field is ignored)
}

// Matches reports whether ke satisfies the pattern.
func (p KeyPattern) Matches(ke KeyEvent) bool {
	if p.RequireNoMods && ke.Mod != 0 {
		return false
	}
	if p.Mod != 0 && ke.Mod != p.Mod {
		return false
	}

	if p.Rune != 0 && ke.Rune == p.Rune && ke.Key == KeyRune {
		return true
	}
	if p.Key != 0 && ke.Key == p.Key {
		return true
	}
	return false
}

var keyNames = map[string]Key{
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"delete":    KeyDelete,
	"insert":    KeyInsert,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pgup":      KeyPageUp,
	"pageup":    KeyPageUp,
	"pgdown":    KeyPageDown,
	"pagedown":  KeyPageDown,
}

// ParseKeyPattern parses a key description such as "tab", "shift+tab",
// "ctrl+n", "j" or "space". A pattern written without modifiers only
// matches events without modifiers.
func ParseKeyPattern(s string) (KeyPattern, error) {
	parts := strings.Split(strings.TrimSpace(s), "+")
	name := parts[len(parts)-1]
	if name == "" {
		return KeyPattern{}, fmt.Errorf("empty key in %q", s)
	}

	var p KeyPattern
	for _, mod := range parts[:len(parts)-1] {
		switch strings.ToLower(mod) {
		case "ctrl":
			p.Mod |= ModCtrl
		case "alt":
			p.Mod |= ModAlt
		case "shift":
			p.Mod |= ModShift
		default:
			return KeyPattern{}, fmt.Errorf("unknown modifier %q in %q", mod, s)
		}
	}
	p.RequireNoMods = p.Mod == ModNone

	if k, ok := keyNames[strings.ToLower(name)]; ok {
		p.Key = k
		return p, nil
	}
	if strings.EqualFold(name, "space") {
		p.Rune = ' '
		return p, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		p.Rune, _ = utf8.DecodeRuneInString(name)
		return p, nil
	}
	return KeyPattern{}, fmt.Errorf("unknown key %q", s)
}

// String returns the pattern in ParseKeyPattern syntax.
func (p KeyPattern) String() string {
	var parts []string
	if p.Mod.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if p.Mod.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if p.Mod.Has(ModShift) {
		parts = append(parts, "shift")
	}
	switch {
	case p.Rune == ' ':
		parts = append(parts, "space")
	case p.Rune != 0:
		parts = append(parts, string(p.Rune))
	default:
		parts = append(parts, strings.ToLower(p.Key.String()))
	}
	return strings.Join(parts, "+")
}

// KeyBinding associates a key pattern with a navigation action.
type KeyBinding struct {
	Pattern KeyPattern
	Action  Action
}

// KeyMap is an ordered list of key bindings; the first match wins.
type KeyMap []KeyBinding

// OnKey creates a binding for a specific key with any modifiers.
func OnKey(key Key, action Action) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Key: key}, Action: action}
}

// OnKeyMod creates a binding for a key with exactly the given modifiers.
// ModNone requires that no modifiers are held.
func OnKeyMod(key Key, mod Modifier, action Action) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Key: key, Mod: mod, RequireNoMods: mod == ModNone},
		Action:  action,
	}
}

// OnRune creates a binding for a printable character without modifiers.
func OnRune(r rune, action Action) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Rune: r, RequireNoMods: true}, Action: action}
}

// Lookup returns the action of the first binding matching ke.
func (km KeyMap) Lookup(ke KeyEvent) (Action, bool) {
	for _, b := range km {
		if b.Pattern.Matches(ke) {
			return b.Action, true
		}
	}
	return ActionNone, false
}

// Bindings holds a key map per trap mode.
type Bindings map[TrapMode]KeyMap

// DefaultBindings returns the standard navigation keys for every mode.
func DefaultBindings() Bindings {
	tab := OnKeyMod(KeyTab, ModNone, ActionStepForward)
	shiftTab := OnKeyMod(KeyTab, ModShift, ActionStepBackward)

	return Bindings{
		ModeDialog: {tab, shiftTab},
		ModeActionMenu: {
			OnKey(KeyDown, ActionNext),
			OnKey(KeyUp, ActionPrev),
			OnKey(KeyHome, ActionFirst),
			OnKey(KeyEnd, ActionLast),
			tab, shiftTab,
		},
		ModeActionBar: {
			OnKey(KeyRight, ActionNext),
			OnKey(KeyLeft, ActionPrev),
			OnKey(KeyHome, ActionFirst),
			OnKey(KeyEnd, ActionLast),
			tab, shiftTab,
		},
		ModeContentMenu: {
			OnKey(KeyDown, ActionNext),
			OnKey(KeyRight, ActionNext),
			OnKey(KeyUp, ActionPrev),
			OnKey(KeyLeft, ActionPrev),
			OnKey(KeyHome, ActionFirst),
			OnKey(KeyEnd, ActionLast),
			tab, shiftTab,
		},
		ModeSelectionMenu: {
			OnKey(KeyDown, ActionNext),
			OnKey(KeyUp, ActionPrev),
			OnKeyMod(KeyEnter, ModNone, ActionCommit),
			tab,
		},
	}
}

// Lookup returns the action bound to ke in mode.
func (b Bindings) Lookup(mode TrapMode, ke KeyEvent) (Action, bool) {
	return b[mode].Lookup(ke)
}

// Merge returns a copy of b where every action named in override has its
// bindings replaced by the override's, per mode. Actions the override does
// not mention keep their bindings.
func (b Bindings) Merge(override Bindings) Bindings {
	out := make(Bindings, len(b))
	for mode, km := range b {
		out[mode] = append(KeyMap(nil), km...)
	}

	for mode, km := range override {
		replaced := make(map[Action]bool)
		for _, kb := range km {
			replaced[kb.Action] = true
		}

		merged := append(KeyMap(nil), km...)
		for _, kb := range out[mode] {
			if !replaced[kb.Action] {
				merged = append(merged, kb)
			}
		}
		out[mode] = merged
	}
	return out
}

// Validate checks that no mode binds the same key pattern to two different
// actions, which would make the first binding silently shadow the second.
func (b Bindings) Validate() error {
	modes := make([]string, 0, len(b))
	for mode := range b {
		modes = append(modes, string(mode))
	}
	sort.Strings(modes)

	for _, m := range modes {
		mode := TrapMode(m)
		if !mode.Valid() {
			return fmt.Errorf("bindings for unknown trap mode %q", mode)
		}
		seen := make(map[KeyPattern]Action)
		for _, kb := range b[mode] {
			if kb.Action == ActionNone {
				return fmt.Errorf("mode %s: key %s has no action", mode, kb.Pattern)
			}
			if existing, conflict := seen[kb.Pattern]; conflict && existing != kb.Action {
				return fmt.Errorf(
					"mode %s: key %s bound to both %s and %s",
					mode, kb.Pattern, existing, kb.Action,
				)
			}
			seen[kb.Pattern] = kb.Action
		}
	}
	return nil
}
