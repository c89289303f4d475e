package overlay

import (
	"fmt"
	"strings"
)

// TrapMode selects how keyboard navigation behaves inside a trap.
type TrapMode string

const (
	// ModeDialog cycles Tab and Shift+Tab through the root's focusables and
	// never lets focus leave. Everything outside the root is hidden from
	// assistive technology.
	ModeDialog TrapMode = "dialog"
	// ModeActionMenu moves with Up/Down; Tab releases the trap.
	ModeActionMenu TrapMode = "action-menu"
	// ModeActionBar moves with Left/Right; Tab releases the trap.
	ModeActionBar TrapMode = "action-bar"
	// ModeContentMenu moves with all arrows without wrapping; Tab moves to
	// the next element outside the root, then releases.
	ModeContentMenu TrapMode = "content-menu"
	// ModeSelectionMenu moves a pseudo-focus marker while real focus stays
	// on the trigger.
	ModeSelectionMenu TrapMode = "selection-menu"
)

// TrapModes lists every mode.
var TrapModes = []TrapMode{ModeDialog, ModeActionMenu, ModeActionBar, ModeContentMenu, ModeSelectionMenu}

// Valid reports whether m is a known mode.
func (m TrapMode) Valid() bool {
	for _, known := range TrapModes {
		if m == known {
			return true
		}
	}
	return false
}

// ParseTrapMode parses a mode name.
func ParseTrapMode(s string) (TrapMode, error) {
	m := TrapMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unknown trap mode %q", s)
	}
	return m, nil
}

// wraps reports whether moving past the last item continues at the first.
func (m TrapMode) wraps() bool {
	return m != ModeContentMenu
}

// TrapConfig describes a focus trap.
type TrapConfig struct {
	// Root is the subtree focus is constrained to.
	Root Element
	// Mode selects the navigation behaviour. Empty means ModeDialog.
	Mode TrapMode
	// Trigger is the element that opened the trap. Defaults to the element
	// focused when Trap is called.
	Trigger Element
	// IncludeTrigger makes the trigger part of the navigation cycle and the
	// focus-return fallback.
	IncludeTrigger bool
	// InitialFocus is focused on entry when it is focusable. In selection
	// menus it is the initially active item instead.
	InitialFocus Element
	// RTL mirrors the horizontal arrow keys.
	RTL bool
	// OnRelease is called exactly once when the trap is torn down.
	OnRelease func()
	// OnActiveDescendantChange is called when the pseudo-focus of a
	// selection menu moves. It receives nil when no item is active.
	OnActiveDescendantChange func(Element)
	// OnCommit is called with the active item when a selection menu is
	// committed.
	OnCommit func(Element)
}

// trapEntry is one frame of the chain.
type trapEntry struct {
	id                int
	root              Element
	mode              TrapMode
	trigger           Element
	includeTrigger    bool
	rtl               bool
	previouslyFocused Element
	hiddenSiblings    []Element
	revealed          []Element
	activeDescendant  Element
	lastFocused       Element
	released          bool
	unsubscribe       func()
	handle            *TrapHandle

	onRelease      func()
	onActiveChange func(Element)
	onCommit       func(Element)
}

// TrapHandle is returned by Chain.Trap and controls one trap.
type TrapHandle struct {
	chain *Chain
	entry *trapEntry
}

// ID returns the trap's chain-unique identifier.
func (h *TrapHandle) ID() int {
	return h.entry.id
}

// Mode returns the trap's navigation mode.
func (h *TrapHandle) Mode() TrapMode {
	return h.entry.mode
}

// Root returns the trapped subtree.
func (h *TrapHandle) Root() Element {
	return h.entry.root
}

// Trapped reports whether the trap is still part of the chain.
func (h *TrapHandle) Trapped() bool {
	return !h.entry.released
}

// ActiveDescendant returns the pseudo-focused item of a selection menu.
func (h *TrapHandle) ActiveDescendant() Element {
	return h.entry.activeDescendant
}

// ActiveDescendantID returns the ElementID of the active descendant, or ""
// when there is none. The render layer exposes it to assistive technology.
func (h *TrapHandle) ActiveDescendantID() string {
	if h.entry.activeDescendant == nil {
		return ""
	}
	return h.entry.activeDescendant.ElementID()
}

// Release tears the trap down, force-releasing every trap opened after it.
// Calling Release again is a no-op.
func (h *TrapHandle) Release(opts ...ReleaseOption) {
	var o releaseOptions
	for _, opt := range opts {
		opt(&o)
	}
	h.chain.release(h.entry, o)
}

// ReleaseOption tunes TrapHandle.Release.
type ReleaseOption func(*releaseOptions)

type releaseOptions struct {
	withoutFocusReturn bool
}

// WithoutFocusReturn leaves focus where it is instead of returning it to
// the element that was focused before the trap.
func WithoutFocusReturn() ReleaseOption {
	return func(o *releaseOptions) {
		o.withoutFocusReturn = true
	}
}
