package overlay

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/rs/zerolog"

	"github.com/grindlemire/go-overlay/internal/debug"
)

// Chain is the ordered stack of active focus traps for one interactive
// tree. The most recently opened trap is on top and is the only one that
// receives navigation; traps below it are dormant until everything above
// them has been released.
//
// Create one Chain per application root and pass it to every overlay. The
// chain is not safe for concurrent use; like the rest of the UI it is
// driven from a single event loop.
type Chain struct {
	platform Platform
	observer SubtreeObserver
	keyboard *KeyboardModeDetector
	bindings Bindings
	log      zerolog.Logger

	stack  *arraystack.Stack // of *trapEntry
	nextID int
}

// NewChain creates an empty chain over platform.
func NewChain(platform Platform, opts ...ChainOption) (*Chain, error) {
	if platform == nil {
		return nil, fmt.Errorf("chain requires a platform")
	}

	c := &Chain{
		platform: platform,
		keyboard: NewKeyboardModeDetector(),
		bindings: DefaultBindings(),
		log:      debug.Logger(),
		stack:    arraystack.New(),
	}
	if o, ok := platform.(SubtreeObserver); ok {
		c.observer = o
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNewChain creates a Chain and panics on error.
func MustNewChain(platform Platform, opts ...ChainOption) *Chain {
	c, err := NewChain(platform, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// KeyboardMode returns the detector the chain consults.
func (c *Chain) KeyboardMode() *KeyboardModeDetector {
	return c.keyboard
}

// Bindings returns the effective key bindings.
func (c *Chain) Bindings() Bindings {
	return c.bindings
}

// IsTrapped reports whether any trap is active.
func (c *Chain) IsTrapped() bool {
	return !c.stack.Empty()
}

// Len returns the number of traps in the chain.
func (c *Chain) Len() int {
	return c.stack.Size()
}

// Active returns the handle of the top trap, or nil.
func (c *Chain) Active() *TrapHandle {
	e := c.top()
	if e == nil {
		return nil
	}
	return e.handle
}

// Trap pushes a new trap over cfg.Root and moves focus into it. Trapping
// while already trapped nests the new trap above the current one.
func (c *Chain) Trap(cfg TrapConfig) *TrapHandle {
	mode := cfg.Mode
	if mode == "" {
		mode = ModeDialog
	}
	if !mode.Valid() {
		c.log.Warn().Str("mode", string(mode)).Msg("unknown trap mode, using dialog")
		mode = ModeDialog
	}

	c.nextID++
	e := &trapEntry{
		id:                c.nextID,
		root:              cfg.Root,
		mode:              mode,
		trigger:           cfg.Trigger,
		includeTrigger:    cfg.IncludeTrigger,
		rtl:               cfg.RTL,
		previouslyFocused: c.platform.CurrentFocus(),
		onRelease:         cfg.OnRelease,
		onActiveChange:    cfg.OnActiveDescendantChange,
		onCommit:          cfg.OnCommit,
	}
	if e.trigger == nil {
		e.trigger = e.previouslyFocused
	}
	e.handle = &TrapHandle{chain: c, entry: e}

	c.stack.Push(e)

	if e.root != nil {
		e.revealed = c.reveal(e.root)
	}
	if mode == ModeDialog && e.root != nil {
		e.hiddenSiblings = c.hideOutside(e.root)
	}
	c.enter(e, cfg.InitialFocus)

	if c.observer != nil && e.root != nil {
		e.unsubscribe = c.observer.Subscribe(e.root, func() { c.onSubtreeChange(e) })
	}

	c.log.Debug().
		Int("trap", e.id).
		Str("mode", string(mode)).
		Int("depth", c.stack.Size()).
		Int("hidden", len(e.hiddenSiblings)).
		Msg("trap pushed")
	return e.handle
}

// ReleaseAll releases every trap, returning focus to where it was before
// the first one was opened.
func (c *Chain) ReleaseAll() {
	values := c.stack.Values()
	if len(values) == 0 {
		return
	}
	// Values are in LIFO order; the last one is the bottom of the chain.
	c.release(values[len(values)-1].(*trapEntry), releaseOptions{})
}

// HandleEvent feeds ev to the keyboard-mode detector and routes key and
// focus events to the active trap. It returns true when the event was
// consumed.
func (c *Chain) HandleEvent(ev Event) bool {
	c.keyboard.Observe(ev)
	switch e := ev.(type) {
	case KeyEvent:
		return c.handleKey(e)
	case FocusEvent:
		return c.HandleFocusIn(e.Target)
	}
	return false
}

// HandleKey routes a key press to the active trap.
func (c *Chain) HandleKey(ke KeyEvent) bool {
	return c.HandleEvent(ke)
}

// HandleFocusIn tells the chain that real focus moved to el. When the top
// trap is a dialog and el lies outside it, focus is pulled back inside and
// HandleFocusIn returns true.
func (c *Chain) HandleFocusIn(el Element) bool {
	e := c.top()
	if e == nil || el == nil {
		return false
	}
	if c.inside(e, el) {
		e.lastFocused = el
		return false
	}
	if e.mode != ModeDialog {
		return false
	}

	target := e.lastFocused
	if target == nil || !c.platform.IsConnected(target) || !c.inside(e, target) {
		target = c.fallbackTarget(e)
	}
	if target == nil {
		return false
	}
	c.log.Debug().Int("trap", e.id).Str("escaped", el.ElementID()).Msg("focus pulled back into dialog")
	c.focus(e, target, FocusOptions{PreventScroll: true})
	return true
}

func (c *Chain) top() *trapEntry {
	v, ok := c.stack.Peek()
	if !ok {
		return nil
	}
	return v.(*trapEntry)
}

// enter moves focus (or pseudo-focus) into a freshly pushed trap.
func (c *Chain) enter(e *trapEntry, initial Element) {
	if e.root == nil {
		return
	}

	if e.mode == ModeSelectionMenu {
		items := c.platform.QueryFocusables(e.root)
		if initial != nil && indexOf(items, initial) >= 0 {
			c.setActive(e, initial)
		} else if len(items) > 0 {
			c.setActive(e, items[0])
		}
		return
	}

	target := initial
	if target == nil || !c.platform.IsFocusable(target) {
		target = c.fallbackTarget(e)
	}
	c.focus(e, target, FocusOptions{PreventScroll: !c.keyboard.IsKeyboardInteraction()})
}

// fallbackTarget is the first focusable descendant of the root, or the
// root itself made focusable.
func (c *Chain) fallbackTarget(e *trapEntry) Element {
	if e.root == nil {
		return nil
	}
	if items := c.platform.QueryFocusables(e.root); len(items) > 0 {
		return items[0]
	}
	if !c.platform.IsFocusable(e.root) {
		c.platform.MakeFocusable(e.root)
	}
	return e.root
}

func (c *Chain) focus(e *trapEntry, el Element, opts FocusOptions) {
	if el == nil {
		return
	}
	c.platform.Focus(el, opts)
	e.lastFocused = el
}

func (c *Chain) setActive(e *trapEntry, el Element) {
	if e.activeDescendant == el {
		return
	}
	e.activeDescendant = el
	if e.onActiveChange != nil {
		e.onActiveChange(el)
	}
}

// inside reports whether el belongs to the trap's navigation region.
func (c *Chain) inside(e *trapEntry, el Element) bool {
	if e.root != nil && c.platform.Contains(e.root, el) {
		return true
	}
	return e.includeTrigger && e.trigger != nil && el == e.trigger
}

// reveal clears hidden marks on root and its ancestors, typically left
// by a dialog below whose siblings include this trap's portal, and returns
// the elements it unmarked.
func (c *Chain) reveal(root Element) []Element {
	var revealed []Element
	for node := root; node != nil; node = c.platform.Parent(node) {
		if c.platform.IsHiddenFromAssistiveTech(node) {
			c.platform.UnmarkHiddenFromAssistiveTech(node)
			revealed = append(revealed, node)
		}
	}
	return revealed
}

// hideOutside marks every sibling subtree on the path from root to the
// document root as hidden from assistive technology and returns the
// elements it marked. Elements that were already hidden are left alone so
// that releasing this trap does not expose them.
func (c *Chain) hideOutside(root Element) []Element {
	var hidden []Element
	doc := c.platform.DocumentRoot()
	for node := root; node != nil && node != doc; {
		parent := c.platform.Parent(node)
		if parent == nil {
			break
		}
		for _, sib := range c.platform.Children(parent) {
			if sib == node || c.platform.IsHiddenFromAssistiveTech(sib) {
				continue
			}
			c.platform.MarkHiddenFromAssistiveTech(sib)
			hidden = append(hidden, sib)
		}
		node = parent
	}
	return hidden
}

// release pops target and every entry above it and tears them down from the
// top down. OnRelease callbacks run only after every popped entry has
// restored its hidden marks and focus, so a callback may open or release
// traps without a lower teardown undoing its work.
func (c *Chain) release(target *trapEntry, o releaseOptions) {
	if target.released {
		return
	}

	var popped []*trapEntry
	for {
		v, ok := c.stack.Pop()
		if !ok {
			break
		}
		e := v.(*trapEntry)
		e.released = true
		popped = append(popped, e)
		if e == target {
			break
		}
	}

	for _, e := range popped {
		if e.unsubscribe != nil {
			e.unsubscribe()
			e.unsubscribe = nil
		}
		for i := len(e.hiddenSiblings) - 1; i >= 0; i-- {
			c.platform.UnmarkHiddenFromAssistiveTech(e.hiddenSiblings[i])
		}
		e.hiddenSiblings = nil
		for _, el := range e.revealed {
			c.platform.MarkHiddenFromAssistiveTech(el)
		}
		e.revealed = nil

		if e == target && !o.withoutFocusReturn {
			c.restoreFocus(e)
		}
		if e.activeDescendant != nil {
			c.setActive(e, nil)
		}

		c.log.Debug().Int("trap", e.id).Bool("forced", e != target).Int("depth", c.stack.Size()).Msg("trap released")
	}

	for _, e := range popped {
		if e.onRelease == nil {
			continue
		}
		fn := e.onRelease
		e.onRelease = nil
		fn()
	}
}

// restoreFocus returns focus to where it was before e was pushed. When that
// element is gone it falls back to the trigger if the trigger took part in
// navigation; otherwise focus is left alone.
func (c *Chain) restoreFocus(e *trapEntry) {
	var target Element
	switch {
	case e.previouslyFocused != nil && c.platform.IsConnected(e.previouslyFocused):
		target = e.previouslyFocused
	case e.includeTrigger && e.trigger != nil && c.platform.IsConnected(e.trigger):
		target = e.trigger
	default:
		return
	}

	c.platform.Focus(target, FocusOptions{PreventScroll: true})
	if below := c.top(); below != nil && c.inside(below, target) {
		below.lastFocused = target
	}
}

// onSubtreeChange repairs focus after the trapped subtree mutated.
func (c *Chain) onSubtreeChange(e *trapEntry) {
	if e.released {
		return
	}

	if e.mode == ModeSelectionMenu {
		active := e.activeDescendant
		if active != nil && c.platform.IsConnected(active) && c.platform.Contains(e.root, active) {
			return
		}
		var next Element
		if items := c.platform.QueryFocusables(e.root); len(items) > 0 {
			next = items[0]
		}
		c.setActive(e, next)
		return
	}

	if e != c.top() {
		return
	}
	current := c.platform.CurrentFocus()
	if current != nil && c.platform.IsConnected(current) {
		return
	}
	c.log.Debug().Int("trap", e.id).Msg("focused element removed, refocusing")
	c.focus(e, c.fallbackTarget(e), FocusOptions{PreventScroll: true})
}

func indexOf(items []Element, el Element) int {
	if el == nil {
		return -1
	}
	for i, item := range items {
		if item == el {
			return i
		}
	}
	return -1
}
