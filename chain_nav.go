package overlay

// handleKey maps a key press to an action of the top trap and performs it.
func (c *Chain) handleKey(ke KeyEvent) bool {
	e := c.top()
	if e == nil {
		return false
	}
	action, ok := c.bindings.Lookup(e.mode, ke)
	if !ok {
		return false
	}
	if e.rtl && ke.Key.isHorizontal() {
		action = mirrorAction(action)
	}

	c.log.Debug().Int("trap", e.id).Str("mode", string(e.mode)).Stringer("key", ke).Str("action", action.String()).Msg("navigate")

	switch e.mode {
	case ModeDialog:
		return c.navigateDialog(e, action)
	case ModeSelectionMenu:
		return c.navigateSelection(e, action)
	default:
		return c.navigateMenu(e, action)
	}
}

func mirrorAction(a Action) Action {
	switch a {
	case ActionNext:
		return ActionPrev
	case ActionPrev:
		return ActionNext
	}
	return a
}

// navigateDialog cycles focus through the dialog. Focus never leaves.
func (c *Chain) navigateDialog(e *trapEntry, a Action) bool {
	switch a {
	case ActionStepForward, ActionNext:
		c.move(e, 1)
	case ActionStepBackward, ActionPrev:
		c.move(e, -1)
	case ActionFirst:
		c.moveTo(e, 0)
	case ActionLast:
		c.moveTo(e, -1)
	default:
		return false
	}
	return true
}

// navigateMenu handles action menus, action bars and content menus.
func (c *Chain) navigateMenu(e *trapEntry, a Action) bool {
	switch a {
	case ActionNext:
		c.move(e, 1)
	case ActionPrev:
		c.move(e, -1)
	case ActionFirst:
		c.moveTo(e, 0)
	case ActionLast:
		c.moveTo(e, -1)
	case ActionStepForward:
		c.exit(e, true)
	case ActionStepBackward:
		c.exit(e, false)
	default:
		return false
	}
	return true
}

// exit leaves a menu with the step keys. Action menus and bars release
// first and then move focus past the root; content menus move focus first
// and release afterwards.
func (c *Chain) exit(e *trapEntry, forward bool) {
	target := c.adjacentOutside(e.root, forward)
	if target == nil {
		c.release(e, releaseOptions{})
		return
	}

	if e.mode == ModeContentMenu {
		c.platform.Focus(target, FocusOptions{})
		c.release(e, releaseOptions{withoutFocusReturn: true})
		return
	}
	c.release(e, releaseOptions{withoutFocusReturn: true})
	c.platform.Focus(target, FocusOptions{})
}

// navigateSelection moves the pseudo-focus of a selection menu. Real focus
// stays on the trigger throughout.
func (c *Chain) navigateSelection(e *trapEntry, a Action) bool {
	items := c.platform.QueryFocusables(e.root)

	switch a {
	case ActionNext, ActionPrev:
		if len(items) == 0 {
			return true
		}
		delta := 1
		if a == ActionPrev {
			delta = -1
		}
		c.setActive(e, items[step(indexOf(items, e.activeDescendant), delta, len(items), true)])
		return true
	case ActionFirst, ActionLast:
		if len(items) > 0 {
			c.setActive(e, items[pick(a == ActionLast, len(items))])
		}
		return true
	case ActionCommit:
		if e.activeDescendant == nil {
			return false
		}
		c.commit(e)
		return true
	case ActionStepForward:
		// Tab commits and still moves focus onward, which the host does.
		c.commit(e)
		return false
	}
	return false
}

// commit releases a selection menu and reports the active item. OnCommit
// runs after the trap is gone so it may open a new one.
func (c *Chain) commit(e *trapEntry) {
	active := e.activeDescendant
	onCommit := e.onCommit
	c.release(e, releaseOptions{})
	if active != nil && onCommit != nil {
		onCommit(active)
	}
}

// move steps real focus by delta through the trap's focusables. The set is
// queried on every call because the subtree may have changed.
func (c *Chain) move(e *trapEntry, delta int) {
	items := c.items(e)
	if len(items) == 0 {
		c.focus(e, c.fallbackTarget(e), FocusOptions{})
		return
	}
	cur := indexOf(items, c.platform.CurrentFocus())
	c.focus(e, items[step(cur, delta, len(items), e.mode.wraps())], FocusOptions{})
}

// moveTo focuses the first item (index 0) or the last one (index -1).
func (c *Chain) moveTo(e *trapEntry, index int) {
	items := c.items(e)
	if len(items) == 0 {
		c.focus(e, c.fallbackTarget(e), FocusOptions{})
		return
	}
	c.focus(e, items[pick(index < 0, len(items))], FocusOptions{})
}

// items returns the navigation cycle of a real-focus trap: the trigger
// when it takes part, followed by the root's focusables.
func (c *Chain) items(e *trapEntry) []Element {
	if e.root == nil {
		return nil
	}
	items := c.platform.QueryFocusables(e.root)
	t := e.trigger
	if e.includeTrigger && t != nil && !c.platform.Contains(e.root, t) && c.platform.IsConnected(t) {
		items = append([]Element{t}, items...)
	}
	return items
}

// adjacentOutside finds the nearest focusable element before or after root
// in document order, skipping root's own subtree.
func (c *Chain) adjacentOutside(root Element, forward bool) Element {
	for node := root; node != nil; {
		parent := c.platform.Parent(node)
		if parent == nil {
			return nil
		}
		siblings := c.platform.Children(parent)
		idx := indexOf(siblings, node)

		if forward {
			for i := idx + 1; i < len(siblings); i++ {
				if el := c.firstFocusableIn(siblings[i]); el != nil {
					return el
				}
			}
		} else {
			for i := idx - 1; i >= 0; i-- {
				if el := c.lastFocusableIn(siblings[i]); el != nil {
					return el
				}
			}
			if c.platform.IsFocusable(parent) {
				return parent
			}
		}
		node = parent
	}
	return nil
}

func (c *Chain) firstFocusableIn(el Element) Element {
	if c.platform.IsFocusable(el) {
		return el
	}
	if items := c.platform.QueryFocusables(el); len(items) > 0 {
		return items[0]
	}
	return nil
}

func (c *Chain) lastFocusableIn(el Element) Element {
	if items := c.platform.QueryFocusables(el); len(items) > 0 {
		return items[len(items)-1]
	}
	if c.platform.IsFocusable(el) {
		return el
	}
	return nil
}

// step returns the index delta positions away from cur. With no current
// item, forward starts at the first item and backward at the last.
func step(cur, delta, n int, wrap bool) int {
	if cur < 0 {
		if delta > 0 {
			return 0
		}
		return n - 1
	}
	next := cur + delta
	if wrap {
		return ((next % n) + n) % n
	}
	return min(max(next, 0), n-1)
}

func pick(last bool, n int) int {
	if last {
		return n - 1
	}
	return 0
}
