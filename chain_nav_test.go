package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-overlay"
	"github.com/grindlemire/go-overlay/tree"
)

func newSelectionPage() *tree.Document {
	return tree.NewDocument(
		focusable("search"),
		group("suggestions", focusable("I1"), focusable("I2"), focusable("I3")),
		focusable("after"),
	)
}

func idOf(el overlay.Element) string {
	if el == nil {
		return ""
	}
	return el.ElementID()
}

func TestSelectionMenu_PseudoFocus(t *testing.T) {
	doc := newSelectionPage()
	c := newChain(t, doc)
	focus(t, doc, "search")

	var active []string
	var committed []string
	h := c.Trap(overlay.TrapConfig{
		Root:                     doc.Find("suggestions"),
		Mode:                     overlay.ModeSelectionMenu,
		OnActiveDescendantChange: func(el overlay.Element) { active = append(active, idOf(el)) },
		OnCommit:                 func(el overlay.Element) { committed = append(committed, idOf(el)) },
	})
	assert.Equal(t, "I1", h.ActiveDescendantID())
	assert.Equal(t, "search", focusedID(doc), "real focus never moves")

	assert.True(t, c.HandleKey(down))
	assert.True(t, c.HandleKey(down))
	assert.Equal(t, "I3", h.ActiveDescendantID())
	assert.Equal(t, "search", focusedID(doc))

	assert.True(t, c.HandleKey(enter))
	assert.False(t, h.Trapped())
	assert.Equal(t, []string{"I3"}, committed)
	assert.Equal(t, []string{"I1", "I2", "I3", ""}, active)
	assert.Equal(t, "search", focusedID(doc))
	assert.Nil(t, h.ActiveDescendant())
}

func TestSelectionMenu_Navigation(t *testing.T) {
	type tc struct {
		initial string
		keys    []overlay.KeyEvent
		want    string
	}

	tests := map[string]tc{
		"starts at first item":         {want: "I1"},
		"initial item":                 {initial: "I2", want: "I2"},
		"initial outside the items":    {initial: "after", want: "I1"},
		"down wraps to first":          {keys: []overlay.KeyEvent{down, down, down}, want: "I1"},
		"up wraps to last":             {keys: []overlay.KeyEvent{up}, want: "I3"},
		"horizontal keys are not used": {keys: []overlay.KeyEvent{right, left}, want: "I1"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := newSelectionPage()
			c := newChain(t, doc)
			focus(t, doc, "search")

			cfg := overlay.TrapConfig{Root: doc.Find("suggestions"), Mode: overlay.ModeSelectionMenu}
			if tt.initial != "" {
				cfg.InitialFocus = doc.Find(tt.initial)
			}
			h := c.Trap(cfg)
			for _, k := range tt.keys {
				c.HandleKey(k)
			}
			assert.Equal(t, tt.want, h.ActiveDescendantID())
			assert.Equal(t, "search", focusedID(doc))
		})
	}
}

func TestSelectionMenu_TabCommitsWithoutConsuming(t *testing.T) {
	doc := newSelectionPage()
	c := newChain(t, doc)
	focus(t, doc, "search")

	var committed overlay.Element
	h := c.Trap(overlay.TrapConfig{
		Root:     doc.Find("suggestions"),
		Mode:     overlay.ModeSelectionMenu,
		OnCommit: func(el overlay.Element) { committed = el },
	})
	c.HandleKey(down)

	assert.False(t, c.HandleKey(tab), "host moves focus onward")
	assert.False(t, h.Trapped())
	assert.Equal(t, "I2", idOf(committed))
}

func TestSelectionMenu_EmptyAndMutations(t *testing.T) {
	doc := tree.NewDocument(focusable("search"), group("suggestions"))
	c := newChain(t, doc)
	focus(t, doc, "search")

	var active []string
	h := c.Trap(overlay.TrapConfig{
		Root:                     doc.Find("suggestions"),
		Mode:                     overlay.ModeSelectionMenu,
		OnActiveDescendantChange: func(el overlay.Element) { active = append(active, idOf(el)) },
	})
	assert.Equal(t, "", h.ActiveDescendantID())
	assert.False(t, c.HandleKey(enter), "nothing to commit")
	assert.True(t, c.HandleKey(down))
	assert.True(t, h.Trapped())

	list := doc.Find("suggestions")
	list.AddChild(focusable("x"), focusable("y"))
	assert.Equal(t, "x", h.ActiveDescendantID(), "results arriving activate the first item")

	c.HandleKey(down)
	require.Equal(t, "y", h.ActiveDescendantID())
	list.RemoveChild(doc.Find("y"))
	assert.Equal(t, "x", h.ActiveDescendantID(), "removed active item resets to the first")

	list.RemoveAllChildren()
	assert.Equal(t, "", h.ActiveDescendantID())
	assert.Equal(t, []string{"x", "y", "x", ""}, active)
	assert.Equal(t, "search", focusedID(doc))
}

func newBarPage() *tree.Document {
	return tree.NewDocument(
		focusable("before"),
		group("bar", focusable("b1"), focusable("b2"), focusable("b3")),
		focusable("after"),
	)
}

func TestActionBar_TabLeavesAfterRoot(t *testing.T) {
	doc := newBarPage()
	c := newChain(t, doc)
	focus(t, doc, "before")

	var focusAtRelease string
	released := 0
	h := c.Trap(overlay.TrapConfig{
		Root: doc.Find("bar"),
		Mode: overlay.ModeActionBar,
		OnRelease: func() {
			released++
			focusAtRelease = focusedID(doc)
		},
	})
	c.HandleKey(right)
	c.HandleKey(right)
	require.Equal(t, "b3", focusedID(doc))

	assert.True(t, c.HandleKey(tab))
	assert.False(t, h.Trapped())
	assert.Equal(t, 1, released)
	assert.Equal(t, "b3", focusAtRelease, "action bars release before moving focus")
	assert.Equal(t, "after", focusedID(doc))
}

func TestActionBar_ShiftTabLeavesBeforeRoot(t *testing.T) {
	doc := newBarPage()
	c := newChain(t, doc)
	focus(t, doc, "after")

	c.Trap(overlay.TrapConfig{Root: doc.Find("bar"), Mode: overlay.ModeActionBar})
	assert.True(t, c.HandleKey(shiftTab))
	assert.False(t, c.IsTrapped())
	assert.Equal(t, "before", focusedID(doc))
}

func TestActionBar_TabWithNothingAfterRestoresFocus(t *testing.T) {
	doc := tree.NewDocument(
		focusable("before"),
		group("bar", focusable("b1"), focusable("b2")),
	)
	c := newChain(t, doc)
	focus(t, doc, "before")

	c.Trap(overlay.TrapConfig{Root: doc.Find("bar"), Mode: overlay.ModeActionBar})
	c.HandleKey(tab)
	assert.False(t, c.IsTrapped())
	assert.Equal(t, "before", focusedID(doc))
}

func TestMenuNavigation(t *testing.T) {
	type tc struct {
		mode    overlay.TrapMode
		rtl     bool
		keys    []overlay.KeyEvent
		want    string
		handled bool
	}

	tests := map[string]tc{
		"action bar right": {
			mode: overlay.ModeActionBar, keys: []overlay.KeyEvent{right}, want: "b2", handled: true,
		},
		"action bar wraps": {
			mode: overlay.ModeActionBar, keys: []overlay.KeyEvent{left}, want: "b3", handled: true,
		},
		"action bar ignores down": {
			mode: overlay.ModeActionBar, keys: []overlay.KeyEvent{down}, want: "b1", handled: false,
		},
		"action bar rtl left is next": {
			mode: overlay.ModeActionBar, rtl: true, keys: []overlay.KeyEvent{left}, want: "b2", handled: true,
		},
		"action bar rtl right is previous": {
			mode: overlay.ModeActionBar, rtl: true, keys: []overlay.KeyEvent{left, left, right}, want: "b2", handled: true,
		},
		"action bar rtl end": {
			mode: overlay.ModeActionBar, rtl: true, keys: []overlay.KeyEvent{end}, want: "b3", handled: true,
		},
		"action menu down": {
			mode: overlay.ModeActionMenu, keys: []overlay.KeyEvent{down}, want: "b2", handled: true,
		},
		"action menu wraps": {
			mode: overlay.ModeActionMenu, keys: []overlay.KeyEvent{down, down, down}, want: "b1", handled: true,
		},
		"action menu end then home": {
			mode: overlay.ModeActionMenu, keys: []overlay.KeyEvent{end, home}, want: "b1", handled: true,
		},
		"action menu ignores right": {
			mode: overlay.ModeActionMenu, keys: []overlay.KeyEvent{right}, want: "b1", handled: false,
		},
		"action menu rtl does not mirror vertical keys": {
			mode: overlay.ModeActionMenu, rtl: true, keys: []overlay.KeyEvent{down}, want: "b2", handled: true,
		},
		"content menu does not wrap up": {
			mode: overlay.ModeContentMenu, keys: []overlay.KeyEvent{up}, want: "b1", handled: true,
		},
		"content menu does not wrap down": {
			mode: overlay.ModeContentMenu, keys: []overlay.KeyEvent{end, down, right}, want: "b3", handled: true,
		},
		"content menu uses every arrow": {
			mode: overlay.ModeContentMenu, keys: []overlay.KeyEvent{right, down, left}, want: "b2", handled: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := newBarPage()
			c := newChain(t, doc)
			focus(t, doc, "before")

			c.Trap(overlay.TrapConfig{Root: doc.Find("bar"), Mode: tt.mode, RTL: tt.rtl})
			require.Equal(t, "b1", focusedID(doc))

			var handled bool
			for _, k := range tt.keys {
				handled = c.HandleKey(k)
			}
			assert.Equal(t, tt.handled, handled)
			assert.Equal(t, tt.want, focusedID(doc))
			assert.True(t, c.IsTrapped())
		})
	}
}

func TestContentMenu_TabFocusesBeforeRelease(t *testing.T) {
	doc := tree.NewDocument(
		focusable("before"),
		group("panel", focusable("p1"), focusable("p2")),
		group("wrapper", tree.NewNode("label"), focusable("next")),
	)
	c := newChain(t, doc)
	focus(t, doc, "before")

	var focusAtRelease string
	c.Trap(overlay.TrapConfig{
		Root:      doc.Find("panel"),
		Mode:      overlay.ModeContentMenu,
		OnRelease: func() { focusAtRelease = focusedID(doc) },
	})

	assert.True(t, c.HandleKey(tab))
	assert.False(t, c.IsTrapped())
	assert.Equal(t, "next", focusAtRelease, "content menus move focus before releasing")
	assert.Equal(t, "next", focusedID(doc))
}

func TestActionMenu_IncludeTrigger(t *testing.T) {
	doc := tree.NewDocument(
		focusable("trigger"),
		group("menu", focusable("m1"), focusable("m2")),
	)
	c := newChain(t, doc)
	focus(t, doc, "trigger")

	c.Trap(overlay.TrapConfig{
		Root:           doc.Find("menu"),
		Mode:           overlay.ModeActionMenu,
		IncludeTrigger: true,
	})
	require.Equal(t, "m1", focusedID(doc))

	var got []string
	for range 3 {
		c.HandleKey(down)
		got = append(got, focusedID(doc))
	}
	assert.Equal(t, []string{"m2", "trigger", "m1"}, got)

	c.HandleKey(up)
	assert.Equal(t, "trigger", focusedID(doc))
}

func TestDialog_IncludeTriggerCountsAsInside(t *testing.T) {
	doc := newPage()
	c := newChain(t, doc)
	focus(t, doc, "opener")

	c.Trap(overlay.TrapConfig{Root: doc.Find("modalA"), IncludeTrigger: true})
	c.HandleKey(shiftTab)
	assert.Equal(t, "opener", focusedID(doc))

	assert.False(t, c.HandleFocusIn(doc.Find("opener")))
}

func TestCustomBindings(t *testing.T) {
	doc := newBarPage()
	c := newChain(t, doc, overlay.WithBindings(overlay.Bindings{
		overlay.ModeActionMenu: {
			overlay.OnRune('j', overlay.ActionNext),
			overlay.OnRune('k', overlay.ActionPrev),
		},
		overlay.ModeDialog: {
			overlay.OnKey(overlay.KeyEnd, overlay.ActionLast),
			overlay.OnKey(overlay.KeyHome, overlay.ActionFirst),
		},
	}))

	menu := c.Trap(overlay.TrapConfig{Root: doc.Find("bar"), Mode: overlay.ModeActionMenu})
	assert.True(t, c.HandleKey(overlay.KeyEvent{Key: overlay.KeyRune, Rune: 'j'}))
	assert.Equal(t, "b2", focusedID(doc))
	assert.False(t, c.HandleKey(down), "replaced default no longer navigates")
	assert.True(t, c.HandleKey(overlay.KeyEvent{Key: overlay.KeyRune, Rune: 'k'}))
	assert.Equal(t, "b1", focusedID(doc))
	menu.Release()

	c.Trap(overlay.TrapConfig{Root: doc.Find("bar")})
	assert.True(t, c.HandleKey(end))
	assert.Equal(t, "b3", focusedID(doc))
	assert.True(t, c.HandleKey(tab), "dialog keeps its default tab binding")
	assert.Equal(t, "b1", focusedID(doc))
}
