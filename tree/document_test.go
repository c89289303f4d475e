package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-overlay"
)

func newTestDocument() *Document {
	return NewDocument(
		NewNode("header", Children(
			NewNode("menu", Focusable()),
		)),
		NewNode("main", Children(
			NewNode("a", Focusable()),
			NewNode("b", Focusable(), Disabled()),
			NewNode("c", Focusable()),
		)),
		NewNode("footer", Focusable()),
	)
}

func elementIDs(els []overlay.Element) []string {
	out := make([]string, len(els))
	for i, el := range els {
		out[i] = el.ElementID()
	}
	return out
}

func TestDocument_QueryFocusables(t *testing.T) {
	doc := newTestDocument()

	assert.Equal(t, []string{"menu", "a", "c", "footer"}, elementIDs(doc.QueryFocusables(doc.Root())))
	assert.Equal(t, []string{"a", "c"}, elementIDs(doc.QueryFocusables(doc.Find("main"))))
	assert.Empty(t, doc.QueryFocusables(doc.Find("footer")))
	assert.Nil(t, doc.QueryFocusables(nil))
}

func TestDocument_FocusAndCurrentFocus(t *testing.T) {
	doc := newTestDocument()
	require.Nil(t, doc.CurrentFocus())

	doc.Focus(doc.Find("a"), overlay.FocusOptions{})
	require.Equal(t, doc.Find("a"), doc.CurrentFocus())
	assert.True(t, doc.Find("a").IsFocused())
	assert.Equal(t, doc.Find("a"), doc.ScrollTarget())

	doc.Focus(doc.Find("c"), overlay.FocusOptions{PreventScroll: true})
	assert.Equal(t, doc.Find("c"), doc.CurrentFocus())
	assert.Equal(t, doc.Find("a"), doc.ScrollTarget())

	// Disabled and non-focusable nodes are ignored.
	doc.Focus(doc.Find("b"), overlay.FocusOptions{})
	doc.Focus(doc.Find("main"), overlay.FocusOptions{})
	assert.Equal(t, doc.Find("c"), doc.CurrentFocus())
}

func TestDocument_MakeFocusable(t *testing.T) {
	doc := newTestDocument()
	main := doc.Find("main")
	require.False(t, doc.IsFocusable(main))

	doc.MakeFocusable(main)
	assert.True(t, doc.IsFocusable(main))
	doc.Focus(main, overlay.FocusOptions{})
	assert.Equal(t, main, doc.Focused())

	// Programmatic focusability does not join the Tab order.
	assert.NotContains(t, elementIDs(doc.QueryFocusables(doc.Root())), "main")
}

func TestDocument_FocusCallbacks(t *testing.T) {
	var events []string
	a := NewNode("a", Focusable(),
		OnFocus(func(n *Node) { events = append(events, "focus "+n.id) }),
		OnBlur(func(n *Node) { events = append(events, "blur "+n.id) }),
	)
	b := NewNode("b", Focusable())
	doc := NewDocument(a, b)
	doc.SetOnFocusChange(func(prev, next *Node) { events = append(events, "change") })

	doc.Focus(a, overlay.FocusOptions{})
	doc.Focus(b, overlay.FocusOptions{})
	assert.Equal(t, []string{"focus a", "change", "blur a", "change"}, events)
}

func TestDocument_FocusNextPrevWrap(t *testing.T) {
	doc := newTestDocument()

	var got []string
	for i := 0; i < 5; i++ {
		doc.FocusNext()
		got = append(got, doc.Focused().id)
	}
	assert.Equal(t, []string{"menu", "a", "c", "footer", "menu"}, got)

	doc.FocusPrev()
	assert.Equal(t, "footer", doc.Focused().id)

	doc.Blur()
	doc.FocusPrev()
	assert.Equal(t, "footer", doc.Focused().id)
}

func TestDocument_RemovingFocusedNodeDropsFocus(t *testing.T) {
	doc := newTestDocument()
	a := doc.Find("a")
	doc.Focus(a, overlay.FocusOptions{})

	doc.Find("main").RemoveChild(a)
	assert.Nil(t, doc.CurrentFocus())
	assert.False(t, doc.IsConnected(a))
	assert.False(t, doc.IsFocusable(a))

	// Detached nodes cannot take focus.
	doc.Focus(a, overlay.FocusOptions{})
	assert.Nil(t, doc.CurrentFocus())
}

func TestDocument_Structure(t *testing.T) {
	doc := newTestDocument()
	main := doc.Find("main")
	a := doc.Find("a")

	assert.Equal(t, overlay.Element(main), doc.Parent(a))
	assert.Nil(t, doc.Parent(doc.Root()))
	assert.Equal(t, []string{"a", "b", "c"}, elementIDs(doc.Children(main)))
	assert.True(t, doc.Contains(main, a))
	assert.True(t, doc.Contains(main, main))
	assert.False(t, doc.Contains(a, main))
	assert.True(t, doc.IsConnected(a))
	assert.Equal(t, overlay.Element(doc.Root()), doc.DocumentRoot())
	assert.Nil(t, doc.Find("missing"))
}

func TestDocument_HiddenMarks(t *testing.T) {
	doc := newTestDocument()
	header := doc.Find("header")

	doc.MarkHiddenFromAssistiveTech(header)
	assert.True(t, doc.IsHiddenFromAssistiveTech(header))
	assert.True(t, doc.Find("menu").IsHiddenInTree())

	doc.UnmarkHiddenFromAssistiveTech(header)
	assert.False(t, doc.IsHiddenFromAssistiveTech(header))
}

func TestDocument_Subscribe(t *testing.T) {
	doc := newTestDocument()
	main := doc.Find("main")

	mainCalls, footerCalls := 0, 0
	unsubscribe := doc.Subscribe(main, func() { mainCalls++ })
	doc.Subscribe(doc.Find("footer"), func() { footerCalls++ })
	require.Equal(t, 2, doc.ObserverCount())

	main.AddChild(NewNode("d", Focusable()))
	doc.Find("c").SetDisabled(true)
	assert.Equal(t, 2, mainCalls)
	assert.Equal(t, 0, footerCalls)

	unsubscribe()
	main.RemoveAllChildren()
	assert.Equal(t, 2, mainCalls)
	assert.Equal(t, 1, doc.ObserverCount())
}
