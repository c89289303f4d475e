package tree

import (
	"github.com/grindlemire/go-overlay"
)

// Document owns a tree of nodes and the single focused node. It
// implements overlay.Platform and overlay.SubtreeObserver.
type Document struct {
	root    *Node
	focused *Node

	scrolled  *Node // last node focus scrolled into view
	observers []observer
	nextID    int

	onFocusChange func(prev, next *Node)
}

type observer struct {
	id   int
	root *Node
	fn   func()
}

// Compile-time interface checks.
var (
	_ overlay.Platform        = (*Document)(nil)
	_ overlay.SubtreeObserver = (*Document)(nil)
	_ overlay.Element         = (*Node)(nil)
)

// NewDocument creates a document whose root holds children.
func NewDocument(children ...*Node) *Document {
	d := &Document{}
	d.root = NewNode("document")
	d.root.doc = d
	d.root.AddChild(children...)
	return d
}

// Root returns the document root.
func (d *Document) Root() *Node {
	return d.root
}

// Find returns the attached node with the given id, or nil.
func (d *Document) Find(id string) *Node {
	var found *Node
	d.root.Walk(func(n *Node) bool {
		if n.id == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Focused returns the focused node, or nil.
func (d *Document) Focused() *Node {
	return d.focused
}

// ScrollTarget returns the last node that focus scrolled into view.
func (d *Document) ScrollTarget() *Node {
	return d.scrolled
}

// SetOnFocusChange sets a handler called whenever focus moves.
func (d *Document) SetOnFocusChange(fn func(prev, next *Node)) {
	d.onFocusChange = fn
}

// FocusNext moves focus to the next node in Tab order, wrapping.
func (d *Document) FocusNext() {
	d.cycle(1)
}

// FocusPrev moves focus to the previous node in Tab order, wrapping.
func (d *Document) FocusPrev() {
	d.cycle(-1)
}

func (d *Document) cycle(delta int) {
	nodes := d.tabbable(d.root)
	if len(nodes) == 0 {
		return
	}

	idx := -1
	for i, n := range nodes {
		if n == d.focused {
			idx = i
			break
		}
	}

	var next int
	switch {
	case idx < 0 && delta > 0:
		next = 0
	case idx < 0:
		next = len(nodes) - 1
	default:
		next = ((idx+delta)%len(nodes) + len(nodes)) % len(nodes)
	}
	d.focus(nodes[next], true)
}

// Blur clears focus.
func (d *Document) Blur() {
	d.setFocused(nil)
}

// --- overlay.Platform ---

// QueryFocusables returns the tabbable descendants of root in document order.
func (d *Document) QueryFocusables(root overlay.Element) []overlay.Element {
	n := asNode(root)
	if n == nil {
		return nil
	}
	var out []overlay.Element
	for _, child := range d.tabbable(n) {
		if child != n {
			out = append(out, child)
		}
	}
	return out
}

// IsFocusable reports whether el can take focus.
func (d *Document) IsFocusable(el overlay.Element) bool {
	n := asNode(el)
	return n != nil && n.IsFocusable() && d.attached(n)
}

// MakeFocusable lets el take programmatic focus without joining the Tab order.
func (d *Document) MakeFocusable(el overlay.Element) {
	if n := asNode(el); n != nil {
		n.programmatic = true
	}
}

// Focus moves focus to el. Unless opts.PreventScroll is set the node is
// recorded as scrolled into view.
func (d *Document) Focus(el overlay.Element, opts overlay.FocusOptions) {
	n := asNode(el)
	if n == nil || !d.attached(n) || !n.IsFocusable() {
		return
	}
	d.focus(n, !opts.PreventScroll)
}

// CurrentFocus returns the focused element, or nil.
func (d *Document) CurrentFocus() overlay.Element {
	if d.focused == nil {
		return nil
	}
	return d.focused
}

// MarkHiddenFromAssistiveTech hides el from assistive technology.
func (d *Document) MarkHiddenFromAssistiveTech(el overlay.Element) {
	if n := asNode(el); n != nil {
		n.hidden = true
	}
}

// UnmarkHiddenFromAssistiveTech reverses MarkHiddenFromAssistiveTech.
func (d *Document) UnmarkHiddenFromAssistiveTech(el overlay.Element) {
	if n := asNode(el); n != nil {
		n.hidden = false
	}
}

// IsHiddenFromAssistiveTech reports whether el carries the hidden mark.
func (d *Document) IsHiddenFromAssistiveTech(el overlay.Element) bool {
	n := asNode(el)
	return n != nil && n.hidden
}

// Parent returns el's parent, or nil.
func (d *Document) Parent(el overlay.Element) overlay.Element {
	n := asNode(el)
	if n == nil || n.parent == nil {
		return nil
	}
	return n.parent
}

// Children returns el's children in document order.
func (d *Document) Children(el overlay.Element) []overlay.Element {
	n := asNode(el)
	if n == nil {
		return nil
	}
	out := make([]overlay.Element, len(n.children))
	for i, child := range n.children {
		out[i] = child
	}
	return out
}

// Contains reports whether el is ancestor or one of its descendants.
func (d *Document) Contains(ancestor, el overlay.Element) bool {
	a, n := asNode(ancestor), asNode(el)
	if a == nil || n == nil {
		return false
	}
	return a.Contains(n)
}

// IsConnected reports whether el is attached to this document.
func (d *Document) IsConnected(el overlay.Element) bool {
	n := asNode(el)
	return n != nil && d.attached(n)
}

// DocumentRoot returns the document root.
func (d *Document) DocumentRoot() overlay.Element {
	return d.root
}

// --- overlay.SubtreeObserver ---

// Subscribe calls onChange after any structural or focusability change at
// or below root.
func (d *Document) Subscribe(root overlay.Element, onChange func()) func() {
	n := asNode(root)
	if n == nil {
		return func() {}
	}
	d.nextID++
	id := d.nextID
	d.observers = append(d.observers, observer{id: id, root: n, fn: onChange})

	return func() {
		for i, o := range d.observers {
			if o.id == id {
				d.observers = append(d.observers[:i], d.observers[i+1:]...)
				return
			}
		}
	}
}

// ObserverCount returns the number of active subscriptions.
func (d *Document) ObserverCount() int {
	return len(d.observers)
}

// --- internals ---

func asNode(el overlay.Element) *Node {
	n, _ := el.(*Node)
	return n
}

func (d *Document) attached(n *Node) bool {
	return n.doc == d && d.root.Contains(n)
}

func (d *Document) tabbable(root *Node) []*Node {
	var out []*Node
	root.Walk(func(n *Node) bool {
		if n.isTabbable() {
			out = append(out, n)
		}
		return true
	})
	return out
}

func (d *Document) focus(n *Node, scroll bool) {
	if scroll {
		d.scrolled = n
	}
	d.setFocused(n)
}

func (d *Document) setFocused(n *Node) {
	prev := d.focused
	if prev == n {
		return
	}
	d.focused = n
	if prev != nil && prev.onBlur != nil {
		prev.onBlur(prev)
	}
	if n != nil && n.onFocus != nil {
		n.onFocus(n)
	}
	if d.onFocusChange != nil {
		d.onFocusChange(prev, n)
	}
}

// detached runs before child leaves the document. Focus inside the removed
// subtree is dropped, as a browser drops it to the body.
func (d *Document) detached(child *Node) {
	if d.focused != nil && child.Contains(d.focused) {
		d.setFocused(nil)
	}
}

// changed notifies observers whose root is n or an ancestor of n.
func (d *Document) changed(n *Node) {
	var fns []func()
	for _, o := range d.observers {
		if o.root.Contains(n) {
			fns = append(fns, o.fn)
		}
	}
	for _, fn := range fns {
		fn()
	}
}
