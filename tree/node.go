package tree

// Node is an element of the tree. Nodes are identified by pointer; the id
// is reported as the overlay ElementID.
type Node struct {
	id    string
	label string

	parent   *Node
	children []*Node
	doc      *Document

	focusable    bool // reachable with Tab
	programmatic bool // focusable by the chain only
	disabled     bool
	hidden       bool // hidden from assistive technology

	onFocus func(*Node)
	onBlur  func(*Node)
}

// NodeOption configures a Node.
type NodeOption func(*Node)

// Label sets the node's display text.
func Label(text string) NodeOption {
	return func(n *Node) {
		n.label = text
	}
}

// Focusable makes the node part of the Tab order.
func Focusable() NodeOption {
	return func(n *Node) {
		n.focusable = true
	}
}

// Disabled marks the node disabled; disabled nodes cannot take focus.
func Disabled() NodeOption {
	return func(n *Node) {
		n.disabled = true
	}
}

// Children appends child nodes.
func Children(children ...*Node) NodeOption {
	return func(n *Node) {
		n.AddChild(children...)
	}
}

// OnFocus sets a handler that's called when the node gains focus.
func OnFocus(fn func(*Node)) NodeOption {
	return func(n *Node) {
		n.onFocus = fn
	}
}

// OnBlur sets a handler that's called when the node loses focus.
func OnBlur(fn func(*Node)) NodeOption {
	return func(n *Node) {
		n.onBlur = fn
	}
}

// NewNode creates a detached node.
func NewNode(id string, opts ...NodeOption) *Node {
	n := &Node{id: id, label: id}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// ElementID implements overlay.Element.
func (n *Node) ElementID() string {
	return n.id
}

// Label returns the node's display text.
func (n *Node) Label() string {
	return n.label
}

// SetLabel changes the node's display text.
func (n *Node) SetLabel(text string) {
	n.label = text
}

// --- Tree structure ---

// AddChild appends children to this node.
// Observers of any ancestor are notified.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = n
		child.setDocRecursive(n.doc)
		n.children = append(n.children, child)
	}
	n.notifyChanged()
}

// InsertChild inserts child at index, clamped to the valid range.
func (n *Node) InsertChild(index int, child *Node) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	index = min(max(index, 0), len(n.children))
	child.parent = n
	child.setDocRecursive(n.doc)
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.notifyChanged()
}

// RemoveChild removes a child from this node, keeping the order of the
// remaining children. Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			if n.doc != nil {
				n.doc.detached(child)
			}
			child.parent = nil
			child.setDocRecursive(nil)
			n.notifyChanged()
			return true
		}
	}
	return false
}

// RemoveAllChildren removes all children from this node.
func (n *Node) RemoveAllChildren() {
	for _, child := range n.children {
		if n.doc != nil {
			n.doc.detached(child)
		}
		child.parent = nil
		child.setDocRecursive(nil)
	}
	n.children = nil
	n.notifyChanged()
}

// Children returns the child nodes.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil if this is a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Walk visits n and its descendants depth-first in document order until
// fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

func (n *Node) setDocRecursive(doc *Document) {
	n.doc = doc
	for _, child := range n.children {
		child.setDocRecursive(doc)
	}
}

func (n *Node) notifyChanged() {
	if n.doc != nil {
		n.doc.changed(n)
	}
}

// --- Focus state ---

// IsFocusable returns whether the node can receive focus, either through
// the Tab order or programmatically.
func (n *Node) IsFocusable() bool {
	return (n.focusable || n.programmatic) && !n.disabled
}

// isTabbable reports whether the node is part of the Tab order.
func (n *Node) isTabbable() bool {
	return n.focusable && !n.disabled
}

// SetFocusable sets whether the node is part of the Tab order.
func (n *Node) SetFocusable(focusable bool) {
	n.focusable = focusable
	n.notifyChanged()
}

// SetDisabled enables or disables the node.
func (n *Node) SetDisabled(disabled bool) {
	n.disabled = disabled
	n.notifyChanged()
}

// IsFocused returns whether this node currently has focus.
func (n *Node) IsFocused() bool {
	return n.doc != nil && n.doc.focused == n
}

// --- Assistive technology ---

// IsHidden reports whether the node itself is marked hidden from
// assistive technology.
func (n *Node) IsHidden() bool {
	return n.hidden
}

// IsHiddenInTree reports whether the node or any ancestor is hidden from
// assistive technology.
func (n *Node) IsHiddenInTree() bool {
	for p := n; p != nil; p = p.parent {
		if p.hidden {
			return true
		}
	}
	return false
}
