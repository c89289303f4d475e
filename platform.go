package overlay

// Element is an opaque handle to a node in the host's interactive tree.
// ElementID must be stable for the node's lifetime; it is what the render
// layer receives as the active-descendant reference of a selection menu.
type Element interface {
	ElementID() string
}

// FocusOptions tunes a focus call.
type FocusOptions struct {
	// PreventScroll keeps the host from scrolling the target into view.
	PreventScroll bool
}

// Platform is the adapter the chain uses to read and change focus and
// assistive-technology visibility in the host tree. All methods must
// tolerate elements that have been removed from the tree.
type Platform interface {
	// QueryFocusables returns the focusable descendants of root in
	// document order, excluding root itself.
	QueryFocusables(root Element) []Element
	// IsFocusable reports whether el can receive focus.
	IsFocusable(el Element) bool
	// MakeFocusable lets el receive programmatic focus.
	MakeFocusable(el Element)
	// Focus moves real focus to el.
	Focus(el Element, opts FocusOptions)
	// CurrentFocus returns the focused element, or nil.
	CurrentFocus() Element

	// MarkHiddenFromAssistiveTech hides el's subtree from screen readers.
	MarkHiddenFromAssistiveTech(el Element)
	// UnmarkHiddenFromAssistiveTech reverses MarkHiddenFromAssistiveTech.
	UnmarkHiddenFromAssistiveTech(el Element)
	// IsHiddenFromAssistiveTech reports whether el itself carries the mark.
	IsHiddenFromAssistiveTech(el Element) bool

	// Parent returns el's parent, or nil for the document root or a
	// detached element.
	Parent(el Element) Element
	// Children returns el's children in document order.
	Children(el Element) []Element
	// Contains reports whether el is ancestor or a descendant of ancestor.
	Contains(ancestor, el Element) bool
	// IsConnected reports whether el is still attached to the document.
	IsConnected(el Element) bool
	// DocumentRoot returns the root of the tree.
	DocumentRoot() Element
}

// SubtreeObserver notifies about structural changes below a root: elements
// added, removed or changing focusability.
type SubtreeObserver interface {
	Subscribe(root Element, onChange func()) (unsubscribe func())
}
