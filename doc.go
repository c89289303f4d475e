// Package overlay is the interaction core for floating UI: menus, popovers,
// comboboxes and modal dialogs.
//
// It covers two concerns that every overlay shares:
//
// Placement. Resolve computes where a panel of a measured size goes next to
// an anchor (a trigger box or a pointer position) inside a container. It
// tries a preferred placement key such as BottomStart, then a fallback
// list, and clamps into the container when nothing fits. Start and end
// follow the reading direction. A Tracker re-resolves as the anchor,
// content size or viewport change and notifies only on movement.
//
// Focus trapping. A Chain stacks focus traps. Each trap constrains
// keyboard navigation to a root element in one of five modes (dialog,
// action menu, action bar, content menu, selection menu), hides the rest
// of the page from assistive technology when modal, and returns focus to
// where it was on release. Releasing a trap also releases every trap
// opened after it.
//
// The package never touches a real display. Hosts implement Platform for
// their element tree; package tree provides an in-memory implementation.
//
//	doc := tree.NewDocument(toolbar, page, layer)
//	chain := overlay.MustNewChain(doc)
//	handle := chain.Trap(overlay.TrapConfig{Root: menu, Mode: overlay.ModeActionMenu})
//	defer handle.Release()
//
//	res := overlay.Resolve(overlay.PlacementRequest{
//		Anchor:    overlay.NewRect(10, 0, 6, 1),
//		Content:   overlay.NewSize(20, 5),
//		Container: overlay.NewRect(0, 0, 80, 24),
//		Preferred: overlay.BottomStart,
//	})
package overlay
