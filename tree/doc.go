// Package tree provides an in-memory interactive element tree that
// implements overlay.Platform and overlay.SubtreeObserver.
//
// Hosts that render with their own widget tree write a thin adapter
// instead; this package is the reference implementation used by the demo
// and by tests.
//
//	doc := tree.NewDocument(
//	    tree.NewNode("open", tree.Focusable()),
//	    tree.NewNode("dialog", tree.Children(
//	        tree.NewNode("ok", tree.Focusable()),
//	        tree.NewNode("cancel", tree.Focusable()),
//	    )),
//	)
//	chain := overlay.MustNewChain(doc)
//	h := chain.Trap(overlay.TrapConfig{Root: doc.Find("dialog")})
package tree
