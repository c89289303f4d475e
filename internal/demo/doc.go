// Package demo is a bubbletea program that shows the overlay core at work:
// a toolbar whose buttons open an action menu, an action bar, a content
// menu, a combobox and modal dialogs. Panels are positioned with
// overlay.Tracker against the terminal window and keyboard focus is managed
// by an overlay.Chain over a tree.Document.
package demo
