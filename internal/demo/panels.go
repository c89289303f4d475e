package demo

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/grindlemire/go-overlay"
	"github.com/grindlemire/go-overlay/tree"
)

// item is one entry of a panel. Entries without an action are plain text
// and cannot take focus.
type item struct {
	label string
	run   func(m *Model)
}

type panel struct {
	title      string
	mode       overlay.TrapMode
	root       *tree.Node
	handle     *overlay.TrapHandle
	tracker    *overlay.Tracker // nil for dialogs, which are centred
	horizontal bool

	// combobox state
	query   string
	choices []string
}

var fruits = []string{
	"apple", "apricot", "banana", "blueberry", "cherry",
	"grape", "lemon", "lime", "mango", "orange", "peach",
}

// size is the panel's outer size including its border.
func (p *panel) size() overlay.Size {
	items := p.root.Children()
	if p.horizontal {
		w := 1
		for _, n := range items {
			w += lipgloss.Width(n.Label()) + 3
		}
		return overlay.NewSize(max(w, 4), 3)
	}

	w := lipgloss.Width(p.title) + 4
	for _, n := range items {
		w = max(w, lipgloss.Width(n.Label())+4)
	}
	return overlay.NewSize(max(w, 12), max(len(items), 1)+2)
}

// itemRects returns the cell box of every item inside a panel at r.
func (p *panel) itemRects(r overlay.Rect) []overlay.Rect {
	items := p.root.Children()
	out := make([]overlay.Rect, len(items))
	x := r.X + 1
	for i, n := range items {
		if p.horizontal {
			w := lipgloss.Width(n.Label()) + 2
			out[i] = overlay.NewRect(x, r.Y+1, w, 1)
			x += w + 1
			continue
		}
		out[i] = overlay.NewRect(r.X+1, r.Y+1+i, r.Width-2, 1)
	}
	return out
}

func (m *Model) top() *panel {
	if len(m.panels) == 0 {
		return nil
	}
	return m.panels[len(m.panels)-1]
}

// rect is where the panel is drawn.
func (m *Model) rect(p *panel) overlay.Rect {
	size := p.size()
	if p.tracker != nil {
		return p.tracker.Result().Rect(size)
	}
	b := m.view.Bounds()
	return size.At(b.X+(b.Width-size.Width)/2, b.Y+(b.Height-size.Height)/2)
}

func (m *Model) newRoot(title string, items []item) *tree.Node {
	root := tree.NewNode("panel:" + title)
	for _, it := range items {
		id := fmt.Sprintf("%s/%s", title, it.label)
		if it.run == nil {
			root.AddChild(tree.NewNode(id, tree.Label(it.label)))
			continue
		}
		n := tree.NewNode(id, tree.Label(it.label), tree.Focusable())
		m.actions[n] = it.run
		root.AddChild(n)
	}
	return root
}

// openMenu opens a panel anchored to trigger.
func (m *Model) openMenu(trigger *tree.Node, title string, mode overlay.TrapMode, items []item) *panel {
	p := &panel{
		title:      title,
		mode:       mode,
		root:       m.newRoot(title, items),
		horizontal: mode == overlay.ModeActionBar,
	}
	m.layer.AddChild(p.root)
	m.track(p, trigger)

	p.handle = m.chain.Trap(overlay.TrapConfig{
		Root:      p.root,
		Mode:      mode,
		Trigger:   trigger,
		RTL:       m.rtl,
		OnRelease: func() { m.closePanel(p) },
	})
	m.panels = append(m.panels, p)
	return p
}

// openDialog opens a modal panel in the middle of the window.
func (m *Model) openDialog(title string, items []item) *panel {
	p := &panel{
		title: title,
		mode:  overlay.ModeDialog,
		root:  m.newRoot(title, items),
	}
	m.layer.AddChild(p.root)

	p.handle = m.chain.Trap(overlay.TrapConfig{
		Root:      p.root,
		Mode:      overlay.ModeDialog,
		OnRelease: func() { m.closePanel(p) },
	})
	m.panels = append(m.panels, p)
	return p
}

// openCombobox shows suggestions under trigger. Focus stays on the
// trigger; the arrow keys move the highlighted suggestion.
func (m *Model) openCombobox(trigger *tree.Node) *panel {
	p := &panel{
		title:   "Fruit",
		mode:    overlay.ModeSelectionMenu,
		root:    tree.NewNode("panel:Fruit"),
		choices: fruits,
	}
	m.filter(p)
	m.layer.AddChild(p.root)
	m.track(p, trigger)

	p.handle = m.chain.Trap(overlay.TrapConfig{
		Root:    p.root,
		Mode:    overlay.ModeSelectionMenu,
		Trigger: trigger,
		OnCommit: func(el overlay.Element) {
			if n, ok := el.(*tree.Node); ok {
				m.status = "Picked " + n.Label()
			}
		},
		OnRelease: func() { m.closePanel(p) },
	})
	m.panels = append(m.panels, p)
	return p
}

// filter rebuilds the suggestions matching the query, best match first.
// The chain notices the new children and moves the highlight to the first
// one.
func (m *Model) filter(p *panel) {
	names := p.choices
	if p.query != "" {
		names = nil
		for _, match := range fuzzy.Find(p.query, p.choices) {
			names = append(names, match.Str)
		}
	}

	matches := make([]*tree.Node, 0, len(names))
	for _, c := range names {
		matches = append(matches, tree.NewNode("Fruit/"+c, tree.Label(c), tree.Focusable()))
	}
	p.root.RemoveAllChildren()
	p.root.AddChild(matches...)

	if p.tracker != nil {
		p.tracker.SetContent(p.size())
	}
}

func (m *Model) track(p *panel, trigger *tree.Node) {
	p.tracker = overlay.NewTracker(overlay.PlacementRequest{
		Anchor:    m.buttonRect(trigger),
		Content:   p.size(),
		Preferred: m.placement,
		RTL:       m.rtl,
	})
	p.tracker.Attach(m.view)
}

// closePanel runs when the panel's trap is released.
func (m *Model) closePanel(p *panel) {
	if p.tracker != nil {
		p.tracker.Detach()
	}
	for _, n := range p.root.Children() {
		delete(m.actions, n)
	}
	m.layer.RemoveChild(p.root)

	for i, q := range m.panels {
		if q == p {
			m.panels = append(m.panels[:i], m.panels[i+1:]...)
			break
		}
	}
}

func (m *Model) closeTop() {
	if p := m.top(); p != nil {
		p.handle.Release()
	}
}
