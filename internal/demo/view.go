package demo

import (
	"github.com/grindlemire/go-overlay"
	"github.com/grindlemire/go-overlay/tree"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	b := m.view.Bounds()
	c := newCanvas(b.Width, b.Height)

	m.drawPage(c)
	for _, p := range m.panels {
		m.drawPanel(c, p)
	}
	return c.String() + "\n" + styles[styleStatus].Render(m.status)
}

func (m *Model) drawPage(c *canvas) {
	for _, btn := range m.buttons {
		r := m.buttonRect(btn)
		c.text(r.X, r.Y, " "+btn.Label()+" ", m.nodeStyle(btn, styleButton))
	}

	bodyStyle := styleNormal
	if m.body.IsHiddenInTree() {
		bodyStyle = styleDim
	}
	c.text(1, 2, m.body.Label(), bodyStyle)
	c.text(1, 3, hint, styleDim)
}

func (m *Model) drawPanel(c *canvas, p *panel) {
	r := m.rect(p)
	border := styleBorder
	if p.root.IsHiddenInTree() {
		border = styleDim
	}
	c.box(r, border)
	if !p.horizontal {
		c.text(r.X+2, r.Y, p.title, styleTitle)
	}

	active := p.handle.ActiveDescendant()
	items := p.root.Children()
	for i, ir := range p.itemRects(r) {
		n := items[i]
		label := " " + n.Label() + " "
		switch {
		case active != nil && overlay.Element(n) == active:
			c.text(ir.X, ir.Y, label, styleActive)
			c.set(ir.X, ir.Y, '›', styleActive)
		case !n.IsFocusable():
			c.text(ir.X, ir.Y, label, styleDim)
		default:
			c.text(ir.X, ir.Y, label, m.nodeStyle(n, styleNormal))
		}
	}
}

func (m *Model) nodeStyle(n *tree.Node, base styleID) styleID {
	switch {
	case n.IsFocused():
		return styleFocused
	case n.IsHiddenInTree():
		return styleDim
	}
	return base
}
