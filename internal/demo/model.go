package demo

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/go-overlay"
	"github.com/grindlemire/go-overlay/tree"
)

// Options configures the demo.
type Options struct {
	// RTL lays panels out right-to-left and mirrors the arrow keys.
	RTL bool
	// Placement is where menus open relative to their button. The zero
	// value means bottom-start.
	Placement overlay.Placement
	// ChainOptions are passed to overlay.NewChain, typically key bindings
	// from a configuration file.
	ChainOptions []overlay.ChainOption
}

// Model is the bubbletea model of the demo.
type Model struct {
	doc       *tree.Document
	chain     *overlay.Chain
	view      *windowViewport
	rtl       bool
	placement overlay.Placement

	toolbar *tree.Node
	buttons []*tree.Node
	body    *tree.Node
	layer   *tree.Node // panels are mounted here, after the page
	actions map[*tree.Node]func(m *Model)

	panels   []*panel
	status   string
	quitting bool
}

const hint = "Tab/arrows move, Enter opens, Esc closes, q quits"

// New builds the demo page.
func New(opts Options) (*Model, error) {
	m := &Model{
		view:      newWindowViewport(80, 23),
		rtl:       opts.RTL,
		placement: opts.Placement,
		actions:   make(map[*tree.Node]func(m *Model)),
		status:    hint,
	}
	if !m.placement.Valid() {
		m.placement = overlay.BottomStart
	}

	m.toolbar = tree.NewNode("toolbar")
	for _, b := range []struct {
		label string
		run   func(m *Model, btn *tree.Node)
	}{
		{"File", (*Model).openFileMenu},
		{"Format", (*Model).openFormatBar},
		{"Search", (*Model).openSearch},
		{"Info", (*Model).openInfo},
		{"Help", (*Model).openHelp},
	} {
		btn := tree.NewNode("button/"+b.label, tree.Label(b.label), tree.Focusable())
		run := b.run
		m.actions[btn] = func(m *Model) { run(m, btn) }
		m.buttons = append(m.buttons, btn)
	}
	m.toolbar.AddChild(m.buttons...)

	m.body = tree.NewNode("body", tree.Label(
		"Menus are placed next to their button and flip when the window is too small.",
	))
	m.layer = tree.NewNode("layer")
	m.doc = tree.NewDocument(m.toolbar, m.body, m.layer)

	chain, err := overlay.NewChain(m.doc, opts.ChainOptions...)
	if err != nil {
		return nil, err
	}
	m.chain = chain
	m.doc.Focus(m.buttons[0], overlay.FocusOptions{PreventScroll: true})
	return m, nil
}

// Run starts the demo on the terminal.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// The last row is the status line.
		m.view.Resize(msg.Width, msg.Height-1)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			break
		}
		if ev, ok := KeyEvent(msg); ok {
			m.handleKey(ev)
		}
	case tea.MouseMsg:
		m.handleMouse(MouseEvent(msg))
	}

	if m.quitting {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleKey(ev overlay.KeyEvent) {
	if m.chain.HandleEvent(ev) {
		return
	}

	top := m.top()
	combobox := top != nil && top.mode == overlay.ModeSelectionMenu

	switch {
	case ev.Key == overlay.KeyEscape:
		m.closeTop()
	case combobox && ev.Key == overlay.KeyRune:
		top.query += string(ev.Rune)
		m.filter(top)
	case combobox && ev.Key == overlay.KeyBackspace:
		if q := []rune(top.query); len(q) > 0 {
			top.query = string(q[:len(q)-1])
			m.filter(top)
		}
	case ev.Key == overlay.KeyEnter || ev.Is(overlay.KeyRune) && ev.Rune == ' ':
		m.activate(m.doc.Focused())
	case top != nil:
		// Keys the active trap did not use are swallowed.
	case ev.Key == overlay.KeyRune && ev.Rune == 'q':
		m.quitting = true
	case ev.Key == overlay.KeyTab && ev.Mod.Has(overlay.ModShift):
		m.doc.FocusPrev()
	case ev.Key == overlay.KeyTab:
		m.doc.FocusNext()
	case ev.Key == overlay.KeyLeft, ev.Key == overlay.KeyRight:
		forward := (ev.Key == overlay.KeyRight) != m.rtl
		m.moveToolbar(forward)
	}
}

func (m *Model) handleMouse(ev overlay.MouseEvent) {
	m.chain.HandleEvent(ev)
	if ev.Action != overlay.MousePress || ev.Button != overlay.MouseLeft {
		return
	}

	// Clicking away from a menu dismisses it; dialogs stay open.
	if top := m.top(); top != nil && top.mode != overlay.ModeDialog && !m.rect(top).Contains(ev.X, ev.Y) {
		top.handle.Release()
	}

	n := m.hitTest(ev.X, ev.Y)
	if n == nil {
		return
	}
	if top := m.top(); top != nil && top.mode == overlay.ModeSelectionMenu && top.root.Contains(n) {
		m.status = "Picked " + n.Label()
		top.handle.Release()
		return
	}

	m.doc.Focus(n, overlay.FocusOptions{PreventScroll: true})
	if m.chain.HandleEvent(overlay.FocusEvent{Target: n}) {
		return
	}
	m.activate(n)
}

// activate runs the action of n when it belongs to the active panel, or to
// the page when nothing is open.
func (m *Model) activate(n *tree.Node) {
	if n == nil {
		return
	}
	if top := m.top(); top != nil && !top.root.Contains(n) {
		return
	}
	if run := m.actions[n]; run != nil {
		run(m)
	}
}

func (m *Model) moveToolbar(forward bool) {
	idx := 0
	for i, b := range m.buttons {
		if b.IsFocused() {
			idx = i
		}
	}
	if forward {
		idx = (idx + 1) % len(m.buttons)
	} else {
		idx = (idx + len(m.buttons) - 1) % len(m.buttons)
	}
	m.doc.Focus(m.buttons[idx], overlay.FocusOptions{})
}

// hitTest returns the focusable node under (x, y), searching panels from
// the top down before the toolbar.
func (m *Model) hitTest(x, y int) *tree.Node {
	for i := len(m.panels) - 1; i >= 0; i-- {
		p := m.panels[i]
		r := m.rect(p)
		if !r.Contains(x, y) {
			continue
		}
		items := p.root.Children()
		for j, ir := range p.itemRects(r) {
			if ir.Contains(x, y) && items[j].IsFocusable() {
				return items[j]
			}
		}
		return nil
	}
	for _, b := range m.buttons {
		if m.buttonRect(b).Contains(x, y) {
			return b
		}
	}
	return nil
}

// buttonRect is the toolbar cell box of btn.
func (m *Model) buttonRect(btn *tree.Node) overlay.Rect {
	x := 1
	for _, b := range m.buttons {
		w := lipgloss.Width(b.Label()) + 2
		if b == btn {
			return overlay.NewRect(x, 0, w, 1)
		}
		x += w + 1
	}
	return overlay.Rect{}
}

// --- toolbar actions ---

func (m *Model) openFileMenu(btn *tree.Node) {
	m.openMenu(btn, "File", overlay.ModeActionMenu, []item{
		{"New", func(m *Model) {
			m.closeTop()
			m.status = "Created a new file"
		}},
		{"Open…", func(m *Model) {
			m.closeTop()
			m.openDialog("Open file", []item{
				{"notes.txt", func(m *Model) {
					m.closeTop()
					m.status = "Opened notes.txt"
				}},
				{"Cancel", (*Model).closeTop},
			})
		}},
		{"Quit", func(m *Model) { m.quitting = true }},
	})
}

func (m *Model) openFormatBar(btn *tree.Node) {
	toggle := func(name string) func(m *Model) {
		return func(m *Model) { m.status = "Toggled " + name }
	}
	m.openMenu(btn, "Format", overlay.ModeActionBar, []item{
		{"Bold", toggle("bold")},
		{"Italic", toggle("italic")},
		{"Underline", toggle("underline")},
	})
}

func (m *Model) openSearch(btn *tree.Node) {
	m.openCombobox(btn)
	m.status = "Type to filter, Up/Down to choose, Enter to pick"
}

func (m *Model) openInfo(btn *tree.Node) {
	link := func(name string) func(m *Model) {
		return func(m *Model) {
			m.closeTop()
			m.status = "Followed " + name
		}
	}
	m.openMenu(btn, "Info", overlay.ModeContentMenu, []item{
		{label: "Overlay interaction core"},
		{"Read the docs", link("docs")},
		{"Changelog", link("changelog")},
	})
}

func (m *Model) openHelp(*tree.Node) {
	m.openDialog("Help", []item{
		{label: "Tab cycles inside a dialog."},
		{"Open another dialog", func(m *Model) {
			m.openDialog("Nested", []item{
				{label: "Esc closes only this one."},
				{"Close", (*Model).closeTop},
			})
		}},
		{"Close", (*Model).closeTop},
	})
}
