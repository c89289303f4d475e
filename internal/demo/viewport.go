package demo

import "github.com/grindlemire/go-overlay"

// windowViewport is the terminal window as an overlay.Viewport.
type windowViewport struct {
	bounds    overlay.Rect
	listeners []viewportListener
	nextID    int
}

type viewportListener struct {
	id int
	fn func()
}

func newWindowViewport(width, height int) *windowViewport {
	return &windowViewport{bounds: overlay.NewRect(0, 0, width, height)}
}

func (v *windowViewport) Bounds() overlay.Rect {
	return v.bounds
}

func (v *windowViewport) Subscribe(fn func()) func() {
	v.nextID++
	id := v.nextID
	v.listeners = append(v.listeners, viewportListener{id: id, fn: fn})

	return func() {
		for i, l := range v.listeners {
			if l.id == id {
				v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
				return
			}
		}
	}
}

// Resize updates the bounds and notifies subscribers when they changed.
func (v *windowViewport) Resize(width, height int) {
	next := overlay.NewRect(0, 0, max(width, 0), max(height, 0))
	if next == v.bounds {
		return
	}
	v.bounds = next

	listeners := append([]viewportListener(nil), v.listeners...)
	for _, l := range listeners {
		l.fn()
	}
}
