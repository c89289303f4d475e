package overlay

import (
	"sync"

	"github.com/grindlemire/go-overlay/internal/debug"
)

// Viewport supplies container bounds and notifies when they change
// (terminal resize, scroll of the clipping ancestor).
type Viewport interface {
	Bounds() Rect
	Subscribe(onChange func()) (unsubscribe func())
}

// Tracker keeps a placement up to date as its inputs change. Measurement and
// viewport providers push new geometry into it; subscribers are notified
// only when the resolved position actually moves. A Tracker is safe for
// concurrent use; listeners are called one at a time and may update the
// tracker again from inside the callback.
type Tracker struct {
	mu        sync.Mutex
	req       PlacementRequest
	result    PlacementResult
	listeners []trackerListener
	nextID    int
	detach    func()

	// delivered is the last result handed to listeners.
	delivered  PlacementResult
	dirty      bool
	delivering bool
}

type trackerListener struct {
	id int
	fn func(PlacementResult)
}

// NewTracker creates a Tracker and resolves req immediately.
func NewTracker(req PlacementRequest) *Tracker {
	res := Resolve(req)
	return &Tracker{req: req, result: res, delivered: res}
}

// Result returns the most recently resolved placement.
func (t *Tracker) Result() PlacementResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result
}

// Request returns a copy of the current request.
func (t *Tracker) Request() PlacementRequest {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.req
}

// Subscribe registers fn to receive each changed result.
func (t *Tracker) Subscribe(fn func(PlacementResult)) (unsubscribe func()) {
	t.mu.Lock()
	t.nextID++
	id := t.nextID
	t.listeners = append(t.listeners, trackerListener{id: id, fn: fn})
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		for i, l := range t.listeners {
			if l.id == id {
				t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
				return
			}
		}
	}
}

// SetAnchor updates the trigger box.
func (t *Tracker) SetAnchor(r Rect) {
	t.mutate(func(req *PlacementRequest) { req.Anchor = r })
}

// SetOrigin anchors the content at a point instead of the trigger box.
// Passing nil returns to the anchor rectangle.
func (t *Tracker) SetOrigin(p *Point) {
	t.mutate(func(req *PlacementRequest) { req.Origin = p })
}

// SetContent updates the measured content size.
func (t *Tracker) SetContent(s Size) {
	t.mutate(func(req *PlacementRequest) { req.Content = s })
}

// SetContainer updates the container bounds.
func (t *Tracker) SetContainer(r Rect) {
	t.mutate(func(req *PlacementRequest) { req.Container = r })
}

// Update replaces the whole request.
func (t *Tracker) Update(req PlacementRequest) {
	t.mutate(func(r *PlacementRequest) { *r = req })
}

// Attach follows the bounds of v as the container. Any previously attached
// viewport is detached first.
func (t *Tracker) Attach(v Viewport) {
	t.Detach()
	t.SetContainer(v.Bounds())
	unsubscribe := v.Subscribe(func() { t.SetContainer(v.Bounds()) })

	t.mu.Lock()
	t.detach = unsubscribe
	t.mu.Unlock()
}

// Detach stops following the attached viewport.
func (t *Tracker) Detach() {
	t.mu.Lock()
	detach := t.detach
	t.detach = nil
	t.mu.Unlock()

	if detach != nil {
		detach()
	}
}

// mutate applies fn and delivers the new result. Delivery is serialised:
// while one caller is notifying, other mutations only record their result
// and the delivering caller drains the latest one, so listeners never see
// an older position after a newer one.
func (t *Tracker) mutate(fn func(*PlacementRequest)) {
	t.mu.Lock()
	fn(&t.req)
	next := Resolve(t.req)
	if next == t.result {
		t.mu.Unlock()
		return
	}
	t.result = next
	t.dirty = true
	if t.delivering {
		t.mu.Unlock()
		return
	}

	t.delivering = true
	for t.dirty {
		t.dirty = false
		res := t.result
		if res == t.delivered {
			continue
		}
		t.delivered = res
		listeners := make([]trackerListener, len(t.listeners))
		copy(listeners, t.listeners)
		t.mu.Unlock()

		log := debug.Logger()
		log.Debug().
			Stringer("placement", res.Placement).
			Int("top", res.Top).
			Int("left", res.Left).
			Bool("clipped", res.Clipped).
			Msg("tracker moved")
		for _, l := range listeners {
			l.fn(res)
		}

		t.mu.Lock()
	}
	t.delivering = false
	t.mu.Unlock()
}
