package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grindlemire/go-overlay"
)

func TestWindowViewport_Resize(t *testing.T) {
	v := newWindowViewport(80, 24)
	assert.Equal(t, overlay.NewRect(0, 0, 80, 24), v.Bounds())

	calls := 0
	unsubscribe := v.Subscribe(func() { calls++ })

	v.Resize(80, 24)
	assert.Equal(t, 0, calls, "same size should not notify")

	v.Resize(100, 30)
	assert.Equal(t, 1, calls)
	assert.Equal(t, overlay.NewRect(0, 0, 100, 30), v.Bounds())

	v.Resize(-5, 10)
	assert.Equal(t, overlay.NewRect(0, 0, 0, 10), v.Bounds())

	unsubscribe()
	v.Resize(1, 1)
	assert.Equal(t, 2, calls)
	assert.Empty(t, v.listeners)
}

func TestWindowViewport_FeedsTracker(t *testing.T) {
	v := newWindowViewport(40, 10)
	tracker := overlay.NewTracker(overlay.PlacementRequest{
		Anchor:    overlay.NewRect(2, 6, 6, 1),
		Content:   overlay.NewSize(10, 3),
		Preferred: overlay.BottomStart,
	})
	tracker.Attach(v)
	assert.Equal(t, overlay.BottomStart, tracker.Result().Placement)
	assert.Equal(t, 7, tracker.Result().Top)

	v.Resize(40, 8)
	assert.Equal(t, overlay.TopStart, tracker.Result().Placement)
	assert.Equal(t, 3, tracker.Result().Top)

	tracker.Detach()
	assert.Empty(t, v.listeners)
}
