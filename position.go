package overlay

// PlacementRequest describes a floating panel to position against an anchor.
type PlacementRequest struct {
	// Anchor is the trigger's box in viewport coordinates.
	Anchor Rect
	// Content is the measured size of the floating panel. A zero size means
	// the panel has not been measured yet.
	Content Size
	// Preferred is the placement tried first.
	Preferred Placement
	// Fallbacks are tried in order when Preferred does not fit. A nil slice
	// selects DefaultFallbacks(Preferred); an empty non-nil slice tries nothing.
	Fallbacks []Placement
	// DisableFallbacks skips the fallback search entirely.
	DisableFallbacks bool
	// Container bounds the content. The zero Rect means unbounded.
	Container Rect
	// Gap is the main-axis distance between anchor and content.
	Gap int
	// Shift nudges the content along the cross axis (positive is right or down).
	Shift int
	// RTL mirrors start and end.
	RTL bool
	// Origin, when set, replaces Anchor with a zero-size anchor at the point.
	// Used for menus opened at the pointer.
	Origin *Point
	// AllowOutOfBounds returns the preferred candidate unclamped when
	// nothing fits. Clipped is still reported.
	AllowOutOfBounds bool
}

// PlacementResult is the resolved position of the panel's top-left corner.
type PlacementResult struct {
	Top  int
	Left int
	// Placement is the key that produced the position. It differs from the
	// request's Preferred when a fallback was chosen.
	Placement Placement
	// Clipped is true when no candidate fit and the position was clamped
	// into the container.
	Clipped bool
}

// Rect returns the panel rectangle described by the result.
func (r PlacementResult) Rect(content Size) Rect {
	return content.Sanitize().At(r.Left, r.Top)
}

// Resolve computes where the content of req should be placed.
// It is pure and deterministic and never fails: malformed geometry is
// clamped rather than rejected because callers run it on every resize and
// scroll notification.
func Resolve(req PlacementRequest) PlacementResult {
	anchor := req.Anchor.Sanitize()
	if req.Origin != nil {
		anchor = req.Origin.Rect()
	}
	content := req.Content.Sanitize()
	container := req.Container.Sanitize()

	preferred := req.Preferred
	if !preferred.Valid() {
		preferred = BottomStart
	}

	first := candidate(anchor, content, preferred.physical(req.RTL), req.Gap, req.Shift)
	result := PlacementResult{Top: first.Y, Left: first.X, Placement: preferred}

	// Nothing to overflow, or nothing to overflow into.
	if content.IsZero() || container.IsEmpty() {
		return result
	}
	if container.ContainsRect(first) {
		return result
	}

	if !req.DisableFallbacks {
		fallbacks := req.Fallbacks
		if fallbacks == nil {
			fallbacks = DefaultFallbacks(preferred)
		}
		for _, p := range fallbacks {
			if !p.Valid() || p == preferred {
				continue
			}
			r := candidate(anchor, content, p.physical(req.RTL), req.Gap, req.Shift)
			if container.ContainsRect(r) {
				return PlacementResult{Top: r.Y, Left: r.X, Placement: p}
			}
		}
	}

	result.Clipped = true
	if !req.AllowOutOfBounds {
		clamped := first.ClampInto(container)
		result.Top, result.Left = clamped.Y, clamped.X
	}
	return result
}

// candidate computes the panel rectangle for one physical placement.
func candidate(anchor Rect, content Size, p physicalPlacement, gap, shift int) Rect {
	var x, y int
	switch p.side {
	case physTop:
		y = anchor.Y - gap - content.Height
		x = alignOn(anchor.X, anchor.Width, content.Width, p.align) + shift
	case physBottom:
		y = anchor.Bottom() + gap
		x = alignOn(anchor.X, anchor.Width, content.Width, p.align) + shift
	case physLeft:
		x = anchor.X - gap - content.Width
		y = alignOn(anchor.Y, anchor.Height, content.Height, p.align) + shift
	case physRight:
		x = anchor.Right() + gap
		y = alignOn(anchor.Y, anchor.Height, content.Height, p.align) + shift
	}
	return content.At(x, y)
}

// alignOn returns the cross-axis start coordinate of content of length size
// aligned against an anchor span [start, start+length).
func alignOn(start, length, size int, a physicalAlign) int {
	switch a {
	case physCenter:
		return start + (length-size)/2
	case physHigh:
		return start + length - size
	default:
		return start
	}
}
