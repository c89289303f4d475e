package config

import (
	"fmt"

	"github.com/grindlemire/go-overlay"
)

// RTL reports whether the placement should be mirrored. An explicit
// direction wins over the locale.
func (p *Placement) RTL() bool {
	switch p.Direction {
	case "rtl":
		return true
	case "ltr":
		return false
	}
	return p.Locale != "" && overlay.DirectionForLocale(p.Locale).IsRTL()
}

// Request converts the placement into a request for overlay.Resolve.
func (p *Placement) Request() (overlay.PlacementRequest, error) {
	req := overlay.PlacementRequest{
		Anchor:           overlay.NewRect(p.Anchor.X, p.Anchor.Y, p.Anchor.Width, p.Anchor.Height),
		Content:          overlay.NewSize(p.Content.Width, p.Content.Height),
		Preferred:        overlay.BottomStart,
		DisableFallbacks: p.DisableFallbacks,
		Gap:              p.Gap,
		Shift:            p.Shift,
		RTL:              p.RTL(),
		AllowOutOfBounds: p.AllowOutOfBounds,
	}
	if p.Origin != nil {
		req.Origin = &overlay.Point{X: p.Origin.X, Y: p.Origin.Y}
	}
	if c := p.Container; c != nil {
		req.Container = overlay.NewRect(c.X, c.Y, c.Width, c.Height)
	}

	if p.Preferred != "" {
		pl, err := overlay.ParsePlacement(p.Preferred)
		if err != nil {
			return overlay.PlacementRequest{}, NewValidationError("placement.preferred", err.Error(), err)
		}
		req.Preferred = pl
	}

	if p.Fallbacks != nil {
		req.Fallbacks = make([]overlay.Placement, 0, len(p.Fallbacks))
		for i, s := range p.Fallbacks {
			pl, err := overlay.ParsePlacement(s)
			if err != nil {
				return overlay.PlacementRequest{}, NewValidationError(fmt.Sprintf("placement.fallbacks[%d]", i), err.Error(), err)
			}
			req.Fallbacks = append(req.Fallbacks, pl)
		}
	}
	return req, nil
}

// Bindings converts the key overrides. It returns nil when the file has
// none. Conflicts with the defaults that remain are reported.
func (f *File) Bindings() (overlay.Bindings, error) {
	if len(f.Keys) == 0 {
		return nil, nil
	}

	out := make(overlay.Bindings)
	for i, b := range f.Keys {
		mode, err := overlay.ParseTrapMode(b.Mode)
		if err != nil {
			return nil, NewValidationError(fmt.Sprintf("keys[%d].mode", i), err.Error(), err)
		}
		action, err := overlay.ParseAction(b.Action)
		if err != nil {
			return nil, NewValidationError(fmt.Sprintf("keys[%d].action", i), err.Error(), err)
		}
		for j, spec := range b.Keys {
			pattern, err := overlay.ParseKeyPattern(spec)
			if err != nil {
				return nil, NewValidationError(fmt.Sprintf("keys[%d].keys[%d]", i, j), err.Error(), err)
			}
			out[mode] = append(out[mode], overlay.KeyBinding{Pattern: pattern, Action: action})
		}
	}

	if err := overlay.DefaultBindings().Merge(out).Validate(); err != nil {
		return nil, NewValidationError("keys", err.Error(), err)
	}
	return out, nil
}

// ChainOptions returns the chain options the file asks for.
func (f *File) ChainOptions() ([]overlay.ChainOption, error) {
	b, err := f.Bindings()
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	return []overlay.ChainOption{overlay.WithBindings(b)}, nil
}
