package overlay

import (
	"fmt"
	"strings"
)

// Side is the logical side of the anchor the content is placed against.
// Start and End follow the reading direction.
type Side uint8

const (
	sideInvalid Side = iota
	// SideTop places content above the anchor.
	SideTop
	// SideBottom places content below the anchor.
	SideBottom
	// SideStart places content before the anchor in reading order
	// (left in LTR, right in RTL).
	SideStart
	// SideEnd places content after the anchor in reading order.
	SideEnd
)

// String returns the placement-key spelling of the side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideStart:
		return "start"
	case SideEnd:
		return "end"
	default:
		return "invalid"
	}
}

// vertical reports whether content on this side stacks above or below the anchor.
func (s Side) vertical() bool {
	return s == SideTop || s == SideBottom
}

// Align is the secondary (cross-axis) alignment of content against the anchor.
type Align uint8

const (
	// AlignStart aligns the leading cross-axis edges.
	AlignStart Align = iota
	// AlignCenter centers the content on the anchor.
	AlignCenter
	// AlignEnd aligns the trailing cross-axis edges.
	AlignEnd
)

// Placement is one of the twelve placement keys: a side plus an alignment.
// The zero value is invalid; Resolve treats it as BottomStart.
type Placement struct {
	Side  Side
	Align Align
}

// The twelve placement keys.
var (
	TopStart     = Placement{SideTop, AlignStart}
	TopCenter    = Placement{SideTop, AlignCenter}
	TopEnd       = Placement{SideTop, AlignEnd}
	BottomStart  = Placement{SideBottom, AlignStart}
	BottomCenter = Placement{SideBottom, AlignCenter}
	BottomEnd    = Placement{SideBottom, AlignEnd}
	StartTop     = Placement{SideStart, AlignStart}
	StartCenter  = Placement{SideStart, AlignCenter}
	StartBottom  = Placement{SideStart, AlignEnd}
	EndTop       = Placement{SideEnd, AlignStart}
	EndCenter    = Placement{SideEnd, AlignCenter}
	EndBottom    = Placement{SideEnd, AlignEnd}
)

// AllPlacements lists every placement key in a stable order.
var AllPlacements = []Placement{
	TopStart, TopCenter, TopEnd,
	BottomStart, BottomCenter, BottomEnd,
	StartTop, StartCenter, StartBottom,
	EndTop, EndCenter, EndBottom,
}

// Valid reports whether p names one of the twelve placement keys.
func (p Placement) Valid() bool {
	return p.Side >= SideTop && p.Side <= SideEnd && p.Align <= AlignEnd
}

// String returns the placement key, e.g. "bottom-start" or "end-center".
func (p Placement) String() string {
	if !p.Valid() {
		return "invalid"
	}
	return p.Side.String() + "-" + p.alignString()
}

func (p Placement) alignString() string {
	switch p.Align {
	case AlignCenter:
		return "center"
	case AlignEnd:
		if p.Side.vertical() {
			return "end"
		}
		return "bottom"
	default:
		if p.Side.vertical() {
			return "start"
		}
		return "top"
	}
}

// Mirror swaps the logical start and end components of the placement.
// Resolving the mirrored placement left-to-right gives the same geometry
// as resolving p right-to-left.
func (p Placement) Mirror() Placement {
	switch p.Side {
	case SideStart:
		p.Side = SideEnd
	case SideEnd:
		p.Side = SideStart
	default:
		switch p.Align {
		case AlignStart:
			p.Align = AlignEnd
		case AlignEnd:
			p.Align = AlignStart
		}
	}
	return p
}

// MarshalText implements encoding.TextMarshaler.
func (p Placement) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid placement %+v", p)
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Placement) UnmarshalText(text []byte) error {
	parsed, err := ParsePlacement(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePlacement parses a placement key. A bare side ("bottom") aliases the
// start alignment of that side ("bottom-start"). Sides top and bottom take
// start/center/end; sides start and end take top/center/bottom.
func ParsePlacement(s string) (Placement, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	sidePart, alignPart, _ := strings.Cut(key, "-")

	var p Placement
	switch sidePart {
	case "top":
		p.Side = SideTop
	case "bottom":
		p.Side = SideBottom
	case "start":
		p.Side = SideStart
	case "end":
		p.Side = SideEnd
	default:
		return Placement{}, fmt.Errorf("unknown placement %q", s)
	}

	switch alignPart {
	case "":
		p.Align = AlignStart
	case "center":
		p.Align = AlignCenter
	case "start", "top":
		if (alignPart == "start") != p.Side.vertical() {
			return Placement{}, fmt.Errorf("unknown placement %q", s)
		}
		p.Align = AlignStart
	case "end", "bottom":
		if (alignPart == "end") != p.Side.vertical() {
			return Placement{}, fmt.Errorf("unknown placement %q", s)
		}
		p.Align = AlignEnd
	default:
		return Placement{}, fmt.Errorf("unknown placement %q", s)
	}
	return p, nil
}

// MustParsePlacement parses a placement key and panics on error.
func MustParsePlacement(s string) Placement {
	p, err := ParsePlacement(s)
	if err != nil {
		panic(err)
	}
	return p
}

// DefaultFallbacks returns the alternate order tried when a request leaves
// its fallback list unset: the opposite side keeping the alignment, then
// the two perpendicular sides.
func DefaultFallbacks(p Placement) []Placement {
	switch p.Side {
	case SideTop:
		return []Placement{{SideBottom, p.Align}, EndTop, StartTop}
	case SideBottom:
		return []Placement{{SideTop, p.Align}, EndTop, StartTop}
	case SideStart:
		return []Placement{{SideEnd, p.Align}, BottomStart, TopStart}
	case SideEnd:
		return []Placement{{SideStart, p.Align}, BottomStart, TopStart}
	default:
		return nil
	}
}

// physicalSide is a side after reading direction has been applied.
type physicalSide uint8

const (
	physTop physicalSide = iota
	physBottom
	physLeft
	physRight
)

// physicalAlign positions content along the cross axis: at the low edge
// (left or top), centered, or at the high edge.
type physicalAlign uint8

const (
	physLow physicalAlign = iota
	physCenter
	physHigh
)

type physicalPlacement struct {
	side  physicalSide
	align physicalAlign
}

// physical maps a logical placement to physical geometry. All reading
// direction handling happens here.
func (p Placement) physical(rtl bool) physicalPlacement {
	if rtl {
		p = p.Mirror()
	}

	var out physicalPlacement
	switch p.Side {
	case SideTop:
		out.side = physTop
	case SideStart:
		out.side = physLeft
	case SideEnd:
		out.side = physRight
	default:
		out.side = physBottom
	}

	switch p.Align {
	case AlignCenter:
		out.align = physCenter
	case AlignEnd:
		out.align = physHigh
	default:
		out.align = physLow
	}
	return out
}
