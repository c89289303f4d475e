package overlay

import "github.com/grindlemire/go-overlay/internal/layout"

// Rect is a type alias for layout.Rect.
// Anchor and container boxes are expressed in integer cell coordinates.
type Rect = layout.Rect

// Point is a type alias for layout.Point.
type Point = layout.Point

// Size is a type alias for layout.Size.
type Size = layout.Size

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// NewSize creates a new Size.
func NewSize(width, height int) Size {
	return layout.NewSize(width, height)
}

// RectFromFloat converts fractional measurements into a Rect, replacing NaN
// and infinite values with zero. Measurement providers that report
// sub-cell geometry should go through this helper.
func RectFromFloat(x, y, width, height float64) Rect {
	return layout.RectFromFloat(x, y, width, height)
}

// SizeFromFloat converts fractional measurements into a Size.
func SizeFromFloat(width, height float64) Size {
	return layout.SizeFromFloat(width, height)
}
