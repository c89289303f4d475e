package layout

// Size is a width and height pair with no position.
type Size struct {
	Width, Height int
}

// NewSize creates a Size.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// SizeFromFloat builds a Size from fractional measurements. NaN, infinite
// and negative values become zero.
func SizeFromFloat(width, height float64) Size {
	return Size{Width: max(cell(width), 0), Height: max(cell(height), 0)}
}

// IsZero reports whether either dimension is zero or negative, meaning
// the content has not been measured yet.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Sanitize returns a copy with negative dimensions clamped to zero.
func (s Size) Sanitize() Size {
	return Size{Width: max(s.Width, 0), Height: max(s.Height, 0)}
}

// At places the size at the given origin.
func (s Size) At(x, y int) Rect {
	return Rect{X: x, Y: y, Width: s.Width, Height: s.Height}
}
