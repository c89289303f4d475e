package layout

// Point is a cell position.
type Point struct {
	X, Y int
}

// Add offsets p by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub is the offset from other to p.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// In reports whether the cell at p lies inside r.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// Rect is the zero-size rectangle at p, used as the anchor of menus opened
// at the pointer.
func (p Point) Rect() Rect {
	return Rect{X: p.X, Y: p.Y}
}
