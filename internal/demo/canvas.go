package demo

import (
	"strings"

	"github.com/grindlemire/go-overlay"
)

type canvasCell struct {
	r     rune
	style styleID
}

// canvas is a grid of styled cells. Later draws replace earlier ones, so
// panels are painted over the page in stacking order.
type canvas struct {
	width, height int
	cells         []canvasCell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: max(width, 0), height: max(height, 0)}
	c.cells = make([]canvasCell, c.width*c.height)
	for i := range c.cells {
		c.cells[i] = canvasCell{r: ' '}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, style styleID) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = canvasCell{r: r, style: style}
}

// text writes s starting at (x, y), one cell per rune, clipped to the canvas.
func (c *canvas) text(x, y int, s string, style styleID) {
	for _, r := range s {
		c.set(x, y, r, style)
		x++
	}
}

func (c *canvas) fill(r overlay.Rect, style styleID) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.set(x, y, ' ', style)
		}
	}
}

// box clears r and draws a rounded border around its edge.
func (c *canvas) box(r overlay.Rect, style styleID) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	c.fill(r, styleNormal)

	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		c.set(x, r.Y, '─', style)
		c.set(x, bottom, '─', style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.set(r.X, y, '│', style)
		c.set(right, y, '│', style)
	}
	c.set(r.X, r.Y, '╭', style)
	c.set(right, r.Y, '╮', style)
	c.set(r.X, bottom, '╰', style)
	c.set(right, bottom, '╯', style)
}

// String renders the canvas, grouping runs of equally styled cells.
func (c *canvas) String() string {
	rows := make([]string, c.height)
	for y := range c.height {
		var b strings.Builder
		line := c.cells[y*c.width : (y+1)*c.width]
		start := 0
		for x := 1; x <= len(line); x++ {
			if x < len(line) && line[x].style == line[start].style {
				continue
			}
			run := make([]rune, 0, x-start)
			for _, cell := range line[start:x] {
				run = append(run, cell.r)
			}
			b.WriteString(styles[line[start].style].Render(string(run)))
			start = x
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}
