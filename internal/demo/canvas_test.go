package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grindlemire/go-overlay"
)

func (c *canvas) plain() []string {
	rows := make([]string, c.height)
	for y := range c.height {
		line := make([]rune, c.width)
		for x := range c.width {
			line[x] = c.cells[y*c.width+x].r
		}
		rows[y] = string(line)
	}
	return rows
}

func TestCanvas(t *testing.T) {
	c := newCanvas(8, 4)
	c.text(6, 0, "abc", styleNormal)
	c.box(overlay.NewRect(1, 1, 4, 3), styleBorder)
	c.set(-1, 0, 'x', styleNormal)
	c.set(2, 2, '›', styleActive)

	assert.Equal(t, []string{
		"      ab",
		" ╭──╮   ",
		" │› │   ",
		" ╰──╯   ",
	}, c.plain())
	assert.Equal(t, styleActive, c.cells[2*8+2].style)
}
