package tui

import (
	"strings"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/viewport"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a character grid where every character holds 2x4 dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set lights the dot at (x, y) in dot coordinates. The canvas is
// (Width*2) x (Height*4) dots.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawRect outlines the dot rectangle with corners (x0, y0) and (x1, y1).
func (c *Canvas) DrawRect(x0, y0, x1, y1 int) {
	for x := x0; x <= x1; x++ {
		c.Set(x, y0)
		c.Set(x, y1)
	}
	for y := y0; y <= y1; y++ {
		c.Set(x0, y)
		c.Set(x1, y)
	}
}

func (c *Canvas) String() string {
	rows := make([]string, len(c.Grid))
	for i, row := range c.Grid {
		rows[i] = string(row)
	}
	return strings.Join(rows, "\n")
}

// minimap draws the whole grid scaled into a w x h character canvas, with
// the camera's viewport outlined. A dot is lit when any cell it covers is
// alive.
func minimap(g *life.Grid, cam *viewport.Camera, w, h int) *Canvas {
	c := NewCanvas(w, h)
	dotsW, dotsH := w*2, h*4
	if dotsW == 0 || dotsH == 0 {
		return c
	}
	// Cells per dot, rounded up so the grid always fits.
	scale := max(1, (g.Width()+dotsW-1)/dotsW, (g.Height()+dotsH-1)/dotsH)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if alive, _ := g.CellAt(x, y); alive {
				c.Set(x/scale, y/scale)
			}
		}
	}

	// The viewport may hang off the top or left of the grid.
	ox, oy := cam.Origin()
	x0, y0 := max(0, ox), max(0, oy)
	x1 := min(g.Width()-1, ox+cam.ViewportWidth-1)
	y1 := min(g.Height()-1, oy+cam.ViewportHeight-1)
	if cam.ViewportWidth > 0 && cam.ViewportHeight > 0 && x1 >= x0 && y1 >= y0 {
		c.DrawRect(x0/scale, y0/scale, x1/scale, y1/scale)
	}
	return c
}
