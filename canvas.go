package main

import "strings"

const blankCell = ' '

// Canvas is a fixed-size character grid. It holds no state of its own worth
// saving: the registry repaints it from scratch after every change.
type Canvas struct {
	width  int
	height int
	scale  int
	cells  [][]rune
}

// Bounds describes the drawable area and the vertical aspect correction
// applied by the rasterizers (character cells are about twice as tall as wide).
type Bounds struct {
	W, H  int
	Scale int
}

func (b Bounds) contains(p point) bool {
	return p.X >= 0 && p.X < b.W && p.Y >= 0 && p.Y < b.H
}

func NewCanvas(width, height int) *Canvas {
	return NewCanvasWithScale(width, height, defaultAspectScale)
}

func NewCanvasWithScale(width, height, scale int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if scale < 1 {
		scale = 1
	}
	c := &Canvas{width: width, height: height, scale: scale}
	c.cells = make([][]rune, height)
	for y := range c.cells {
		c.cells[y] = make([]rune, width)
	}
	c.Clear()
	return c
}

func (c *Canvas) Bounds() Bounds {
	return Bounds{W: c.width, H: c.height, Scale: c.scale}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = blankCell
		}
	}
}

// Set paints one cell. Writes outside the grid are dropped.
func (c *Canvas) Set(x, y int, ch rune) {
	if !c.isValidPos(x, y) {
		return
	}
	c.cells[y][x] = ch
}

func (c *Canvas) At(x, y int) rune {
	if !c.isValidPos(x, y) {
		return blankCell
	}
	return c.cells[y][x]
}

func (c *Canvas) isValidPos(x, y int) bool {
	return y >= 0 && y < c.height && x >= 0 && x < c.width
}

func (c *Canvas) paint(points []point, ch rune) {
	for _, p := range points {
		c.Set(p.X, p.Y, ch)
	}
}

// Render returns the grid one scanline per string.
func (c *Canvas) Render() []string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		lines[y] = string(row)
	}
	return lines
}

func (c *Canvas) String() string {
	return strings.Join(c.Render(), "\n")
}

// IsBlank reports whether nothing is painted.
func (c *Canvas) IsBlank() bool {
	for _, row := range c.cells {
		for _, ch := range row {
			if ch != blankCell {
				return false
			}
		}
	}
	return true
}
