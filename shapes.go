package main

import (
	"fmt"
	"math"
	"strings"
)

type Kind int

const (
	KindCircle Kind = iota
	KindSquare
	KindTriangle
	KindLine
)

// Geometry is the pure, immutable part of a shape: its kind and size. Anchor
// and colors live on the PlacedShape that owns it.
type Geometry interface {
	Kind() Kind
	Size() int
	// Outline returns the boundary cells at anchor, clipped to b.
	Outline(at point, b Bounds) []point
	// Interior returns the cells strictly inside the boundary, clipped to b.
	// It never overlaps Outline.
	Interior(at point, b Bounds) []point
	// Fits applies the shape's bounding-box rule at anchor.
	Fits(at point, b Bounds) bool
}

type kindInfo struct {
	name     string
	dimName  string
	fillable bool
	build    func(size int) Geometry
}

// kinds is the registered-variant list. Adding a shape means adding a
// Geometry implementation and an entry here.
var kinds = []kindInfo{
	KindCircle:   {name: "circle", dimName: "radius", fillable: true, build: func(n int) Geometry { return Circle{Radius: n} }},
	KindSquare:   {name: "square", dimName: "side", fillable: true, build: func(n int) Geometry { return Square{Side: n} }},
	KindTriangle: {name: "triangle", dimName: "height", fillable: true, build: func(n int) Geometry { return Triangle{Height: n} }},
	KindLine:     {name: "line", dimName: "length", fillable: false, build: func(n int) Geometry { return Line{Length: n} }},
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kinds) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

// Fillable reports whether shapes of this kind have an interior.
func (k Kind) Fillable() bool {
	return k >= 0 && int(k) < len(kinds) && kinds[k].fillable
}

// DimensionName is the user-facing name of the kind's size parameter.
func (k Kind) DimensionName() string {
	if k < 0 || int(k) >= len(kinds) {
		return "size"
	}
	return kinds[k].dimName
}

func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, info := range kinds {
		if info.name == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// NewGeometry builds the variant for kind with the given size. The size is
// not validated here; degenerate shapes simply rasterize to nothing.
func NewGeometry(kind Kind, size int) (Geometry, error) {
	if kind < 0 || int(kind) >= len(kinds) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownShape, kind)
	}
	return kinds[kind].build(size), nil
}

// WithSize returns a copy of g resized to size.
func WithSize(g Geometry, size int) Geometry {
	return kinds[g.Kind()].build(size)
}

func clip(points []point, b Bounds) []point {
	out := points[:0]
	for _, p := range points {
		if b.contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// Circle is anchored at its centre.
type Circle struct {
	Radius int
}

func (c Circle) Kind() Kind { return KindCircle }
func (c Circle) Size() int  { return c.Radius }

func (c Circle) distance(dx, dy, scale int) float64 {
	sy := float64(dy * scale)
	return math.Sqrt(float64(dx*dx) + sy*sy)
}

func (c Circle) isOutline(dx, dy, scale int) bool {
	return math.Abs(c.distance(dx, dy, scale)-float64(c.Radius)) <= 0.5
}

func (c Circle) Outline(at point, b Bounds) []point {
	return c.cells(at, b, true)
}

func (c Circle) Interior(at point, b Bounds) []point {
	return c.cells(at, b, false)
}

func (c Circle) cells(at point, b Bounds, outline bool) []point {
	r := c.Radius
	if r <= 0 {
		return nil
	}
	var points []point
	for dy := -r - 1; dy <= r+1; dy++ {
		for dx := -r - 1; dx <= r+1; dx++ {
			onRing := c.isOutline(dx, dy, b.Scale)
			switch {
			case outline && onRing:
			case !outline && !onRing && c.distance(dx, dy, b.Scale) < float64(r):
			default:
				continue
			}
			points = append(points, point{at.X + dx, at.Y + dy})
		}
	}
	return clip(points, b)
}

// Square is anchored at its top-left corner. Its rows are compressed by the
// aspect scale so it looks square on a terminal.
type Square struct {
	Side int
}

func (s Square) Kind() Kind { return KindSquare }
func (s Square) Size() int  { return s.Side }

// rows returns, for each canvas row the square covers, which columns are
// outline. A canvas row is the merge of every block row mapped onto it.
func (s Square) rows(scale int) [][]bool {
	n := s.Side
	if n <= 0 {
		return nil
	}
	rows := make([][]bool, (n-1)/scale+1)
	for j := 0; j < n; j++ {
		row := j / scale
		if rows[row] == nil {
			rows[row] = make([]bool, n)
		}
		for i := 0; i < n; i++ {
			if i == 0 || i == n-1 || j == 0 || j == n-1 {
				rows[row][i] = true
			}
		}
	}
	return rows
}

func (s Square) Outline(at point, b Bounds) []point {
	return s.cells(at, b, true)
}

func (s Square) Interior(at point, b Bounds) []point {
	return s.cells(at, b, false)
}

func (s Square) cells(at point, b Bounds, outline bool) []point {
	var points []point
	for dy, row := range s.rows(b.Scale) {
		for dx, border := range row {
			if border == outline {
				points = append(points, point{at.X + dx, at.Y + dy})
			}
		}
	}
	return clip(points, b)
}

// Triangle is anchored at its apex and grows downwards.
type Triangle struct {
	Height int
}

func (t Triangle) Kind() Kind { return KindTriangle }
func (t Triangle) Size() int  { return t.Height }

func (t Triangle) Outline(at point, b Bounds) []point {
	h := t.Height
	if h <= 0 {
		return nil
	}
	var points []point
	for i := 0; i < h-1; i++ {
		left, right := at.X-i, at.X+i
		points = append(points, point{left, at.Y + i})
		if right != left {
			points = append(points, point{right, at.Y + i})
		}
	}
	baseY := at.Y + h - 1
	for j := 0; j < 2*h-1; j++ {
		points = append(points, point{at.X - h + 1 + j, baseY})
	}
	return clip(points, b)
}

func (t Triangle) Interior(at point, b Bounds) []point {
	var points []point
	for i := 1; i < t.Height-1; i++ {
		for x := at.X - i + 1; x < at.X+i; x++ {
			points = append(points, point{x, at.Y + i})
		}
	}
	return clip(points, b)
}

// Line is a horizontal run anchored at its left end.
type Line struct {
	Length int
}

func (l Line) Kind() Kind { return KindLine }
func (l Line) Size() int  { return l.Length }

func (l Line) Outline(at point, b Bounds) []point {
	var points []point
	for i := 0; i < l.Length; i++ {
		points = append(points, point{at.X + i, at.Y})
	}
	return clip(points, b)
}

func (l Line) Interior(point, Bounds) []point { return nil }
