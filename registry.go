package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// PlacedShape is one registry entry: geometry plus where and how it is drawn.
type PlacedShape struct {
	ID       int
	Geometry Geometry
	Anchor   point
	Outline  Color
	Fill     Color
	Filled   bool
}

func (s PlacedShape) String() string {
	desc := fmt.Sprintf("#%d %s %s=%d at (%d,%d) outline=%s",
		s.ID, s.Geometry.Kind(), s.Geometry.Kind().DimensionName(), s.Geometry.Size(),
		s.Anchor.X, s.Anchor.Y, s.Outline.Name())
	if s.Filled {
		desc += " fill=" + s.Fill.Name()
	}
	return desc
}

// Registry is the ordered list of placed shapes and the only source of truth
// for what is on the canvas. Every mutation ends with a full redraw.
type Registry struct {
	shapes []PlacedShape
	nextID int
	canvas *Canvas
}

func NewRegistry(canvas *Canvas) *Registry {
	return &Registry{
		shapes: make([]PlacedShape, 0),
		nextID: 1,
		canvas: canvas,
	}
}

func (r *Registry) Canvas() *Canvas { return r.canvas }
func (r *Registry) Len() int        { return len(r.shapes) }
func (r *Registry) NextID() int     { return r.nextID }

// Shapes returns a copy of the entries in painting order.
func (r *Registry) Shapes() []PlacedShape {
	out := make([]PlacedShape, len(r.shapes))
	copy(out, r.shapes)
	return out
}

func (r *Registry) Get(id int) (PlacedShape, bool) {
	if i := r.indexOf(id); i >= 0 {
		return r.shapes[i], true
	}
	return PlacedShape{}, false
}

func (r *Registry) indexOf(id int) int {
	for i, s := range r.shapes {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (r *Registry) notFound(id int) error {
	return fmt.Errorf("%w: no shape with id %d", ErrNotFound, id)
}

func (r *Registry) reject(op string, err error) error {
	Logger().Info("rejected", slog.String("op", op), slog.String("reason", err.Error()))
	return err
}

// Add validates s and appends it with the next id. The ID field of s is
// ignored. Unfilled shapes keep whatever Fill they carry, but it is not drawn.
func (r *Registry) Add(s PlacedShape) (PlacedShape, error) {
	if s.Geometry == nil {
		return PlacedShape{}, r.reject("add", fmt.Errorf("%w: missing geometry", ErrUnknownShape))
	}
	if err := checkColors(s); err != nil {
		return PlacedShape{}, r.reject("add", err)
	}
	if err := checkPlacement(s.Geometry, s.Anchor, r.canvas.Bounds(), r.shapes, 0); err != nil {
		return PlacedShape{}, r.reject("add", err)
	}
	if !s.Filled {
		s.Fill = ColorDefault
	}
	s.ID = r.nextID
	r.nextID++
	r.shapes = append(r.shapes, s)
	r.redraw()
	Logger().Debug("added shape", slog.String("shape", s.String()))
	return s, nil
}

func checkColors(s PlacedShape) error {
	if !s.Outline.Valid() {
		return fmt.Errorf("%w: outline %q", ErrUnsupportedColor, rune(s.Outline))
	}
	if !s.Filled {
		return nil
	}
	if !s.Geometry.Kind().Fillable() {
		return fmt.Errorf("%w: a %s cannot be filled", ErrInvalidValue, s.Geometry.Kind())
	}
	if !s.Fill.Valid() {
		return fmt.Errorf("%w: fill %q", ErrUnsupportedColor, rune(s.Fill))
	}
	return nil
}

// Remove deletes the shape with id. The rest keep their order.
func (r *Registry) Remove(id int) (PlacedShape, error) {
	i := r.indexOf(id)
	if i < 0 {
		return PlacedShape{}, r.reject("remove", r.notFound(id))
	}
	removed := r.shapes[i]
	r.shapes = append(r.shapes[:i], r.shapes[i+1:]...)
	r.redraw()
	Logger().Debug("removed shape", slog.Int("id", id))
	return removed, nil
}

// Move re-anchors a shape. The target must fit and must not be another
// shape's anchor.
func (r *Registry) Move(id int, to point) error {
	i := r.indexOf(id)
	if i < 0 {
		return r.reject("move", r.notFound(id))
	}
	s := r.shapes[i]
	if !Fits(s.Geometry, to, r.canvas.Bounds()) {
		return r.reject("move", fmt.Errorf("%w: shape %d cannot move to (%d,%d)", ErrOutOfBounds, id, to.X, to.Y))
	}
	for _, other := range r.shapes {
		if other.ID != id && other.Anchor == to {
			return r.reject("move", fmt.Errorf("%w: shape %d is anchored at (%d,%d)", ErrOccupied, other.ID, to.X, to.Y))
		}
	}
	r.shapes[i].Anchor = to
	r.redraw()
	Logger().Debug("moved shape", slog.Int("id", id), slog.Int("x", to.X), slog.Int("y", to.Y))
	return nil
}

// Paint recolors a shape. An empty fill leaves the fill untouched; a
// non-empty one also marks the shape filled.
func (r *Registry) Paint(id int, outline, fill string) error {
	i := r.indexOf(id)
	if i < 0 {
		return r.reject("paint", r.notFound(id))
	}
	updated := r.shapes[i]
	c, err := ParseColor(outline)
	if err != nil {
		return r.reject("paint", err)
	}
	updated.Outline = c
	if fill != "" {
		f, err := ParseColor(fill)
		if err != nil {
			return r.reject("paint", err)
		}
		updated.Fill = f
		updated.Filled = true
	}
	if err := checkColors(updated); err != nil {
		return r.reject("paint", err)
	}
	r.shapes[i] = updated
	r.redraw()
	Logger().Debug("painted shape", slog.String("shape", updated.String()))
	return nil
}

// Edit changes a single named property. Geometry and position edits go
// through the same placement rules as Add.
func (r *Registry) Edit(id int, property, value string) error {
	i := r.indexOf(id)
	if i < 0 {
		return r.reject("edit", r.notFound(id))
	}
	updated, err := applyEdit(r.shapes[i], property, value)
	if err != nil {
		return r.reject("edit", err)
	}
	if err := checkColors(updated); err != nil {
		return r.reject("edit", err)
	}
	if err := checkPlacement(updated.Geometry, updated.Anchor, r.canvas.Bounds(), r.shapes, id); err != nil {
		return r.reject("edit", err)
	}
	r.shapes[i] = updated
	r.redraw()
	Logger().Debug("edited shape", slog.String("property", property), slog.String("shape", updated.String()))
	return nil
}

func applyEdit(s PlacedShape, property, value string) (PlacedShape, error) {
	prop := strings.ToLower(strings.TrimSpace(property))
	switch prop {
	case "x", "y", "size", "radius", "side", "height", "length":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return s, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidValue, prop, value)
		}
		switch prop {
		case "x":
			s.Anchor.X = n
		case "y":
			s.Anchor.Y = n
		default:
			if prop != "size" && prop != s.Geometry.Kind().DimensionName() {
				return s, fmt.Errorf("%w: a %s has no %s", ErrUnknownProperty, s.Geometry.Kind(), prop)
			}
			s.Geometry = WithSize(s.Geometry, n)
		}
	case "outline", "color":
		c, err := ParseColor(value)
		if err != nil {
			return s, err
		}
		s.Outline = c
	case "fill":
		c, err := ParseColor(value)
		if err != nil {
			return s, err
		}
		s.Fill = c
		s.Filled = true
	case "filled":
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return s, fmt.Errorf("%w: filled must be true or false, got %q", ErrInvalidValue, value)
		}
		s.Filled = b
		if !b {
			s.Fill = ColorDefault
		}
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownProperty, property)
	}
	return s, nil
}

// Clear drops every shape. Ids keep counting up.
func (r *Registry) Clear() {
	r.shapes = r.shapes[:0]
	r.redraw()
	Logger().Debug("cleared registry")
}

// replace swaps in a whole new shape list, as a load does.
func (r *Registry) replace(shapes []PlacedShape) {
	r.shapes = shapes
	r.nextID = 1
	for _, s := range shapes {
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}
	r.redraw()
}

// redraw repaints the canvas from the registry. Later shapes land on top.
func (r *Registry) redraw() {
	r.canvas.Clear()
	b := r.canvas.Bounds()
	for _, s := range r.shapes {
		if s.Filled {
			r.canvas.paint(s.Geometry.Interior(s.Anchor, b), rune(s.Fill))
		}
		r.canvas.paint(s.Geometry.Outline(s.Anchor, b), rune(s.Outline))
	}
}

// Redraw is exported for callers that want to force a repaint, for example
// after drawing directly on the canvas.
func (r *Registry) Redraw() { r.redraw() }
