package main

import "fmt"

// Fits is the placement predicate. It looks only at the shape's bounding
// box, never at the clipped cells, so a shape that would be partially drawn
// is still rejected.
func Fits(g Geometry, at point, b Bounds) bool {
	if g == nil || g.Size() <= 0 {
		return false
	}
	return g.Fits(at, b)
}

// The bounding rules compare sizes against the remaining room instead of
// adding them to coordinates, so huge sizes cannot overflow into a pass.

func (c Circle) Fits(at point, b Bounds) bool {
	r := c.Radius
	ry := r / b.Scale
	return r > 0 && r <= at.X && r < b.W-at.X && ry <= at.Y && ry < b.H-at.Y
}

func (s Square) Fits(at point, b Bounds) bool {
	n := s.Side
	return n > 0 && at.X >= 0 && at.Y >= 0 && n <= b.W-at.X && (n-1)/b.Scale < b.H-at.Y
}

func (t Triangle) Fits(at point, b Bounds) bool {
	h := t.Height
	return h > 0 && h-1 <= at.X && h-1 < b.W-at.X && at.Y >= 0 && h-1 < b.H-at.Y
}

func (l Line) Fits(at point, b Bounds) bool {
	return l.Length > 0 && at.X >= 0 && l.Length <= b.W-at.X && at.Y >= 0 && at.Y < b.H
}

// IsDuplicate reports whether shapes already holds a shape of the same kind
// and size at the same anchor. Colors are not compared.
func IsDuplicate(g Geometry, at point, shapes []PlacedShape) bool {
	return findDuplicate(g, at, shapes, 0) != 0
}

// findDuplicate returns the id of a matching shape, skipping skipID.
func findDuplicate(g Geometry, at point, shapes []PlacedShape, skipID int) int {
	for _, s := range shapes {
		if s.ID == skipID {
			continue
		}
		if s.Geometry.Kind() == g.Kind() && s.Geometry.Size() == g.Size() && s.Anchor == at {
			return s.ID
		}
	}
	return 0
}

// checkPlacement runs every placement rule and returns the first failure.
// skipID excludes the shape being edited from the duplicate search.
func checkPlacement(g Geometry, at point, b Bounds, shapes []PlacedShape, skipID int) error {
	if g.Size() <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidSize, g.Kind().DimensionName(), g.Size())
	}
	if !Fits(g, at, b) {
		return fmt.Errorf("%w: %s of %s %d at (%d,%d) does not fit on %dx%d canvas",
			ErrOutOfBounds, g.Kind(), g.Kind().DimensionName(), g.Size(), at.X, at.Y, b.W, b.H)
	}
	if id := findDuplicate(g, at, shapes, skipID); id != 0 {
		return fmt.Errorf("%w: shape %d is already a %s of %s %d at (%d,%d)",
			ErrDuplicate, id, g.Kind(), g.Kind().DimensionName(), g.Size(), at.X, at.Y)
	}
	return nil
}
