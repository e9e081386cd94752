package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// A saved drawing is one shape per line:
//
//	id type x y dim1 dim2 outline fill
//
// dim2 is informational (0 for circles and lines, the side for squares, the
// base width for triangles). fill is '-' when the shape is not filled.

func secondaryDim(g Geometry) int {
	switch g := g.(type) {
	case Square:
		return g.Side
	case Triangle:
		return 2*g.Height - 1
	default:
		return 0
	}
}

func (r *Registry) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, s := range r.shapes {
		fill := noFill
		if s.Filled {
			fill = rune(s.Fill)
		}
		fmt.Fprintf(bw, "%d %s %d %d %d %d %c %c\n",
			s.ID, s.Geometry.Kind(), s.Anchor.X, s.Anchor.Y,
			s.Geometry.Size(), secondaryDim(s.Geometry), rune(s.Outline), fill)
	}
	return bw.Flush()
}

func (r *Registry) SaveToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := r.Save(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Load replaces the registry with the drawing read from rd. Nothing changes
// unless every record parses and the whole set passes placement checks.
func (r *Registry) Load(rd io.Reader) error {
	var shapes []PlacedShape
	b := r.canvas.Bounds()
	seen := make(map[int]bool)

	scanner := bufio.NewScanner(rd)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s, err := parseRecord(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if seen[s.ID] {
			return fmt.Errorf("line %d: %w: id %d used twice", lineNo, ErrInvalidRecord, s.ID)
		}
		seen[s.ID] = true
		if err := checkPlacement(s.Geometry, s.Anchor, b, shapes, 0); err != nil {
			return fmt.Errorf("line %d: %w: %w", lineNo, ErrInvalidRecord, err)
		}
		shapes = append(shapes, s)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if shapes == nil {
		shapes = make([]PlacedShape, 0)
	}
	r.replace(shapes)
	Logger().Info("loaded drawing", slog.Int("shapes", len(shapes)), slog.Int("next_id", r.nextID))
	return nil
}

func (r *Registry) LoadFromFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return r.Load(file)
}

func parseRecord(line string) (PlacedShape, error) {
	fields := strings.Fields(line)
	if len(fields) != 8 {
		return PlacedShape{}, fmt.Errorf("%w: want 8 fields, got %d", ErrInvalidRecord, len(fields))
	}

	var nums [5]int
	for i, idx := range []int{0, 2, 3, 4, 5} {
		n, err := strconv.Atoi(fields[idx])
		if err != nil {
			return PlacedShape{}, fmt.Errorf("%w: field %d: %q is not a number", ErrInvalidRecord, idx+1, fields[idx])
		}
		nums[i] = n
	}
	id, x, y, size := nums[0], nums[1], nums[2], nums[3]
	if id <= 0 {
		return PlacedShape{}, fmt.Errorf("%w: id must be positive, got %d", ErrInvalidRecord, id)
	}

	kind, err := ParseKind(fields[1])
	if err != nil {
		return PlacedShape{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	g, err := NewGeometry(kind, size)
	if err != nil {
		return PlacedShape{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	s := PlacedShape{ID: id, Geometry: g, Anchor: point{x, y}, Fill: ColorDefault}
	if len(fields[6]) != 1 || !Color(fields[6][0]).Valid() {
		return PlacedShape{}, fmt.Errorf("%w: %w: outline %q", ErrInvalidRecord, ErrUnsupportedColor, fields[6])
	}
	s.Outline = Color(fields[6][0])

	switch {
	case fields[7] == string(noFill):
	case len(fields[7]) == 1 && Color(fields[7][0]).Valid() && kind.Fillable():
		s.Fill = Color(fields[7][0])
		s.Filled = true
	default:
		return PlacedShape{}, fmt.Errorf("%w: %w: fill %q for %s", ErrInvalidRecord, ErrUnsupportedColor, fields[7], kind)
	}
	return s, nil
}
