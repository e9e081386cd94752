package main

import (
	"fmt"
	"strings"
)

// Color is the character painted for a shape's outline or fill.
type Color rune

const (
	ColorDefault Color = '*'
	ColorRed     Color = 'r'
	ColorBlue    Color = 'b'
	ColorGreen   Color = 'g'
)

// noFill marks an unfilled shape in saved drawings.
const noFill = '-'

var palette = []struct {
	name string
	code Color
}{
	{"default", ColorDefault},
	{"red", ColorRed},
	{"blue", ColorBlue},
	{"green", ColorGreen},
}

// ParseColor accepts a palette name or its single-character code.
func ParseColor(s string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, p := range palette {
		if key == p.name || key == string(rune(p.code)) {
			return p.code, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want default, red, blue or green)", ErrUnsupportedColor, s)
}

func (c Color) Valid() bool {
	for _, p := range palette {
		if p.code == c {
			return true
		}
	}
	return false
}

func (c Color) Name() string {
	for _, p := range palette {
		if p.code == c {
			return p.name
		}
	}
	return fmt.Sprintf("Color(%q)", rune(c))
}

func (c Color) String() string { return c.Name() }
