package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// ExportText writes the rendered canvas, one scanline per line.
func (c *Canvas) ExportText(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range c.Render() {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return err
		}
	}
	return file.Close()
}

// Pixel size of one character cell in PNG exports.
const (
	pngCharWidth  = 8.0
	pngCharHeight = 16.0
	pngPadding    = 1
)

func cellColor(ch rune) color.Color {
	switch Color(ch) {
	case ColorRed:
		return colornames.Red
	case ColorBlue:
		return colornames.Blue
	case ColorGreen:
		return colornames.Green
	default:
		return color.Black
	}
}

// ExportToPNG draws the canvas as an image with every painted cell rendered
// in its color.
func (c *Canvas) ExportToPNG(filename string) error {
	if c.IsBlank() {
		return ErrNothingToExport
	}

	imageWidth := int(float64(c.Width()+2*pngPadding) * pngCharWidth)
	imageHeight := int(float64(c.Height()+2*pngPadding) * pngCharHeight)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12.0,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	dc.SetFontFace(face)

	for y, row := range c.cells {
		for x, ch := range row {
			if ch == blankCell {
				continue
			}
			cx := (float64(x+pngPadding) + 0.5) * pngCharWidth
			cy := (float64(y+pngPadding) + 0.5) * pngCharHeight
			dc.SetColor(cellColor(ch))
			dc.DrawStringAnchored(string(ch), cx, cy, 0.5, 0.5)
		}
	}

	return dc.SavePNG(filename)
}
