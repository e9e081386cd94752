package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry(NewCanvas(canvasWidth, canvasHeight))
	shapes := []PlacedShape{
		{Geometry: Circle{Radius: 3}, Anchor: point{10, 10}, Outline: ColorRed},
		{Geometry: Square{Side: 4}, Anchor: point{20, 5}, Outline: ColorDefault, Fill: ColorBlue, Filled: true},
		{Geometry: Triangle{Height: 4}, Anchor: point{40, 5}, Outline: ColorGreen, Fill: ColorGreen, Filled: true},
		{Geometry: Line{Length: 6}, Anchor: point{1, 1}, Outline: ColorBlue},
	}
	for _, s := range shapes {
		_, err := reg.Add(s)
		require.NoError(t, err)
	}
	return reg
}

func TestSaveFormat(t *testing.T) {
	reg := sampleRegistry(t)
	var buf bytes.Buffer
	require.NoError(t, reg.Save(&buf))

	want := strings.Join([]string{
		"1 circle 10 10 3 0 r -",
		"2 square 20 5 4 4 * b",
		"3 triangle 40 5 4 7 g g",
		"4 line 1 1 6 0 b -",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	reg := sampleRegistry(t)
	path := filepath.Join(t.TempDir(), "drawing.txt")
	require.NoError(t, reg.SaveToFile(path))

	fresh := NewRegistry(NewCanvas(canvasWidth, canvasHeight))
	require.NoError(t, fresh.LoadFromFile(path))

	assert.Equal(t, reg.Shapes(), fresh.Shapes())
	assert.Equal(t, reg.Canvas().Render(), fresh.Canvas().Render())
	assert.Equal(t, 5, fresh.NextID())
}

func TestLoadNextIDFollowsHighestID(t *testing.T) {
	reg := NewRegistry(NewCanvas(canvasWidth, canvasHeight))
	input := "7 line 0 0 3 0 * -\n# comment\n\n3 circle 10 10 2 0 g r\n"
	require.NoError(t, reg.Load(strings.NewReader(input)))

	assert.Equal(t, 8, reg.NextID())
	shapes := reg.Shapes()
	require.Len(t, shapes, 2)
	assert.Equal(t, 7, shapes[0].ID)
	assert.Equal(t, 3, shapes[1].ID)
	assert.True(t, shapes[1].Filled)
	assert.Equal(t, ColorRed, shapes[1].Fill)

	added, err := reg.Add(PlacedShape{Geometry: Line{Length: 2}, Anchor: point{0, 20}, Outline: ColorDefault})
	require.NoError(t, err)
	assert.Equal(t, 8, added.ID)
}

func TestLoadEmptyResetsRegistry(t *testing.T) {
	reg := sampleRegistry(t)
	require.NoError(t, reg.Load(strings.NewReader("")))
	assert.Equal(t, 0, reg.Len())
	assert.Equal(t, 1, reg.NextID())
	assert.True(t, reg.Canvas().IsBlank())
}

func TestLoadRejectsBadRecords(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"UnknownType", "1 hexagon 10 10 3 0 * -"},
		{"TooFewFields", "1 circle 10 10 3 0 *"},
		{"TooManyFields", "1 circle 10 10 3 0 * - extra"},
		{"NotANumber", "1 circle ten 10 3 0 * -"},
		{"ZeroID", "0 circle 10 10 3 0 * -"},
		{"BadOutline", "1 circle 10 10 3 0 x -"},
		{"BadFill", "1 circle 10 10 3 0 * red"},
		{"FilledLine", "1 line 0 0 3 0 * r"},
		{"ZeroSize", "1 square 10 10 0 0 * -"},
		{"OutOfBounds", "1 circle 1 10 3 0 * -"},
		{"HugeLine", "1 line 2 0 9223372036854775807 0 * -"},
		{"RepeatedID", "1 line 0 0 3 0 * -\n1 line 0 1 3 0 * -"},
		{"DuplicateShape", "1 line 0 0 3 0 * -\n2 line 0 0 3 0 r -"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := sampleRegistry(t)
			shapes, canvas, next := reg.Shapes(), reg.Canvas().Render(), reg.NextID()

			err := reg.Load(strings.NewReader(tc.input))
			require.ErrorIs(t, err, ErrInvalidRecord)
			assert.Contains(t, err.Error(), "line ")
			assert.Equal(t, shapes, reg.Shapes())
			assert.Equal(t, canvas, reg.Canvas().Render())
			assert.Equal(t, next, reg.NextID())
		})
	}
}

func TestLoadMissingFileKeepsState(t *testing.T) {
	reg := sampleRegistry(t)
	shapes, canvas := reg.Shapes(), reg.Canvas().Render()

	err := reg.LoadFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, shapes, reg.Shapes())
	assert.Equal(t, canvas, reg.Canvas().Render())
}

func TestSaveToUnwritablePath(t *testing.T) {
	reg := sampleRegistry(t)
	err := reg.SaveToFile(filepath.Join(t.TempDir(), "no", "such", "dir", "x.txt"))
	require.Error(t, err)
}

func TestRoundTripAfterUnfilling(t *testing.T) {
	reg := NewRegistry(NewCanvas(canvasWidth, canvasHeight))
	c, err := reg.Add(PlacedShape{Geometry: Circle{Radius: 3}, Anchor: point{10, 10}, Outline: ColorRed, Fill: ColorGreen, Filled: true})
	require.NoError(t, err)
	require.NoError(t, reg.Edit(c.ID, "filled", "false"))

	var buf bytes.Buffer
	require.NoError(t, reg.Save(&buf))
	fresh := NewRegistry(NewCanvas(canvasWidth, canvasHeight))
	require.NoError(t, fresh.Load(&buf))
	assert.Equal(t, reg.Shapes(), fresh.Shapes())

	require.NoError(t, reg.Edit(c.ID, "filled", "true"))
	require.NoError(t, fresh.Edit(c.ID, "filled", "true"))
	assert.Equal(t, reg.Canvas().Render(), fresh.Canvas().Render())
	assert.Equal(t, rune(ColorDefault), reg.Canvas().At(10, 10))
}
