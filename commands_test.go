package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	config := defaultConfig()
	config.SaveDirectory = t.TempDir()
	return NewSession(NewRegistry(NewCanvas(canvasWidth, canvasHeight)), config)
}

func mustExecute(t *testing.T, s *Session, line string) Result {
	t.Helper()
	res, err := s.Execute(line, false)
	require.NoError(t, err, line)
	return res
}

func TestExecuteAddShapes(t *testing.T) {
	s := newTestSession(t)

	res := mustExecute(t, s, "circle 3 10 10 red")
	assert.Contains(t, res.Message, "Added #1 circle")
	mustExecute(t, s, "SQUARE 4 20 5 * blue")
	mustExecute(t, s, "triangle 4 40 5")
	mustExecute(t, s, "line 6 1 1 g")

	shapes := s.Registry().Shapes()
	require.Len(t, shapes, 4)
	assert.Equal(t, ColorRed, shapes[0].Outline)
	assert.False(t, shapes[0].Filled)
	assert.True(t, shapes[1].Filled)
	assert.Equal(t, ColorBlue, shapes[1].Fill)
	assert.Equal(t, Triangle{Height: 4}, shapes[2].Geometry)
	assert.Equal(t, ColorGreen, shapes[3].Outline)
}

func TestExecuteErrors(t *testing.T) {
	cases := []struct {
		line string
		err  error
	}{
		{"hexagon 3 10 10", ErrUnknownCommand},
		{"circle 3 10", ErrUsage},
		{"circle 3 x 10", ErrUsage},
		{"line 5 1 1 red blue", ErrUsage},
		{"circle 3 10 10 purple", ErrUnsupportedColor},
		{"circle 3 1 10", ErrOutOfBounds},
		{"line 9223372036854775807 2 0", ErrOutOfBounds},
		{"square 9223372036854775807 0 0", ErrOutOfBounds},
		{"remove", ErrUsage},
		{"remove 9", ErrNotFound},
		{"move 1 2", ErrUsage},
		{"paint 1", ErrUsage},
		{"edit 1 x", ErrUsage},
		{"load", ErrUsage},
		{"save", ErrUsage},
		{"export", ErrUsage},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			s := newTestSession(t)
			_, err := s.Execute(tc.line, false)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, 0, s.Registry().Len())
		})
	}
}

func TestExecuteBlankLine(t *testing.T) {
	s := newTestSession(t)
	res, err := s.Execute("   ", false)
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
}

func TestExecuteEditingCommands(t *testing.T) {
	s := newTestSession(t)
	mustExecute(t, s, "square 3 10 10")
	mustExecute(t, s, "circle 2 30 10")

	_, err := s.Execute("move 1 30 10", false)
	assert.ErrorIs(t, err, ErrOccupied)

	mustExecute(t, s, "move 1 12 12")
	mustExecute(t, s, "paint 1 red green")
	mustExecute(t, s, "edit 2 radius 3")

	sq, _ := s.Registry().Get(1)
	assert.Equal(t, point{12, 12}, sq.Anchor)
	assert.Equal(t, ColorRed, sq.Outline)
	assert.Equal(t, ColorGreen, sq.Fill)
	c, _ := s.Registry().Get(2)
	assert.Equal(t, 3, c.Geometry.Size())

	res := mustExecute(t, s, "list")
	assert.Len(t, res.Lines, 2)

	mustExecute(t, s, "remove 2")
	res = mustExecute(t, s, "undo")
	assert.Contains(t, res.Message, "#1")
	res = mustExecute(t, s, "undo")
	assert.Equal(t, "Nothing to undo", res.Message)
	assert.True(t, s.Registry().Canvas().IsBlank())
}

func TestClearAsksWhenDirty(t *testing.T) {
	s := newTestSession(t)
	mustExecute(t, s, "line 4 0 0")

	res := mustExecute(t, s, "clear")
	assert.True(t, res.Confirm)
	assert.Equal(t, ConfirmClear, res.ConfirmAction)
	assert.Equal(t, 1, s.Registry().Len())

	res, err := s.Execute("clear", true)
	require.NoError(t, err)
	assert.False(t, res.Confirm)
	assert.Equal(t, 0, s.Registry().Len())

	// Nothing left to lose, so no question this time.
	res = mustExecute(t, s, "clear")
	assert.False(t, res.Confirm)
}

func TestConfirmationsCanBeDisabled(t *testing.T) {
	s := newTestSession(t)
	s.config.Confirmations = false
	mustExecute(t, s, "line 4 0 0")

	res := mustExecute(t, s, "quit")
	assert.True(t, res.Quit)
}

func TestQuit(t *testing.T) {
	s := newTestSession(t)
	assert.True(t, mustExecute(t, s, "exit").Quit)

	mustExecute(t, s, "line 4 0 0")
	res := mustExecute(t, s, "quit")
	assert.False(t, res.Quit)
	assert.Equal(t, ConfirmQuit, res.ConfirmAction)
}

func TestSaveAndLoadCommands(t *testing.T) {
	s := newTestSession(t)
	mustExecute(t, s, "circle 3 10 10 red blue")
	mustExecute(t, s, "triangle 4 40 5 green")

	res := mustExecute(t, s, "save drawing")
	assert.Contains(t, res.Message, "Saved 2 shapes")
	path := filepath.Join(s.config.SaveDirectory, "drawing.txt")
	assert.FileExists(t, path)
	assert.Equal(t, path, s.Filename())
	assert.False(t, s.dirty)

	mustExecute(t, s, "line 3 0 0")
	mustExecute(t, s, "save")

	other := newTestSession(t)
	other.config.SaveDirectory = s.config.SaveDirectory
	res = mustExecute(t, other, "load drawing")
	assert.Contains(t, res.Message, "Loaded 3 shapes")
	assert.Equal(t, s.Registry().Shapes(), other.Registry().Shapes())
	assert.Equal(t, s.Registry().Canvas().Render(), other.Registry().Canvas().Render())
}

func TestLoadCommandFailureKeepsDrawing(t *testing.T) {
	s := newTestSession(t)
	s.config.Confirmations = false
	mustExecute(t, s, "circle 3 10 10")
	before := s.Registry().Canvas().Render()

	_, err := s.Execute("load nothing-here", false)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, before, s.Registry().Canvas().Render())
	assert.Equal(t, 1, s.Registry().Len())
}

func TestExportCommand(t *testing.T) {
	s := newTestSession(t)
	_, err := s.Execute("export empty.png", false)
	assert.ErrorIs(t, err, ErrNothingToExport)

	mustExecute(t, s, "circle 3 10 10 red")
	mustExecute(t, s, "export out.txt")
	mustExecute(t, s, "export out.PNG")
	assert.FileExists(t, filepath.Join(s.config.SaveDirectory, "out.txt"))
	assert.FileExists(t, filepath.Join(s.config.SaveDirectory, "out.PNG"))
}

func TestHelpListsEveryCommand(t *testing.T) {
	s := newTestSession(t)
	assert.True(t, mustExecute(t, s, "help").Help)

	help := strings.Join(helpLines(), "\n")
	for _, name := range commandOrder {
		assert.Contains(t, help, commands[name].usage, "help is missing %s", name)
	}
}

func TestEditHugeLengthIsRejected(t *testing.T) {
	s := newTestSession(t)
	mustExecute(t, s, "line 4 2 0")
	before := s.Registry().Canvas().Render()

	_, err := s.Execute("edit 1 length 9223372036854775807", false)
	require.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, before, s.Registry().Canvas().Render())
	l, _ := s.Registry().Get(1)
	assert.Equal(t, 4, l.Geometry.Size())
}

func TestOpenNameWithSpaces(t *testing.T) {
	s := newTestSession(t)
	src := sampleRegistry(t)
	path := filepath.Join(s.config.SaveDirectory, "my drawing.txt")
	require.NoError(t, src.SaveToFile(path))

	require.NoError(t, s.Open("my drawing"))
	assert.Equal(t, path, s.Filename())
	assert.Equal(t, src.Shapes(), s.Registry().Shapes())

	_, err := s.Execute("load my drawing", true)
	require.Error(t, err)
}

func TestOpenMissingFileKeepsState(t *testing.T) {
	s := newTestSession(t)
	mustExecute(t, s, "line 4 0 0")
	err := s.Open("nothing here")
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 1, s.Registry().Len())
	assert.Empty(t, s.Filename())
}
