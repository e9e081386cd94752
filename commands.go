package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

type command struct {
	usage   string
	summary string
	run     func(s *Session, args []string, confirmed bool) (Result, error)
}

var commands map[string]command

// commandOrder fixes the order of the help listing.
var commandOrder = []string{
	"circle", "square", "triangle", "line",
	"remove", "undo", "move", "paint", "edit", "clear",
	"list", "draw", "save", "load", "export", "yank", "help", "quit",
}

func init() {
	commands = map[string]command{
		"circle":   {"circle <radius> <x> <y> [outline] [fill]", "Add a circle centred at x,y", addShape(KindCircle)},
		"square":   {"square <side> <x> <y> [outline] [fill]", "Add a square with its top-left at x,y", addShape(KindSquare)},
		"triangle": {"triangle <height> <x> <y> [outline] [fill]", "Add a triangle with its apex at x,y", addShape(KindTriangle)},
		"line":     {"line <length> <x> <y> [color]", "Add a horizontal line starting at x,y", addShape(KindLine)},
		"remove":   {"remove <id>", "Remove a shape", runRemove},
		"undo":     {"undo", "Remove the most recently added shape", runUndo},
		"move":     {"move <id> <x> <y>", "Move a shape's anchor", runMove},
		"paint":    {"paint <id> <outline> [fill]", "Recolor a shape", runPaint},
		"edit":     {"edit <id> <x|y|size|outline|fill|filled> <value>", "Change one property of a shape", runEdit},
		"clear":    {"clear", "Remove every shape", runClear},
		"list":     {"list", "List shapes in drawing order", runList},
		"draw":     {"draw", "Redraw the canvas", runDraw},
		"save":     {"save [file]", "Save shapes to a file", runSave},
		"load":     {"load <file>", "Replace the drawing with a saved one", runLoad},
		"export":   {"export <file.txt|file.png>", "Export the canvas as text or PNG", runExport},
		"yank":     {"yank", "Copy the canvas text to the clipboard", runYank},
		"help":     {"help", "Show help", runHelp},
		"quit":     {"quit", "Quit", runQuit},
	}
	commands["exit"] = commands["quit"]
	commands["rm"] = commands["remove"]
}

func NewSession(registry *Registry, config *Config) *Session {
	if config == nil {
		config = defaultConfig()
	}
	return &Session{registry: registry, config: config}
}

func (s *Session) Registry() *Registry { return s.registry }
func (s *Session) Filename() string    { return s.filename }

// Execute parses and runs one command line. confirmed is true when the user
// has already answered yes to the command's confirmation prompt.
func (s *Session) Execute(line string, confirmed bool) (Result, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{}, nil
	}
	name := strings.ToLower(fields[0])
	cmd, ok := commands[name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q (type help for a list)", ErrUnknownCommand, fields[0])
	}
	return cmd.run(s, fields[1:], confirmed)
}

func usageError(name string) error {
	return fmt.Errorf("%w: %s", ErrUsage, commands[name].usage)
}

func parseInts(name string, args []string) ([]int, error) {
	nums := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number (%s)", ErrUsage, a, commands[name].usage)
		}
		nums[i] = n
	}
	return nums, nil
}

func (s *Session) needsConfirm(confirmed bool) bool {
	return !confirmed && s.config.Confirmations && s.dirty
}

func addShape(kind Kind) func(*Session, []string, bool) (Result, error) {
	name := kind.String()
	return func(s *Session, args []string, _ bool) (Result, error) {
		maxArgs := 5
		if !kind.Fillable() {
			maxArgs = 4
		}
		if len(args) < 3 || len(args) > maxArgs {
			return Result{}, usageError(name)
		}
		nums, err := parseInts(name, args[:3])
		if err != nil {
			return Result{}, err
		}
		g, err := NewGeometry(kind, nums[0])
		if err != nil {
			return Result{}, err
		}
		shape := PlacedShape{Geometry: g, Anchor: point{nums[1], nums[2]}, Outline: ColorDefault}
		if len(args) > 3 {
			if shape.Outline, err = ParseColor(args[3]); err != nil {
				return Result{}, err
			}
		}
		if len(args) > 4 {
			if shape.Fill, err = ParseColor(args[4]); err != nil {
				return Result{}, err
			}
			shape.Filled = true
		}
		added, err := s.registry.Add(shape)
		if err != nil {
			return Result{}, err
		}
		s.dirty = true
		return Result{Message: fmt.Sprintf("Added %s", added)}, nil
	}
}

func parseID(name string, arg string) (int, error) {
	nums, err := parseInts(name, []string{arg})
	if err != nil {
		return 0, err
	}
	return nums[0], nil
}

func runRemove(s *Session, args []string, _ bool) (Result, error) {
	if len(args) != 1 {
		return Result{}, usageError("remove")
	}
	id, err := parseID("remove", args[0])
	if err != nil {
		return Result{}, err
	}
	removed, err := s.registry.Remove(id)
	if err != nil {
		return Result{}, err
	}
	s.dirty = true
	return Result{Message: fmt.Sprintf("Removed %s", removed)}, nil
}

func runUndo(s *Session, args []string, _ bool) (Result, error) {
	if len(args) != 0 {
		return Result{}, usageError("undo")
	}
	undone, ok := s.registry.Undo()
	if !ok {
		return Result{Message: "Nothing to undo"}, nil
	}
	s.dirty = true
	return Result{Message: fmt.Sprintf("Undid %s", undone)}, nil
}

func runMove(s *Session, args []string, _ bool) (Result, error) {
	if len(args) != 3 {
		return Result{}, usageError("move")
	}
	nums, err := parseInts("move", args)
	if err != nil {
		return Result{}, err
	}
	if err := s.registry.Move(nums[0], point{nums[1], nums[2]}); err != nil {
		return Result{}, err
	}
	s.dirty = true
	return Result{Message: fmt.Sprintf("Moved shape %d to (%d,%d)", nums[0], nums[1], nums[2])}, nil
}

func runPaint(s *Session, args []string, _ bool) (Result, error) {
	if len(args) < 2 || len(args) > 3 {
		return Result{}, usageError("paint")
	}
	id, err := parseID("paint", args[0])
	if err != nil {
		return Result{}, err
	}
	fill := ""
	if len(args) == 3 {
		fill = args[2]
	}
	if err := s.registry.Paint(id, args[1], fill); err != nil {
		return Result{}, err
	}
	s.dirty = true
	return Result{Message: fmt.Sprintf("Painted shape %d", id)}, nil
}

func runEdit(s *Session, args []string, _ bool) (Result, error) {
	if len(args) != 3 {
		return Result{}, usageError("edit")
	}
	id, err := parseID("edit", args[0])
	if err != nil {
		return Result{}, err
	}
	if err := s.registry.Edit(id, args[1], args[2]); err != nil {
		return Result{}, err
	}
	s.dirty = true
	return Result{Message: fmt.Sprintf("Set %s of shape %d to %s", strings.ToLower(args[1]), id, args[2])}, nil
}

func runClear(s *Session, args []string, confirmed bool) (Result, error) {
	if len(args) != 0 {
		return Result{}, usageError("clear")
	}
	if s.needsConfirm(confirmed) {
		return Result{Confirm: true, ConfirmAction: ConfirmClear, Message: "Clear the canvas? Unsaved changes will be lost. (y/n)"}, nil
	}
	s.registry.Clear()
	s.dirty = false
	return Result{Message: "Canvas cleared"}, nil
}

func runList(s *Session, args []string, _ bool) (Result, error) {
	shapes := s.registry.Shapes()
	if len(shapes) == 0 {
		return Result{Message: "No shapes"}, nil
	}
	lines := make([]string, len(shapes))
	for i, shape := range shapes {
		lines[i] = shape.String()
	}
	return Result{Message: fmt.Sprintf("%d shapes", len(shapes)), Lines: lines}, nil
}

func runDraw(s *Session, args []string, _ bool) (Result, error) {
	s.registry.Redraw()
	return Result{}, nil
}

func withTxtExt(name string) string {
	if filepath.Ext(name) == "" {
		return name + ".txt"
	}
	return name
}

func runSave(s *Session, args []string, _ bool) (Result, error) {
	if len(args) > 1 {
		return Result{}, usageError("save")
	}
	filename := s.filename
	if len(args) == 1 {
		filename = s.config.GetSavePath(withTxtExt(args[0]))
	}
	if filename == "" {
		return Result{}, usageError("save")
	}
	if err := s.registry.SaveToFile(filename); err != nil {
		return Result{}, fmt.Errorf("save %s: %w", filename, err)
	}
	s.filename = filename
	s.dirty = false
	return Result{Message: fmt.Sprintf("Saved %d shapes to %s", s.registry.Len(), filename)}, nil
}

func runLoad(s *Session, args []string, confirmed bool) (Result, error) {
	if len(args) != 1 {
		return Result{}, usageError("load")
	}
	if s.needsConfirm(confirmed) {
		return Result{Confirm: true, ConfirmAction: ConfirmLoad, Message: fmt.Sprintf("Load %s? Unsaved changes will be lost. (y/n)", args[0])}, nil
	}
	if err := s.Open(args[0]); err != nil {
		return Result{}, err
	}
	return Result{Message: fmt.Sprintf("Loaded %d shapes from %s", s.registry.Len(), s.filename)}, nil
}

// Open loads name, resolved through the save directory, without going
// through command parsing, so names may contain spaces.
func (s *Session) Open(name string) error {
	filename := s.config.GetSavePath(withTxtExt(name))
	if err := s.registry.LoadFromFile(filename); err != nil {
		return fmt.Errorf("load %s: %w", filename, err)
	}
	s.filename = filename
	s.dirty = false
	return nil
}

func runExport(s *Session, args []string, _ bool) (Result, error) {
	if len(args) != 1 {
		return Result{}, usageError("export")
	}
	filename := s.config.GetSavePath(args[0])
	canvas := s.registry.Canvas()
	var err error
	if strings.EqualFold(filepath.Ext(filename), ".png") {
		err = canvas.ExportToPNG(filename)
	} else {
		err = canvas.ExportText(filename)
	}
	if err != nil {
		return Result{}, fmt.Errorf("export %s: %w", filename, err)
	}
	return Result{Message: fmt.Sprintf("Exported to %s", filename)}, nil
}

func runYank(s *Session, args []string, _ bool) (Result, error) {
	if err := writeClipboardText(trimCanvasText(s.registry.Canvas().Render())); err != nil {
		return Result{}, fmt.Errorf("copy to clipboard: %w", err)
	}
	return Result{Message: "Copied canvas to clipboard"}, nil
}

func runHelp(s *Session, args []string, _ bool) (Result, error) {
	return Result{Help: true}, nil
}

func runQuit(s *Session, args []string, confirmed bool) (Result, error) {
	if s.needsConfirm(confirmed) {
		return Result{Confirm: true, ConfirmAction: ConfirmQuit, Message: "Quit? Unsaved changes will be lost. (y/n)"}, nil
	}
	return Result{Quit: true}, nil
}

// helpLines lists every command with its usage.
func helpLines() []string {
	lines := []string{
		"glyphpad help",
		"=============",
		"",
		"Commands:",
		"---------",
	}
	for _, name := range commandOrder {
		cmd := commands[name]
		lines = append(lines, fmt.Sprintf("  %-48s %s", cmd.usage, cmd.summary))
	}
	lines = append(lines,
		"",
		"Colors: default (*), red (r), blue (b), green (g)",
		"Anchors: circle centre, square top-left, triangle apex, line left end",
		"",
		"Keys:",
		"-----",
		"  ↑/↓              Recall previous commands",
		"  ?                Toggle help (on an empty prompt)",
		"  Esc              Clear the prompt / close help",
		"  Ctrl+C           Quit",
	)
	return lines
}
