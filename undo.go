package main

import "log/slog"

// Undo removes the most recently added shape still in the registry. There is
// a single level of undo: it never restores removed or edited shapes. It
// reports false when there is nothing to undo.
func (r *Registry) Undo() (PlacedShape, bool) {
	if len(r.shapes) == 0 {
		return PlacedShape{}, false
	}
	lastIndex := len(r.shapes) - 1
	undone := r.shapes[lastIndex]
	r.shapes = r.shapes[:lastIndex]
	r.redraw()
	Logger().Debug("undid shape", slog.Int("id", undone.ID))
	return undone, true
}
