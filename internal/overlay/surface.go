package overlay

// Surface is an immediate-mode widget surface. Calls are made every frame between Begin and End;
// widgets report user interaction through their return values.
type Surface interface {
	// Begin opens a window. It returns false when the window is collapsed; End must be called
	// either way.
	Begin(title string) bool
	End()
	Text(format string, args ...any)
	TextWrapped(text string)
	// Tooltip shows text while the pointer is over the previous widget.
	Tooltip(text string)
	// Checkbox draws a checkbox bound to v and reports whether it was toggled this frame.
	Checkbox(label string, v *bool) bool
	// Combo draws a selector over items bound to current and reports whether the selection changed.
	Combo(label string, current *int, items []string) bool
	// SliderFloat draws a slider bound to v and reports whether it moved.
	SliderFloat(label string, v *float32, min, max float32) bool
	// Table draws values row by row in the given number of columns.
	Table(id string, columns int, values []float32)
}

// Vec3 draws a labelled one-row table of v.
func Vec3(s Surface, name string, v [3]float32) {
	s.Text("%s", name)
	s.Table(name, 3, v[:])
}

// Mat4 draws a labelled 4x4 table of a column-major matrix, one matrix row per table row.
func Mat4(s Surface, name string, m [16]float32) {
	s.Text("%s", name)
	rows := make([]float32, 0, 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			rows = append(rows, m[x*4+y])
		}
	}
	s.Table(name, 4, rows)
}
