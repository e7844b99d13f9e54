package engine

// MouseMoved is the entry point for the host's mouse-move signal. It
// queries the current pointer position and resolves it to hover state.
func (e *Engine) MouseMoved() {
	col, row := e.host.MousePosition()
	e.ResolveMousePosition(col, row)
}

// ResolveMousePosition maps a pointer cell to hover transitions: entering
// the component under the pointer, or leaving when the pointer is off the
// status row or in a gap.
func (e *Engine) ResolveMousePosition(col, row int) {
	id, ok := e.HitTest(col, row)
	if !ok {
		e.mouseLeave()
		return
	}
	e.mouseEnter(e.components[id])
}

// HitTest resolves a pointer cell to at most one component identity. The
// status line occupies the bottom viewport row; any other row misses.
// Within the row, each section is walked in order accumulating component
// widths until the queried column is covered. Columns in the gaps between
// sections hit nothing.
func (e *Engine) HitTest(col, row int) (ID, bool) {
	cols, rows := e.host.ViewportSize()
	if row != rows-1 || col < 0 || col >= cols {
		return 0, false
	}

	lw := e.sectionWidth(Left)
	cw := e.sectionWidth(Center)
	rw := e.sectionWidth(Right)
	cstart := centerStart(cols, cw)

	switch {
	case col < lw:
		return e.walk(Left, col)
	case col >= cstart && col < cstart+cw:
		return e.walk(Center, col-cstart)
	case col >= cols-rw:
		return e.walk(Right, col-(cols-rw))
	}
	return 0, false
}

// walk finds the first component in a section whose cumulative width
// covers the section-relative column.
func (e *Engine) walk(s Section, col int) (ID, bool) {
	sum := 0
	for _, id := range e.order[s] {
		c := e.components[id]
		if c == nil {
			continue
		}
		sum += c.Width
		if sum > col {
			return id, true
		}
	}
	return 0, false
}

func (e *Engine) sectionWidth(s Section) int {
	sum := 0
	for _, id := range e.order[s] {
		if c := e.components[id]; c != nil {
			sum += c.Width
		}
	}
	return sum
}

// centerStart is the column where the center section begins so that it sits
// horizontally centered across the full line width.
func centerStart(cols, centerWidth int) int {
	start := (cols+1)/2 - centerWidth/2
	if start < 0 {
		return 0
	}
	return start
}
