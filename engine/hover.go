package engine

// mouseEnter moves the hover slot to c. At most one component is hovered
// at a time: entering while another is hovered leaves that one first.
// Re-entering the current component is a no-op so repeated mouse-move
// samples over the same cell don't re-fire callbacks or re-render.
func (e *Engine) mouseEnter(c *Component) {
	if e.hovered == c.ID {
		return
	}
	if e.hovered != 0 {
		e.mouseLeave()
	}
	e.hovered = c.ID
	c.Hovered = true
	if c.cfg.OnMouseEnter != nil {
		c.cfg.OnMouseEnter(c)
	}
	e.render(c)
}

// mouseLeave clears the hover slot, firing the leave callback and
// re-rendering so hover-dependent style or content is refreshed. No-op
// when nothing is hovered.
func (e *Engine) mouseLeave() {
	if e.hovered == 0 {
		return
	}
	c := e.components[e.hovered]
	if c == nil {
		e.hovered = 0
		return
	}
	if c.cfg.OnMouseLeave != nil {
		c.cfg.OnMouseLeave(c)
	}
	c.Hovered = false
	e.render(c)
	e.hovered = 0
}

// HoveredID returns the identity of the hovered component, or zero.
func (e *Engine) HoveredID() ID {
	return e.hovered
}
