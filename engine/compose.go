package engine

import (
	"strings"

	"github.com/willothy/lazyline/text"
)

// Compose builds the full status line: left, center, and right section
// text positioned independently across the viewport width. The returned
// string is opaque markup for the host's line renderer; markers add no
// display width.
func (e *Engine) Compose() string {
	cols, _ := e.host.ViewportSize()

	left := e.sectionText(Left)
	center := e.sectionText(Center)
	right := e.sectionText(Right)

	lw := e.sectionWidth(Left)
	cw := e.sectionWidth(Center)
	rw := e.sectionWidth(Right)

	start := centerStart(cols, cw)
	if lw > start {
		// Re-measure: a wide rune on the cut boundary can leave the
		// truncated text one cell short.
		left = text.Truncate(left, start)
		lw = text.Width(left)
	}

	var b strings.Builder
	b.WriteString(left)
	b.WriteString(strings.Repeat(" ", start-lw))
	b.WriteString(center)
	if pad := cols - rw - start - cw; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(right)
	return b.String()
}

// sectionText concatenates one section's fragments in order. Cached
// renders are reused; an eager component with no cache entry renders now;
// a lazy one contributes its default placeholder, counted into its width
// so centering math holds before the first real render.
func (e *Engine) sectionText(s Section) string {
	var b strings.Builder
	for _, id := range e.order[s] {
		c := e.components[id]
		if c == nil {
			continue
		}
		if cached, ok := e.cache[id]; ok {
			b.WriteString(cached)
			continue
		}
		if !c.Lazy() {
			b.WriteString(e.render(c))
			continue
		}
		c.Width = text.Width(c.cfg.Default)
		b.WriteString(c.cfg.Default)
	}
	return b.String()
}
