// Package ui is the reference terminal host: an engine.Host backed by a
// Bubble Tea program that renders the composed status line on the bottom
// row, feeds mouse movement and clicks back into the engine, and delivers
// asynchronous events (timers, config reloads) onto the single UI thread.
package ui

import (
	"fmt"
	"os"

	"github.com/willothy/lazyline/style"
)

// TermHost implements engine.Host for a terminal. All engine callbacks run
// on the Bubble Tea update loop, satisfying the engine's single-thread
// contract.
type TermHost struct {
	styles map[string]style.Attrs
	subs   []subscription

	mouseCol, mouseRow int
	cols, rows         int
}

type subscription struct {
	event   string
	pattern string
	fn      func()
}

// NewTermHost creates a host with a zero-sized viewport; the program's
// first WindowSizeMsg sets the real size.
func NewTermHost() *TermHost {
	return &TermHost{
		styles: make(map[string]style.Attrs),
	}
}

// Subscribe implements engine.Host.
func (h *TermHost) Subscribe(event, pattern string, fn func()) {
	h.subs = append(h.subs, subscription{event: event, pattern: pattern, fn: fn})
}

// Fire delivers an event to matching subscriptions. Pattern filtering
// happens here, at the host level.
func (h *TermHost) Fire(event, pattern string) {
	for _, s := range h.subs {
		if s.event == event && (s.pattern == "" || s.pattern == pattern) {
			s.fn()
		}
	}
}

// MousePosition implements engine.Host.
func (h *TermHost) MousePosition() (int, int) {
	return h.mouseCol, h.mouseRow
}

// SetMousePosition records the pointer cell from a tea mouse message.
func (h *TermHost) SetMousePosition(col, row int) {
	h.mouseCol, h.mouseRow = col, row
}

// ViewportSize implements engine.Host.
func (h *TermHost) ViewportSize() (int, int) {
	return h.cols, h.rows
}

// SetViewportSize records the terminal size from a window size message.
func (h *TermHost) SetViewportSize(cols, rows int) {
	h.cols, h.rows = cols, rows
}

// DefineStyle implements engine.Host. Repeated definitions under the same
// name overwrite.
func (h *TermHost) DefineStyle(name string, attrs style.Attrs) {
	h.styles[name] = attrs
}

// GlobalStatusline implements engine.Host. A terminal always has exactly
// one full-width bottom row, so the precondition holds.
func (h *TermHost) GlobalStatusline() bool {
	return true
}

// Warn implements engine.Host.
func (h *TermHost) Warn(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

// lookup resolves a style name, following one level of link aliasing.
func (h *TermHost) lookup(name string) style.Attrs {
	attrs, ok := h.styles[name]
	if !ok {
		return style.Attrs{}
	}
	if attrs.Link != "" {
		if linked, ok := h.styles[attrs.Link]; ok {
			return linked
		}
		return style.Attrs{}
	}
	return attrs
}
