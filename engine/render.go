package engine

import (
	"github.com/willothy/lazyline/style"
	"github.com/willothy/lazyline/text"
)

// render evaluates a component's provider and rebuilds its cache entry.
//
// Empty provider output skips the frame: width and cache keep their
// previous values so the last rendered text stays on screen. Otherwise the
// new width is recorded, the style is resolved and (re)registered under the
// component's deterministic name, and the wrapped result is cached.
func (e *Engine) render(c *Component) string {
	value := c.cfg.Provider.Eval(c)
	if value == "" {
		return ""
	}

	c.Width = text.Width(value)

	name := style.Name(int(c.ID))
	e.host.DefineStyle(name, e.resolveStyle(c))

	out := text.StyleBegin(name) + value + text.StyleEnd
	if c.cfg.OnClick != nil {
		out = text.ClickBegin(int(c.ID)) + out + text.ClickEnd
	}

	e.cache[c.ID] = out
	return out
}

// resolveStyle produces the attribute set for a component. A configured
// highlight descriptor wins: a string form becomes a link to that named
// style, a structured form is used as-is. Otherwise the set is synthesized
// from the individual attributes, each evaluated with the component as
// context.
func (e *Engine) resolveStyle(c *Component) style.Attrs {
	if c.cfg.Highlight.IsSet() {
		hl := c.cfg.Highlight.Eval(c)
		if hl.Link != "" {
			return style.Attrs{Link: hl.Link}
		}
		if hl.Attrs != nil {
			return *hl.Attrs
		}
	}
	return style.Attrs{
		Fg:        c.cfg.Fg.Eval(c),
		Bg:        c.cfg.Bg.Eval(c),
		Sp:        c.cfg.Sp.Eval(c),
		Bold:      c.cfg.Bold.Eval(c),
		Italic:    c.cfg.Italic.Eval(c),
		Underline: c.cfg.Underline.Eval(c),
		Undercurl: c.cfg.Undercurl.Eval(c),
	}
}
