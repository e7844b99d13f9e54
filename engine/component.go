package engine

import "github.com/willothy/lazyline/style"

// ID is a component identity. Assigned sequentially from 1 during Setup,
// never reused within a configuration. Zero means "no component".
type ID int

// Section names one of the three fixed status line regions.
type Section int

const (
	Left Section = iota
	Center
	Right
)

// Highlight is an opaque style descriptor: either an alias for an existing
// named style or a full attribute set. It overrides the individual style
// fields when configured.
type Highlight struct {
	Link  string
	Attrs *style.Attrs
}

// Config describes one component. Every field is optional; unset fields
// inherit from the enclosing group during expansion.
type Config struct {
	// Provider produces the displayed text. Empty output skips the frame:
	// the previous rendered value stays in the cache.
	Provider Value[string]

	// Lazy components show Default until their first subscribed event
	// fires instead of rendering during compose. Nil means unset so a
	// group value can still apply; unset resolves to false.
	Lazy    *bool
	Default string

	// Update lists event names (e.g. "BufEnter", "User:GitUpdate") that
	// trigger a re-render. Without it the component renders once and
	// stays cached.
	Update []string

	Highlight Value[Highlight]

	Fg        Value[string]
	Bg        Value[string]
	Sp        Value[string]
	Bold      Value[bool]
	Italic    Value[bool]
	Underline Value[bool]
	Undercurl Value[bool]

	OnClick      func(*Component)
	OnMouseEnter func(*Component)
	OnMouseLeave func(*Component)
}

// Item is one entry in a section list: a component, or a group when
// Children is non-empty. A group's Config supplies inherited defaults and
// the group itself vanishes after expansion.
type Item struct {
	Config
	Children []Item
}

// Layout is the full configuration handed to Setup: three ordered section
// lists of components and groups.
type Layout struct {
	Left   []Item
	Center []Item
	Right  []Item
}

// Component is the atomic renderable unit at runtime: a fully resolved
// Config plus render state. Width is display cells, valid after the first
// render or default assignment.
type Component struct {
	ID      ID
	Width   int
	Hovered bool

	cfg Config
}

// Lazy reports whether the component defers its first render.
func (c *Component) Lazy() bool {
	return c.cfg.Lazy != nil && *c.cfg.Lazy
}

// Default returns the placeholder shown before a lazy component's first
// render.
func (c *Component) Default() string {
	return c.cfg.Default
}

// inherit resolves one level of group inheritance: the child's own value
// wins, otherwise the group's. Default only propagates to lazy children.
func inherit(child, group Config) Config {
	out := child
	out.Provider = child.Provider.or(group.Provider)
	if out.Lazy == nil {
		out.Lazy = group.Lazy
	}
	out.Highlight = child.Highlight.or(group.Highlight)
	out.Fg = child.Fg.or(group.Fg)
	out.Bg = child.Bg.or(group.Bg)
	out.Sp = child.Sp.or(group.Sp)
	out.Bold = child.Bold.or(group.Bold)
	out.Italic = child.Italic.or(group.Italic)
	out.Underline = child.Underline.or(group.Underline)
	out.Undercurl = child.Undercurl.or(group.Undercurl)
	if out.Update == nil {
		out.Update = group.Update
	}
	if out.OnClick == nil {
		out.OnClick = group.OnClick
	}
	if out.OnMouseEnter == nil {
		out.OnMouseEnter = group.OnMouseEnter
	}
	if out.OnMouseLeave == nil {
		out.OnMouseLeave = group.OnMouseLeave
	}
	if out.Default == "" && out.Lazy != nil && *out.Lazy {
		out.Default = group.Default
	}
	return out
}

// Bool is a convenience for the Lazy field.
func Bool(v bool) *bool {
	return &v
}
