package lua

import (
	glua "github.com/yuin/gopher-lua"

	"github.com/willothy/lazyline/engine"
	"github.com/willothy/lazyline/style"
)

// decodeSection converts a section array into engine items. Non-table
// values yield an empty section.
func (l *Loader) decodeSection(v glua.LValue) []engine.Item {
	tbl, ok := v.(*glua.LTable)
	if !ok {
		return nil
	}
	var items []engine.Item
	tbl.ForEach(func(_, entry glua.LValue) {
		if t, ok := entry.(*glua.LTable); ok {
			items = append(items, l.decodeItem(t))
		}
	})
	return items
}

// decodeItem converts one entry table. A "components" field makes it a
// group whose remaining fields become inherited defaults.
func (l *Loader) decodeItem(t *glua.LTable) engine.Item {
	item := engine.Item{Config: l.decodeConfig(t)}
	if children, ok := l.L.GetField(t, "components").(*glua.LTable); ok {
		children.ForEach(func(_, child glua.LValue) {
			if ct, ok := child.(*glua.LTable); ok {
				item.Children = append(item.Children, l.decodeItem(ct))
			}
		})
	}
	return item
}

func (l *Loader) decodeConfig(t *glua.LTable) engine.Config {
	cfg := engine.Config{
		Provider:  l.stringValue(l.L.GetField(t, "provider")),
		Default:   stringOr(l.L.GetField(t, "default"), ""),
		Highlight: l.highlightValue(l.L.GetField(t, "hl")),
		Fg:        l.stringValue(l.L.GetField(t, "fg")),
		Bg:        l.stringValue(l.L.GetField(t, "bg")),
		Sp:        l.stringValue(l.L.GetField(t, "sp")),
		Bold:      l.boolValue(l.L.GetField(t, "bold")),
		Italic:    l.boolValue(l.L.GetField(t, "italic")),
		Underline: l.boolValue(l.L.GetField(t, "underline")),
		Undercurl: l.boolValue(l.L.GetField(t, "undercurl")),
	}

	if b, ok := l.L.GetField(t, "lazy").(glua.LBool); ok {
		cfg.Lazy = engine.Bool(bool(b))
	}

	switch u := l.L.GetField(t, "update").(type) {
	case glua.LString:
		cfg.Update = []string{string(u)}
	case *glua.LTable:
		u.ForEach(func(_, v glua.LValue) {
			if s, ok := v.(glua.LString); ok {
				cfg.Update = append(cfg.Update, string(s))
			}
		})
	}

	cfg.OnClick = l.callback(l.L.GetField(t, "on_click"))
	cfg.OnMouseEnter = l.callback(l.L.GetField(t, "on_enter"))
	cfg.OnMouseLeave = l.callback(l.L.GetField(t, "on_leave"))

	return cfg
}

// stringValue maps a Lua field to a string Value: literal strings pass
// through, functions become per-render suppliers.
func (l *Loader) stringValue(v glua.LValue) engine.Value[string] {
	switch x := v.(type) {
	case glua.LString:
		return engine.Lit(string(x))
	case glua.LNumber:
		return engine.Lit(x.String())
	case *glua.LFunction:
		return engine.Fn(func(c *engine.Component) string {
			return stringOr(l.pcall(x, l.componentCtx(c)), "")
		})
	}
	return engine.Value[string]{}
}

func (l *Loader) boolValue(v glua.LValue) engine.Value[bool] {
	switch x := v.(type) {
	case glua.LBool:
		return engine.Lit(bool(x))
	case *glua.LFunction:
		return engine.Fn(func(c *engine.Component) bool {
			return l.pcall(x, l.componentCtx(c)) == glua.LTrue
		})
	}
	return engine.Value[bool]{}
}

// highlightValue maps the hl field. Strings link to a named style, tables
// carry a full attribute set, functions are re-evaluated per render and may
// return either form.
func (l *Loader) highlightValue(v glua.LValue) engine.Value[engine.Highlight] {
	switch x := v.(type) {
	case glua.LString:
		return engine.Lit(engine.Highlight{Link: string(x)})
	case *glua.LTable:
		return engine.Lit(l.decodeHighlight(x))
	case *glua.LFunction:
		return engine.Fn(func(c *engine.Component) engine.Highlight {
			switch ret := l.pcall(x, l.componentCtx(c)).(type) {
			case glua.LString:
				return engine.Highlight{Link: string(ret)}
			case *glua.LTable:
				return l.decodeHighlight(ret)
			}
			return engine.Highlight{}
		})
	}
	return engine.Value[engine.Highlight]{}
}

func (l *Loader) decodeHighlight(t *glua.LTable) engine.Highlight {
	attrs := &style.Attrs{
		Fg:        stringOr(l.L.GetField(t, "fg"), ""),
		Bg:        stringOr(l.L.GetField(t, "bg"), ""),
		Sp:        stringOr(l.L.GetField(t, "sp"), ""),
		Bold:      l.L.GetField(t, "bold") == glua.LTrue,
		Italic:    l.L.GetField(t, "italic") == glua.LTrue,
		Underline: l.L.GetField(t, "underline") == glua.LTrue,
		Undercurl: l.L.GetField(t, "undercurl") == glua.LTrue,
	}
	return engine.Highlight{Attrs: attrs}
}

// callback wraps a Lua function as a component callback; anything else is
// treated as absent.
func (l *Loader) callback(v glua.LValue) func(*engine.Component) {
	fn, ok := v.(*glua.LFunction)
	if !ok {
		return nil
	}
	return func(c *engine.Component) {
		l.pcall(fn, l.componentCtx(c))
	}
}

// stringOr returns the string form of a Lua value, or fallback for nil.
func stringOr(v glua.LValue, fallback string) string {
	if v == glua.LNil {
		return fallback
	}
	if s, ok := v.(glua.LString); ok {
		return string(s)
	}
	return v.String()
}
