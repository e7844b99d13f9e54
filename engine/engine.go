// Package engine implements the status line rendering engine: a registry of
// components split across three sections, an event-driven update dispatcher,
// a render cache, and the layout, hover, and hit-testing machinery that
// turns them into a single composed line.
package engine

import "errors"

// ErrNoGlobalStatusline is returned by Setup when the host is not in the
// required full-width status line mode.
var ErrNoGlobalStatusline = errors.New("engine: host global status line mode is disabled")

// Engine is the explicit context holding all runtime state. Create one per
// host with New; Setup may be called repeatedly to reconfigure.
//
// Single-threaded by contract: the host serializes every callback.
type Engine struct {
	host Host

	nextID     ID
	components map[ID]*Component
	order      map[Section][]ID
	cache      map[ID]string

	// updaters maps a normalized event key to its subscriber set.
	// hostSubs survives Setup so a host subscription is created at most
	// once per key; its closure reads updaters at fire time, so a rebuilt
	// subscriber set takes effect without touching the host again.
	updaters map[string]map[ID]struct{}
	hostSubs map[string]struct{}

	hovered ID
}

// New creates an engine bound to a host. No components exist until Setup.
func New(host Host) *Engine {
	return &Engine{
		host:       host,
		components: make(map[ID]*Component),
		order:      make(map[Section][]ID),
		cache:      make(map[ID]string),
		updaters:   make(map[string]map[ID]struct{}),
		hostSubs:   make(map[string]struct{}),
	}
}

// Setup builds a fresh registry from the layout, discarding any previous
// configuration. Identities restart from 1. Host-level event subscriptions
// are reused, never duplicated.
//
// If the host precondition fails, Setup warns once and leaves the engine
// untouched.
func (e *Engine) Setup(layout Layout) error {
	if !e.host.GlobalStatusline() {
		e.host.Warn("lazyline: global status line mode is required; not configuring")
		return ErrNoGlobalStatusline
	}

	e.nextID = 0
	e.components = make(map[ID]*Component)
	e.order = make(map[Section][]ID)
	e.cache = make(map[ID]string)
	e.updaters = make(map[string]map[ID]struct{})
	e.hovered = 0

	// Identities follow declaration order: left, center, right.
	for _, s := range []struct {
		section Section
		items   []Item
	}{
		{Left, layout.Left},
		{Center, layout.Center},
		{Right, layout.Right},
	} {
		for _, item := range s.items {
			e.addItem(item, s.section)
		}
	}
	return nil
}

// addItem registers a component, or expands a group in declared order.
func (e *Engine) addItem(item Item, section Section) {
	if len(item.Children) > 0 {
		for _, child := range item.Children {
			child.Config = inherit(child.Config, item.Config)
			e.addItem(child, section)
		}
		return
	}
	e.createComponent(item.Config, section)
}

// createComponent assigns the next identity, stores the component, appends
// it to its section, and registers its update subscriptions.
func (e *Engine) createComponent(cfg Config, section Section) *Component {
	e.nextID++
	c := &Component{ID: e.nextID, cfg: cfg}
	e.components[c.ID] = c
	e.order[section] = append(e.order[section], c.ID)
	for _, name := range cfg.Update {
		e.registerUpdater(name, c.ID)
	}
	return c
}

// Component returns the component for an identity, or nil.
func (e *Engine) Component(id ID) *Component {
	return e.components[id]
}

// Section returns the ordered identities of one section.
func (e *Engine) Section(s Section) []ID {
	return e.order[s]
}

// Rerender forces a component to render now, outside its update
// subscriptions. Unknown identities are ignored.
func (e *Engine) Rerender(id ID) {
	if c := e.components[id]; c != nil {
		e.renderIsolated(c)
	}
}

// DispatchClick routes a host click on a component identity to its OnClick
// callback. Unknown identities and components without a callback are
// silently ignored.
func (e *Engine) DispatchClick(id ID) {
	c := e.components[id]
	if c == nil || c.cfg.OnClick == nil {
		return
	}
	c.cfg.OnClick(c)
}
