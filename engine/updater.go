package engine

import (
	"fmt"

	"github.com/willothy/lazyline/event"
)

// registerUpdater subscribes a component identity to an event. The first
// registration for a key creates the host subscription; later ones only
// grow the subscriber set. The host subscription is permanent: after a
// reconfiguration it keeps firing into whatever subscriber set the current
// registry holds, which may be empty.
func (e *Engine) registerUpdater(name string, id ID) {
	k := event.Parse(name)
	key := k.String()

	subs, ok := e.updaters[key]
	if !ok {
		subs = make(map[ID]struct{})
		e.updaters[key] = subs
	}
	subs[id] = struct{}{}

	if _, ok := e.hostSubs[key]; !ok {
		e.hostSubs[key] = struct{}{}
		e.host.Subscribe(k.Base, k.Pattern, func() { e.fire(key) })
	}
}

// fire re-renders every component subscribed to the key. Order among them
// is unspecified. A failing component must not stop its siblings, so each
// render runs isolated.
func (e *Engine) fire(key string) {
	for id := range e.updaters[key] {
		c := e.components[id]
		if c == nil {
			continue
		}
		e.renderIsolated(c)
	}
}

// renderIsolated renders one component, converting a panic into a host
// warning instead of unwinding past the dispatcher.
func (e *Engine) renderIsolated(c *Component) {
	defer func() {
		if r := recover(); r != nil {
			e.host.Warn(fmt.Sprintf("lazyline: component %d render: %v", c.ID, r))
		}
	}()
	e.render(c)
}
