// Package lua is the scripted configuration surface: it runs a user's
// statusline.lua through gopher-lua and turns the resulting tables and
// functions into an engine.Layout. Lua functions become computed providers,
// style suppliers, and mouse callbacks, each invoked with a protected call
// so script errors surface as warnings instead of unwinding the engine.
package lua

import (
	"fmt"
	"os"
	"strings"
	"time"

	glua "github.com/yuin/gopher-lua"

	"github.com/willothy/lazyline/engine"
)

// Interval is a timer-driven event requested by the script via
// lazyline.every.
type Interval struct {
	Every time.Duration
	Event string
}

// Loader owns the Lua VM for one configuration pass. It is a pure
// mechanism: it runs scripts and records what they declare; wiring the
// result into an engine is the caller's job.
//
// All calls into the VM, including deferred supplier and callback
// invocations, must come from the engine's single thread.
type Loader struct {
	L    *glua.LState
	warn func(string)

	layout    engine.Layout
	intervals []Interval
	didSetup  bool
}

// NewLoader creates a Loader with a fresh VM and registers the lazyline
// API. warn receives script error reports; nil discards them.
func NewLoader(warn func(string)) *Loader {
	if warn == nil {
		warn = func(string) {}
	}
	l := &Loader{
		L:    glua.NewState(),
		warn: warn,
	}
	l.registerAPI()
	return l
}

// Close tears down the VM. Any computed values still referencing it must
// not be evaluated afterwards.
func (l *Loader) Close() {
	if l.L != nil {
		l.L.Close()
		l.L = nil
	}
}

// registerAPI installs the lazyline global table.
func (l *Loader) registerAPI() {
	t := l.L.NewTable()

	// lazyline.setup{ left = {...}, center = {...}, right = {...} }
	l.L.SetField(t, "setup", l.L.NewFunction(func(L *glua.LState) int {
		cfg := L.CheckTable(1)
		l.layout = engine.Layout{
			Left:   l.decodeSection(L.GetField(cfg, "left")),
			Center: l.decodeSection(L.GetField(cfg, "center")),
			Right:  l.decodeSection(L.GetField(cfg, "right")),
		}
		l.didSetup = true
		return 0
	}))

	// lazyline.every(ms, event) - fire an engine event on a cadence
	l.L.SetField(t, "every", l.L.NewFunction(func(L *glua.LState) int {
		ms := L.CheckInt(1)
		name := L.CheckString(2)
		l.intervals = append(l.intervals, Interval{
			Every: time.Duration(ms) * time.Millisecond,
			Event: name,
		})
		return 0
	}))

	l.L.SetGlobal("lazyline", t)
}

// DoString executes a raw string of Lua code. The name parameter is used
// for stack traces.
func (l *Loader) DoString(name, code string) error {
	fn, err := l.L.Load(strings.NewReader(code), name)
	if err != nil {
		return err
	}
	l.L.Push(fn)
	return l.L.PCall(0, 0, nil)
}

// DoFile executes a Lua file from the filesystem.
func (l *Loader) DoFile(path string) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return l.DoString(path, string(code))
}

// Layout returns the configuration declared by the script. The second
// result is false when the script never called lazyline.setup.
func (l *Loader) Layout() (engine.Layout, bool) {
	return l.layout, l.didSetup
}

// Intervals returns the timer events requested by the script.
func (l *Loader) Intervals() []Interval {
	return l.intervals
}

// pcall invokes a Lua function with the given arguments, expecting one
// return value. Errors are warned and reported as nil.
func (l *Loader) pcall(fn *glua.LFunction, args ...glua.LValue) glua.LValue {
	l.L.Push(fn)
	for _, a := range args {
		l.L.Push(a)
	}
	if err := l.L.PCall(len(args), 1, nil); err != nil {
		l.warn(fmt.Sprintf("lazyline: script: %v", err))
		return glua.LNil
	}
	ret := l.L.Get(-1)
	l.L.Pop(1)
	return ret
}

// componentCtx builds the context table Lua callbacks receive.
func (l *Loader) componentCtx(c *engine.Component) *glua.LTable {
	t := l.L.NewTable()
	if c != nil {
		l.L.SetField(t, "id", glua.LNumber(c.ID))
		l.L.SetField(t, "width", glua.LNumber(c.Width))
		l.L.SetField(t, "hovered", glua.LBool(c.Hovered))
	}
	return t
}
