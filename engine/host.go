package engine

import "github.com/willothy/lazyline/style"

// Host is the bridge between the engine and the editor or terminal it runs
// in. The abstraction keeps the engine testable without a live display.
//
// All callbacks into the engine must come from a single goroutine; the
// engine takes no locks.
type Host interface {
	// Subscribe registers fn to run when the named event fires. Pattern
	// filters user-defined events and is empty for everything else. The
	// engine calls this at most once per (event, pattern) pair for its
	// whole lifetime, across reconfigurations.
	Subscribe(event, pattern string, fn func())

	// MousePosition returns the last known pointer cell, zero-based.
	MousePosition() (col, row int)

	// ViewportSize returns the display size in cells. The status line
	// occupies the bottom row.
	ViewportSize() (cols, rows int)

	// DefineStyle registers or overwrites a named style.
	DefineStyle(name string, attrs style.Attrs)

	// GlobalStatusline reports whether the host is in the single
	// full-width status line mode the engine requires.
	GlobalStatusline() bool

	// Warn surfaces a user-visible warning.
	Warn(msg string)
}
