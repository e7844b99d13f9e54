package lua

import "github.com/willothy/lazyline/style"

// stubHost is a minimal engine.Host for wiring decoded layouts through a
// real engine in tests.
type stubHost struct {
	warnings []string
}

func (s *stubHost) Subscribe(event, pattern string, fn func()) {}

func (s *stubHost) MousePosition() (int, int) { return 0, 0 }

func (s *stubHost) ViewportSize() (int, int) { return 80, 24 }

func (s *stubHost) DefineStyle(name string, attrs style.Attrs) {}

func (s *stubHost) GlobalStatusline() bool { return true }

func (s *stubHost) Warn(msg string) { s.warnings = append(s.warnings, msg) }
