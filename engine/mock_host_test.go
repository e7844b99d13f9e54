package engine

import "github.com/willothy/lazyline/style"

// mockHost implements Host for tests, capturing calls and letting tests
// fire events and move the pointer.
type mockHost struct {
	Cols, Rows int
	Global     bool

	MouseCol, MouseRow int

	Subs     []mockSub
	Styles   map[string]style.Attrs
	Warnings []string
}

type mockSub struct {
	Event   string
	Pattern string
	Fn      func()
}

func newMockHost() *mockHost {
	return &mockHost{
		Cols:   80,
		Rows:   24,
		Global: true,
		Styles: make(map[string]style.Attrs),
	}
}

func (m *mockHost) Subscribe(event, pattern string, fn func()) {
	m.Subs = append(m.Subs, mockSub{Event: event, Pattern: pattern, Fn: fn})
}

func (m *mockHost) MousePosition() (int, int) {
	return m.MouseCol, m.MouseRow
}

func (m *mockHost) ViewportSize() (int, int) {
	return m.Cols, m.Rows
}

func (m *mockHost) DefineStyle(name string, attrs style.Attrs) {
	m.Styles[name] = attrs
}

func (m *mockHost) GlobalStatusline() bool {
	return m.Global
}

func (m *mockHost) Warn(msg string) {
	m.Warnings = append(m.Warnings, msg)
}

// Fire delivers an event the way the host would: every subscription whose
// event matches runs, with pattern filtering applied at the host level.
func (m *mockHost) Fire(event, pattern string) {
	for _, s := range m.Subs {
		if s.Event == event && (s.Pattern == "" || s.Pattern == pattern) {
			s.Fn()
		}
	}
}

// SubCount returns how many host subscriptions exist for an event name.
func (m *mockHost) SubCount(event string) int {
	n := 0
	for _, s := range m.Subs {
		if s.Event == event {
			n++
		}
	}
	return n
}
