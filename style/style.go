package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Attrs is a resolved style attribute set for one component.
//
// Link, when set, aliases another named style and overrides the individual
// attributes. Sp is the special color used for underline and undercurl
// decorations on hosts that support it.
type Attrs struct {
	Link string

	Fg string
	Bg string
	Sp string

	Bold      bool
	Italic    bool
	Underline bool
	Undercurl bool
}

// IsZero reports whether no attribute is set at all.
func (a Attrs) IsZero() bool {
	return a == Attrs{}
}

// Lipgloss converts the attribute set to a lipgloss style. Undercurl is
// rendered as underline; terminals have no portable curly underline and the
// special color has no lipgloss equivalent, so Sp is dropped here.
func (a Attrs) Lipgloss() lipgloss.Style {
	s := lipgloss.NewStyle()
	if a.Fg != "" {
		s = s.Foreground(lipgloss.Color(a.Fg))
	}
	if a.Bg != "" {
		s = s.Background(lipgloss.Color(a.Bg))
	}
	if a.Bold {
		s = s.Bold(true)
	}
	if a.Italic {
		s = s.Italic(true)
	}
	if a.Underline || a.Undercurl {
		s = s.Underline(true)
	}
	return s
}

// Name returns the deterministic style name for a component identity.
// Re-rendering a component overwrites this name instead of leaking new ones.
func Name(id int) string {
	return fmt.Sprintf("lazyline_c%d", id)
}
