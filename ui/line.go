package ui

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// ClickSpan is a resolved click region in display-cell coordinates,
// produced while translating markup.
type ClickSpan struct {
	ID    int
	Start int // first cell, inclusive
	End   int // last cell, exclusive
}

// RenderLine translates engine markup to ANSI-styled text and extracts the
// click regions. Style markers switch the active named style; click
// markers are width-free bookkeeping for mouse routing.
func (h *TermHost) RenderLine(markup string) (string, []ClickSpan) {
	plain := termenv.ColorProfile() == termenv.Ascii

	var out strings.Builder
	var spans []ClickSpan
	var open []ClickSpan // click regions still unclosed, innermost last

	styleName := ""
	segment := strings.Builder{}
	col := 0

	flush := func() {
		if segment.Len() == 0 {
			return
		}
		s := segment.String()
		segment.Reset()
		col += printWidth(s)
		if plain || styleName == "" {
			out.WriteString(s)
			return
		}
		out.WriteString(h.lookup(styleName).Lipgloss().Render(s))
	}

	for i := 0; i < len(markup); i++ {
		switch markup[i] {
		case '\x01': // style marker
			flush()
			j := i + 1
			for j < len(markup) && markup[j] != '\x02' {
				j++
			}
			styleName = markup[i+1 : j]
			i = j
		case '\x03': // click marker
			flush()
			j := i + 1
			for j < len(markup) && markup[j] != '\x04' {
				j++
			}
			body := markup[i+1 : j]
			i = j
			if body == "" {
				// Close the innermost open region.
				if n := len(open); n > 0 {
					span := open[n-1]
					open = open[:n-1]
					span.End = col
					spans = append(spans, span)
				}
			} else if id, err := strconv.Atoi(body); err == nil {
				open = append(open, ClickSpan{ID: id, Start: col})
			}
		default:
			segment.WriteByte(markup[i])
		}
	}
	flush()

	for _, span := range open {
		span.End = col
		spans = append(spans, span)
	}
	return out.String(), spans
}

// printWidth measures a marker-free segment in display cells.
func printWidth(s string) int {
	return runewidth.StringWidth(s)
}
