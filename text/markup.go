package text

import (
	"strconv"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mattn/go-runewidth"
)

// Rendered fragments embed control markers the host's line renderer
// understands. Markers occupy zero display cells.
//
//	\x01<name>\x02  switch to the named style
//	\x01\x02        reset to the default style
//	\x03<id>\x04    open a click region routed to the component id
//	\x03\x04        close the click region
const (
	styleOpen  = '\x01'
	styleClose = '\x02'
	clickOpen  = '\x03'
	clickClose = '\x04'
)

// StyleBegin returns the marker switching to the named style.
func StyleBegin(name string) string {
	return string(styleOpen) + name + string(styleClose)
}

// StyleEnd is the marker resetting to the default style.
const StyleEnd = "\x01\x02"

// ClickBegin returns the marker opening a click region for a component id.
func ClickBegin(id int) string {
	return string(clickOpen) + strconv.Itoa(id) + string(clickClose)
}

// ClickEnd is the marker closing the innermost click region.
const ClickEnd = "\x03\x04"

// Strip removes all style and click markers, leaving displayed text.
func Strip(s string) string {
	if !strings.ContainsAny(s, "\x01\x03") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case byte(styleOpen):
			for i < len(s) && s[i] != byte(styleClose) {
				i++
			}
		case byte(clickOpen):
			for i < len(s) && s[i] != byte(clickClose) {
				i++
			}
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// widthCache memoizes display widths. Status line fragments repeat across
// frames, so the same strings are measured over and over.
var widthCache, _ = lru.New[string, int](512)

// Width returns the display width of s in terminal cells, ignoring markers.
// Multi-byte aware: wide runes count as two cells.
func Width(s string) int {
	if w, ok := widthCache.Get(s); ok {
		return w
	}
	w := runewidth.StringWidth(Strip(s))
	widthCache.Add(s, w)
	return w
}

// Truncate cuts s down to at most cells display columns, preserving
// markers so style and click regions stay balanced in the kept prefix.
func Truncate(s string, cells int) string {
	if Width(s) <= cells {
		return s
	}
	var b strings.Builder
	used := 0
	for i := 0; i < len(s); {
		switch s[i] {
		case byte(styleOpen):
			j := i
			for j < len(s) && s[j] != byte(styleClose) {
				j++
			}
			if j < len(s) {
				j++
			}
			b.WriteString(s[i:j])
			i = j
		case byte(clickOpen):
			j := i
			for j < len(s) && s[j] != byte(clickClose) {
				j++
			}
			if j < len(s) {
				j++
			}
			b.WriteString(s[i:j])
			i = j
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			w := runewidth.RuneWidth(r)
			if used+w > cells {
				// Drop the rest of the text but keep any trailing
				// markers so open regions are closed.
				b.WriteString(trailingMarkers(s[i:]))
				return b.String()
			}
			used += w
			b.WriteString(s[i : i+size])
			i += size
		}
	}
	return b.String()
}

// trailingMarkers collects only the marker sequences from s, in order.
func trailingMarkers(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		var term byte
		switch s[i] {
		case byte(styleOpen):
			term = byte(styleClose)
		case byte(clickOpen):
			term = byte(clickClose)
		default:
			continue
		}
		j := i
		for j < len(s) && s[j] != term {
			j++
		}
		if j < len(s) {
			j++
		}
		b.WriteString(s[i:j])
		i = j - 1
	}
	return b.String()
}
