package event

import "strings"

// Key identifies a host event a component can subscribe to.
//
// User-defined events arrive as "User:<Pattern>". They share a single host
// subscription on the "User" base while the pattern selects which subscribers
// fire. Every other event uses its literal name as the base with no pattern.
type Key struct {
	Base    string
	Pattern string
}

// Parse splits an event identifier into its base and pattern parts.
func Parse(name string) Key {
	if rest, ok := strings.CutPrefix(name, "User:"); ok {
		return Key{Base: "User", Pattern: rest}
	}
	return Key{Base: name}
}

// String returns the canonical form, usable as a map key.
func (k Key) String() string {
	if k.Pattern == "" {
		return k.Base
	}
	return k.Base + ":" + k.Pattern
}
