package engine

// Value is a configuration field that is either a literal or computed fresh
// on every render. The zero Value is unset, which lets group expansion tell
// "not configured" apart from a configured zero.
type Value[T any] struct {
	lit T
	fn  func(*Component) T
	set bool
}

// Lit wraps a literal value.
func Lit[T any](v T) Value[T] {
	return Value[T]{lit: v, set: true}
}

// Fn wraps a supplier evaluated per render with the component as context.
func Fn[T any](f func(*Component) T) Value[T] {
	return Value[T]{fn: f, set: true}
}

// Supplier wraps a zero-argument supplier. Providers take no context.
func Supplier[T any](f func() T) Value[T] {
	return Value[T]{fn: func(*Component) T { return f() }, set: true}
}

// IsSet reports whether the value was configured at all.
func (v Value[T]) IsSet() bool {
	return v.set
}

// Eval resolves the value, invoking the supplier if the field is computed.
func (v Value[T]) Eval(c *Component) T {
	if v.fn != nil {
		return v.fn(c)
	}
	return v.lit
}

// or returns v if set, otherwise fallback. Used for group inheritance.
func (v Value[T]) or(fallback Value[T]) Value[T] {
	if v.set {
		return v
	}
	return fallback
}
