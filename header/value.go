// Package header implements the wire grammar for advertising and
// responding to protocol extensions: a comma-separated list of named
// offers, each optionally carrying semicolon-delimited parameters.
package header

import "strconv"

// Kind discriminates the dynamic type carried by a [Value]. Params
// values are one of flag, integer, text, or a list of the first three
// kinds, in place of a native sum type.
type Kind int

const (
	// KindFlag is a bare "key" fragment with no "=value" part.
	KindFlag Kind = iota
	// KindInt is an unquoted, purely-decimal "key=123" fragment.
	KindInt
	// KindText is a "key=value" fragment whose value is quoted, or
	// unquoted and not purely decimal digits.
	KindText
	// KindMulti holds every value seen for a key that occurred more
	// than once within a single offer, in source order.
	KindMulti
)

// Value is a single parameter value: a flag, an integer, a text token,
// or (when a key repeats) a list of the above in appearance order.
type Value struct {
	kind  Kind
	n     int
	text  string
	multi []Value
}

// Flag returns the boolean-flag value ("key" with no "=value").
func Flag() Value { return Value{kind: KindFlag} }

// Int returns an integer value ("key=123").
func Int(n int) Value { return Value{kind: KindInt, n: n} }

// Text returns a string value ("key=value" or "key=\"value\"").
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Multi returns a list value composed of the given scalars, in order.
// Passing a value whose Kind is already KindMulti flattens it.
func Multi(vs ...Value) Value {
	flat := make([]Value, 0, len(vs))
	for _, v := range vs {
		if v.kind == KindMulti {
			flat = append(flat, v.multi...)
		} else {
			flat = append(flat, v)
		}
	}
	return Value{kind: KindMulti, multi: flat}
}

// Kind reports the value's discriminant.
func (v Value) Kind() Kind { return v.kind }

// IsFlag reports whether v is the boolean flag value.
func (v Value) IsFlag() bool { return v.kind == KindFlag }

// Int returns v's integer payload and whether v is an integer value.
func (v Value) Int() (int, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.n, true
}

// Text returns v's text payload and whether v is a text value.
func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// List returns v's elements and whether v is a list value.
func (v Value) List() ([]Value, bool) {
	if v.kind != KindMulti {
		return nil, false
	}
	return v.multi, true
}

// Equal reports whether v and other carry the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindFlag:
		return true
	case KindInt:
		return v.n == other.n
	case KindText:
		return v.text == other.text
	case KindMulti:
		if len(v.multi) != len(other.multi) {
			return false
		}
		for i := range v.multi {
			if !v.multi[i].Equal(other.multi[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders v for diagnostics; it is not the wire form (see
// Serialize for that).
func (v Value) String() string {
	switch v.kind {
	case KindFlag:
		return "true"
	case KindInt:
		return strconv.Itoa(v.n)
	case KindText:
		return strconv.Quote(v.text)
	case KindMulti:
		s := "["
		for i, e := range v.multi {
			if i > 0 {
				s += ", "
			}
			s += e.String()
		}
		return s + "]"
	default:
		return "<invalid>"
	}
}

// appendValue returns the value produced by recording a new
// occurrence of a key whose previous recorded value was prev, ok
// (ok is false when this is the key's first occurrence).
func appendValue(prev Value, ok bool, next Value) Value {
	if !ok {
		return next
	}
	if prev.kind == KindMulti {
		return Multi(append(append([]Value{}, prev.multi...), next))
	}
	return Multi(prev, next)
}
