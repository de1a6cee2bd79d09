package header

import (
	"strconv"
	"strings"
)

// Serialize renders one offer fragment for name and its params in the
// wire grammar: "name" alone when params is empty, otherwise
// "name; k1; k2=v2; ..." with each distinct key emitted once per
// occurrence in Params' insertion order. A KindMulti value expands to
// one "key=value" (or bare "key") fragment per element, adjacent to
// that key's position.
func Serialize(name string, params *Params) string {
	var b strings.Builder
	b.WriteString(name)
	if params == nil {
		return b.String()
	}
	for _, key := range params.Keys() {
		v, _ := params.Get(key)
		for _, elem := range flatten(v) {
			b.WriteString("; ")
			b.WriteString(key)
			writeValueSuffix(&b, elem)
		}
	}
	return b.String()
}

func flatten(v Value) []Value {
	if list, ok := v.List(); ok {
		return list
	}
	return []Value{v}
}

func writeValueSuffix(b *strings.Builder, v Value) {
	switch v.Kind() {
	case KindFlag:
		// bare key, no "=value"
	case KindInt:
		n, _ := v.Int()
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(n))
	case KindText:
		s, _ := v.Text()
		b.WriteByte('=')
		if isPlainToken(s) {
			b.WriteString(s)
		} else {
			b.WriteString(quote(s))
		}
	}
}

func isPlainToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isTokenChar(s[i]) {
			return false
		}
	}
	return true
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

// JoinOffers joins multiple serialized fragments with the ", "
// separator used between offers in a header value.
func JoinOffers(fragments []string) string {
	return strings.Join(fragments, ", ")
}
