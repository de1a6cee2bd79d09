package header

// Params is an ordered mapping from parameter name to [Value]. Order
// of distinct keys follows first-insertion order, so Serialize
// reproduces the order the parameters were set in. Setting a key a
// second time promotes its value to KindMulti, preserving source
// order, matching Parse's duplicate-key handling.
type Params struct {
	order []string
	vals  map[string]Value
}

// NewParams returns an empty, ready-to-use Params.
func NewParams() *Params {
	return &Params{vals: make(map[string]Value)}
}

// Set records an occurrence of key with value v. A first occurrence
// stores v as a scalar; subsequent occurrences collapse into a
// KindMulti list in call order.
func (p *Params) Set(key string, v Value) {
	prev, ok := p.vals[key]
	if !ok {
		p.order = append(p.order, key)
	}
	p.vals[key] = appendValue(prev, ok, v)
}

// Get returns the value recorded for key, if any.
func (p *Params) Get(key string) (Value, bool) {
	v, ok := p.vals[key]
	return v, ok
}

// Keys returns the distinct keys in first-insertion order.
func (p *Params) Keys() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Len returns the number of distinct keys.
func (p *Params) Len() int { return len(p.order) }

// Equal reports whether p and other hold the same keys, in the same
// order, with equal values.
func (p *Params) Equal(other *Params) bool {
	if p == nil || other == nil {
		return p == other
	}
	if len(p.order) != len(other.order) {
		return false
	}
	for i, k := range p.order {
		if other.order[i] != k {
			return false
		}
		ov, ok := other.vals[k]
		if !ok || !p.vals[k].Equal(ov) {
			return false
		}
	}
	return true
}

// Clone returns a deep, independent copy of p.
func (p *Params) Clone() *Params {
	cp := NewParams()
	for _, k := range p.order {
		cp.order = append(cp.order, k)
		cp.vals[k] = p.vals[k]
	}
	return cp
}
