package header

// Offer is one decoded "name; k=v; ..." fragment of a header.
type Offer struct {
	Name   string
	Params *Params
}

// ParsedOffers is the ordered, duplicate-preserving decoded form of a
// header: every offer fragment, in source order, with a memoized
// lookup by name.
type ParsedOffers struct {
	entries []Offer
	byName  map[string][]*Params
}

func newParsedOffers() *ParsedOffers {
	return &ParsedOffers{byName: make(map[string][]*Params)}
}

func (p *ParsedOffers) add(name string, params *Params) {
	p.entries = append(p.entries, Offer{Name: name, Params: params})
	p.byName[name] = append(p.byName[name], params)
}

// Entries returns every offer in source order.
func (p *ParsedOffers) Entries() []Offer {
	out := make([]Offer, len(p.entries))
	copy(out, p.entries)
	return out
}

// Len returns the number of offer entries.
func (p *ParsedOffers) Len() int { return len(p.entries) }

// ByName returns every Params recorded under name, in appearance
// order, or an empty (non-nil) slice if name never appeared.
func (p *ParsedOffers) ByName(name string) []*Params {
	found := p.byName[name]
	out := make([]*Params, len(found))
	copy(out, found)
	return out
}
