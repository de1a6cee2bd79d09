//go:generate errtrace -w .

package header

import "braces.dev/errtrace"

// Parse decodes a header string into a [ParsedOffers]. A nil s or an
// empty/all-whitespace string yields an empty ParsedOffers. Parse
// fails with a [ParseError] on a trailing comma, an empty offer, a
// malformed token, an unterminated quoted string, or any other byte
// the grammar disallows at that position.
func Parse(s *string) (*ParsedOffers, error) {
	out := newParsedOffers()
	if s == nil {
		return out, nil
	}
	sc := &scanner{s: *s}
	sc.skipOWS()
	if sc.atEnd() {
		return out, nil
	}

	for {
		name, params, err := parseOffer(sc)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		out.add(name, params)

		sc.skipOWS()
		if sc.atEnd() {
			return out, nil
		}
		if sc.peek() != ',' {
			return nil, errtrace.Wrap(newParseError(ErrUnexpectedByte, sc.s, sc.pos))
		}
		sc.pos++
		sc.skipOWS()
		if sc.atEnd() {
			return nil, errtrace.Wrap(newParseError(ErrTrailingComma, sc.s, sc.pos))
		}
	}
}

func parseOffer(sc *scanner) (string, *Params, error) {
	name, err := sc.readToken()
	if err != nil {
		return "", nil, errtrace.Wrap(newParseError(ErrEmptyOffer, sc.s, sc.pos))
	}

	params := NewParams()
	sc.skipOWS()
	for !sc.atEnd() && sc.peek() == ';' {
		sc.pos++
		sc.skipOWS()
		key, err := sc.readToken()
		if err != nil {
			return "", nil, errtrace.Wrap(err)
		}
		sc.skipOWS()
		if !sc.atEnd() && sc.peek() == '=' {
			sc.pos++
			sc.skipOWS()
			v, err := sc.readValue()
			if err != nil {
				return "", nil, errtrace.Wrap(err)
			}
			params.Set(key, v)
		} else {
			params.Set(key, Flag())
		}
		sc.skipOWS()
	}
	return name, params, nil
}
