package header

// isTokenChar reports whether c is a valid token ("tchar") byte: any
// printable US-ASCII byte except a separator or space.
func isTokenChar(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/', '[', ']', '?', '=', '{', '}', ' ', '\t':
		return false
	}
	return c > 0x20 && c < 0x7f
}

func isOWS(c byte) bool { return c == ' ' || c == '\t' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// scanner is a byte-indexed cursor over a header string. It never
// backtracks past its current position.
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) atEnd() bool { return sc.pos >= len(sc.s) }

func (sc *scanner) peek() byte {
	if sc.atEnd() {
		return 0
	}
	return sc.s[sc.pos]
}

func (sc *scanner) skipOWS() {
	for !sc.atEnd() && isOWS(sc.peek()) {
		sc.pos++
	}
}

// readToken consumes a maximal run of token bytes and returns it.
// It fails if no token byte is present at the cursor.
func (sc *scanner) readToken() (string, error) {
	start := sc.pos
	for !sc.atEnd() && isTokenChar(sc.peek()) {
		sc.pos++
	}
	if sc.pos == start {
		return "", newParseError(ErrMalformedToken, sc.s, sc.pos)
	}
	return sc.s[start:sc.pos], nil
}

// readQuoted consumes a double-quoted string starting at the cursor
// (which must be positioned on the opening '"') and returns its
// unescaped contents. "\x" decodes to the literal byte x for any x;
// an unterminated string is a ParseError.
func (sc *scanner) readQuoted() (string, error) {
	if sc.atEnd() || sc.peek() != '"' {
		return "", newParseError(ErrMalformedToken, sc.s, sc.pos)
	}
	sc.pos++ // opening quote
	var b []byte
	for {
		if sc.atEnd() {
			return "", newParseError(ErrUnterminatedQuot, sc.s, sc.pos)
		}
		c := sc.s[sc.pos]
		switch {
		case c == '"':
			sc.pos++
			return string(b), nil
		case c == '\\':
			sc.pos++
			if sc.atEnd() {
				return "", newParseError(ErrUnterminatedQuot, sc.s, sc.pos)
			}
			b = append(b, sc.s[sc.pos])
			sc.pos++
		default:
			b = append(b, c)
			sc.pos++
		}
	}
}

// readValue consumes one parameter value: a quoted string, or an
// unquoted token decoded as an integer when purely decimal digits and
// as text otherwise.
func (sc *scanner) readValue() (Value, error) {
	if sc.peek() == '"' {
		s, err := sc.readQuoted()
		if err != nil {
			return Value{}, err
		}
		return Text(s), nil
	}
	tok, err := sc.readToken()
	if err != nil {
		return Value{}, err
	}
	if isAllDigits(tok) {
		n := 0
		for i := 0; i < len(tok); i++ {
			n = n*10 + int(tok[i]-'0')
		}
		return Int(n), nil
	}
	return Text(tok), nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
