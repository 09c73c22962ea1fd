package lexer

// charClass groups bytes the same way mcvoid-json's ASCII class table
// does, trimmed down to what a standalone tokenizer needs: telling
// whitespace from everything else. Structural bytes and literal starts
// are recognized directly in Next's switch, rather than through a
// second table, since (unlike the teacher) this lexer does not also
// have to drive grammar-level states off the same table.
type charClass uint8

const (
	classOther charClass = iota
	classWhitespace
)

var asciiClass = [256]charClass{}

func init() {
	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		asciiClass[c] = classWhitespace
	}
}

// Lexer scans JSON source text into [Token]s one at a time. A Lexer has
// no dynamically-growing internal state, so its cost to suspend and
// resume (for the cooperative parser) is exactly its two fields.
type Lexer struct {
	src string
	pos uint32
}

// New creates a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Pos returns the current scan position, for diagnostics.
func (l *Lexer) Pos() uint32 {
	return l.pos
}

func (l *Lexer) byteAt(i uint32) (byte, bool) {
	if int(i) >= len(l.src) {
		return 0, false
	}
	return l.src[i], true
}

func (l *Lexer) skipWhitespace() {
	for {
		b, ok := l.byteAt(l.pos)
		if !ok || asciiClass[b] != classWhitespace {
			return
		}
		l.pos++
	}
}

// Next scans and returns the next token, advancing past it. Once EOF
// has been returned, every subsequent call returns EOF again at the
// same position.
func (l *Lexer) Next() Token {
	l.skipWhitespace()

	start := l.pos
	b, ok := l.byteAt(l.pos)
	if !ok {
		return Token{Kind: EOF, Start: start, End: start}
	}

	switch b {
	case '{':
		l.pos++
		return Token{Kind: OpenBrace, Start: start, End: l.pos}
	case '}':
		l.pos++
		return Token{Kind: CloseBrace, Start: start, End: l.pos}
	case '[':
		l.pos++
		return Token{Kind: OpenBracket, Start: start, End: l.pos}
	case ']':
		l.pos++
		return Token{Kind: CloseBracket, Start: start, End: l.pos}
	case ':':
		l.pos++
		return Token{Kind: Colon, Start: start, End: l.pos}
	case ',':
		l.pos++
		return Token{Kind: Comma, Start: start, End: l.pos}
	case '"':
		return l.scanString(start)
	case 't':
		return l.scanKeyword(start, "true", LeafTrue)
	case 'f':
		return l.scanKeyword(start, "false", LeafFalse)
	case 'n':
		return l.scanKeyword(start, "null", LeafNull)
	case '-':
		return l.scanNumber(start)
	default:
		if b >= '0' && b <= '9' {
			return l.scanNumber(start)
		}
		// Not in any recognized class: a single-byte lexical error, per
		// spec §6 ("any byte sequence outside those classes must
		// surface to the parser as a lexical error token").
		l.pos++
		return Token{Kind: Error, Start: start, End: l.pos}
	}
}

func (l *Lexer) scanKeyword(start uint32, word string, kind LeafKind) Token {
	if int(start)+len(word) > len(l.src) || l.src[start:int(start)+len(word)] != word {
		l.pos = l.errorEnd(start)
		return Token{Kind: Error, Start: start, End: l.pos}
	}
	l.pos = start + uint32(len(word))
	return Token{Kind: Leaf, Leaf: kind, Start: start, End: l.pos}
}

// errorEnd advances past a run of bytes that look like they were meant
// to be part of the failed token, so the reported span is more useful
// than a single byte. It stops at the first whitespace or structural
// byte.
func (l *Lexer) errorEnd(from uint32) uint32 {
	i := from
	for {
		b, ok := l.byteAt(i)
		if !ok {
			return i
		}
		switch b {
		case ' ', '\t', '\r', '\n', '{', '}', '[', ']', ':', ',':
			if i == from {
				return i + 1
			}
			return i
		}
		i++
	}
}

// scanNumber recognizes -?(?:0|[1-9]\d*)(?:\.\d+)?(?:[eE][+-]?\d+)?.
func (l *Lexer) scanNumber(start uint32) Token {
	i := start
	bad := func() Token {
		l.pos = l.errorEnd(start)
		return Token{Kind: Error, Start: start, End: l.pos}
	}

	if b, ok := l.byteAt(i); ok && b == '-' {
		i++
	}

	b, ok := l.byteAt(i)
	if !ok || b < '0' || b > '9' {
		return bad()
	}
	if b == '0' {
		i++
	} else {
		for {
			b, ok := l.byteAt(i)
			if !ok || b < '0' || b > '9' {
				break
			}
			i++
		}
	}

	if b, ok := l.byteAt(i); ok && b == '.' {
		j := i + 1
		start := j
		for {
			b, ok := l.byteAt(j)
			if !ok || b < '0' || b > '9' {
				break
			}
			j++
		}
		if j == start {
			return bad()
		}
		i = j
	}

	if b, ok := l.byteAt(i); ok && (b == 'e' || b == 'E') {
		j := i + 1
		if b, ok := l.byteAt(j); ok && (b == '+' || b == '-') {
			j++
		}
		start := j
		for {
			b, ok := l.byteAt(j)
			if !ok || b < '0' || b > '9' {
				break
			}
			j++
		}
		if j == start {
			return bad()
		}
		i = j
	}

	l.pos = i
	return Token{Kind: Leaf, Leaf: LeafNumber, Start: start, End: l.pos}
}

// scanString recognizes "([^"\\]|\\["\\/bnfrt]|\\u[0-9a-fA-F]{4})*",
// returning the token's span over the *entire* literal including both
// quotes. It validates escape *shape* only — four hex digits after
// \u, a recognized control letter after \ — it does not decode; escape
// decoding (and surrogate validation) happens in the interner, and only
// for object keys.
func (l *Lexer) scanString(start uint32) Token {
	i := start + 1 // past opening quote
	for {
		b, ok := l.byteAt(i)
		if !ok {
			l.pos = i
			return Token{Kind: Error, Start: start, End: l.pos}
		}
		switch {
		case b == '"':
			l.pos = i + 1
			return Token{Kind: Leaf, Leaf: LeafString, Start: start, End: l.pos}
		case b == '\\':
			esc, ok := l.byteAt(i + 1)
			if !ok {
				l.pos = i + 1
				return Token{Kind: Error, Start: start, End: l.pos}
			}
			switch esc {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'u':
				if !l.fourHex(i + 2) {
					l.pos = l.errorEnd(i)
					return Token{Kind: Error, Start: start, End: l.pos}
				}
				i += 6
			default:
				l.pos = l.errorEnd(i)
				return Token{Kind: Error, Start: start, End: l.pos}
			}
		case b < 0x20:
			// Unescaped control byte: not allowed by the string grammar.
			l.pos = i
			return Token{Kind: Error, Start: start, End: l.pos}
		default:
			i++
		}
	}
}

func (l *Lexer) fourHex(at uint32) bool {
	for k := uint32(0); k < 4; k++ {
		b, ok := l.byteAt(at + k)
		if !ok || !isHex(b) {
			return false
		}
	}
	return true
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
