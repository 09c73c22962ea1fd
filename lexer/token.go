// Package lexer tokenizes JSON text into the eight token kinds the
// sonnyjim parser consumes: the four structural brackets, colon, comma,
// a single catch-all "leaf" kind for null/true/false/number/string, and
// a lexical-error kind for anything the grammar doesn't recognize, plus
// an EOF kind marking the end of input. It
// only classifies and spans tokens; it never decodes string escapes or
// parses number text, since neither the parser nor the arena need the
// typed value (spec's "keep numbers and strings as byte spans"
// non-goal).
package lexer

import "fmt"

// Kind enumerates the token kinds the parser's grammar recognizes.
type Kind uint8

const (
	OpenBrace Kind = iota
	CloseBrace
	OpenBracket
	CloseBracket
	Colon
	Comma
	Leaf
	Error
	EOF
)

func (k Kind) String() string {
	switch k {
	case OpenBrace:
		return "{"
	case CloseBrace:
		return "}"
	case OpenBracket:
		return "["
	case CloseBracket:
		return "]"
	case Colon:
		return ":"
	case Comma:
		return ","
	case Leaf:
		return "<leaf>"
	case Error:
		return "<lex error>"
	case EOF:
		return "<eof>"
	default:
		return fmt.Sprintf("<unknown token %d>", uint8(k))
	}
}

// LeafKind further discriminates a Leaf token, so the parser (and, via
// it, the interner) can tell a string leaf from a bare number/bool/null
// without re-scanning its bytes.
type LeafKind uint8

const (
	LeafNull LeafKind = iota
	LeafTrue
	LeafFalse
	LeafNumber
	LeafString
)

// Token is one lexed unit: its Kind, the half-open byte Span it
// occupies in the source, and — for a Leaf token — which leaf shape it
// is.
type Token struct {
	Kind  Kind
	Leaf  LeafKind // meaningful only when Kind == Leaf
	Start uint32
	End   uint32
}
