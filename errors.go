package sonnyjim

import (
	"errors"
	"fmt"

	"github.com/conradludgate/sonny-jim/lexer"
)

// ErrorKind discriminates the ways a parse can fail.
type ErrorKind uint8

const (
	// UnexpectedToken: a grammar violation at a known offset.
	UnexpectedToken ErrorKind = iota
	// UnexpectedEOF: input exhausted in a non-accepting context.
	UnexpectedEOF
	// LexicalError: the tokenizer emitted a failed token at a byte offset.
	LexicalError
	// InvalidEscape: an object key contained `\` followed by an
	// unrecognized control byte.
	InvalidEscape
	// TruncatedUnicodeEscape: an object key's `\u` escape did not have
	// four following hex digits.
	TruncatedUnicodeEscape
	// InvalidCodePoint: an object key's `\uXXXX` escape decoded to a
	// lone UTF-16 surrogate half (U+D800..U+DFFF). Surrogate pairs are
	// never reassembled by this package (see spec's preserved
	// limitation); a lone half is rejected outright.
	InvalidCodePoint
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case UnexpectedEOF:
		return "unexpected end of input"
	case LexicalError:
		return "lexical error"
	case InvalidEscape:
		return "invalid escape"
	case TruncatedUnicodeEscape:
		return "truncated unicode escape"
	case InvalidCodePoint:
		return "invalid code point"
	default:
		return "unknown error"
	}
}

// ErrParse is the sentinel every [*ParseError] wraps, so callers can
// test for "this package failed to parse" with errors.Is(err, ErrParse)
// without caring about the specific kind.
var ErrParse = errors.New("sonnyjim: parse error")

// ContainerFrame is a snapshot of one entry of the parser's open-
// container stack at the moment an error occurred.
type ContainerFrame struct {
	Kind       ContainerKind
	OpenOffset uint32
}

// ParseError is returned by [Parse], [Parser.Resume], and [Task.Run] on
// any parse failure. It carries everything spec §7 requires: the
// failing span, the stack of still-open containers, and what the parser
// was expecting next.
type ParseError struct {
	Kind ErrorKind

	// Token is the offending token, or nil on unexpected EOF / a
	// lexical error with no well-formed token to report.
	Token *lexer.Token
	Span  Span

	// OpenStack is a snapshot of every container still open when the
	// error occurred, outermost first.
	OpenStack []ContainerFrame

	// Context names what the parser was expecting next.
	Context ContextKind
}

func (e *ParseError) Error() string {
	if e.Token != nil {
		return fmt.Sprintf("%s: %s: token %s at [%d,%d), expecting %s (depth %d)",
			ErrParse, e.Kind, e.Token.Kind, e.Span.Start, e.Span.End, e.Context, len(e.OpenStack))
	}
	return fmt.Sprintf("%s: %s at [%d,%d), expecting %s (depth %d)",
		ErrParse, e.Kind, e.Span.Start, e.Span.End, e.Context, len(e.OpenStack))
}

// Unwrap lets errors.Is(err, ErrParse) succeed for any *ParseError.
func (e *ParseError) Unwrap() error {
	return ErrParse
}
