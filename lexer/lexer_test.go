package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenKinds(src string) []Kind {
	l := New(src)
	var kinds []Kind
	for {
		tok := l.Next()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == EOF {
			return kinds
		}
	}
}

func TestStructuralTokens(t *testing.T) {
	kinds := tokenKinds(`{}[]:,`)
	assert.Equal(t, []Kind{OpenBrace, CloseBrace, OpenBracket, CloseBracket, Colon, Comma, EOF}, kinds)
}

func TestWhitespaceSkipped(t *testing.T) {
	l := New("  \t\n {")
	tok := l.Next()
	assert.Equal(t, OpenBrace, tok.Kind)
	assert.Equal(t, uint32(5), tok.Start)
}

func TestKeywords(t *testing.T) {
	for _, tt := range []struct {
		src  string
		leaf LeafKind
	}{
		{"null", LeafNull},
		{"true", LeafTrue},
		{"false", LeafFalse},
	} {
		l := New(tt.src)
		tok := l.Next()
		assert.Equal(t, Leaf, tok.Kind)
		assert.Equal(t, tt.leaf, tok.Leaf)
		assert.Equal(t, uint32(len(tt.src)), tok.End)
	}
}

func TestKeywordMismatch(t *testing.T) {
	l := New("nul ")
	tok := l.Next()
	assert.Equal(t, Error, tok.Kind)
}

func TestNumbers(t *testing.T) {
	for _, src := range []string{"0", "-0", "123", "-42", "0.5", "1.25e10", "1E+5", "-1.5e-3"} {
		l := New(src)
		tok := l.Next()
		assert.Equal(t, Leaf, tok.Kind, "src=%s", src)
		assert.Equal(t, LeafNumber, tok.Leaf, "src=%s", src)
		assert.Equal(t, uint32(len(src)), tok.End, "src=%s", src)
	}
}

func TestNumberLeadingZeroDigitRejected(t *testing.T) {
	// scanNumber stops after the leading zero; the trailing digit
	// becomes its own number token, which the parser's grammar will
	// reject as an unexpected token. The lexer itself only guarantees it
	// doesn't emit "01" as a single number token.
	l := New("01")
	tok := l.Next()
	assert.Equal(t, Leaf, tok.Kind)
	assert.Equal(t, uint32(1), tok.End)
}

func TestNumberMissingExponentDigits(t *testing.T) {
	l := New("1e")
	tok := l.Next()
	assert.Equal(t, Error, tok.Kind)
}

func TestStrings(t *testing.T) {
	for _, src := range []string{
		`""`,
		`"hello"`,
		`"with \"quote\""`,
		`"tab\tnewline\n"`,
		`"unicode é"`,
	} {
		l := New(src)
		tok := l.Next()
		assert.Equal(t, Leaf, tok.Kind, "src=%s", src)
		assert.Equal(t, LeafString, tok.Leaf, "src=%s", src)
		assert.Equal(t, uint32(len(src)), tok.End, "src=%s", src)
	}
}

func TestStringUnterminated(t *testing.T) {
	l := New(`"abc`)
	tok := l.Next()
	assert.Equal(t, Error, tok.Kind)
}

func TestStringControlByteRejected(t *testing.T) {
	l := New("\"a\tb\"")
	tok := l.Next()
	assert.Equal(t, Error, tok.Kind)
}

func TestStringBadEscape(t *testing.T) {
	l := New(`"\q"`)
	tok := l.Next()
	assert.Equal(t, Error, tok.Kind)
}

func TestStringTruncatedUnicodeEscape(t *testing.T) {
	l := New(`"\u12"`)
	tok := l.Next()
	assert.Equal(t, Error, tok.Kind)
}

func TestUnrecognizedByte(t *testing.T) {
	l := New("~")
	tok := l.Next()
	assert.Equal(t, Error, tok.Kind)
	assert.Equal(t, uint32(1), tok.End)
}

func TestEOFRepeated(t *testing.T) {
	l := New("")
	first := l.Next()
	second := l.Next()
	assert.Equal(t, EOF, first.Kind)
	assert.Equal(t, EOF, second.Kind)
	assert.Equal(t, first.Start, second.Start)
}
