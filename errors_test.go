package sonnyjim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorUnwrapsToSentinel(t *testing.T) {
	pe := &ParseError{Kind: UnexpectedToken, Span: Span{Start: 3, End: 4}}
	assert.True(t, errors.Is(pe, ErrParse))
}

func TestParseErrorMessageWithToken(t *testing.T) {
	a := NewArena("{1", Options{})
	_, err := Parse(a, "{1")
	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Error(), "unexpected token")
	assert.Contains(t, pe.Error(), "depth 1")
}

func TestErrorKindStrings(t *testing.T) {
	for _, tt := range []struct {
		kind ErrorKind
		want string
	}{
		{UnexpectedToken, "unexpected token"},
		{UnexpectedEOF, "unexpected end of input"},
		{LexicalError, "lexical error"},
		{InvalidEscape, "invalid escape"},
		{TruncatedUnicodeEscape, "truncated unicode escape"},
		{InvalidCodePoint, "invalid code point"},
	} {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}
