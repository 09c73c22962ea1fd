package sonnyjim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanInSource(t *testing.T) {
	assert.True(t, sourceSpan(2, 5).InSource())
	assert.True(t, Span{Start: 3, End: 3}.InSource())
	assert.False(t, scratchSpan(1, 4).InSource())
}

func TestSpanResolve(t *testing.T) {
	source := `"hello world"`
	assert.Equal(t, `"hello`, sourceSpan(0, 6).resolve(source, nil))

	var scratch Scratch
	scratch.appendString("decoded")
	mark := scratch.len()
	got := scratchSpan(0, mark).resolve(source, scratch.buf)
	assert.Equal(t, "decoded", got)
}

func TestRangeLen(t *testing.T) {
	assert.Equal(t, 0, Range{Start: 4, End: 4}.Len())
	assert.Equal(t, 3, Range{Start: 1, End: 4}.Len())
}
