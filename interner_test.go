package sonnyjim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternerDedupesSameBytes(t *testing.T) {
	source := `"apple"..."apple"`
	a := NewArena(source, Options{})

	k1, err := a.internKey(Span{Start: 0, End: 7})
	assert.NoError(t, err)
	k2, err := a.internKey(Span{Start: 10, End: 17})
	assert.NoError(t, err)

	assert.Equal(t, k1, k2)
	assert.Equal(t, 1, a.interner.len)
}

func TestInternerDistinguishesDifferentKeys(t *testing.T) {
	source := `"apple""pear"`
	a := NewArena(source, Options{})

	k1, err := a.internKey(Span{Start: 0, End: 7})
	assert.NoError(t, err)
	k2, err := a.internKey(Span{Start: 7, End: 13})
	assert.NoError(t, err)

	assert.NotEqual(t, k1, k2)
	assert.Equal(t, 2, a.interner.len)
}

func TestInternerGrowsTable(t *testing.T) {
	a := NewArena("", Options{})
	startCap := a.interner.cap

	src := make([]byte, 0, 256)
	src = append(src, '"')
	keys := make([]StringKey, 0, 64)
	a.source = ""
	for i := 0; i < 64; i++ {
		key := []byte{'a' + byte(i%26), 'a' + byte((i/26)%26), byte('0' + i%10)}
		span := a.internSyntheticKey(key)
		keys = append(keys, span)
	}
	assert.Len(t, keys, 64)
	assert.Greater(t, a.interner.cap, startCap)
}

// internSyntheticKey interns raw key bytes directly, bypassing the
// source-span decode path, so growth behavior can be tested without
// constructing matching source text for every key.
func (a *Arena) internSyntheticKey(raw []byte) StringKey {
	mark := a.scratch.len()
	a.scratch.append(raw...)
	end := a.scratch.len()
	return a.internOrDedup(raw, func() StringKey {
		return StringKey{span: scratchSpan(mark, end)}
	}, func() {
		a.scratch.truncate(mark)
	})
}
