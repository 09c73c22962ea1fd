package sonnyjim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaPushValuesAndKeysPostOrder(t *testing.T) {
	a := NewArena("", Options{})

	childA := Value{Kind: ValueKind{Tag: TagLeaf, Leaf: LeafValue{Kind: LeafNumber}}}
	childB := Value{Kind: ValueKind{Tag: TagLeaf, Leaf: LeafValue{Kind: LeafNumber}}}

	r := a.pushValues([]Value{childA, childB})
	assert.Equal(t, Range{Start: 0, End: 2}, r)
	assert.Equal(t, []Value{childA, childB}, a.ValuesIn(r))

	// A second container's children land strictly after the first's,
	// which is what keeps the arena's value-vector in post-order.
	childC := Value{Kind: ValueKind{Tag: TagLeaf, Leaf: LeafValue{Kind: LeafNumber}}}
	r2 := a.pushValues([]Value{childC})
	assert.Equal(t, Range{Start: 2, End: 3}, r2)
}

func TestArenaOptionsPresizing(t *testing.T) {
	a := NewArena("", Options{ExpectedValues: 8, ExpectedKeys: 4})
	assert.Equal(t, 0, len(a.values))
	assert.Equal(t, 8, cap(a.values))
	assert.Equal(t, 4, cap(a.keys))
}

func TestArenaTextResolvesLeafSpan(t *testing.T) {
	source := `42`
	a := NewArena(source, Options{})
	v := Value{Kind: ValueKind{Tag: TagLeaf, Leaf: LeafValue{Kind: LeafNumber}}, Span: Span{Start: 0, End: 2}}
	assert.Equal(t, "42", a.Text(v))
}
