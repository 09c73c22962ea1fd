package sonnyjim_test

import (
	"fmt"

	sonnyjim "github.com/conradludgate/sonny-jim"
)

// objectGet scans an object Value's parallel key/value ranges for key,
// the way a caller without a schema has to: sonnyjim never builds a
// map, since that would be exactly the per-node heap allocation the
// arena is built to avoid.
func objectGet(arena *sonnyjim.Arena, obj sonnyjim.Value, key string) (sonnyjim.Value, bool) {
	keys := arena.KeysIn(obj.Kind.Keys)
	values := arena.ValuesIn(obj.Kind.Values)
	for i, k := range keys {
		if arena.Resolve(k) == key {
			return values[i], true
		}
	}
	return sonnyjim.Value{}, false
}

func Example() {
	source := `{
		"name": "The Beatles",
		"type": "band",
		"members": [
			{"name": "John", "role": "guitar"},
			{"name": "Paul", "role": "bass"},
			{"name": "George", "role": "guitar"},
			{"name": "Ringo", "role": "drums"}
		]
	}`

	arena := sonnyjim.NewArena(source, sonnyjim.Options{})
	root, err := sonnyjim.Parse(arena, source)
	if err != nil {
		panic(err)
	}

	members, _ := objectGet(arena, root, "members")
	third := arena.ValuesIn(members.Kind.Values)[2]
	name, _ := objectGet(arena, third, "name")

	fmt.Println(arena.Text(name))
	// Output:
	// "George"
}
