package sonnyjim

import (
	"log/slog"
)

// Arena is the backing store for one parsed document tree. It owns the
// scratch buffer, the key interner, and the flat key/value side-tables
// every object and array's children are sliced out of. An Arena is
// created from a borrowed source buffer, populated by exactly one
// top-level parse (synchronous or cooperative), and is read-only
// thereafter; dropping it releases everything in one step, there is no
// explicit Close.
type Arena struct {
	source string

	scratch  Scratch
	interner *interner

	keys   []StringKey
	values []Value

	log *slog.Logger
}

// Options configures an [Arena]. The zero Options is the default: no
// logging below the default slog handler, no size hints.
type Options struct {
	// Logger receives debug-level traces of arena growth and interner
	// rehashing. Defaults to slog.Default() when nil.
	Logger *slog.Logger
	// ExpectedValues and ExpectedKeys pre-size the side-tables, useful
	// when a caller has a rough estimate of document size (for example,
	// from a prior parse of a similarly-shaped document).
	ExpectedValues int
	ExpectedKeys   int
}

// NewArena creates an Arena over source, which must outlive the Arena
// and every [Value]/[StringKey] produced from it.
func NewArena(source string, opts Options) *Arena {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	a := &Arena{
		source:   source,
		interner: newInterner(log),
		log:      log,
	}
	if opts.ExpectedValues > 0 {
		a.values = make([]Value, 0, opts.ExpectedValues)
	}
	if opts.ExpectedKeys > 0 {
		a.keys = make([]StringKey, 0, opts.ExpectedKeys)
	}
	return a
}

// Source returns the buffer this arena was created over.
func (a *Arena) Source() string {
	return a.source
}

// KeysIn returns the sub-slice of the arena's key-vector named by r. The
// result aliases the arena's storage and must not be retained past the
// arena's lifetime or mutated.
func (a *Arena) KeysIn(r Range) []StringKey {
	return a.keys[r.Start:r.End]
}

// ValuesIn returns the sub-slice of the arena's value-vector named by r.
// The result aliases the arena's storage and must not be retained past
// the arena's lifetime or mutated.
func (a *Arena) ValuesIn(r Range) []Value {
	return a.values[r.Start:r.End]
}

// Text returns the raw source bytes a leaf Value's span covers (for
// TagLeaf numbers and strings, quotes included and escapes undecoded —
// consistent with the package-wide rule that only object keys are
// decoded). Calling it on a non-leaf Value returns the raw bytes of that
// container's whole span instead of recursing into it.
func (a *Arena) Text(v Value) string {
	return v.Span.resolve(a.source, a.scratch.buf)
}

// pushValues drains vs (the tail of a parser's working value stack) into
// the arena's global value-vector in one bulk append, returning the
// range it now occupies. Children are always drained before their
// parent's own Value is constructed, which is what keeps the arena's
// value-vector in post-order.
func (a *Arena) pushValues(vs []Value) Range {
	start := uint32(len(a.values))
	a.log.Debug("arena: draining values", "count", len(vs), "start", start)
	a.values = append(a.values, vs...)
	return Range{Start: start, End: uint32(len(a.values))}
}

// pushKeys is pushValues's counterpart for an object's keys.
func (a *Arena) pushKeys(ks []StringKey) Range {
	start := uint32(len(a.keys))
	a.keys = append(a.keys, ks...)
	return Range{Start: start, End: uint32(len(a.keys))}
}
