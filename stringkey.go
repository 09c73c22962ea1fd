package sonnyjim

// StringKey is an opaque handle resolving to a decoded object-key
// string, either directly in the source buffer (no escapes were
// present) or in an [Arena]'s scratch buffer (the key needed decoding).
// Equality and hashing of StringKey are defined by the string it
// resolves to, not by its raw Span bits: two keys interned from the same
// decoded text always compare bit-for-bit equal (spec invariant 4).
type StringKey struct {
	span Span
}

// Resolve returns the string k names. The result is valid for as long as
// the arena it came from is alive.
func (a *Arena) Resolve(k StringKey) string {
	return k.span.resolve(a.source, a.scratch.buf)
}
